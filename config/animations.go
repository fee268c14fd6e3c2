package config

// ClipID names a character animation.
type ClipID string

const (
	ClipIdle  ClipID = "idle"
	ClipMove  ClipID = "move"
	ClipDeath ClipID = "death"
)

// ClipDef describes a character animation as a run of sprite sheet frames.
// Speed is the number of animation frames each sheet frame is held for.
type ClipDef struct {
	Sheet    string
	First    int
	Last     int
	Step     int
	Speed    float64
	Loop     bool
	Priority int
}

// CharacterClips maps a character key (e.g., "player") to its clips.
var CharacterClips = map[string]map[ClipID]ClipDef{
	"player": {
		ClipIdle:  {Sheet: "player/idle", First: 0, Last: 6, Step: 1, Speed: 5, Loop: true, Priority: PriorityIdle},
		ClipMove:  {Sheet: "player/walk", First: 0, Last: 7, Step: 1, Speed: 5, Loop: true, Priority: PriorityMove},
		ClipDeath: {Sheet: "player/die", First: 0, Last: 8, Step: 1, Speed: 5, Priority: PriorityDeath},
	},
	"slime": {
		ClipIdle:  {Sheet: "slime/idle", First: 0, Last: 3, Step: 1, Speed: 8, Loop: true, Priority: PriorityIdle},
		ClipMove:  {Sheet: "slime/hop", First: 0, Last: 5, Step: 1, Speed: 6, Loop: true, Priority: PriorityMove},
		ClipDeath: {Sheet: "slime/pop", First: 0, Last: 5, Step: 1, Speed: 4, Priority: PriorityDeath},
	},
	// Dummies only wobble; they have no death clip and are removed after
	// Combat.DestroyDelay.
	"dummy": {
		ClipIdle: {Sheet: "dummy/wobble", First: 0, Last: 3, Step: 1, Speed: 10, Loop: true, Priority: PriorityIdle},
	},
}

// Clip looks up a character clip.
func Clip(character string, id ClipID) (ClipDef, bool) {
	clips, ok := CharacterClips[character]
	if !ok {
		return ClipDef{}, false
	}
	def, ok := clips[id]
	return def, ok
}
