package weapons

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/framestrike/assets/animations"
	"github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/shared/gamemath"
)

var (
	ErrNoName         = errors.New("weapons: weapon has no name")
	ErrNoAttacks      = errors.New("weapons: weapon has no attacks")
	ErrAttackSpeed    = errors.New("weapons: attack speed must be > 0")
	ErrDuplicate      = errors.New("weapons: duplicate attack name")
	ErrUnknownWeapon  = errors.New("weapons: unknown weapon")
	ErrNegativeTiming = errors.New("weapons: negative frame timing")
)

// Attack is one compiled attack animation.
type Attack struct {
	Name     string
	Priority int
	Loop     bool
	Timeline *animations.Timeline
}

// Request builds a fresh request for this attack. Callbacks are left to the
// caller.
func (a *Attack) Request() *animations.Request {
	return &animations.Request{
		Name:     a.Name,
		Priority: a.Priority,
		Loop:     a.Loop,
		Timeline: a.Timeline,
	}
}

// Weapon is a compiled, immutable weapon definition.
type Weapon struct {
	Name        string
	BaseDamage  float64
	AttackSpeed float64
	// Hitbox is the default hit volume, relative to the owner facing right.
	Hitbox gamemath.Rect

	attacks map[string]*Attack
	order   []string
}

// Compile validates spec and turns its frame timings into timelines. Frame
// durations are timing / fps / attack speed.
func Compile(spec Spec, fps float64) (*Weapon, error) {
	if spec.Name == "" {
		return nil, ErrNoName
	}
	if len(spec.Attacks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAttacks, spec.Name)
	}
	speed := spec.AttackSpeed
	if speed == 0 {
		speed = 1
	}
	if speed < 0 {
		return nil, fmt.Errorf("%w: %s has %v", ErrAttackSpeed, spec.Name, spec.AttackSpeed)
	}

	w := &Weapon{
		Name:        spec.Name,
		BaseDamage:  spec.BaseDamage,
		AttackSpeed: speed,
		Hitbox:      spec.Hitbox,
		attacks:     make(map[string]*Attack, len(spec.Attacks)),
	}

	for _, as := range spec.Attacks {
		if _, dup := w.attacks[as.Name]; dup {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicate, spec.Name, as.Name)
		}

		timings := make([]float64, len(as.Frames))
		for i, fs := range as.Frames {
			if fs.Timing < 0 {
				return nil, fmt.Errorf("%w: %s/%s frame %d", ErrNegativeTiming, spec.Name, as.Name, i)
			}
			timings[i] = fs.Timing / speed
		}
		durations := animations.FrameTimings(timings, fps)

		frames := make([]animations.Frame, len(as.Frames))
		for i, fs := range as.Frames {
			frames[i] = animations.Frame{
				Key:      fs.Key,
				Duration: durations[i],
				Hit:      fs.Hit,
				Box:      fs.Box,
			}
			if fs.Hit {
				frames[i].Damage = spec.BaseDamage
				if fs.Damage != nil {
					frames[i].Damage = *fs.Damage
				}
			}
		}

		tl, err := animations.NewTimelineFromFrames(frames)
		if err != nil {
			return nil, fmt.Errorf("weapons: %s/%s: %w", spec.Name, as.Name, err)
		}
		if as.Loop && tl.Total() == 0 {
			return nil, fmt.Errorf("weapons: %s/%s: %w", spec.Name, as.Name, animations.ErrZeroLengthLoop)
		}

		prio := config.PriorityAttack
		if as.Priority != nil {
			prio = *as.Priority
		}
		w.attacks[as.Name] = &Attack{Name: as.Name, Priority: prio, Loop: as.Loop, Timeline: tl}
		w.order = append(w.order, as.Name)
	}
	return w, nil
}

// Attack looks up an attack by name.
func (w *Weapon) Attack(name string) (*Attack, bool) {
	if w == nil {
		return nil, false
	}
	a, ok := w.attacks[name]
	return a, ok
}

// Attacks lists attack names in definition order. Combos cycle through them.
func (w *Weapon) Attacks() []string {
	if w == nil {
		return nil
	}
	return append([]string(nil), w.order...)
}

// AttackAt returns the attack for combo step i, wrapping around.
func (w *Weapon) AttackAt(i int) *Attack {
	if w == nil || len(w.order) == 0 {
		return nil
	}
	if i < 0 {
		i = -i
	}
	return w.attacks[w.order[i%len(w.order)]]
}

func sortedNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
