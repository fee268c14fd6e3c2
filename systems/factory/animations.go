package factory

import (
	"fmt"

	"github.com/automoto/framestrike/assets/animations"
	cfg "github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/logging"
)

// GenerateClips builds the timelines for a character key (e.g., "player",
// "dummy") from its clip definitions in config.
func GenerateClips(key string, fps float64) (map[cfg.ClipID]*animations.Timeline, error) {
	defs, ok := cfg.CharacterClips[key]
	if !ok {
		return nil, fmt.Errorf("factory: no clips for character %q", key)
	}

	clips := make(map[cfg.ClipID]*animations.Timeline, len(defs))
	for id, def := range defs {
		keys := animations.SheetKeys(def.Sheet, def.First, def.Last, def.Step)
		durations := animations.FrameTimings([]float64{def.Speed}, fps)
		tl, err := animations.Uniform(keys, durations[0])
		if err != nil {
			return nil, fmt.Errorf("factory: clip %s/%s: %w", key, id, err)
		}
		clips[id] = tl
	}
	return clips, nil
}

// NewScheduler returns a scheduler configured from config.Animation and
// logging under the entity's name.
func NewScheduler(name string) *animations.Scheduler {
	order := animations.QueueFIFO
	if cfg.Animation.QueueOrder == cfg.QueuePriority {
		order = animations.QueuePriority
	}
	log := logging.Component("animation").With().Str("entity", name).Logger()
	return animations.NewScheduler(
		animations.WithLogger(log),
		animations.WithQueueOrder(order),
	)
}
