package components

import (
	"github.com/automoto/framestrike/assets/animations"
	"github.com/automoto/framestrike/config"
	"github.com/yohamta/donburi"
)

type AnimatorData struct {
	// Character keys config.CharacterClips.
	Character string
	Scheduler *animations.Scheduler
	Clips     map[config.ClipID]*animations.Timeline
}

// Key returns the visual key of the frame being shown, or "" when idle.
func (a *AnimatorData) Key() string {
	if a == nil || a.Scheduler == nil {
		return ""
	}
	f, ok := a.Scheduler.CurrentFrame()
	if !ok {
		return ""
	}
	return f.Key
}

var Animator = donburi.NewComponentType[AnimatorData]()
