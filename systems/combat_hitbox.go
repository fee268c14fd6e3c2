package systems

import (
	"github.com/automoto/framestrike/components"
	"github.com/automoto/framestrike/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitVolumes places every hit volume in front of its owner and resolves
// one round of overlaps. Volumes are closed by the animation callbacks, so a
// volume that is not enabled costs nothing here.
func UpdateHitVolumes(ecs *ecs.ECS) {
	landed := 0
	components.HitVolume.Each(ecs.World, func(e *donburi.Entry) {
		hv := components.HitVolume.Get(e)
		if !hv.Resolver.Enabled() {
			return
		}
		hv.Resolver.SetShape(VolumeRect(e))
		n := hv.Resolver.Tick()
		hv.Landed += n
		landed += n
	})
	if landed > 0 {
		if arena, ok := arenaData(ecs); ok {
			arena.Stats.Hits += landed
		}
	}
}

// VolumeRect is the entity's current hit box in world space.
func VolumeRect(e *donburi.Entry) gamemath.Rect {
	hv := components.HitVolume.Get(e)
	body := components.Object.Get(e).Rect()
	facing := 1.0
	if e.HasComponent(components.Fighter) {
		facing = components.Fighter.Get(e).FacingX
	}
	return gamemath.InFront(body, hv.Local, facing)
}
