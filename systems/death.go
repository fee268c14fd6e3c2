package systems

import (
	"github.com/automoto/framestrike/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes entities whose death sequence is over: the death clip
// has played out, or, without a clip, the timer has run down.
func UpdateDeaths(ecs *ecs.ECS) {
	var done []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Clip {
			anim := components.Animator.Get(e)
			if death.Expired || !anim.Scheduler.Playing() {
				done = append(done, e)
			}
			return
		}
		death.Timer--
		if death.Timer <= 0 {
			done = append(done, e)
		}
	})

	for _, e := range done {
		Destroy(ecs, e)
	}
}

// Destroy tears an entity down: its scheduler is closed so no callback fires
// afterwards, its hit volume probe and body leave the space, and the entity
// leaves the world.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Animator) {
		components.Animator.Get(e).Scheduler.Close()
	}
	if e.HasComponent(components.HitVolume) {
		hv := components.HitVolume.Get(e)
		hv.Resolver.SetEnabled(false, 0)
		hv.Query.Close()
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
