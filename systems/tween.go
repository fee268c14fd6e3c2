package systems

import (
	"github.com/automoto/framestrike/components"
	"github.com/automoto/framestrike/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens moves patrolling bodies along their tween and starts the next
// lap when one finishes. Dead bodies stop where they are.
func UpdateTweens(ecs *ecs.ECS) {
	dt := float32(TickSeconds())
	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		seq := components.Tween.Get(e)
		x, _, done := seq.Update(dt)
		components.Object.Get(e).X = float64(x)
		if done && e.HasComponent(components.Patrol) {
			components.Tween.Set(e, factory.NewPatrolSequence(*components.Patrol.Get(e)))
		}
	})
}
