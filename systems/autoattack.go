package systems

import (
	"github.com/automoto/framestrike/components"
	"github.com/automoto/framestrike/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAutoAttack swings every fighter's weapon once per AttackEvery ticks.
func UpdateAutoAttack(ecs *ecs.ECS) {
	components.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		if f.AttackEvery <= 0 || e.HasComponent(components.Death) {
			return
		}
		f.Cooldown--
		if f.Cooldown > 0 {
			return
		}
		f.Cooldown = f.AttackEvery
		if _, err := Attack(ecs, e); err != nil {
			log := logging.Component("combat")
			log.Warn().Err(err).Str("entity", f.Name).Msg("auto attack failed")
		}
	})
}
