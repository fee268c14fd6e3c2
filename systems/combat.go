package systems

import (
	"github.com/automoto/framestrike/components"
	cfg "github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat applies the hits queued by hit volumes this tick. Each hit is
// reduced by the target's resistance, spread by the damage variance and
// never heals. Entities whose health drops to 0 start their death sequence.
func UpdateCombat(ecs *ecs.ECS) {
	arena, _ := arenaData(ecs)
	var dying []*donburi.Entry

	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		if hp.FlashTicks > 0 {
			hp.FlashTicks--
		}
		if len(hp.Pending) == 0 {
			continue
		}

		for _, ev := range hp.Pending {
			dmg := applyDamage(arena, hp, ev)
			log := logging.Component("combat")
			log.Debug().
				Float64("amount", ev.Amount).Int("dealt", dmg).Int("health", hp.Current).
				Msg("damage applied")
		}
		hp.Pending = hp.Pending[:0]

		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		if hp.Dead() && !e.HasComponent(components.Death) {
			dying = append(dying, e)
		}
	}

	for _, e := range dying {
		startDeathSequence(ecs, e)
		if arena != nil {
			arena.Stats.Kills++
		}
	}
}

func applyDamage(arena *components.ArenaData, hp *components.HealthData, ev components.DamageEvent) int {
	base := ev.Amount - float64(hp.Resistance)
	var dmg int
	if arena != nil {
		dmg = arena.Random.Int(base, cfg.Combat.DamageVariancePercent)
	} else {
		dmg = int(base)
	}
	if dmg < 0 {
		dmg = 0
	}

	hp.Current -= dmg
	hp.DamageTaken += dmg
	hp.HitsTaken++
	if dmg > 0 {
		hp.FlashTicks = cfg.Combat.HitFlashFrames
	}
	if arena != nil {
		arena.Stats.DamageDealt += dmg
	}
	return dmg
}

func startDeathSequence(ecs *ecs.ECS, e *donburi.Entry) {
	death := &components.DeathData{Timer: cfg.Combat.DestroyDelay}

	if e.HasComponent(components.HitVolume) {
		endAttack(e)
	}

	donburi.Add(e, components.Death, death)

	if e.HasComponent(components.Animator) {
		_, err := PlayDeath(ecs, e, func() {
			if e.Valid() && e.HasComponent(components.Death) {
				components.Death.Get(e).Expired = true
			}
		})
		components.Death.Get(e).Clip = err == nil
	}

	name := "entity"
	if e.HasComponent(components.Fighter) {
		name = components.Fighter.Get(e).Name
	}
	log := logging.Component("combat")
	log.Info().Str("entity", name).Bool("clip", components.Death.Get(e).Clip).Msg("died")
}
