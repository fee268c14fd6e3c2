package factory

import (
	"fmt"

	"github.com/automoto/framestrike/archetypes"
	"github.com/automoto/framestrike/assets/weapons"
	"github.com/automoto/framestrike/components"
	cfg "github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/logging"
	"github.com/automoto/framestrike/shared/combat"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns an armed character. Its body joins space under
// fc.Tag and its hit volume queries space for fc.Targets.
func CreateFighter(ecs *ecs.ECS, space *resolv.Space, fc cfg.FighterConfig, weapon *weapons.Weapon) (*donburi.Entry, error) {
	if weapon == nil {
		return nil, fmt.Errorf("factory: fighter %q has no weapon", fc.Name)
	}
	clips, err := GenerateClips(fc.Name, cfg.Animation.FPS)
	if err != nil {
		return nil, err
	}

	fighter := archetypes.Fighter.Spawn(ecs)

	b := fc.Body
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, "character", fc.Tag)
	obj.Data = components.NewHurtbox(fighter)
	space.Add(obj)
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	facing := fc.FacingX
	if facing == 0 {
		facing = cfg.DirectionRight
	}
	components.Fighter.SetValue(fighter, components.FighterData{
		Name:        fc.Name,
		FacingX:     facing,
		TargetTags:  append([]string(nil), fc.Targets...),
		AttackEvery: fc.AttackEvery,
		Cooldown:    fc.AttackEvery,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current:    fc.Health,
		Max:        fc.Health,
		Resistance: fc.Resistance,
	})
	components.Animator.SetValue(fighter, components.AnimatorData{
		Character: fc.Name,
		Scheduler: NewScheduler(fc.Name),
		Clips:     clips,
	})
	components.Weapon.SetValue(fighter, components.WeaponData{Weapon: weapon})

	query := combat.NewResolvQuery(space)
	log := logging.Component("hitvolume").With().Str("entity", fc.Name).Logger()
	components.HitVolume.SetValue(fighter, components.HitVolumeData{
		Resolver: combat.NewHitResolver(weapon.Hitbox, query, combat.Filter(fc.Targets),
			combat.WithResolverLogger(log),
			combat.WithZeroDamageMarksHit(cfg.Combat.ZeroDamageMarksHit)),
		Query:   query,
		Default: weapon.Hitbox,
		Local:   weapon.Hitbox,
	})

	return fighter, nil
}
