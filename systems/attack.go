package systems

import (
	"errors"

	"github.com/automoto/framestrike/assets/animations"
	"github.com/automoto/framestrike/assets/weapons"
	"github.com/automoto/framestrike/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrUnarmed = errors.New("systems: entity has no weapon")
	ErrDead    = errors.New("systems: entity is dead")
)

// Attack swings the entity's weapon, picking the attack for the current combo
// step. Hit frames open the hit volume with the frame's damage and box; other
// frames and the end of the attack close it.
func Attack(ecs *ecs.ECS, e *donburi.Entry) (animations.SubmitResult, error) {
	if e.HasComponent(components.Death) {
		return animations.Rejected, ErrDead
	}
	if !e.HasComponent(components.Weapon) || !e.HasComponent(components.HitVolume) {
		return animations.Rejected, ErrUnarmed
	}
	weapon := components.Weapon.Get(e)
	atk := weapon.Weapon.AttackAt(weapon.ComboStep)
	if atk == nil {
		return animations.Rejected, ErrUnarmed
	}

	req := atk.Request()
	req.OnFrame = func(i int) {
		w := components.Weapon.Get(e)
		w.Attacking = true
		w.Attack = atk.Name

		f := atk.Timeline.Frame(i)
		hv := components.HitVolume.Get(e)
		if !f.Hit {
			hv.Resolver.SetEnabled(false, 0)
			return
		}
		if f.Box != nil {
			hv.Local = *f.Box
		} else {
			hv.ResetShape()
		}
		hv.Resolver.SetEnabled(true, f.Damage)
	}
	req.OnComplete = func() {
		endAttack(e)
	}

	res, err := submit(ecs, e, req)
	if err != nil {
		return res, err
	}
	if res == animations.Started || res == animations.Queued {
		weapon = components.Weapon.Get(e)
		weapon.ComboStep++
		weapon.Swings++
		if arena, ok := arenaData(ecs); ok {
			arena.Stats.Swings++
		}
	}
	return res, nil
}

func endAttack(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	hv := components.HitVolume.Get(e)
	hv.Resolver.SetEnabled(false, 0)
	hv.ResetShape()
	weapon := components.Weapon.Get(e)
	weapon.Attacking = false
	weapon.Attack = ""
}

// Equip swaps the entity's weapon. An attack already playing finishes with
// the old weapon's timeline.
func Equip(e *donburi.Entry, w *weapons.Weapon) {
	if w == nil || !e.HasComponent(components.Weapon) {
		return
	}
	weapon := components.Weapon.Get(e)
	weapon.Weapon = w
	weapon.ComboStep = 0

	hv := components.HitVolume.Get(e)
	hv.Default = w.Hitbox
	if !hv.Resolver.Enabled() {
		hv.ResetShape()
	}
}
