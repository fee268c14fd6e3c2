package systems

import (
	"github.com/automoto/framestrike/assets/weapons"
	"github.com/automoto/framestrike/components"
	"github.com/automoto/framestrike/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeaponReload applies weapon files changed on disk since the last
// tick and re-equips every fighter carrying a reloaded weapon.
func UpdateWeaponReload(ecs *ecs.ECS) {
	arena, ok := arenaData(ecs)
	if !ok || arena.Watcher == nil || arena.Weapons == nil {
		return
	}

	select {
	case err, ok := <-arena.Watcher.Errors:
		if ok {
			log := logging.Component("weapons")
			log.Warn().Err(err).Msg("watcher error")
		}
	default:
	}

	for _, path := range arena.Watcher.Drain() {
		w, err := arena.Weapons.Reload(path)
		if err != nil {
			continue
		}
		arena.Stats.WeaponReload++
		reequip(ecs, w)
	}
}

func reequip(ecs *ecs.ECS, w *weapons.Weapon) {
	components.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		if cur := components.Weapon.Get(e).Weapon; cur != nil && cur.Name == w.Name {
			Equip(e, w)
		}
	})
}

// EquipByName looks a weapon up in the arena library and equips it.
func EquipByName(ecs *ecs.ECS, e *donburi.Entry, name string) error {
	arena, ok := arenaData(ecs)
	if !ok || arena.Weapons == nil {
		return weapons.ErrUnknownWeapon
	}
	w, err := arena.Weapons.Get(name)
	if err != nil {
		return err
	}
	Equip(e, w)
	return nil
}
