package factory

import (
	"github.com/automoto/framestrike/archetypes"
	"github.com/automoto/framestrike/assets/weapons"
	"github.com/automoto/framestrike/components"
	"github.com/automoto/framestrike/shared/combat"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateArena(ecs *ecs.ECS, lib *weapons.Library, seed uint64) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Random:  combat.NewRandomizer(seed),
		Weapons: lib,
	})
	return arena
}
