package archetypes

import (
	"github.com/automoto/framestrike/components"
	cfg "github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Health,
		components.Animator,
		components.Weapon,
		components.HitVolume,
	)
	Dummy = newArchetype(
		tags.Dummy,
		components.Object,
		components.Health,
		components.Animator,
	)
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		tags.Arena,
		components.Arena,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
