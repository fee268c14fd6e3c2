package sim

import (
	"fmt"

	"github.com/automoto/framestrike/assets/weapons"
	"github.com/automoto/framestrike/components"
	cfg "github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/logging"
	"github.com/automoto/framestrike/systems"
	"github.com/automoto/framestrike/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Arena is a combat sandbox: the fighters and dummies of config.Arena in one
// ECS world, advanced one tick at a time.
type Arena struct {
	ECS      *ecs.ECS
	Space    *resolv.Space
	Fighters []*donburi.Entry
	Dummies  []*donburi.Entry

	state *components.ArenaData
}

type Options struct {
	Weapons *weapons.Library
	Seed    uint64
	// PlayerWeapon overrides the first fighter's configured weapon.
	PlayerWeapon string
	Watcher      *weapons.Watcher
}

// NewArena builds the world from config.Arena and registers the systems in
// update order.
func NewArena(opts Options) (*Arena, error) {
	if opts.Weapons == nil {
		return nil, fmt.Errorf("sim: no weapon library")
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.UpdateWeaponReload)
	e.AddSystem(systems.UpdateAutoAttack)
	e.AddSystem(systems.UpdateAnimators)
	e.AddSystem(systems.UpdateTweens)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateHitVolumes)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateDeaths)

	e.AddRenderer(cfg.Default, systems.DrawBodies)
	e.AddRenderer(cfg.Overlay, systems.DrawHitVolumes)
	e.AddRenderer(cfg.Overlay, systems.DrawStats)

	ac := cfg.Arena
	spaceEntry := factory.CreateSpace(e, ac.Width, ac.Height, ac.CellSize, ac.CellSize)
	arenaEntry := factory.CreateArena(e, opts.Weapons, opts.Seed)

	a := &Arena{
		ECS:   e,
		Space: components.Space.Get(spaceEntry),
		state: components.Arena.Get(arenaEntry),
	}
	a.state.Watcher = opts.Watcher

	for i, fc := range ac.Fighters {
		name := fc.Weapon
		if i == 0 && opts.PlayerWeapon != "" {
			name = opts.PlayerWeapon
		}
		w, err := opts.Weapons.Get(name)
		if err != nil {
			return nil, fmt.Errorf("sim: fighter %s: %w", fc.Name, err)
		}
		f, err := factory.CreateFighter(e, a.Space, fc, w)
		if err != nil {
			return nil, err
		}
		a.Fighters = append(a.Fighters, f)
	}

	for i := 0; i < ac.Dummies.Count; i++ {
		d, err := factory.CreateDummy(e, a.Space, i)
		if err != nil {
			return nil, err
		}
		a.Dummies = append(a.Dummies, d)
	}

	log := logging.Component("sim")
	log.Info().
		Int("fighters", len(a.Fighters)).Int("dummies", len(a.Dummies)).
		Uint64("seed", opts.Seed).Msg("arena ready")
	return a, nil
}

// Tick runs every system once.
func (a *Arena) Tick() {
	a.state.Tick++
	logging.SetTick(a.state.Tick)
	a.ECS.Update()
}

func (a *Arena) Ticks() int64 {
	return a.state.Tick
}

func (a *Arena) Stats() components.ArenaStats {
	return a.state.Stats
}

// Player is the first configured fighter, or nil once it has been removed.
func (a *Arena) Player() *donburi.Entry {
	if len(a.Fighters) == 0 || !a.Fighters[0].Valid() {
		return nil
	}
	return a.Fighters[0]
}

// Alive counts fighters and dummies still in the world and not dying.
func (a *Arena) Alive() int {
	n := 0
	for _, e := range append(append([]*donburi.Entry(nil), a.Fighters...), a.Dummies...) {
		if e.Valid() && !e.HasComponent(components.Death) {
			n++
		}
	}
	return n
}

// Close tears down every remaining entity.
func (a *Arena) Close() {
	for _, e := range append(append([]*donburi.Entry(nil), a.Fighters...), a.Dummies...) {
		systems.Destroy(a.ECS, e)
	}
}
