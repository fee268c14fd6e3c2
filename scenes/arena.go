package scenes

import (
	"sync"

	"github.com/automoto/framestrike/assets/weapons"
	"github.com/automoto/framestrike/components"
	cfg "github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/logging"
	"github.com/automoto/framestrike/sim"
	"github.com/automoto/framestrike/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ArenaScene runs the combat sandbox in a window.
type ArenaScene struct {
	arena   *sim.Arena
	library *weapons.Library
	watcher *weapons.Watcher
	seed    uint64
	weapon  string
	once    sync.Once
}

func NewArenaScene(lib *weapons.Library, watcher *weapons.Watcher, seed uint64, weapon string) *ArenaScene {
	return &ArenaScene{library: lib, watcher: watcher, seed: seed, weapon: weapon}
}

func (as *ArenaScene) configure() {
	arena, err := sim.NewArena(sim.Options{
		Weapons:      as.library,
		Seed:         as.seed,
		PlayerWeapon: as.weapon,
		Watcher:      as.watcher,
	})
	if err != nil {
		panic("failed to build arena: " + err.Error())
	}
	as.arena = arena
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.handleInput()
	as.arena.Tick()
}

func (as *ArenaScene) handleInput() {
	log := logging.Component("scene")

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		as.arena.Close()
		as.configure()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		cfg.Debug.DrawHitVolumes = !cfg.Debug.DrawHitVolumes
		as.save()
	}

	player := as.arena.Player()
	if player == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		res, err := systems.Attack(as.arena.ECS, player)
		log.Debug().Err(err).Stringer("result", res).Msg("attack")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		res, err := systems.PlayMove(as.arena.ECS, player)
		log.Debug().Err(err).Stringer("result", res).Msg("move")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		as.weapon = as.nextWeapon(components.Weapon.Get(player).Weapon.Name)
		if err := systems.EquipByName(as.arena.ECS, player, as.weapon); err != nil {
			log.Warn().Err(err).Str("weapon", as.weapon).Msg("equip failed")
			return
		}
		log.Info().Str("weapon", as.weapon).Msg("weapon equipped")
		as.save()
	}
}

func (as *ArenaScene) nextWeapon(current string) string {
	names := as.library.Names()
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func (as *ArenaScene) save() {
	_ = systems.SaveSettings(&systems.SavedSettings{
		Weapon:         as.weapon,
		DrawHitVolumes: cfg.Debug.DrawHitVolumes,
		QueueOrder:     cfg.Animation.QueueOrder,
	})
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.arena == nil {
		screen.Fill(cfg.BackgroundColor)
		return
	}
	as.arena.ECS.Draw(screen)
}
