package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/framestrike/assets/weapons"
	"github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/logging"
	"github.com/automoto/framestrike/scenes"
	"github.com/automoto/framestrike/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "framestrike.yaml", "Config file (yaml, json or toml)")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		logging.Setup("info", os.Stderr, nil)
		logging.Logger.Fatal().Err(err).Msg("could not load config")
	}
	logging.Setup(config.Sim.LogLevel, os.Stderr, nil)
	log := logging.Component("main")

	// Initialize persistence and load saved settings
	weapon := ""
	if err := systems.InitPersistence("framestrike"); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			weapon = systems.ApplySettings(saved)
		}
	}

	lib, err := weapons.NewLibrary(config.Arena.WeaponDir, config.Animation.FPS, logging.Component("weapons"))
	if err != nil {
		log.Fatal().Err(err).Msg("could not load weapons")
	}
	if _, err := lib.Get(weapon); err != nil {
		weapon = ""
	}

	var watcher *weapons.Watcher
	if config.Debug.HotReload && config.Arena.WeaponDir != "" {
		watcher, err = weapons.NewWatcher(config.Arena.WeaponDir)
		if err != nil {
			log.Warn().Err(err).Str("dir", config.Arena.WeaponDir).Msg("weapon hot reload disabled")
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("framestrike")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Sim.TPS)

	scene := scenes.NewArenaScene(lib, watcher, config.Sim.Seed, weapon)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
