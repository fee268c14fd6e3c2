package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/framestrike/assets/weapons"
	"github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/logging"
	"github.com/automoto/framestrike/sim"
)

func main() {
	configPath := flag.String("config", "framestrike.yaml", "Config file (yaml, json or toml)")
	ticks := flag.Int("ticks", -1, "Ticks to simulate, 0 runs until interrupted (default from config)")
	tps := flag.Int("tps", 0, "Ticks per second (default from config)")
	seed := flag.Uint64("seed", 0, "Damage variance seed (default from config)")
	weapon := flag.String("weapon", "", "Weapon for the first fighter (default from config)")
	realtime := flag.Bool("realtime", false, "Pace ticks at the tick rate instead of running flat out")
	logLevel := flag.String("log-level", "", "trace, debug, info, warn or error (default from config)")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		logging.Setup("info", os.Stderr, nil)
		logging.Logger.Fatal().Err(err).Msg("could not load config")
	}
	if *ticks >= 0 {
		config.Sim.Ticks = *ticks
	}
	if *tps > 0 {
		config.Sim.TPS = *tps
	}
	if *seed != 0 {
		config.Sim.Seed = *seed
	}
	if *realtime {
		config.Sim.Realtime = true
	}
	if *logLevel != "" {
		config.Sim.LogLevel = *logLevel
	}

	logging.Setup(config.Sim.LogLevel, os.Stderr, nil)
	log := logging.Component("simulate")

	lib, err := weapons.NewLibrary(config.Arena.WeaponDir, config.Animation.FPS, logging.Component("weapons"))
	if err != nil {
		log.Fatal().Err(err).Msg("could not load weapons")
	}

	arena, err := sim.NewArena(sim.Options{
		Weapons:      lib,
		Seed:         config.Sim.Seed,
		PlayerWeapon: *weapon,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not build arena")
	}
	defer arena.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := sim.NewLoop(config.Sim.TPS, config.Sim.Realtime, arena.Tick, logging.Component("loop"))
	ran, err := loop.Run(ctx, config.Sim.Ticks)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("loop failed")
	}

	s := arena.Stats()
	log.Info().
		Int("ticks", ran).
		Int("swings", s.Swings).
		Int("hits", s.Hits).
		Int("damage", s.DamageDealt).
		Int("kills", s.Kills).
		Int("interrupted", s.Interrupted).
		Int("alive", arena.Alive()).
		Msg("simulation finished")
}
