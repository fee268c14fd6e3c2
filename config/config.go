package config

import (
	"image/color"

	"github.com/automoto/framestrike/shared/gamemath"
)

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	// Frame timings in weapon and clip data are expressed in animation frames;
	// FPS converts them to seconds.
	FPS float64 `mapstructure:"fps"`

	// "fifo" (default) or "priority"
	QueueOrder string `mapstructure:"queueOrder"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Damage rolls land within ±DamageVariancePercent of the nominal value.
	DamageVariancePercent float64 `mapstructure:"damageVariancePercent"`

	// A zero-damage hit frame still claims the targets it touches.
	ZeroDamageMarksHit bool `mapstructure:"zeroDamageMarksHit"`

	// Ticks before a dead entity without a death clip is removed.
	DestroyDelay int `mapstructure:"destroyDelay"`

	// Ticks the hit flash stays visible on a damaged body.
	HitFlashFrames int `mapstructure:"hitFlashFrames"`
}

// FighterConfig describes an attacking character.
type FighterConfig struct {
	Name       string        `mapstructure:"name"`
	Weapon     string        `mapstructure:"weapon"`
	Health     int           `mapstructure:"health"`
	Resistance int           `mapstructure:"resistance"`
	Body       gamemath.Rect `mapstructure:"body"`
	FacingX    float64       `mapstructure:"facingX"`

	// Tag is the resolv tag of the fighter's body; Targets are the tags its
	// weapon hits.
	Tag     string   `mapstructure:"tag"`
	Targets []string `mapstructure:"targets"`

	// Ticks between automatic attacks. 0 means the fighter only attacks on
	// request (sandbox key, scripted call).
	AttackEvery int `mapstructure:"attackEvery"`
}

// DummyConfig describes a row of target dummies.
type DummyConfig struct {
	Count      int           `mapstructure:"count"`
	Health     int           `mapstructure:"health"`
	Resistance int           `mapstructure:"resistance"`
	First      gamemath.Rect `mapstructure:"first"`
	Spacing    float64       `mapstructure:"spacing"`

	// Dummies sway PatrolDistance pixels forward and back over
	// PatrolSeconds each way. 0 keeps them still.
	PatrolDistance float64 `mapstructure:"patrolDistance"`
	PatrolSeconds  float64 `mapstructure:"patrolSeconds"`
}

// ArenaConfig describes the combat sandbox.
type ArenaConfig struct {
	Width     int             `mapstructure:"width"`
	Height    int             `mapstructure:"height"`
	CellSize  int             `mapstructure:"cellSize"`
	Fighters  []FighterConfig `mapstructure:"fighters"`
	Dummies   DummyConfig     `mapstructure:"dummies"`
	WeaponDir string          `mapstructure:"weaponDir"`
}

// SimConfig contains driver settings.
type SimConfig struct {
	TPS      int    `mapstructure:"tps"`
	Ticks    int    `mapstructure:"ticks"`
	Seed     uint64 `mapstructure:"seed"`
	Realtime bool   `mapstructure:"realtime"`
	LogLevel string `mapstructure:"logLevel"`
}

// DebugConfig contains sandbox debug toggles
type DebugConfig struct {
	DrawHitVolumes bool `mapstructure:"drawHitVolumes"`
	HotReload      bool `mapstructure:"hotReload"`
}

// Config holds general window configuration
type Config struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Global configuration instances
var C *Config
var Animation AnimationConfig
var Combat CombatConfig
var Arena ArenaConfig
var Sim SimConfig
var Debug DebugConfig

// Animation priorities. Higher interrupts lower.
const (
	PriorityIdle   = 0
	PriorityMove   = 1
	PriorityAttack = 2
	PriorityDeath  = 3
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Debug colors
var (
	BodyColor        = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	TargetColor      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	HitVolumeColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	IdleVolumeColor  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	FlashColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	DeadColor        = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	BackgroundColor  = color.RGBA{R: 20, G: 20, B: 28, A: 255}
	HealthBarBgColor = color.RGBA{R: 60, G: 0, B: 0, A: 255}
	HealthBarFgColor = color.RGBA{R: 0, G: 220, B: 60, A: 255}
)

func init() {
	Reset()
}

// Reset restores every section to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Animation = AnimationConfig{
		FPS:        60,
		QueueOrder: QueueFIFO,
	}

	Combat = CombatConfig{
		DamageVariancePercent: 10,
		ZeroDamageMarksHit:    true,
		DestroyDelay:          30,
		HitFlashFrames:        6,
	}

	Arena = ArenaConfig{
		Width:    640,
		Height:   360,
		CellSize: 16,
		Fighters: []FighterConfig{
			{
				Name:        "player",
				Weapon:      "sword",
				Health:      100,
				Resistance:  0,
				Body:        gamemath.Rect{X: 96, Y: 240, W: 16, H: 40},
				FacingX:     DirectionRight,
				Tag:         "Player",
				Targets:     []string{"Enemy", "Dummy"},
				AttackEvery: 45,
			},
			{
				Name:        "slime",
				Weapon:      "fists",
				Health:      40,
				Resistance:  2,
				Body:        gamemath.Rect{X: 122, Y: 256, W: 24, H: 24},
				FacingX:     DirectionLeft,
				Tag:         "Enemy",
				Targets:     []string{"Player"},
				AttackEvery: 90,
			},
		},
		Dummies: DummyConfig{
			Count:          3,
			Health:         60,
			Resistance:     5,
			First:          gamemath.Rect{X: 130, Y: 240, W: 16, H: 40},
			Spacing:        48,
			PatrolDistance: 24,
			PatrolSeconds:  1.5,
		},
	}

	Sim = SimConfig{
		TPS:      60,
		Ticks:    600,
		Seed:     1,
		LogLevel: "info",
	}

	Debug = DebugConfig{
		DrawHitVolumes: true,
		HotReload:      true,
	}
}
