package components

import (
	"github.com/automoto/framestrike/assets/weapons"
	"github.com/automoto/framestrike/shared/combat"
	"github.com/yohamta/donburi"
)

// ArenaStats are running totals for the session.
type ArenaStats struct {
	Swings       int
	Hits         int
	DamageDealt  int
	Kills        int
	Interrupted  int
	WeaponReload int
}

// ArenaData is the singleton holding shared arena state.
type ArenaData struct {
	Tick    int64
	Random  *combat.Randomizer
	Weapons *weapons.Library
	// Watcher reports edited weapon files; nil when hot reload is off.
	Watcher *weapons.Watcher
	Stats   ArenaStats
}

var Arena = donburi.NewComponentType[ArenaData]()
