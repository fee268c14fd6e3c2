package components

import (
	"github.com/automoto/framestrike/assets/weapons"
	"github.com/yohamta/donburi"
)

type WeaponData struct {
	Weapon *weapons.Weapon

	// ComboStep picks the next attack; it advances on every swing.
	ComboStep int
	Attacking bool
	// Attack is the name of the attack in progress.
	Attack string
	Swings int
}

var Weapon = donburi.NewComponentType[WeaponData]()
