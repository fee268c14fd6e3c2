package components

import (
	"github.com/automoto/framestrike/shared/combat"
	"github.com/automoto/framestrike/shared/gamemath"
	"github.com/yohamta/donburi"
)

type HitVolumeData struct {
	Resolver *combat.HitResolver
	Query    *combat.ResolvQuery

	// Default is the weapon's box and Local the box of the current frame,
	// both relative to the owner facing right.
	Default gamemath.Rect
	Local   gamemath.Rect

	// Landed counts every target claimed over the entity's lifetime.
	Landed int
}

// ResetShape restores the weapon's default box.
func (h *HitVolumeData) ResetShape() {
	h.Local = h.Default
}

var HitVolume = donburi.NewComponentType[HitVolumeData]()
