package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PatrolData describes a back and forth sway along X around OriginX.
type PatrolData struct {
	OriginX  float64
	Distance float64
	Seconds  float64
}

var Tween = donburi.NewComponentType[gween.Sequence]()
var Patrol = donburi.NewComponentType[PatrolData]()
