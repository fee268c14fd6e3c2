package components

import (
	"github.com/automoto/framestrike/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the body's box in world space.
func (o *ObjectData) Rect() gamemath.Rect {
	if o == nil || o.Object == nil {
		return gamemath.Rect{}
	}
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[resolv.Space]()
