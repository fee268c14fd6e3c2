package systems

import (
	"github.com/automoto/framestrike/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every body's cell membership after movement.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
