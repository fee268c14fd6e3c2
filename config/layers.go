package config

import "github.com/yohamta/donburi/ecs"

// Render layers.
const (
	Default ecs.LayerID = iota
	Overlay
)
