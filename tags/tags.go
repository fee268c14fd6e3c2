package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Dummy   = donburi.NewTag().SetName("Dummy")
	Arena   = donburi.NewTag().SetName("Arena")
)

// Resolv tags carried by bodies in the space. Hit volume filters name these.
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvDummy  = "Dummy"
)
