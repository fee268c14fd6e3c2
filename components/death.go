package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence.
// Entities with a death clip are removed when it completes; the others when
// Timer reaches 0.
type DeathData struct {
	Timer   int
	Clip    bool
	Expired bool
}

var Death = donburi.NewComponentType[DeathData]()
