package components

import "github.com/yohamta/donburi"

type FighterData struct {
	Name    string
	FacingX float64
	// TargetTags are the resolv tags this fighter's weapon hits.
	TargetTags []string

	// AttackEvery is the auto-attack period in ticks, 0 to disable.
	AttackEvery int
	Cooldown    int
}

var Fighter = donburi.NewComponentType[FighterData]()
