package combat

import (
	"math"
	"math/rand/v2"
)

// Randomizer spreads damage values by a percentage. It is seeded explicitly so
// a simulation replays identically.
type Randomizer struct {
	rng *rand.Rand
}

func NewRandomizer(seed uint64) *Randomizer {
	return &Randomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float returns base moved by up to ±percent% of itself. A nil Randomizer
// returns base unchanged.
func (r *Randomizer) Float(base, percent float64) float64 {
	if r == nil || percent <= 0 {
		return base
	}
	spread := base * percent / 100
	return base + (r.rng.Float64()*2-1)*spread
}

// Int is Float rounded to the nearest integer.
func (r *Randomizer) Int(base, percent float64) int {
	return int(math.Round(r.Float(base, percent)))
}
