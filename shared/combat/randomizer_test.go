package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomizer_StaysInRange(t *testing.T) {
	r := NewRandomizer(42)
	for i := 0; i < 1000; i++ {
		v := r.Float(100, 10)
		assert.GreaterOrEqual(t, v, 90.0)
		assert.LessOrEqual(t, v, 110.0)

		n := r.Int(20, 10)
		assert.GreaterOrEqual(t, n, 18)
		assert.LessOrEqual(t, n, 22)
	}
}

func TestRandomizer_SeedIsDeterministic(t *testing.T) {
	a, b := NewRandomizer(7), NewRandomizer(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float(50, 25), b.Float(50, 25))
	}
}

func TestRandomizer_NilOrZeroPercent(t *testing.T) {
	var r *Randomizer
	assert.Equal(t, 12.5, r.Float(12.5, 10))
	assert.Equal(t, 13, r.Int(12.5, 10))
	assert.Equal(t, 30.0, NewRandomizer(1).Float(30, 0))
}
