package components

// DamageEvent is a hit waiting to be applied by the combat system. Amount is
// the frame damage before resistance and variance.
type DamageEvent struct {
	Amount float64
}
