package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current    int
	Max        int
	Resistance int

	// Pending hits queued by hit volumes during this tick.
	Pending []DamageEvent

	// FlashTicks counts down after a hit; the body is drawn highlighted
	// while it is positive.
	FlashTicks int

	DamageTaken int
	HitsTaken   int
}

func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()

// Hurtbox is what a body's resolv object carries in Data so hit volumes can
// strike it. It forwards damage into the entity's Health.
type Hurtbox struct {
	Entry *donburi.Entry
}

func NewHurtbox(e *donburi.Entry) *Hurtbox {
	return &Hurtbox{Entry: e}
}

// Valid reports whether the entity still exists and can take damage.
func (h *Hurtbox) Valid() bool {
	if h == nil || h.Entry == nil || !h.Entry.Valid() {
		return false
	}
	if !h.Entry.HasComponent(Health) || h.Entry.HasComponent(Death) {
		return false
	}
	return !Health.Get(h.Entry).Dead()
}

func (h *Hurtbox) TakeDamage(amount float64) {
	if !h.Valid() {
		return
	}
	hp := Health.Get(h.Entry)
	hp.Pending = append(hp.Pending, DamageEvent{Amount: amount})
}
