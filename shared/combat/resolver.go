package combat

import (
	"github.com/automoto/framestrike/shared/gamemath"
	"github.com/rs/zerolog"
)

// Damageable receives damage from a hit.
type Damageable interface {
	TakeDamage(amount float64)
}

// Target is something a hit volume can strike. Implementations must be
// comparable (pointer types or small structs of pointers) since targets key
// the per-window hit set. Valid reports false once the target is gone.
type Target interface {
	Damageable
	Valid() bool
}

// Filter selects which bodies a query considers, as resolv tags.
type Filter []string

// Volume is the hit shape in world space.
type Volume struct {
	Rect    gamemath.Rect
	Enabled bool
}

// Query finds the targets overlapping a volume. Supplied by the physics layer.
type Query interface {
	Overlapping(v Volume, filter Filter) []Target
}

// HitResolver applies damage to every target overlapping its volume at most
// once per enabled window. Each SetEnabled(true, ...) call opens a new window.
// The zero value and a nil *HitResolver are inert.
type HitResolver struct {
	volume *Volume
	query  Query
	filter Filter
	damage float64
	hits   map[Target]struct{}

	// ZeroDamageMarksHit makes a zero-damage window still claim the targets it
	// touches, so they cannot be hit again until the next window.
	ZeroDamageMarksHit bool

	log zerolog.Logger
}

type ResolverOption func(*HitResolver)

func WithResolverLogger(l zerolog.Logger) ResolverOption {
	return func(r *HitResolver) { r.log = l }
}

// WithZeroDamageMarksHit overrides the default (true).
func WithZeroDamageMarksHit(v bool) ResolverOption {
	return func(r *HitResolver) { r.ZeroDamageMarksHit = v }
}

// NewHitResolver wires a resolver to its volume and query. The volume starts
// disabled.
func NewHitResolver(shape gamemath.Rect, query Query, filter Filter, opts ...ResolverOption) *HitResolver {
	r := &HitResolver{
		volume:             &Volume{Rect: shape},
		query:              query,
		filter:             filter,
		hits:               make(map[Target]struct{}),
		ZeroDamageMarksHit: true,
		log:                zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetEnabled opens a hit window with the given damage, or closes the current
// one. Closing keeps the hit set; it is cleared when the next window opens.
func (r *HitResolver) SetEnabled(enabled bool, damage float64) {
	if r == nil || r.volume == nil {
		return
	}
	if !enabled {
		r.volume.Enabled = false
		return
	}
	r.volume.Enabled = true
	r.damage = damage
	clear(r.hits)
}

// Tick queries the volume once and damages every newly touched target.
// It returns the number of targets claimed this tick.
func (r *HitResolver) Tick() int {
	if r == nil || r.volume == nil || r.query == nil || !r.volume.Enabled {
		return 0
	}
	if r.damage == 0 && !r.ZeroDamageMarksHit {
		return 0
	}

	n := 0
	for _, t := range r.query.Overlapping(*r.volume, r.filter) {
		if t == nil || !t.Valid() {
			continue
		}
		if _, seen := r.hits[t]; seen {
			continue
		}
		r.hits[t] = struct{}{}
		n++
		if r.damage != 0 {
			t.TakeDamage(r.damage)
		}
	}
	if n > 0 {
		r.log.Debug().Int("targets", n).Float64("damage", r.damage).Msg("hit")
	}
	return n
}

func (r *HitResolver) Enabled() bool {
	return r != nil && r.volume != nil && r.volume.Enabled
}

func (r *HitResolver) Damage() float64 {
	if r == nil {
		return 0
	}
	return r.damage
}

// Hits is the number of targets claimed in the current window.
func (r *HitResolver) Hits() int {
	if r == nil {
		return 0
	}
	return len(r.hits)
}

// HasHit reports whether t was claimed in the current window.
func (r *HitResolver) HasHit(t Target) bool {
	if r == nil {
		return false
	}
	_, ok := r.hits[t]
	return ok
}

// Volume returns a copy of the hit volume.
func (r *HitResolver) Volume() Volume {
	if r == nil || r.volume == nil {
		return Volume{}
	}
	return *r.volume
}

// SetShape moves or resizes the volume without touching the window.
func (r *HitResolver) SetShape(rect gamemath.Rect) {
	if r == nil || r.volume == nil {
		return
	}
	r.volume.Rect = rect
}
