package combat

import (
	"github.com/automoto/framestrike/shared/gamemath"
	"github.com/solarlune/resolv"
)

// ResolvQuery answers overlap queries against a resolv space. Bodies are
// matched by tag and must carry their Target in Object.Data.
type ResolvQuery struct {
	space *resolv.Space
	probe *resolv.Object
}

// NewResolvQuery adds an untagged probe object to space. Call Close when the
// owner goes away.
func NewResolvQuery(space *resolv.Space) *ResolvQuery {
	if space == nil {
		return nil
	}
	probe := resolv.NewObject(0, 0, 1, 1)
	space.Add(probe)
	return &ResolvQuery{space: space, probe: probe}
}

func (q *ResolvQuery) Overlapping(v Volume, filter Filter) []Target {
	if q == nil || q.probe == nil || v.Rect.Empty() {
		return nil
	}

	q.probe.X, q.probe.Y = v.Rect.X, v.Rect.Y
	q.probe.W, q.probe.H = v.Rect.W, v.Rect.H
	q.probe.Update()

	// Check is cell based; keep only bodies whose boxes really overlap.
	check := q.probe.Check(0, 0, filter...)
	if check == nil {
		return nil
	}
	out := make([]Target, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if obj == q.probe {
			continue
		}
		if !v.Rect.Overlaps(gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
			continue
		}
		if t, ok := obj.Data.(Target); ok {
			out = append(out, t)
		}
	}
	return out
}

// Close removes the probe from the space.
func (q *ResolvQuery) Close() {
	if q == nil || q.probe == nil {
		return
	}
	q.space.Remove(q.probe)
	q.probe = nil
}
