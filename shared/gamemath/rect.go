package gamemath

// Rect is an axis-aligned box. X/Y is the top-left corner.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Overlaps reports whether the two boxes share interior area. Touching edges
// do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Empty reports whether the box has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate returns the box moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Center returns the centre point of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// InFront places a box authored relative to an owner facing right in front of
// the owner, mirroring it when the owner faces left (facingX < 0).
// The local box's X is the gap from the owner's leading edge and Y is relative
// to the owner's vertical centre.
func InFront(owner, local Rect, facingX float64) Rect {
	_, cy := owner.Center()
	out := Rect{W: local.W, H: local.H, Y: cy + local.Y - local.H/2}
	if facingX >= 0 {
		out.X = owner.X + owner.W + local.X
	} else {
		out.X = owner.X - local.X - local.W
	}
	return out
}
