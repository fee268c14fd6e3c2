package animations

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/framestrike/shared/gamemath"
)

var (
	ErrEmptyTimeline   = errors.New("animations: timeline has no frames")
	ErrLengthMismatch  = errors.New("animations: frame arrays differ in length")
	ErrInvalidDuration = errors.New("animations: frame duration must be finite and >= 0")
	ErrZeroLengthLoop  = errors.New("animations: looping timeline has zero total duration")
)

// Frame is one step of a timeline. Key is an opaque visual reference (sprite
// id, sheet index...). Duration is in seconds.
type Frame struct {
	Key      string
	Duration float64
	Damage   float64
	Hit      bool
	// Box overrides the weapon's default hit volume for this frame, relative
	// to the owner facing right. Nil keeps the default.
	Box *gamemath.Rect
}

// Timeline is an immutable, validated sequence of frames. It is shared
// read-only between every request that plays it.
type Timeline struct {
	frames []Frame
	total  float64
}

// NewTimeline builds a timeline from the four parallel per-frame arrays.
func NewTimeline(keys []string, durations, damages []float64, hits []bool) (*Timeline, error) {
	n := len(keys)
	if n == 0 {
		return nil, ErrEmptyTimeline
	}
	if len(durations) != n || len(damages) != n || len(hits) != n {
		return nil, fmt.Errorf("%w: keys=%d durations=%d damages=%d hits=%d",
			ErrLengthMismatch, n, len(durations), len(damages), len(hits))
	}

	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = Frame{
			Key:      keys[i],
			Duration: durations[i],
			Damage:   damages[i],
			Hit:      hits[i],
		}
	}
	return NewTimelineFromFrames(frames)
}

// NewTimelineFromFrames validates and copies frames into a timeline.
func NewTimelineFromFrames(frames []Frame) (*Timeline, error) {
	if len(frames) == 0 {
		return nil, ErrEmptyTimeline
	}

	t := &Timeline{frames: make([]Frame, len(frames))}
	for i, f := range frames {
		if f.Duration < 0 || math.IsNaN(f.Duration) || math.IsInf(f.Duration, 0) {
			return nil, fmt.Errorf("%w: frame %d has %v", ErrInvalidDuration, i, f.Duration)
		}
		if f.Box != nil {
			box := *f.Box
			f.Box = &box
		}
		t.frames[i] = f
		t.total += f.Duration
	}
	return t, nil
}

// Uniform builds a damage-free timeline where every frame lasts duration.
// Used for idle, movement and death clips.
func Uniform(keys []string, duration float64) (*Timeline, error) {
	durations := make([]float64, len(keys))
	for i := range durations {
		durations[i] = duration
	}
	return NewTimeline(keys, durations, make([]float64, len(keys)), make([]bool, len(keys)))
}

// FrameTimings converts per-frame timings expressed in animation frames into
// seconds at the given animation rate.
func FrameTimings(timings []float64, fps float64) []float64 {
	out := make([]float64, len(timings))
	if fps <= 0 {
		return out
	}
	for i, t := range timings {
		out[i] = t / fps
	}
	return out
}

// SheetKeys names the frames first..last (inclusive, moving by step) of a
// sprite sheet, e.g. SheetKeys("punch", 0, 5, 1) -> punch/0 .. punch/5.
func SheetKeys(sheet string, first, last, step int) []string {
	if step <= 0 {
		step = 1
	}
	var keys []string
	for i := first; i <= last; i += step {
		keys = append(keys, fmt.Sprintf("%s/%d", sheet, i))
	}
	return keys
}

func (t *Timeline) Len() int {
	if t == nil {
		return 0
	}
	return len(t.frames)
}

// Frame returns a copy of frame i. It panics when i is out of range, like a
// slice index.
func (t *Timeline) Frame(i int) Frame {
	return t.frames[i]
}

// Total is the sum of all frame durations.
func (t *Timeline) Total() float64 {
	if t == nil {
		return 0
	}
	return t.total
}
