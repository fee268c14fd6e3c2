package animations

import "errors"

var ErrNilRequest = errors.New("animations: nil request")

// Request asks a Scheduler to play a timeline. Build a fresh Request for every
// trigger; the Timeline itself can be shared.
type Request struct {
	Name     string
	Priority int // higher interrupts lower
	Loop     bool
	Timeline *Timeline

	// OnFrame fires once each time playback enters a frame, including frame 0
	// at start and again on every loop wrap.
	OnFrame func(frame int)
	// OnComplete fires when a non-looping request plays its last frame out.
	// It does not fire when the request is stopped or preempted.
	OnComplete func()
}

// Validate reports why the request cannot be played, or nil.
func (r *Request) Validate() error {
	if r == nil {
		return ErrNilRequest
	}
	if r.Timeline.Len() == 0 {
		return ErrEmptyTimeline
	}
	if r.Loop && r.Timeline.Total() <= 0 {
		return ErrZeroLengthLoop
	}
	return nil
}

func (r *Request) frameEntered(i int) {
	if r.OnFrame != nil {
		r.OnFrame(i)
	}
}

func (r *Request) completed() {
	if r.OnComplete != nil {
		r.OnComplete()
	}
}
