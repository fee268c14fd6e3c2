package animations

import (
	"errors"

	"github.com/rs/zerolog"
)

var ErrClosed = errors.New("animations: scheduler closed")

// QueueOrder controls how requests that lose arbitration wait.
type QueueOrder int

const (
	// QueueFIFO drains pending requests in submission order.
	QueueFIFO QueueOrder = iota
	// QueuePriority drains the highest priority first; equal priorities keep
	// submission order.
	QueuePriority
)

// SubmitResult says what Submit did with a request.
type SubmitResult int

const (
	Rejected SubmitResult = iota
	Started
	Queued
	Ignored
)

func (r SubmitResult) String() string {
	switch r {
	case Started:
		return "started"
	case Queued:
		return "queued"
	case Ignored:
		return "ignored"
	default:
		return "rejected"
	}
}

type playback struct {
	req     *Request
	frame   int
	elapsed float64
}

// Playback is a snapshot of the active request.
type Playback struct {
	Name     string
	Priority int
	Frame    int
	Elapsed  float64
}

// Scheduler plays at most one Request at a time and arbitrates new requests by
// priority. It is driven by Tick and is not safe for concurrent use; every
// entity owns its own Scheduler.
type Scheduler struct {
	active *playback
	queue  []*Request
	order  QueueOrder
	closed bool
	log    zerolog.Logger

	// gen changes whenever the active slot changes hands, so a tick can tell
	// that a callback replaced the playback it was advancing.
	gen uint64
}

type Option func(*Scheduler)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

func WithQueueOrder(o QueueOrder) Option {
	return func(s *Scheduler) { s.order = o }
}

func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit arbitrates r against the active playback:
//   - idle: r starts now
//   - lower priority than the active request: r is queued
//   - same name as the active request: ignored, the playback is not restarted
//   - otherwise r replaces the active request, which is dropped without its
//     completion callback. Pending requests stay queued.
//
// Starting fires r.OnFrame(0) before Submit returns.
func (s *Scheduler) Submit(r *Request) (SubmitResult, error) {
	if s.closed {
		return Rejected, ErrClosed
	}
	if err := r.Validate(); err != nil {
		s.log.Debug().Err(err).Msg("request rejected")
		return Rejected, err
	}

	if s.active == nil {
		s.start(r)
		return Started, nil
	}

	cur := s.active.req
	if r.Priority < cur.Priority {
		s.enqueue(r)
		s.log.Debug().Str("anim", r.Name).Int("priority", r.Priority).
			Str("behind", cur.Name).Int("pending", len(s.queue)).Msg("request queued")
		return Queued, nil
	}
	if r.Name != "" && r.Name == cur.Name {
		return Ignored, nil
	}

	s.log.Debug().Str("anim", r.Name).Str("preempted", cur.Name).Msg("request preempts")
	s.active = nil
	s.start(r)
	return Started, nil
}

// Tick advances the active playback by dt seconds, firing OnFrame for every
// frame entered and OnComplete when a non-looping request runs out. A
// completed request hands over to the next pending one in the same tick; the
// new playback starts at frame 0 without the leftover time.
func (s *Scheduler) Tick(dt float64) {
	if s.active == nil || !(dt > 0) {
		return
	}

	p := s.active
	gen := s.gen
	p.elapsed += dt

	for s.gen == gen {
		tl := p.req.Timeline
		d := tl.Frame(p.frame).Duration
		if p.elapsed < d {
			return
		}
		p.elapsed -= d
		p.frame++

		if p.frame >= tl.Len() {
			if !p.req.Loop {
				// Hold the last frame while OnComplete runs.
				p.frame = tl.Len() - 1
				p.elapsed = tl.Frame(p.frame).Duration
				p.req.completed()
				// OnComplete may have handed the slot to something else.
				if s.gen == gen {
					s.log.Debug().Str("anim", p.req.Name).Msg("animation complete")
					s.finish()
				}
				return
			}
			p.frame = 0
		}
		p.req.frameEntered(p.frame)
	}
}

// Stop cancels the active playback without firing OnComplete and starts the
// next pending request, if any.
func (s *Scheduler) Stop() {
	if s.active == nil {
		return
	}
	s.log.Debug().Str("anim", s.active.req.Name).Msg("animation stopped")
	s.finish()
}

// Close tears the scheduler down for a removed entity: pending requests are
// dropped, the active one is stopped and no callback fires. Later Submits fail
// with ErrClosed.
func (s *Scheduler) Close() {
	s.queue = nil
	s.active = nil
	s.closed = true
	s.gen++
}

func (s *Scheduler) Playing() bool {
	return s.active != nil
}

// Current returns the active playback, if any.
func (s *Scheduler) Current() (Playback, bool) {
	if s.active == nil {
		return Playback{}, false
	}
	return Playback{
		Name:     s.active.req.Name,
		Priority: s.active.req.Priority,
		Frame:    s.active.frame,
		Elapsed:  s.active.elapsed,
	}, true
}

// CurrentFrame returns the active timeline frame, if any. Renderers use its
// Key to pick a sprite.
func (s *Scheduler) CurrentFrame() (Frame, bool) {
	if s.active == nil {
		return Frame{}, false
	}
	return s.active.req.Timeline.Frame(s.active.frame), true
}

// ClearPending drops every queued request. The active playback is untouched.
func (s *Scheduler) ClearPending() {
	clear(s.queue)
	s.queue = s.queue[:0]
}

func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// PendingNames lists queued request names in drain order.
func (s *Scheduler) PendingNames() []string {
	names := make([]string, len(s.queue))
	for i, r := range s.queue {
		names[i] = r.Name
	}
	return names
}

func (s *Scheduler) start(r *Request) {
	s.gen++
	s.active = &playback{req: r}
	s.log.Debug().Str("anim", r.Name).Int("priority", r.Priority).Bool("loop", r.Loop).Msg("animation started")
	r.frameEntered(0)
}

func (s *Scheduler) finish() {
	s.active = nil
	s.gen++
	if next := s.dequeue(); next != nil {
		s.start(next)
	}
}

func (s *Scheduler) enqueue(r *Request) {
	if s.order != QueuePriority {
		s.queue = append(s.queue, r)
		return
	}
	i := len(s.queue)
	for i > 0 && s.queue[i-1].Priority < r.Priority {
		i--
	}
	s.queue = append(s.queue, nil)
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = r
}

func (s *Scheduler) dequeue() *Request {
	if len(s.queue) == 0 {
		return nil
	}
	next := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return next
}
