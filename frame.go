package cardtable

import "time"

// FrameFunc is a display-refresh callback. now is the time of the refresh,
// measured from an arbitrary fixed start.
type FrameFunc func(now time.Duration)

// FrameID identifies a requested frame callback. The zero value is never
// handed out and cancelling it is a no-op.
type FrameID uint32

// FrameClock is the display-refresh clock everything time-based rides on.
type FrameClock interface {
	// RequestFrame schedules fn for the next refresh and returns its id.
	RequestFrame(fn FrameFunc) FrameID
	// CancelFrame drops a pending request. Unknown or already-run ids are ignored.
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn FrameFunc
}

// FrameScheduler is a FrameClock driven by explicit Tick calls. Callbacks
// requested before a tick starts run during that tick in request order;
// callbacks requested while a tick is running wait for the next one.
//
// The Ebitengine game calls Tick once per Update. Tests call it directly.
type FrameScheduler struct {
	queue  []frameRequest
	run    []frameRequest // reused buffer for the callbacks of the current tick
	nextID FrameID
	now    time.Duration
}

// NewFrameScheduler returns an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// RequestFrame implements FrameClock.
func (s *FrameScheduler) RequestFrame(fn FrameFunc) FrameID {
	s.nextID++
	if s.nextID == 0 {
		s.nextID++
	}
	s.queue = append(s.queue, frameRequest{id: s.nextID, fn: fn})
	return s.nextID
}

// CancelFrame implements FrameClock. A callback cancelled during a tick, before
// its turn comes, does not run.
func (s *FrameScheduler) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i := range s.queue {
		if s.queue[i].id == id {
			copy(s.queue[i:], s.queue[i+1:])
			s.queue[len(s.queue)-1] = frameRequest{}
			s.queue = s.queue[:len(s.queue)-1]
			return
		}
	}
	for i := range s.run {
		if s.run[i].id == id {
			s.run[i].fn = nil
			return
		}
	}
}

// Tick runs one display refresh at time now.
func (s *FrameScheduler) Tick(now time.Duration) {
	s.now = now
	s.run = append(s.run[:0], s.queue...)
	for i := range s.queue {
		s.queue[i] = frameRequest{}
	}
	s.queue = s.queue[:0]

	for i := range s.run {
		fn := s.run[i].fn
		if fn == nil {
			continue
		}
		s.run[i].fn = nil
		fn(now)
	}
	s.run = s.run[:0]
}

// Now returns the time passed to the most recent Tick.
func (s *FrameScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks waiting for the next tick.
func (s *FrameScheduler) Pending() int {
	return len(s.queue)
}
