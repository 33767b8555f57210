package cardtable

import "time"

// Throttle coalesces calls to fn so that it runs at most once per display
// refresh. Scheduling while a call is pending replaces the pending argument;
// only the latest value before the next refresh is applied.
type Throttle[T any] struct {
	clock   FrameClock
	fn      func(T)
	pending T
	frame   FrameID
	queued  bool
	applied int
}

// NewThrottle returns a Throttle that applies fn on clock's refreshes.
func NewThrottle[T any](clock FrameClock, fn func(T)) *Throttle[T] {
	return &Throttle[T]{clock: clock, fn: fn}
}

// Schedule records v and requests a refresh if one is not already pending.
func (t *Throttle[T]) Schedule(v T) {
	t.pending = v
	if t.queued {
		return
	}
	t.queued = true
	t.frame = t.clock.RequestFrame(t.onFrame)
}

func (t *Throttle[T]) onFrame(time.Duration) {
	t.apply()
}

func (t *Throttle[T]) apply() {
	if !t.queued {
		return
	}
	v := t.pending
	var zero T
	t.pending = zero
	t.queued = false
	t.frame = 0
	t.applied++
	t.fn(v)
}

// Cancel drops the pending value without applying it.
func (t *Throttle[T]) Cancel() {
	if !t.queued {
		return
	}
	t.clock.CancelFrame(t.frame)
	var zero T
	t.pending = zero
	t.queued = false
	t.frame = 0
}

// Flush applies the pending value now, if there is one.
func (t *Throttle[T]) Flush() {
	if !t.queued {
		return
	}
	t.clock.CancelFrame(t.frame)
	t.apply()
}

// Pending reports whether a value is waiting for the next refresh.
func (t *Throttle[T]) Pending() bool {
	return t.queued
}

// Applied returns how many times fn has run.
func (t *Throttle[T]) Applied() int {
	return t.applied
}
