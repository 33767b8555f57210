package cardtable

import "time"

// DefaultIntersectionFPS is how many intersection checks run per second
// during a drag.
const DefaultIntersectionFPS = 10

// scanTolerance lets a refresh that lands just short of the interval still
// count, so a 100ms cadence on a 60Hz clock does not slip a whole frame.
const scanTolerance = 100 * time.Microsecond

// ScannerState is the lifecycle state of an IntersectionScanner.
type ScannerState uint8

const (
	ScannerIdle    ScannerState = iota // no drag in progress
	ScannerRunning                     // checking on every refresh at a fixed cadence
)

// DraggedRectFunc returns the current rectangle of the dragged entity, built
// from its live drag position. ok is false when it cannot be determined.
type DraggedRectFunc func() (r Rect, ok bool)

// IntersectionScanner polls, at a fixed rate, which drop target the dragged
// entity overlaps and emits DragEnter/DragLeave on transitions.
//
// The scanner rides the display-refresh clock: it is called back on every
// refresh but only checks when a full interval has elapsed. The reference
// timestamp advances in whole intervals so the cadence does not drift.
type IntersectionScanner struct {
	clock    FrameClock
	bus      *Bus
	rects    RectProvider
	interval time.Duration
	log      *logger

	state      ScannerState
	frame      FrameID
	then       time.Duration
	primed     bool
	draggedID  string
	dragged    DraggedRectFunc
	candidates []*Node
	current    *Node
	stats      *sessionStats
}

// NewIntersectionScanner returns an idle scanner checking fps times per
// second. fps <= 0 selects DefaultIntersectionFPS.
func NewIntersectionScanner(clock FrameClock, bus *Bus, rects RectProvider, fps float64) *IntersectionScanner {
	if fps <= 0 {
		fps = DefaultIntersectionFPS
	}
	return &IntersectionScanner{
		clock:    clock,
		bus:      bus,
		rects:    rects,
		interval: time.Duration(float64(time.Second) / fps),
	}
}

// Interval returns the time between two checks.
func (s *IntersectionScanner) Interval() time.Duration {
	return s.interval
}

// State returns the lifecycle state.
func (s *IntersectionScanner) State() ScannerState {
	return s.state
}

// Current returns the target the dragged entity overlapped at the last check.
func (s *IntersectionScanner) Current() *Node {
	return s.current
}

// Start begins scanning candidates for the entity draggedID. A running scan is
// stopped first. The first refresh after Start always checks, so the home
// target lights up at once instead of one interval into the drag; later
// refreshes check once per interval.
func (s *IntersectionScanner) Start(draggedID string, dragged DraggedRectFunc, candidates []*Node) {
	if s.state == ScannerRunning {
		s.Stop()
	}
	s.state = ScannerRunning
	s.draggedID = draggedID
	s.dragged = dragged
	s.candidates = append(s.candidates[:0], candidates...)
	s.current = nil
	s.primed = false
	s.frame = s.clock.RequestFrame(s.loop)
	s.log.printf("start", "%s against %d candidates every %v", draggedID, len(candidates), s.interval)
}

// Stop cancels the recurring check and returns the target overlapped at the
// last check, or nil. A highlighted target is always un-highlighted and a
// DragLeave is emitted for it, so no highlight outlives the drag.
func (s *IntersectionScanner) Stop() *Node {
	if s.state != ScannerRunning {
		return nil
	}
	s.clock.CancelFrame(s.frame)
	s.frame = 0
	s.state = ScannerIdle

	last := s.current
	if last != nil {
		s.leave(last)
	}
	for i := range s.candidates {
		s.candidates[i] = nil
	}
	s.candidates = s.candidates[:0]
	s.dragged = nil
	s.stats = nil
	s.log.printf("stop", "%s, last target %s", s.draggedID, nodeID(last))
	return last
}

func (s *IntersectionScanner) loop(now time.Duration) {
	// Keep the refresh chain alive first so a check that stops the scanner
	// (through a bus handler) can cancel it.
	s.frame = s.clock.RequestFrame(s.loop)
	if s.stats != nil {
		s.stats.ticks++
	}

	if !s.primed {
		s.primed = true
		s.then = now
		s.check()
		return
	}

	delta := now - s.then
	if delta < s.interval-scanTolerance {
		return
	}
	s.then = now - delta%s.interval
	s.check()
}

// check recomputes the overlapped target and emits transition events.
func (s *IntersectionScanner) check() {
	if s.dragged == nil {
		return
	}
	r, ok := s.dragged()
	if !ok {
		return
	}
	if s.stats != nil {
		s.stats.checks++
	}
	next := FindIntersecting(r, s.candidates, s.rects)
	if next == s.current {
		return
	}
	if s.current != nil {
		s.leave(s.current)
	}
	if next != nil && s.state == ScannerRunning {
		s.enter(next)
	}
}

func (s *IntersectionScanner) enter(target *Node) {
	target.Highlighted = true
	s.current = target
	if s.stats != nil {
		s.stats.enters++
	}
	s.bus.Emit(DragEnter{DraggedID: s.draggedID, TargetID: target.ID})
}

func (s *IntersectionScanner) leave(target *Node) {
	target.Highlighted = false
	s.current = nil
	if s.stats != nil {
		s.stats.leaves++
	}
	s.bus.Emit(DragLeave{DraggedID: s.draggedID, TargetID: target.ID})
}

// FindIntersecting returns the first candidate whose rectangle overlaps r, in
// candidate order. Candidates without a known rectangle are skipped. When
// several candidates overlap r the earliest one wins.
func FindIntersecting(r Rect, candidates []*Node, rects RectProvider) *Node {
	for _, c := range candidates {
		cr, ok := rects.Rect(c.ID)
		if !ok {
			continue
		}
		if Overlaps(r, cr) {
			return c
		}
	}
	return nil
}

func nodeID(n *Node) string {
	if n == nil {
		return "<none>"
	}
	return n.ID
}
