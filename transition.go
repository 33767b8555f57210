package cardtable

import "time"

// DefaultTransitionDuration is how long a card takes to fly into a new slot.
const DefaultTransitionDuration = 250 * time.Millisecond

// ChoreoState is the state of a Choreographer.
type ChoreoState uint8

const (
	ChoreoIdle           ChoreoState = iota // nothing scheduled
	ChoreoAwaitingFrame1                    // next refresh paints the old position, unanimated
	ChoreoAwaitingFrame2                    // next refresh animates to the new position
	ChoreoAnimating                         // waiting for the visual's transition to end
)

func (s ChoreoState) String() string {
	switch s {
	case ChoreoIdle:
		return "idle"
	case ChoreoAwaitingFrame1:
		return "awaiting-frame-1"
	case ChoreoAwaitingFrame2:
		return "awaiting-frame-2"
	case ChoreoAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// Choreographer makes a discrete repositioning look like a move. It paints the
// old position with animation off on one refresh, then enables the transition
// and writes the new position on the following refresh. Both writes must land
// on separate refreshes or they collapse into a single jump.
type Choreographer struct {
	clock      FrameClock
	visual     Visual
	transition Transition

	state    ChoreoState
	frame    FrameID
	from, to Vec2

	// OnDone, if set, runs when an animation completes.
	OnDone func()
}

// NewChoreographer returns an idle choreographer for visual. With a zero
// t.Duration repositioning is not animated.
func NewChoreographer(clock FrameClock, visual Visual, t Transition) *Choreographer {
	return &Choreographer{clock: clock, visual: visual, transition: t}
}

// State returns the current state.
func (c *Choreographer) State() ChoreoState {
	return c.state
}

// Transition returns the transition used for the animated write.
func (c *Choreographer) Transition() Transition {
	return c.transition
}

// Animate moves the visual from from to to. An invalid from position means
// there is nothing to animate from, and an unanimated transition has nothing
// to show: both snap the visual to to immediately. Animating while a previous
// animation is in flight supersedes it.
func (c *Choreographer) Animate(from, to Vec2) {
	c.Cancel()
	if !ValidPosition(from) || !c.transition.Animated() {
		c.visual.SetTransform(to)
		return
	}
	c.from, c.to = from, to
	c.state = ChoreoAwaitingFrame1
	c.frame = c.clock.RequestFrame(c.frame1)
}

func (c *Choreographer) frame1(time.Duration) {
	c.visual.SetTransition(Transition{})
	c.visual.SetTransform(c.from)
	c.state = ChoreoAwaitingFrame2
	c.frame = c.clock.RequestFrame(c.frame2)
}

func (c *Choreographer) frame2(time.Duration) {
	c.frame = 0
	c.state = ChoreoAnimating
	c.visual.SetTransition(c.transition)
	c.visual.SetTransform(c.to)
}

// TransitionEnd must be called by the visual when its animated move finishes.
// The transition is reset to zero so later repositioning is not animated.
func (c *Choreographer) TransitionEnd() {
	if c.state != ChoreoAnimating {
		return
	}
	c.visual.SetTransition(Transition{})
	c.state = ChoreoIdle
	if c.OnDone != nil {
		c.OnDone()
	}
}

// Cancel abandons the choreography in whatever state it is in. Pending
// refreshes are dropped; an animation in flight has its transition reset.
func (c *Choreographer) Cancel() {
	switch c.state {
	case ChoreoAwaitingFrame1, ChoreoAwaitingFrame2:
		c.clock.CancelFrame(c.frame)
		if c.state == ChoreoAwaitingFrame2 {
			c.visual.SetTransition(Transition{})
		}
	case ChoreoAnimating:
		c.visual.SetTransition(Transition{})
	}
	c.frame = 0
	c.state = ChoreoIdle
}
