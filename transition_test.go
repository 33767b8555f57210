package cardtable

import (
	"testing"
	"time"
)

func TestChoreographerTwoFrameSequence(t *testing.T) {
	clock := NewFrameScheduler()
	v := newRecordingVisual("card")
	c := NewChoreographer(clock, v, Transition{Duration: 250 * time.Millisecond})
	done := 0
	c.OnDone = func() { done++ }

	c.Animate(Vec2{10, 20}, Vec2{50, 60})
	if c.State() != ChoreoAwaitingFrame1 {
		t.Fatalf("State = %v, want awaiting-frame-1", c.State())
	}
	if len(v.transforms) != 0 {
		t.Fatalf("wrote %v before the first refresh", v.transforms)
	}

	clock.Tick(0)
	if c.State() != ChoreoAwaitingFrame2 {
		t.Fatalf("State = %v, want awaiting-frame-2", c.State())
	}
	if len(v.transforms) != 1 || v.transforms[0] != (Vec2{10, 20}) {
		t.Fatalf("frame 1 transforms = %v, want [{10 20}]", v.transforms)
	}
	if v.transitions[0].Animated() {
		t.Errorf("frame 1 transition = %v, want unanimated", v.transitions[0])
	}

	clock.Tick(16 * time.Millisecond)
	if c.State() != ChoreoAnimating {
		t.Fatalf("State = %v, want animating", c.State())
	}
	if len(v.transforms) != 2 || v.transforms[1] != (Vec2{50, 60}) {
		t.Fatalf("frame 2 transforms = %v, want second {50 60}", v.transforms)
	}
	if v.transitions[1].Duration != 250*time.Millisecond {
		t.Errorf("frame 2 transition = %v, want 250ms", v.transitions[1])
	}

	c.TransitionEnd()
	if c.State() != ChoreoIdle {
		t.Errorf("State = %v, want idle", c.State())
	}
	if last := v.transitions[len(v.transitions)-1]; last.Animated() {
		t.Errorf("transition after end = %v, want reset", last)
	}
	if done != 1 {
		t.Errorf("OnDone calls = %d, want 1", done)
	}

	c.TransitionEnd()
	if done != 1 {
		t.Error("TransitionEnd while idle ran OnDone again")
	}
}

func TestChoreographerInvalidFromSnaps(t *testing.T) {
	for _, from := range []Vec2{PositionNull, {0, 0}} {
		clock := NewFrameScheduler()
		v := newRecordingVisual("card")
		c := NewChoreographer(clock, v, Transition{})

		c.Animate(from, Vec2{50, 60})
		if len(v.transforms) != 1 || v.transforms[0] != (Vec2{50, 60}) {
			t.Errorf("from %v: transforms = %v, want [{50 60}]", from, v.transforms)
		}
		if c.State() != ChoreoIdle || clock.Pending() != 0 {
			t.Errorf("from %v: state %v pending %d, want idle with none", from, c.State(), clock.Pending())
		}
	}
}

func TestChoreographerZeroDurationSnaps(t *testing.T) {
	clock := NewFrameScheduler()
	v := newRecordingVisual("card")
	c := NewChoreographer(clock, v, Transition{})

	c.Animate(Vec2{10, 20}, Vec2{50, 60})
	if len(v.transforms) != 1 || v.transforms[0] != (Vec2{50, 60}) {
		t.Errorf("transforms = %v, want [{50 60}]", v.transforms)
	}
	if c.State() != ChoreoIdle || clock.Pending() != 0 {
		t.Errorf("state %v pending %d, want idle with none", c.State(), clock.Pending())
	}
}

func TestChoreographerCancel(t *testing.T) {
	clock := NewFrameScheduler()
	v := newRecordingVisual("card")
	c := NewChoreographer(clock, v, Transition{Duration: 100 * time.Millisecond})

	c.Animate(Vec2{10, 20}, Vec2{50, 60})
	c.Cancel()
	clock.Tick(0)
	clock.Tick(time.Millisecond)
	if len(v.transforms) != 0 {
		t.Errorf("cancelled choreography wrote %v", v.transforms)
	}
	if c.State() != ChoreoIdle {
		t.Errorf("State = %v, want idle", c.State())
	}

	c.Animate(Vec2{10, 20}, Vec2{50, 60})
	clock.Tick(2 * time.Millisecond)
	clock.Tick(3 * time.Millisecond)
	c.Cancel()
	if last := v.transitions[len(v.transitions)-1]; last.Animated() {
		t.Errorf("transition after cancel = %v, want reset", last)
	}
}

func TestChoreographerSupersede(t *testing.T) {
	clock := NewFrameScheduler()
	v := newRecordingVisual("card")
	c := NewChoreographer(clock, v, Transition{Duration: 100 * time.Millisecond})

	c.Animate(Vec2{10, 20}, Vec2{50, 60})
	c.Animate(Vec2{1, 2}, Vec2{3, 4})
	if clock.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", clock.Pending())
	}
	clock.Tick(0)
	clock.Tick(time.Millisecond)

	want := []Vec2{{1, 2}, {3, 4}}
	if len(v.transforms) != 2 || v.transforms[0] != want[0] || v.transforms[1] != want[1] {
		t.Errorf("transforms = %v, want %v", v.transforms, want)
	}
}

func TestChoreoStateString(t *testing.T) {
	tests := []struct {
		s    ChoreoState
		want string
	}{
		{ChoreoIdle, "idle"},
		{ChoreoAwaitingFrame1, "awaiting-frame-1"},
		{ChoreoAwaitingFrame2, "awaiting-frame-2"},
		{ChoreoAnimating, "animating"},
		{ChoreoState(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
