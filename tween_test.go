package cardtable

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestTweenPositionReachesTarget(t *testing.T) {
	pos := Vec2{0, 0}
	g := TweenPosition(&pos, Vec2{100, 50}, Transition{Duration: time.Second}, ease.Linear)

	g.Update(0.5)
	if !near(pos.X, 50) || !near(pos.Y, 25) {
		t.Errorf("halfway = %v, want {50 25}", pos)
	}
	if g.Done {
		t.Error("done at halfway")
	}

	g.Update(0.6)
	if pos != (Vec2{100, 50}) {
		t.Errorf("final = %v, want {100 50}", pos)
	}
	if !g.Done {
		t.Error("not done after full duration")
	}

	g.Update(1)
	if pos != (Vec2{100, 50}) {
		t.Errorf("update after done moved target to %v", pos)
	}
}

func TestTweenPositionDelay(t *testing.T) {
	pos := Vec2{0, 0}
	g := TweenPosition(&pos, Vec2{100, 0}, Transition{Duration: time.Second, Delay: 500 * time.Millisecond}, ease.Linear)

	g.Update(0.25)
	if pos.X != 0 {
		t.Errorf("moved during delay: %v", pos)
	}
	g.Update(0.75)
	if !near(pos.X, 50) {
		t.Errorf("after delay = %v, want X 50", pos)
	}
}

func TestEaseFunc(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"", true},
		{"linear", true},
		{"outCubic", true},
		{"outBack", true},
		{"bounce", false},
	}
	for _, tt := range tests {
		fn, ok := EaseFunc(tt.name)
		if ok != tt.ok {
			t.Errorf("EaseFunc(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
		if ok && fn == nil {
			t.Errorf("EaseFunc(%q) returned nil func", tt.name)
		}
	}
}
