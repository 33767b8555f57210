package cardtable

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one entry of a JSON script. Which fields matter depends on
// Action: x/y for press, move and release; fromX..toY and frames for drag;
// frames for wait; label for screenshot.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

var scriptActions = map[string]bool{
	"drag": true, "press": true, "move": true, "release": true,
	"wait": true, "screenshot": true,
}

// TestRunner replays a script of pointer gestures and screenshots, one step
// per frame once the previous step's injected events have been consumed.
// Attach it with Table.SetTestRunner.
type TestRunner struct {
	steps []scriptStep
	next  int
	hold  int // frames left on the current wait
	done  bool
}

// LoadTestScript parses a script of the form {"steps": [{"action": ...}]}.
// Unknown actions and empty scripts are rejected.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether the whole script has been replayed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step runs at the start of a table frame. capture queues a screenshot and
// may be nil.
func (r *TestRunner) step(in *InputSurface, capture func(label string)) {
	switch {
	case r.done, in.Injected() > 0:
		return
	case r.hold > 0:
		r.hold--
		return
	case r.next == len(r.steps):
		r.done = true
		return
	}

	st := r.steps[r.next]
	r.next++
	r.apply(st, in, capture)

	if r.next == len(r.steps) && r.hold == 0 && in.Injected() == 0 {
		r.done = true
	}
}

func (r *TestRunner) apply(st scriptStep, in *InputSurface, capture func(string)) {
	switch st.Action {
	case "drag":
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "press":
		in.InjectPress(st.X, st.Y)
	case "move":
		in.InjectMove(st.X, st.Y)
	case "release":
		in.InjectRelease(st.X, st.Y)
	case "screenshot":
		if capture != nil {
			capture(st.Label)
		}
	case "wait":
		// The frame the wait is read on counts as its first.
		r.hold = max(st.Frames-1, 0)
	}
}
