package cardtable

import "testing"

func TestThrottleCoalescesToLatest(t *testing.T) {
	clock := NewFrameScheduler()
	var got []int
	th := NewThrottle(clock, func(v int) { got = append(got, v) })

	th.Schedule(1)
	th.Schedule(2)
	th.Schedule(3)

	if len(got) != 0 {
		t.Fatalf("applied before refresh: %v", got)
	}
	if !th.Pending() {
		t.Error("Pending = false, want true")
	}
	if clock.Pending() != 1 {
		t.Errorf("frames requested = %d, want 1", clock.Pending())
	}

	clock.Tick(1)
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("applied = %v, want [3]", got)
	}
	if th.Pending() {
		t.Error("Pending = true after refresh")
	}

	clock.Tick(2)
	if len(got) != 1 {
		t.Errorf("applied again without Schedule: %v", got)
	}

	th.Schedule(4)
	clock.Tick(3)
	if len(got) != 2 || got[1] != 4 {
		t.Errorf("applied = %v, want [3 4]", got)
	}
	if th.Applied() != 2 {
		t.Errorf("Applied = %d, want 2", th.Applied())
	}
}

func TestThrottleCancel(t *testing.T) {
	clock := NewFrameScheduler()
	calls := 0
	th := NewThrottle(clock, func(int) { calls++ })

	th.Schedule(1)
	th.Cancel()
	clock.Tick(1)
	if calls != 0 {
		t.Errorf("calls = %d after Cancel, want 0", calls)
	}
	if clock.Pending() != 0 {
		t.Errorf("frame still requested after Cancel")
	}
}

func TestThrottleFlush(t *testing.T) {
	clock := NewFrameScheduler()
	var got []string
	th := NewThrottle(clock, func(s string) { got = append(got, s) })

	th.Flush()
	if len(got) != 0 {
		t.Fatalf("Flush with nothing pending applied %v", got)
	}

	th.Schedule("a")
	th.Schedule("b")
	th.Flush()
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("applied = %v, want [b]", got)
	}
	clock.Tick(1)
	if len(got) != 1 {
		t.Errorf("flushed value applied twice: %v", got)
	}
}
