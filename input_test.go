package cardtable

import "testing"

func TestInputSurface_PressMoveRelease(t *testing.T) {
	target := NewNode("card", FlagDraggable)
	in := NewInputSurface(func(x, y float64) *Node {
		if x < 50 {
			return target
		}
		return nil
	})

	var log []string
	var downTarget, upTarget *Node
	in.OnPointerDown(func(ev PointerEvent) { log = append(log, "down"); downTarget = ev.Target })
	in.OnPointerMove(func(ev PointerEvent) { log = append(log, "move") })
	in.OnPointerUp(func(ev PointerEvent) { log = append(log, "up"); upTarget = ev.Target })

	in.ProcessPointer(10, 10, true, MouseButtonLeft)
	if !in.Pressed() {
		t.Error("Pressed = false after press")
	}
	in.ProcessPointer(10, 10, true, MouseButtonLeft) // no movement
	in.ProcessPointer(200, 10, true, MouseButtonLeft)
	in.ProcessPointer(200, 10, false, MouseButtonLeft)

	want := []string{"down", "move", "up"}
	if !equalEvents(log, want) {
		t.Errorf("events = %v, want %v", log, want)
	}
	if downTarget != target {
		t.Error("press did not resolve the hit target")
	}
	// The target captured at press time travels with the release, wherever
	// the pointer ends up.
	if upTarget != target {
		t.Error("release lost the captured target")
	}
	if in.Pressed() {
		t.Error("Pressed = true after release")
	}
}

func TestInputSurface_NilHitTest(t *testing.T) {
	in := NewInputSurface(nil)
	var got *Node
	called := false
	in.OnPointerDown(func(ev PointerEvent) { called = true; got = ev.Target })
	in.ProcessPointer(1, 1, true, MouseButtonLeft)
	if !called || got != nil {
		t.Errorf("called=%v target=%v, want press with no target", called, got)
	}
}

func TestCallbackHandle_Remove(t *testing.T) {
	in := NewInputSurface(nil)
	count := 0
	h := in.OnPointerMove(func(PointerEvent) { count++ })

	in.ProcessPointer(1, 1, false, MouseButtonLeft)
	h.Remove()
	h.Remove()
	in.ProcessPointer(2, 2, false, MouseButtonLeft)

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	CallbackHandle{}.Remove()
}

func TestInputSurface_RemoveDuringDispatch(t *testing.T) {
	in := NewInputSurface(nil)
	var order []string
	var second CallbackHandle
	in.OnPointerUp(func(PointerEvent) {
		order = append(order, "first")
		second.Remove()
		in.OnPointerUp(func(PointerEvent) { order = append(order, "late") })
	})
	second = in.OnPointerUp(func(PointerEvent) { order = append(order, "second") })

	in.ProcessPointer(0, 0, true, MouseButtonLeft)
	in.ProcessPointer(0, 0, false, MouseButtonLeft)

	// Dispatch runs a snapshot: the removed handler still sees this event and
	// the added one waits for the next.
	if !equalEvents(order, []string{"first", "second"}) {
		t.Errorf("order = %v, want [first second]", order)
	}
	if n := len(in.handlers.pointerUp); n != 2 {
		t.Errorf("up handlers = %d, want 2", n)
	}
}

func TestInputSurface_ButtonCapturedAtPress(t *testing.T) {
	in := NewInputSurface(nil)
	var up MouseButton
	in.OnPointerUp(func(ev PointerEvent) { up = ev.Button })

	in.ProcessPointer(0, 0, true, MouseButtonRight)
	in.ProcessPointer(0, 0, false, MouseButtonLeft)
	if up != MouseButtonRight {
		t.Errorf("release button = %v, want right", up)
	}
}
