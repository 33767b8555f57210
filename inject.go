package cardtable

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectPress queues a pointer press event at the given screen coordinates
// (left button). The event is consumed on the next Poll.
func (in *InputSurface) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a pointer move event with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (in *InputSurface) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given screen coordinates.
func (in *InputSurface) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (in *InputSurface) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		in.InjectMove(x, y)
	}
	in.InjectRelease(toX, toY)
}

// Injected returns the number of queued synthetic events.
func (in *InputSurface) Injected() int {
	return len(in.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through ProcessPointer. Returns true if an event was consumed (real input
// should be skipped this frame).
func (in *InputSurface) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.ProcessPointer(evt.x, evt.y, evt.pressed, evt.button)
	in.synthetic = in.pointer.down
	return true
}
