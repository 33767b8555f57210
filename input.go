package cardtable

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	hitNode *Node
	button  MouseButton // button captured at press time
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerUp   []pointerHandler
	pointerMove []pointerHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered pointer callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. The zero handle
// and repeated removals are no-ops.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removePointerHandler(h.reg.pointerDown, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removePointerHandler(h.reg.pointerUp, h.id)
	case EventPointerMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, list *[]pointerHandler, fn func(PointerEvent)) CallbackHandle {
	r.nextID++
	id := r.nextID
	*list = append(*list, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

// HitTestFunc returns the topmost draggable node at (x, y), or nil.
type HitTestFunc func(x, y float64) *Node

// InputSurface is the global pointer surface. It turns a polled pointer
// (position + pressed) into down/move/up events. Once a press has started,
// moves and the release are delivered wherever the pointer goes.
type InputSurface struct {
	handlers    handlerRegistry
	pointer     pointerState
	hitTest     HitTestFunc
	injectQueue []syntheticPointerEvent
	synthetic   bool // pointer is held down by an injected press
	dispatchBuf []pointerHandler
}

// NewInputSurface returns a surface that resolves press targets with hitTest.
// hitTest may be nil, in which case presses carry no target.
func NewInputSurface(hitTest HitTestFunc) *InputSurface {
	return &InputSurface{hitTest: hitTest}
}

// OnPointerDown registers a callback for pointer presses.
func (in *InputSurface) OnPointerDown(fn func(PointerEvent)) CallbackHandle {
	return in.handlers.add(EventPointerDown, &in.handlers.pointerDown, fn)
}

// OnPointerUp registers a callback for pointer releases.
func (in *InputSurface) OnPointerUp(fn func(PointerEvent)) CallbackHandle {
	return in.handlers.add(EventPointerUp, &in.handlers.pointerUp, fn)
}

// OnPointerMove registers a callback for pointer moves.
func (in *InputSurface) OnPointerMove(fn func(PointerEvent)) CallbackHandle {
	return in.handlers.add(EventPointerMove, &in.handlers.pointerMove, fn)
}

// Pressed reports whether the pointer is currently held down.
func (in *InputSurface) Pressed() bool {
	return in.pointer.down
}

// Poll feeds one frame of pointer state. A queued synthetic event, if any,
// is used instead of the real reading. Real readings are also ignored while
// an injected press has not been released.
func (in *InputSurface) Poll(x, y float64, pressed bool) {
	if in.processInjectedInput() {
		return
	}
	if in.synthetic {
		return
	}
	in.ProcessPointer(x, y, pressed, MouseButtonLeft)
}

// ProcessPointer runs the pointer state machine for one reading.
func (in *InputSurface) ProcessPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &in.pointer

	switch {
	case pressed && !ps.down:
		// Just pressed: capture button and target for the whole interaction.
		var target *Node
		if in.hitTest != nil {
			target = in.hitTest(x, y)
		}
		ps.down = true
		ps.button = button
		ps.lastX, ps.lastY = x, y
		ps.hitNode = target
		in.dispatch(in.handlers.pointerDown, PointerEvent{X: x, Y: y, Button: button, Target: target})
	case !pressed && ps.down:
		ev := PointerEvent{X: x, Y: y, Button: ps.button, Target: ps.hitNode}
		ps.down = false
		ps.hitNode = nil
		ps.lastX, ps.lastY = x, y
		in.dispatch(in.handlers.pointerUp, ev)
	default:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = x, y
		in.dispatch(in.handlers.pointerMove, PointerEvent{X: x, Y: y, Button: ps.button, Target: ps.hitNode})
	}
}

// dispatch calls a snapshot of hs so handlers may add or remove callbacks
// while running.
func (in *InputSurface) dispatch(hs []pointerHandler, ev PointerEvent) {
	if len(hs) == 0 {
		return
	}
	buf := append(in.dispatchBuf[:0], hs...)
	in.dispatchBuf = nil
	for _, h := range buf {
		h.fn(ev)
	}
	for i := range buf {
		buf[i] = pointerHandler{}
	}
	in.dispatchBuf = buf[:0]
}
