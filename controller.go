package cardtable

import "time"

// PointerEvent carries the screen position of a pointer event and, for
// pointer-down, the draggable node under the pointer.
type PointerEvent struct {
	X, Y   float64
	Button MouseButton
	Target *Node
}

// Pos returns the pointer position.
func (e PointerEvent) Pos() Vec2 { return Vec2{e.X, e.Y} }

// PointerSurface is the global input surface a drag listens on once it has
// started. It delivers events regardless of where the pointer is.
type PointerSurface interface {
	OnPointerMove(fn func(PointerEvent)) CallbackHandle
	OnPointerUp(fn func(PointerEvent)) CallbackHandle
}

// Draggable is an entity the DragController can move.
type Draggable interface {
	Visual
	Node() *Node
}

// dragSession is the state of one drag, from pointer-down to pointer-up.
type dragSession struct {
	entity        Draggable
	id            string
	pointerOffset Vec2
	position      Vec2
	startRect     Rect
	home          *Node
	write         *Throttle[Vec2]
	moveHandle    CallbackHandle
	upHandle      CallbackHandle
	stats         sessionStats
	cancelled     bool // Cancel ran while EndDrag was tearing the session down
}

// DragController turns pointer events into a drag session: it moves the
// dragged entity's visual (throttled to the refresh rate), runs the
// IntersectionScanner while the drag lasts and resolves the drop target on
// release.
type DragController struct {
	bus     *Bus
	clock   FrameClock
	rects   RectProvider
	surface PointerSurface
	scanner *IntersectionScanner
	log     *logger
	now     func() time.Duration

	session *dragSession
	ending  *dragSession
	buf     []*Node
}

// ControllerOption configures a DragController.
type ControllerOption func(*DragController)

// WithIntersectionFPS sets the scanner's check rate.
func WithIntersectionFPS(fps float64) ControllerOption {
	return func(c *DragController) {
		c.scanner = NewIntersectionScanner(c.clock, c.bus, c.rects, fps)
	}
}

// withControllerLogger attaches a diagnostics logger.
func withControllerLogger(l *logger) ControllerOption {
	return func(c *DragController) { c.log = l }
}

// withClockNow gives the controller a time source for session stats.
func withClockNow(now func() time.Duration) ControllerOption {
	return func(c *DragController) { c.now = now }
}

// NewDragController wires a controller to its collaborators.
func NewDragController(bus *Bus, clock FrameClock, rects RectProvider, surface PointerSurface, opts ...ControllerOption) *DragController {
	c := &DragController{
		bus:     bus,
		clock:   clock,
		rects:   rects,
		surface: surface,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.scanner == nil {
		c.scanner = NewIntersectionScanner(clock, bus, rects, DefaultIntersectionFPS)
	}
	c.scanner.log = c.log.sub("IntersectionScanner")
	return c
}

// Scanner returns the controller's intersection scanner.
func (c *DragController) Scanner() *IntersectionScanner {
	return c.scanner
}

// Active reports whether a drag session is live.
func (c *DragController) Active() bool {
	return c.session != nil
}

// ActiveID returns the id of the dragged entity, or "" when idle.
func (c *DragController) ActiveID() string {
	if c.session == nil {
		return ""
	}
	return c.session.id
}

// Position returns the live drag position of the dragged entity.
func (c *DragController) Position() (Vec2, bool) {
	if c.session == nil {
		return Vec2{}, false
	}
	return c.session.position, true
}

// Home returns the home target of the live session, or nil.
func (c *DragController) Home() *Node {
	if c.session == nil {
		return nil
	}
	return c.session.home
}

// BeginDrag starts a drag of d grabbed at ev. It returns false, and does
// nothing, if d has not been measured yet. A session already in progress is
// cancelled first without emitting DragEnded.
//
// The drop targets considered are the FlagDropTarget descendants of d's
// nearest FlagDragSurface ancestor. The one d overlaps at the start becomes
// the home target, the fallback when the drop lands nowhere.
func (c *DragController) BeginDrag(ev PointerEvent, d Draggable) bool {
	node := d.Node()
	start, ok := c.rects.Rect(node.ID)
	if !ok {
		c.log.printf("begin", "%s has no measured rect, ignoring", node.ID)
		return false
	}
	if c.session != nil {
		c.log.printf("begin", "superseding drag of %s", c.session.id)
		c.Cancel()
	}

	s := &dragSession{
		entity:        d,
		id:            node.ID,
		pointerOffset: ev.Pos().Sub(start.Origin()),
		startRect:     start,
	}
	s.position = ev.Pos().Sub(s.pointerOffset)
	if c.now != nil {
		s.stats.started = c.now()
	}
	s.write = NewThrottle(c.clock, func(p Vec2) {
		s.stats.writes++
		d.SetTransform(p)
	})

	c.buf = c.buf[:0]
	if container := node.FindAncestor(FlagDragSurface); container != nil {
		c.buf = container.Collect(FlagDropTarget, c.buf)
	}
	s.home = FindIntersecting(start, c.buf, c.rects)

	c.session = s
	s.moveHandle = c.surface.OnPointerMove(c.PointerMove)
	s.upHandle = c.surface.OnPointerUp(c.EndDrag)

	d.SetTransition(Transition{})
	s.write.Schedule(s.position)

	c.scanner.Start(s.id, c.draggedRect, c.buf)
	c.scanner.stats = &s.stats

	c.log.printf("begin", "%s offset=%v home=%s candidates=%d", s.id, s.pointerOffset, nodeID(s.home), len(c.buf))
	return true
}

// draggedRect builds the dragged entity's rectangle at its live position.
func (c *DragController) draggedRect() (Rect, bool) {
	s := c.session
	if s == nil {
		return Rect{}, false
	}
	r, ok := c.rects.Rect(s.id)
	if !ok {
		r = s.startRect
	}
	return r.At(s.position), true
}

// PointerMove updates the drag position and schedules a transform write.
// Writes are coalesced to one per refresh.
func (c *DragController) PointerMove(ev PointerEvent) {
	s := c.session
	if s == nil {
		return
	}
	s.stats.moves++
	s.position = ev.Pos().Sub(s.pointerOffset)
	s.write.Schedule(s.position)
}

// EndDrag finishes the live session: the scanner is stopped (its final
// DragLeave, if any, is emitted first), the drop target is resolved and one
// DragEnded is emitted. The target is the last overlapped one, else the home
// target, else none (empty TargetID). Without a live session EndDrag does
// nothing.
//
// The session is detached before any event goes out, so EndDrag re-entered
// from a bus handler is a no-op. A Cancel from such a handler suppresses the
// DragEnded.
func (c *DragController) EndDrag(ev PointerEvent) {
	s := c.session
	if s == nil {
		return
	}
	c.session = nil
	c.ending = s
	defer func() { c.ending = nil }()

	s.moveHandle.Remove()
	s.upHandle.Remove()
	s.write.Flush()

	target := c.scanner.Stop()
	if s.cancelled {
		c.log.printf("end", "%s cancelled while ending", s.id)
		return
	}
	if target == nil {
		target = s.home
	}

	out := DragEnded{Position: s.position, SourceID: s.id}
	if target != nil {
		out.TargetID = target.ID
	}
	if c.now != nil {
		s.stats.duration = c.now() - s.stats.started
	}
	s.stats.debugLog(c.log, s.id)
	c.log.printf("end", "%s at %v -> %s", s.id, s.position, nodeID(target))
	c.ending = nil
	c.bus.Emit(out)
}

// Cancel aborts the live session without emitting DragEnded. Listeners,
// pending writes and the scanner are all torn down.
func (c *DragController) Cancel() {
	s := c.session
	if s == nil {
		if c.ending != nil {
			c.ending.cancelled = true
		}
		return
	}
	c.session = nil
	s.moveHandle.Remove()
	s.upHandle.Remove()
	s.write.Cancel()
	c.scanner.Stop()
	c.log.printf("cancel", "%s", s.id)
}
