package cardtable

import (
	"fmt"
	"io"
	"time"

	"github.com/tanema/gween/ease"
)

// PointerReading is one frame of polled pointer state.
type PointerReading struct {
	X, Y    float64
	Pressed bool
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithBus makes the table publish and subscribe on b instead of a private bus.
func WithBus(b *Bus) TableOption {
	return func(t *Table) { t.bus = b }
}

// WithLogOutput sends diagnostics to w. Lines are only written when
// Config.Debug is set.
func WithLogOutput(w io.Writer) TableOption {
	return func(t *Table) { t.logOut = w }
}

// Table owns the card layout: the slots, the cards assigned to them, and the
// drag machinery that moves cards between slots. It is the layout owner the
// drag controller reports to through the bus.
type Table struct {
	cfg    Config
	root   *Node
	bus    *Bus
	rects  *RectCache
	frames *FrameScheduler
	input  *InputSurface
	drag   *DragController
	runner *TestRunner
	easing ease.TweenFunc
	logOut io.Writer
	log    *logger

	cards        []*Card // draw order, last on top
	cardByID     map[string]*Card
	placeholders []*Placeholder
	slotByID     map[string]*Placeholder

	width, height float64
	subs          []Handle
	down          CallbackHandle
	shots         []string // screenshot labels waiting for the next Draw
	closed        bool
}

// NewTable builds a table from cfg. The table has no size until the first
// Resize; until then nothing is measured and nothing can be dragged.
func NewTable(cfg Config, opts ...TableOption) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new table: %w", err)
	}
	easing, _ := EaseFunc(cfg.Transition.Ease)

	t := &Table{
		cfg:      cfg,
		root:     NewNode("card-table", FlagDragSurface),
		rects:    NewRectCache(),
		frames:   NewFrameScheduler(),
		easing:   easing,
		cardByID: make(map[string]*Card, len(cfg.Cards)),
		slotByID: make(map[string]*Placeholder, len(cfg.Placeholders)),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.bus == nil {
		t.bus = NewBus()
	}
	t.log = newLogger(t.logOut, "CardTable", cfg.Debug)

	size := Vec2{cfg.Card.Width, cfg.Card.Height}
	for _, pc := range cfg.Placeholders {
		p := NewPlaceholder(pc.ID, size)
		if pc.X != nil && pc.Y != nil {
			p.Fixed = Vec2{*pc.X, *pc.Y}
		}
		t.placeholders = append(t.placeholders, p)
		t.slotByID[p.ID()] = p
		t.root.AddChild(p.Node())
	}

	transition := Transition{Duration: cfg.Transition.Duration, Delay: cfg.Transition.Delay}
	for _, cc := range cfg.Cards {
		c := NewCard(cc.ID, cc.Placeholder, cc.Scale, size)
		c.attach(t.frames, transition, t.easing)
		t.cards = append(t.cards, c)
		t.cardByID[c.ID()] = c
		t.root.AddChild(c.Node())
	}

	t.input = NewInputSurface(t.hitTest)
	t.drag = NewDragController(t.bus, t.frames, t.rects, t.input,
		WithIntersectionFPS(cfg.IntersectionFPS),
		withControllerLogger(t.log.sub("DragController")),
		withClockNow(t.frames.Now),
	)

	t.down = t.input.OnPointerDown(t.onPointerDown)
	t.subs = append(t.subs,
		t.bus.On(TopicDragEnded, t.onDragEnded),
		t.bus.On(TopicCardUpdate, t.onCardUpdate),
		t.bus.On(TopicDragEnter, t.onDragEnter),
		t.bus.On(TopicDragLeave, t.onDragLeave),
	)
	return t, nil
}

// Config returns the configuration the table was built from.
func (t *Table) Config() Config { return t.cfg }

// Root returns the drag surface node holding every slot and card.
func (t *Table) Root() *Node { return t.root }

// Bus returns the table's event bus.
func (t *Table) Bus() *Bus { return t.bus }

// Rects returns the rectangle cache the table measures into.
func (t *Table) Rects() *RectCache { return t.rects }

// Frames returns the table's display-refresh scheduler.
func (t *Table) Frames() *FrameScheduler { return t.frames }

// Input returns the pointer surface.
func (t *Table) Input() *InputSurface { return t.input }

// Drag returns the drag controller.
func (t *Table) Drag() *DragController { return t.drag }

// Cards returns the cards in draw order. The slice MUST NOT be mutated.
func (t *Table) Cards() []*Card { return t.cards }

// Placeholders returns the slots in layout order. The slice MUST NOT be mutated.
func (t *Table) Placeholders() []*Placeholder { return t.placeholders }

// Card returns the card with the given id, or nil.
func (t *Table) Card(id string) *Card { return t.cardByID[id] }

// Placeholder returns the slot with the given id, or nil.
func (t *Table) Placeholder(id string) *Placeholder { return t.slotByID[id] }

// Size returns the viewport size of the last Resize.
func (t *Table) Size() (w, h float64) { return t.width, t.height }

// SetTestRunner attaches a scripted input runner. It is stepped at the start
// of every Update.
func (t *Table) SetTestRunner(r *TestRunner) { t.runner = r }

// TestRunner returns the attached runner, or nil.
func (t *Table) TestRunner() *TestRunner { return t.runner }

// Resize lays the table out for a w by h viewport and re-measures every slot
// and card. Cards are repositioned without animation; the card being
// dragged keeps following the pointer.
func (t *Table) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	t.width, t.height = w, h
	t.layoutPlaceholders()
	for _, c := range t.cards {
		t.placeCard(c)
	}
	t.log.printf("resize", "%vx%v, %d rects", w, h, t.rects.Len())
}

// layoutPlaceholders measures every slot: pinned slots at their position, the
// rest in a row centred in the viewport.
func (t *Table) layoutPlaceholders() {
	var row []*Placeholder
	var rowWidth, rowHeight float64
	for _, p := range t.placeholders {
		if ValidPosition(p.Fixed) {
			s := p.Size()
			t.rects.Report(p.ID(), Rect{X: p.Fixed.X, Y: p.Fixed.Y, Width: s.X, Height: s.Y})
			continue
		}
		row = append(row, p)
		rowWidth += p.Size().X
		rowHeight = max(rowHeight, p.Size().Y)
	}
	if len(row) == 0 {
		return
	}
	rowWidth += t.cfg.Layout.Gap * float64(len(row)-1)

	x := (t.width - rowWidth) / 2
	y := (t.height - rowHeight) / 2
	for _, p := range row {
		s := p.Size()
		t.rects.Report(p.ID(), Rect{X: x, Y: y + (rowHeight-s.Y)/2, Width: s.X, Height: s.Y})
		x += s.X + t.cfg.Layout.Gap
	}
}

// placeCard resolves c's position from its slot and writes it. A pending
// TransitionPosition turns the write into an animated move. A card whose slot
// has not been measured is left unplaced until the next layout.
func (t *Table) placeCard(c *Card) {
	slot, ok := t.rects.Rect(c.Placeholder)
	if !ok {
		c.placed = false
		t.log.printf("place", "%s: slot %q not measured yet", c.ID(), c.Placeholder)
		return
	}
	pos := c.MapPosition(slot.Origin())
	size := c.Size()
	t.rects.Report(c.ID(), Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y})

	if c.ID() == t.drag.ActiveID() {
		return
	}
	if from := c.TransitionPosition; ValidPosition(from) {
		c.TransitionPosition = PositionNull
		c.choreo.Animate(from, pos)
		return
	}
	c.choreo.Cancel()
	c.SetTransform(pos)
}

// raise moves c to the top of the draw order.
func (t *Table) raise(c *Card) {
	for i, other := range t.cards {
		if other == c {
			copy(t.cards[i:], t.cards[i+1:])
			t.cards[len(t.cards)-1] = c
			return
		}
	}
}

// hitTest finds the topmost placed card at (x, y).
func (t *Table) hitTest(x, y float64) *Node {
	for i := len(t.cards) - 1; i >= 0; i-- {
		c := t.cards[i]
		if c.placed && c.DrawnRect().Contains(x, y) {
			return c.Node()
		}
	}
	return nil
}

func (t *Table) onPointerDown(ev PointerEvent) {
	if ev.Target == nil || !ev.Target.Is(FlagDraggable) {
		return
	}
	c := t.cardByID[ev.Target.ID]
	if c == nil {
		return
	}
	// The card may be caught mid-flight: grab it where it is drawn.
	c.choreo.Cancel()
	c.SetTransform(c.drawn)
	t.rects.Report(c.ID(), c.DrawnRect())
	t.raise(c)
	t.drag.BeginDrag(ev, c)
}

func (t *Table) onDragEnded(e Event) {
	ev := e.(DragEnded)
	c := t.cardByID[ev.SourceID]
	if c == nil {
		return
	}
	target := ev.TargetID
	if !ev.HasTarget() {
		target = c.Placeholder
		t.log.printf("drop", "%s dropped on nothing, back to %s", c.ID(), target)
	}
	t.bus.Emit(CardUpdate{CardID: c.ID(), Placeholder: target, TransitionPosition: ev.Position})
}

func (t *Table) onCardUpdate(e Event) {
	u := e.(CardUpdate)
	c := t.cardByID[u.CardID]
	if c == nil {
		return
	}
	if u.Placeholder != "" {
		if _, ok := t.slotByID[u.Placeholder]; ok {
			c.Placeholder = u.Placeholder
		} else {
			t.log.printf("update", "%s: unknown placeholder %q ignored", c.ID(), u.Placeholder)
		}
	}
	c.TransitionPosition = u.TransitionPosition
	t.placeCard(c)
}

func (t *Table) onDragEnter(e Event) {
	ev := e.(DragEnter)
	t.log.printf("enter", "%s over %s", ev.DraggedID, ev.TargetID)
}

func (t *Table) onDragLeave(e Event) {
	ev := e.(DragLeave)
	t.log.printf("leave", "%s off %s", ev.DraggedID, ev.TargetID)
}

// Update runs one frame: scripted input, the pointer reading, the refresh
// callbacks scheduled for this frame and card animations, in that order.
func (t *Table) Update(now time.Duration, dt float32, p PointerReading) {
	if t.closed {
		return
	}
	if t.runner != nil {
		t.runner.step(t.input, t.Screenshot)
	}
	t.input.Poll(p.X, p.Y, p.Pressed)
	t.frames.Tick(now)
	for _, c := range t.cards {
		c.Update(dt)
	}
}

// Close detaches the table from the bus and input and stops every drag and
// animation. A closed table ignores Update.
func (t *Table) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.drag.Cancel()
	for _, c := range t.cards {
		c.choreo.Cancel()
	}
	for _, h := range t.subs {
		h.Remove()
	}
	t.subs = nil
	t.down.Remove()
}
