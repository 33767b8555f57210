package cardtable

import "github.com/tanema/gween/ease"

// Card dimensions at scale 1.
const (
	CardWidth  = 90
	CardHeight = 125
)

// Card is a draggable entity. Its layout state (Placeholder, Scale,
// TransitionPosition) is owned by the Table; its drawn position is driven by
// Visual writes coming from the drag controller and its Choreographer.
type Card struct {
	node *Node

	// Placeholder is the id of the slot the card is assigned to.
	Placeholder string
	// Scale grows or shrinks the card around its centre.
	Scale float64
	// TransitionPosition is where the next layout animates the card from.
	// PositionNull means no animation.
	TransitionPosition Vec2

	size    Vec2
	drawn   Vec2
	placed  bool
	trans   Transition
	tween   *TweenGroup
	easing  ease.TweenFunc
	choreo  *Choreographer
	onEnded func()
}

// NewCard creates a card of the given base size assigned to placeholder.
func NewCard(id, placeholder string, scale float64, size Vec2) *Card {
	if scale <= 0 {
		scale = 1
	}
	if size.X <= 0 || size.Y <= 0 {
		size = Vec2{CardWidth, CardHeight}
	}
	return &Card{
		node:               NewNode(id, FlagDraggable),
		Placeholder:        placeholder,
		Scale:              scale,
		TransitionPosition: PositionNull,
		size:               size,
	}
}

// ID returns the card's id.
func (c *Card) ID() string { return c.node.ID }

// Node implements Draggable.
func (c *Card) Node() *Node { return c.node }

// Choreographer returns the card's slot-change animator, or nil before the
// card has been added to a table.
func (c *Card) Choreographer() *Choreographer { return c.choreo }

// Size returns the card's drawn size.
func (c *Card) Size() Vec2 {
	return Vec2{c.size.X * c.Scale, c.size.Y * c.Scale}
}

// MapPosition converts the slot origin p into the card's drawn origin so the
// card stays centred on the slot whatever its scale.
func (c *Card) MapPosition(p Vec2) Vec2 {
	s := c.Size()
	return Vec2{
		p.X - s.X/2 + c.size.X/2,
		p.Y - s.Y/2 + c.size.Y/2,
	}
}

// DrawnRect returns where the card is currently drawn.
func (c *Card) DrawnRect() Rect {
	s := c.Size()
	return Rect{X: c.drawn.X, Y: c.drawn.Y, Width: s.X, Height: s.Y}
}

// Placed reports whether the card has a resolved position and is drawn.
func (c *Card) Placed() bool { return c.placed }

// Animating reports whether a transform transition is in flight.
func (c *Card) Animating() bool { return c.tween != nil }

// SetTransition implements Visual.
func (c *Card) SetTransition(t Transition) {
	c.trans = t
}

// SetTransform implements Visual. Under an animated transition the card
// tweens from where it is drawn now; otherwise it jumps. A jump cancels any
// tween in flight without signalling its end.
func (c *Card) SetTransform(p Vec2) {
	c.placed = true
	if !c.trans.Animated() {
		c.tween = nil
		c.drawn = p
		return
	}
	c.tween = TweenPosition(&c.drawn, p, c.trans, c.easing)
}

// Update advances an animated move by dt seconds. When the move completes the
// transition end is reported to the card's Choreographer.
func (c *Card) Update(dt float32) {
	if c.tween == nil {
		return
	}
	c.tween.Update(dt)
	if !c.tween.Done {
		return
	}
	c.tween = nil
	if c.onEnded != nil {
		c.onEnded()
	}
}

// attach wires the card's choreographer to the table's clock.
func (c *Card) attach(clock FrameClock, t Transition, fn ease.TweenFunc) {
	c.easing = fn
	c.choreo = NewChoreographer(clock, c, t)
	c.onEnded = c.choreo.TransitionEnd
}

// Placeholder is a drop target slot cards can be assigned to.
type Placeholder struct {
	node *Node

	// Fixed, when valid, pins the slot instead of using the automatic row layout.
	Fixed Vec2
	size  Vec2
}

// NewPlaceholder creates a slot of the given size.
func NewPlaceholder(id string, size Vec2) *Placeholder {
	if size.X <= 0 || size.Y <= 0 {
		size = Vec2{CardWidth, CardHeight}
	}
	return &Placeholder{
		node:  NewNode(id, FlagDropTarget),
		Fixed: PositionNull,
		size:  size,
	}
}

// ID returns the slot's id.
func (p *Placeholder) ID() string { return p.node.ID }

// Node returns the slot's tree node.
func (p *Placeholder) Node() *Node { return p.node }

// Highlighted reports whether a dragged card is over the slot.
func (p *Placeholder) Highlighted() bool { return p.node.Highlighted }

// Size returns the slot's size.
func (p *Placeholder) Size() Vec2 { return p.size }
