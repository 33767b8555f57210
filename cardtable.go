package cardtable

import "time"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// PositionNull is the sentinel position meaning "no explicit position assigned".
var PositionNull = Vec2{-100, -100}

// ValidPosition reports whether p is a usable position. The sentinel and the
// origin are both rejected; the origin is what an uninitialized reading looks
// like.
func ValidPosition(p Vec2) bool {
	if p == PositionNull {
		return false
	}
	return !(p.X == 0 && p.Y == 0)
}

// Rect is an axis-aligned rectangle in screen coordinates. The origin is at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Origin returns the top-left corner of r.
func (r Rect) Origin() Vec2 { return Vec2{r.X, r.Y} }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return inRange(x, r.X, r.X+r.Width) && inRange(y, r.Y, r.Y+r.Height)
}

// At returns a copy of r moved so its origin is p.
func (r Rect) At(p Vec2) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// IsZero reports whether every component of r is exactly zero.
func (r Rect) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Width == 0 && r.Height == 0
}

// normalized clamps negative extents to zero.
func (r Rect) normalized() Rect {
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// Transition describes how the next transform write is animated.
// The zero value applies writes immediately.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
}

// Animated reports whether writes under t are animated at all.
func (t Transition) Animated() bool {
	return t.Duration > 0
}

// Visual is the rendered side of an entity: something whose drawn position
// can be written and whose position writes may be animated.
type Visual interface {
	// SetTransition controls how subsequent SetTransform calls are applied.
	SetTransition(t Transition)
	// SetTransform moves the visual to p under the current transition.
	SetTransform(p Vec2)
}

// NodeFlags marks the role a Node plays in drag and drop.
type NodeFlags uint8

const (
	FlagDragSurface NodeFlags = 1 << iota // container whose drop targets a drag considers
	FlagDropTarget                        // slot a draggable can be dropped on
	FlagDraggable                         // entity that can be picked up
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a kind of pointer event on the input surface.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when the pointer button is pressed
	EventPointerUp                    // fires when the pointer button is released
	EventPointerMove                  // fires when the pointer moves
)
