package cardtable

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates both components of a position simultaneously, after an
// optional delay. Create one with TweenPosition and call Update(dt) each
// frame; the group writes the eased values to its target.
type TweenGroup struct {
	tweens [2]*gween.Tween
	target *Vec2
	delay  float32
	Done   bool
}

// TweenPosition creates a TweenGroup that moves *target to to under t using
// the easing function fn. A nil fn selects ease.OutCubic.
func TweenPosition(target *Vec2, to Vec2, t Transition, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.OutCubic
	}
	duration := float32(t.Duration.Seconds())
	g := &TweenGroup{target: target, delay: float32(t.Delay.Seconds())}
	g.tweens[0] = gween.New(float32(target.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(target.Y), float32(to.Y), duration, fn)
	return g
}

// Update advances the group by dt seconds and writes the values to the
// target. Time left over after the delay runs out is applied to the tweens.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.delay > 0 {
		if dt <= g.delay {
			g.delay -= dt
			return
		}
		dt -= g.delay
		g.delay = 0
	}

	allDone := true
	x, doneX := g.tweens[0].Update(dt)
	y, doneY := g.tweens[1].Update(dt)
	g.target.X = float64(x)
	g.target.Y = float64(y)
	if !doneX || !doneY {
		allDone = false
	}
	g.Done = allDone
}

// easeByName maps config names to easing functions.
var easeByName = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBack":    ease.OutBack,
	"outExpo":    ease.OutExpo,
}

// EaseFunc returns the easing function registered under name. The empty name
// selects ease.OutCubic.
func EaseFunc(name string) (ease.TweenFunc, bool) {
	if name == "" {
		return ease.OutCubic, true
	}
	fn, ok := easeByName[name]
	return fn, ok
}
