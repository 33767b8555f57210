package cardtable

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Table to ebiten.Game. Each Ebitengine tick is one display
// refresh for the table's frame clock.
type Game struct {
	table *Table
	fps   *fpsWidget
	ticks int64
	outW  int
	outH  int

	// ExitOnScriptDone ends the game once an attached TestRunner finishes.
	ExitOnScriptDone bool
}

// NewGame wraps t.
func NewGame(t *Table, showFPS bool) *Game {
	g := &Game{table: t}
	if showFPS {
		g.fps = &fpsWidget{}
	}
	return g
}

// Table returns the wrapped table.
func (g *Game) Table() *Table { return g.table }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g.ticks++
	now := time.Duration(g.ticks) * time.Second / time.Duration(tps)
	dt := 1 / float32(tps)

	x, y := ebiten.CursorPosition()
	g.table.Update(now, dt, PointerReading{
		X:       float64(x),
		Y:       float64(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	})

	if g.fps != nil {
		g.fps.update(float64(dt))
	}

	if g.ExitOnScriptDone {
		if r := g.table.TestRunner(); r != nil && r.Done() && len(g.table.shots) == 0 {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	drawTable(screen, g.table)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	// Captured last so the overlay is part of the shot.
	g.table.flushScreenshots(screen)
}

// Layout implements ebiten.Game. A change of outside size re-lays the table
// out, which re-measures every slot and card.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		g.table.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
