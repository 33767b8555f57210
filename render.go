package cardtable

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	colorTable       = Color{R: 0.09, G: 0.32, B: 0.18, A: 1}
	colorSlot        = Color{R: 0.41, G: 0.41, B: 0.41, A: 1}
	colorSlotHot     = Color{R: 0.95, G: 0.8, B: 0.25, A: 1}
	colorCardFace    = Color{R: 1, G: 1, B: 1, A: 1}
	colorCardBorder  = Color{R: 0.1, G: 0.1, B: 0.1, A: 1}
	colorCardPattern = Color{R: 0.75, G: 0.15, B: 0.2, A: 1}
)

const cardBorder = 4.0

// whitePixel is a 1x1 white image stretched and tinted to draw solid rects.
var whitePixel *ebiten.Image

func solid() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	dst.DrawImage(solid(), &op)
}

func inset(r Rect, d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// drawTable paints the table: slots first, then cards in draw order.
func drawTable(screen *ebiten.Image, t *Table) {
	screen.Fill(colorTable.toRGBA())

	for _, p := range t.placeholders {
		r, ok := t.rects.Rect(p.ID())
		if !ok {
			continue
		}
		c := colorSlot
		if p.Highlighted() {
			c = colorSlotHot
		}
		fillRect(screen, r, c)
		fillRect(screen, inset(r, cardBorder), colorTable)
		ebitenutil.DebugPrintAt(screen, p.ID(), int(r.X)+6, int(r.Y+r.Height)+4)
	}

	for _, c := range t.cards {
		if !c.Placed() {
			continue
		}
		drawCard(screen, c)
	}
}

func drawCard(screen *ebiten.Image, c *Card) {
	r := c.DrawnRect()
	fillRect(screen, r, colorCardBorder)
	fillRect(screen, inset(r, cardBorder*c.Scale), colorCardFace)
	fillRect(screen, inset(r, 3*cardBorder*c.Scale), colorCardPattern)
	ebitenutil.DebugPrintAt(screen, c.ID(), int(r.X)+6, int(r.Y)+6)
}
