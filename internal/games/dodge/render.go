package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Sprite glyphs
const (
	TileGlyph   = '·'
	LifeGlyph   = '♥'
	PlayerBody  = '█'
	PlayerHead  = '◆'
	PlayerLegA  = '╱'
	PlayerLegB  = '╲'
	blinkPerSec = 8
)

// viewport maps world units onto the terminal cells inside the play area border.
// Terminal cells are about twice as tall as they are wide.
type viewport struct {
	frame       core.Rect // Border
	inner       core.Rect // Drawable cells
	unitsPerCol float64
	unitsPerRow float64
	b           Boundary
}

// fitViewport scales the boundary into the screen keeping the 2:1 cell aspect.
// Returns false when the screen is too small to draw anything useful.
func fitViewport(b Boundary, w, h int) (viewport, bool) {
	availW := w - 2
	availH := h - 2
	if availW < 8 || availH < 4 || b.Width() <= 0 || b.Height() <= 0 {
		return viewport{}, false
	}

	upr := b.Height() / float64(availH)
	upc := upr / 2
	if b.Width()/upc > float64(availW) {
		upc = b.Width() / float64(availW)
		upr = upc * 2
	}

	usedW := core.Clamp(int(math.Ceil(b.Width()/upc)), 1, availW)
	usedH := core.Clamp(int(math.Ceil(b.Height()/upr)), 1, availH)
	x0 := (w - usedW - 2) / 2
	y0 := (h - usedH - 2) / 2

	return viewport{
		frame:       core.NewRect(x0, y0, usedW+2, usedH+2),
		inner:       core.NewRect(x0+1, y0+1, usedW, usedH),
		unitsPerCol: upc,
		unitsPerRow: upr,
		b:           b,
	}, true
}

// cell projects a world point onto a screen cell inside the play area.
func (v viewport) cell(p core.Vec2) (int, int) {
	col := v.inner.X + int((p.X-v.b.XMin)/v.unitsPerCol)
	row := v.inner.Y + int((v.b.YMax-p.Y)/v.unitsPerRow)
	return core.Clamp(col, v.inner.X, v.inner.Right()-1), core.Clamp(row, v.inner.Y, v.inner.Bottom()-1)
}

// span projects a world box onto a cell rectangle, at least one cell large and
// clipped to the play area. Returns false if nothing is visible.
func (v viewport) span(box core.Box) (core.Rect, bool) {
	left := box.Center.X - box.Size.X/2
	right := box.Center.X + box.Size.X/2
	top := box.Center.Y + box.Size.Y/2
	bottom := box.Center.Y - box.Size.Y/2

	c0 := int(math.Floor((left - v.b.XMin) / v.unitsPerCol))
	c1 := int(math.Ceil((right - v.b.XMin) / v.unitsPerCol))
	r0 := int(math.Floor((v.b.YMax - top) / v.unitsPerRow))
	r1 := int(math.Ceil((v.b.YMax - bottom) / v.unitsPerRow))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	x0 := core.Clamp(v.inner.X+c0, v.inner.X, v.inner.Right())
	x1 := core.Clamp(v.inner.X+c1, v.inner.X, v.inner.Right())
	y0 := core.Clamp(v.inner.Y+r0, v.inner.Y, v.inner.Bottom())
	y1 := core.Clamp(v.inner.Y+r1, v.inner.Y, v.inner.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0), true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	v, ok := fitViewport(g.boundary, dst.Width(), dst.Height())
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	dst.DrawBox(v.frame, core.ColorGray)

	for _, t := range g.hud.Tiles {
		x, y := v.cell(t)
		dst.SetColor(x, y, TileGlyph, core.ColorGray)
	}

	for _, o := range g.world.Objects() {
		if !o.Alive() {
			continue
		}
		if r, ok := v.span(o.Box()); ok {
			dst.DrawRect(r, o.Texture.Glyph, o.Texture.Color)
		}
	}

	g.drawPlayer(dst, v)
	g.drawHUD(dst, v)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawPlayer renders the walking character. It blinks while invulnerable.
func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	if g.elapsed <= g.player.InvulnerableUntil && !g.gameOver {
		if int(g.elapsed*blinkPerSec)%2 == 1 {
			return
		}
	}

	r, ok := v.span(g.player.Box())
	if !ok {
		return
	}

	dst.DrawRect(r, PlayerBody, core.ColorBrightYellow)
	dst.SetColor(r.X+r.W/2, r.Y, PlayerHead, core.ColorBrightWhite)

	// Legs alternate with the walk frame
	if r.H > 1 {
		left, right := PlayerLegA, PlayerLegB
		if g.player.Frame == FrameTail {
			left, right = right, left
		}
		legs := r.Bottom() - 1
		dst.DrawRect(core.NewRect(r.X, legs, r.W, 1), ' ', core.ColorDefault)
		dst.SetColor(r.X, legs, left, core.ColorBrightYellow)
		dst.SetColor(r.Right()-1, legs, right, core.ColorBrightYellow)
	}
}

// drawHUD puts the life icons and score on the top border of the play area.
func (g *Game) drawHUD(dst *core.Screen, v viewport) {
	y := v.frame.Y
	x := v.frame.X + 2
	for range g.hud.LifeIcons {
		dst.SetColor(x, y, LifeGlyph, core.ColorRed)
		x += 2
	}

	score := " " + g.hud.ScoreText + " "
	sx := v.frame.Right() - 2 - len([]rune(score))
	if sx > x {
		dst.DrawTextColor(sx, y, score, core.ColorBrightWhite)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
