package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Boundary is the playable rectangle in world space (y-up).
// It is computed once per session from the window size.
type Boundary struct {
	XMin, XMax float64
	YMin, YMax float64
	XMid, YMid float64
}

// ResolveBoundary returns a width x height rectangle centered on the window.
func ResolveBoundary(windowW, windowH, width, height float64) Boundary {
	xMid := windowW / 2
	yMid := windowH / 2
	return Boundary{
		XMin: xMid - width/2,
		XMax: xMid + width/2,
		YMin: yMid - height/2,
		YMax: yMid + height/2,
		XMid: xMid,
		YMid: yMid,
	}
}

// boundaryFor derives the play area from the player width and the playfield factors.
func boundaryFor(windowW, windowH float64, cfg config.DodgeConfig) Boundary {
	return ResolveBoundary(
		windowW, windowH,
		cfg.Player.Width*cfg.Playfield.WidthFactor,
		cfg.Player.Width*cfg.Playfield.HeightFactor,
	)
}

// Width returns the horizontal extent of the play area.
func (b Boundary) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the play area.
func (b Boundary) Height() float64 {
	return b.YMax - b.YMin
}

// Clamp brings p back inside the rectangle.
//
// ClampAxis corrects both axes independently. ClampPriority corrects only the
// first violated edge in the order XMax, XMin, YMax, YMin, so a point outside on
// both axes stays outside on Y for this call.
func (b Boundary) Clamp(p core.Vec2, mode config.ClampMode) core.Vec2 {
	if mode == config.ClampPriority {
		switch {
		case p.X > b.XMax:
			p.X = b.XMax
		case p.X < b.XMin:
			p.X = b.XMin
		case p.Y > b.YMax:
			p.Y = b.YMax
		case p.Y < b.YMin:
			p.Y = b.YMin
		}
		return p
	}

	p.X = core.ClampF(p.X, b.XMin, b.XMax)
	p.Y = core.ClampF(p.Y, b.YMin, b.YMax)
	return p
}
