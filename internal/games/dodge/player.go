package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Frame is one of the two walk animation frames.
type Frame int

const (
	FrameHead Frame = iota
	FrameTail
)

// Player is the single player-controlled character.
// Times are seconds since the session started.
type Player struct {
	Pos               core.Vec2 // Center
	Size              core.Vec2
	Frame             Frame
	LastFlip          float64
	InvulnerableUntil float64
}

// NewPlayer places the player at the horizontal middle, one and a half body
// heights above the bottom edge, clamped into the play area.
func NewPlayer(cfg config.PlayerConfig, b Boundary) Player {
	pos := core.Vec2{X: b.XMid, Y: b.YMin + cfg.Height*1.5}
	return Player{
		Pos:   b.Clamp(pos, config.ClampAxis),
		Size:  core.Vec2{X: cfg.Width, Y: cfg.Height},
		Frame: FrameHead,
	}
}

// Box returns the collision box of the player.
func (p *Player) Box() core.Box {
	return core.Box{Center: p.Pos, Size: p.Size}
}

// CanBeHit reports whether a hazard hit at time now costs a life.
func (p *Player) CanBeHit(now float64) bool {
	return now > p.InvulnerableUntil
}

// Direction combines held directional actions into a movement vector (y-up).
// With diagonalRight the right input contributes (1, 1) instead of (1, 0).
func Direction(in core.InputFrame, diagonalRight bool) core.Vec2 {
	var d core.Vec2
	if in.Has(core.ActionUp) {
		d.Y++
	}
	if in.Has(core.ActionDown) {
		d.Y--
	}
	if in.Has(core.ActionLeft) {
		d.X--
	}
	if in.Has(core.ActionRight) {
		d.X++
		if diagonalRight {
			d.Y++
		}
	}
	return d
}

// Move applies held input for dt seconds at time now, keeps the player inside
// the boundary and advances the walk animation. Returns true if input moved the player.
func (p *Player) Move(in core.InputFrame, dt, now float64, cfg config.DodgeConfig, b Boundary) bool {
	dir := Direction(in, cfg.Compat.DiagonalRight)
	moving := !dir.IsZero()

	if moving {
		dir = dir.Normalize()
		if now-p.LastFlip > cfg.Player.FlipInterval.Seconds() {
			if p.Frame == FrameHead {
				p.Frame = FrameTail
			} else {
				p.Frame = FrameHead
			}
			p.LastFlip = now
		}
	}

	next := p.Pos.Add(dir.Scale(cfg.Player.Speed * dt))
	p.Pos = b.Clamp(next, cfg.Compat.Clamp)
	return moving
}
