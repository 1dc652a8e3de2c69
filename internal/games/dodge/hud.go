package dodge

import (
	"strconv"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// LifeIcon marks one remaining life. Index is 0-based.
type LifeIcon struct {
	Index int
}

// HUD is the presentation state: background tiles, life icons and score text.
type HUD struct {
	Tiles     []core.Vec2
	LifeIcons []LifeIcon
	ScoreText string
}

// NewHUD creates one icon per life, the score readout and the background tiling.
func NewHUD(lives, score int, b Boundary, tile float64) HUD {
	h := HUD{
		LifeIcons: make([]LifeIcon, 0, lives),
		ScoreText: strconv.Itoa(score),
		Tiles:     tilesFor(b, tile),
	}
	for i := 0; i < lives; i++ {
		h.LifeIcons = append(h.LifeIcons, LifeIcon{Index: i})
	}
	return h
}

// tilesFor lays tiles from the bottom-left corner, column by column.
func tilesFor(b Boundary, pitch float64) []core.Vec2 {
	if pitch <= 0 {
		return nil
	}
	var tiles []core.Vec2
	for x := b.XMin; x <= b.XMax; x += pitch {
		for y := b.YMin; y <= b.YMax; y += pitch {
			tiles = append(tiles, core.Vec2{X: x, Y: y})
		}
	}
	return tiles
}

// RemoveIconsFrom drops every icon whose index is >= lives. Returns how many were removed.
func (h *HUD) RemoveIconsFrom(lives int) int {
	kept := h.LifeIcons[:0]
	for _, icon := range h.LifeIcons {
		if icon.Index < lives {
			kept = append(kept, icon)
		}
	}
	removed := len(h.LifeIcons) - len(kept)
	h.LifeIcons = kept
	return removed
}

// SetScore refreshes the score readout.
func (h *HUD) SetScore(score int) {
	h.ScoreText = strconv.Itoa(score)
}
