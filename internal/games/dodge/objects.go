package dodge

import (
	"math/rand"
	"unicode/utf8"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Kind tags a falling object as something to avoid or something to catch.
type Kind int

const (
	KindHazard Kind = iota // Costs a life on contact
	KindBonus              // Grants points on contact
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindHazard:
		return "hazard"
	case KindBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Texture is the terminal look of a falling object variant.
type Texture struct {
	Name  string
	Glyph rune
	Color core.Color
}

// texturesFrom converts configured textures into render-ready ones.
func texturesFrom(cfgs []config.TextureConfig) []Texture {
	out := make([]Texture, 0, len(cfgs))
	for _, c := range cfgs {
		glyph, _ := utf8.DecodeRuneInString(c.Glyph)
		if glyph == utf8.RuneError {
			glyph = '?'
		}
		out = append(out, Texture{Name: c.Name, Glyph: glyph, Color: core.ParseColor(c.Color)})
	}
	return out
}

// pickTexture chooses one texture from a non-empty pool.
// TexturePickFirst truncates a [0,1) draw before scaling, which always lands on
// index 0; the draw is still consumed so both modes advance the RNG equally.
func pickTexture(pool []Texture, rng *rand.Rand, mode config.TexturePick) Texture {
	if mode == config.TexturePickFirst {
		idx := (len(pool) - 1) * int(rng.Float64())
		return pool[idx]
	}
	return pool[int(rng.Float64()*float64(len(pool)))]
}

// fallSpeed returns the jittered fall speed for a new object at the given level.
func fallSpeed(cfg config.ObjectsConfig, level float64, rng *rand.Rand) float64 {
	base := cfg.BaseSpeed + level*cfg.SpeedPerLevel
	modifier := rng.Float64()*(cfg.MaxModifier-cfg.MinModifier) + cfg.MinModifier
	return base * modifier
}

// FallingObject is a hazard or bonus moving straight down.
// Kind and Points never change after creation.
type FallingObject struct {
	Handle    Handle
	Kind      Kind
	Pos       core.Vec2 // Center
	Size      core.Vec2
	FallSpeed float64 // World units per second
	Points    int     // Zero for hazards
	Texture   Texture

	dead bool
}

// Box returns the collision box of the object.
func (o *FallingObject) Box() core.Box {
	return core.Box{Center: o.Pos, Size: o.Size}
}

// Alive reports whether the object has not been marked for removal.
func (o *FallingObject) Alive() bool {
	return !o.dead
}
