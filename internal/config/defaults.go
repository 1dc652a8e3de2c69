package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Player: PlayerConfig{
			Width:        70,
			Height:       84,
			Speed:        300,
			FlipInterval: 250 * time.Millisecond,
		},
		Objects: ObjectsConfig{
			Width:         51,
			Height:        73,
			BaseSpeed:     150,
			SpeedPerLevel: 30,
			MinModifier:   0.5,
			MaxModifier:   1.5,
			BonusPoints:   10,
			Hazards: []TextureConfig{
				{Name: "ghost_normal", Glyph: "▓", Color: "bright_red"},
				{Name: "ghost", Glyph: "▒", Color: "magenta"},
			},
			Bonuses: []TextureConfig{
				{Name: "slime", Glyph: "●", Color: "bright_magenta"},
				{Name: "slime_blue", Glyph: "●", Color: "bright_blue"},
				{Name: "slime_green", Glyph: "●", Color: "bright_green"},
			},
		},
		Spawn: SpawnConfig{
			HazardPeriod: time.Second,
			BonusPeriod:  2 * time.Second,
		},
		Gameplay: GameplayConfig{
			Level:          1,
			Lives:          3,
			Invulnerable:   3 * time.Second,
			ExitOnGameOver: false,
			MaxDelta:       100 * time.Millisecond,
		},
		Playfield: PlayfieldConfig{
			WidthFactor:    7,
			HeightFactor:   9,
			UnitsPerColumn: 10,
			UnitsPerRow:    20,
		},
		Compat: CompatConfig{
			TexturePick:   TexturePickUniform,
			DiagonalRight: false,
			Clamp:         ClampAxis,
		},
	}
}

// ApplyClassicCompat switches every compatibility toggle to the classic build's behaviour.
func ApplyClassicCompat(cfg *DodgeConfig) {
	cfg.Compat.TexturePick = TexturePickFirst
	cfg.Compat.DiagonalRight = true
	cfg.Compat.Clamp = ClampPriority
	cfg.Gameplay.ExitOnGameOver = true
}
