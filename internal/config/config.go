// Package config provides YAML-based game configuration loading for the
// dodge game: sizes, speeds, spawn timing, lives and reference-compatibility
// switches.
package config

import "time"

// DodgeConfig contains all configuration for the dodge game.
type DodgeConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	Objects   ObjectsConfig   `yaml:"objects"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Playfield PlayfieldConfig `yaml:"playfield"`
	Compat    CompatConfig    `yaml:"compat"`
}

// PlayerConfig defines the player character.
type PlayerConfig struct {
	Width        float64       `yaml:"width"`         // World units
	Height       float64       `yaml:"height"`        // World units
	Speed        float64       `yaml:"speed"`         // World units per second
	FlipInterval time.Duration `yaml:"flip_interval"` // Walk animation frame period
}

// ObjectsConfig defines falling hazards and bonuses.
type ObjectsConfig struct {
	Width         float64         `yaml:"width"`
	Height        float64         `yaml:"height"`
	BaseSpeed     float64         `yaml:"base_speed"`      // Fall speed at level 0
	SpeedPerLevel float64         `yaml:"speed_per_level"` // Added per level
	MinModifier   float64         `yaml:"min_modifier"`    // Random speed jitter lower bound
	MaxModifier   float64         `yaml:"max_modifier"`    // Random speed jitter upper bound
	BonusPoints   int             `yaml:"bonus_points"`
	Hazards       []TextureConfig `yaml:"hazards"`
	Bonuses       []TextureConfig `yaml:"bonuses"`
}

// TextureConfig describes how one falling object variant looks in the terminal.
type TextureConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// SpawnConfig defines the two repeating spawn timers.
type SpawnConfig struct {
	HazardPeriod time.Duration `yaml:"hazard_period"`
	BonusPeriod  time.Duration `yaml:"bonus_period"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Level          float64       `yaml:"level"` // Speed scaling input, constant for the session
	Lives          int           `yaml:"lives"`
	Invulnerable   time.Duration `yaml:"invulnerable"`      // Grace period after a hazard hit
	ExitOnGameOver bool          `yaml:"exit_on_game_over"` // Host quits instead of showing a panel
	MaxDelta       time.Duration `yaml:"max_delta"`         // Upper bound for one tick's elapsed time
}

// PlayfieldConfig defines the play area and its mapping to terminal cells.
type PlayfieldConfig struct {
	WidthFactor    float64 `yaml:"width_factor"`     // Play area width in player widths
	HeightFactor   float64 `yaml:"height_factor"`    // Play area height in player widths
	UnitsPerColumn float64 `yaml:"units_per_column"` // World units per terminal column for window size
	UnitsPerRow    float64 `yaml:"units_per_row"`    // World units per terminal row for window size
}

// TexturePick selects how a texture is chosen from a pool.
type TexturePick string

const (
	TexturePickUniform TexturePick = "uniform"
	TexturePickFirst   TexturePick = "first" // Always the first entry, as the classic build did
)

// ClampMode selects how the player is kept inside the play area.
type ClampMode string

const (
	ClampAxis     ClampMode = "axis"     // Each axis clamped independently
	ClampPriority ClampMode = "priority" // Only the first violated edge (XMax, XMin, YMax, YMin) is corrected
)

// CompatConfig toggles behaviours of the classic build.
type CompatConfig struct {
	TexturePick   TexturePick `yaml:"texture_pick"`
	DiagonalRight bool        `yaml:"diagonal_right"` // Right input moves along (1, 1)
	Clamp         ClampMode   `yaml:"clamp"`
}
