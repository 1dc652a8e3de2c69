package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadDodge loads the dodge configuration.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default.
// Files are decoded over the built-in defaults, so partial files are allowed.
func LoadDodge(customPath string) (DodgeConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDodgeConfig(), SourceBuiltin, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseDodge(data)
		if err != nil {
			return DefaultDodgeConfig(), SourceBuiltin, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dodge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseDodge(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dodge.yaml")); err == nil {
		if cfg, err := ParseDodge(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseDodge(defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed is broken
	}
	return cfg, SourceEmbedded, nil
}

// ParseDodge decodes YAML over the defaults and validates the result.
func ParseDodge(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MarshalDodge encodes a configuration as YAML.
func MarshalDodge(cfg DodgeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable game.
func (c DodgeConfig) Validate() error {
	var errs []error

	if !finitePositive(c.Player.Width, c.Player.Height) {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if !finiteNonNegative(c.Player.Speed) {
		errs = append(errs, errors.New("player speed must not be negative"))
	}
	if !finitePositive(c.Objects.Width, c.Objects.Height) {
		errs = append(errs, errors.New("object size must be positive"))
	}
	if !finitePositive(c.Objects.MinModifier, c.Objects.MaxModifier) || c.Objects.MaxModifier < c.Objects.MinModifier {
		errs = append(errs, fmt.Errorf("speed modifier range [%g, %g] is invalid",
			c.Objects.MinModifier, c.Objects.MaxModifier))
	}
	if !finiteNonNegative(c.Gameplay.Level) {
		errs = append(errs, fmt.Errorf("level %g must not be negative", c.Gameplay.Level))
	}
	if !finiteNonNegative(c.Objects.BaseSpeed, c.Objects.SpeedPerLevel) {
		errs = append(errs, errors.New("base_speed and speed_per_level must not be negative"))
	} else if base := c.Objects.BaseSpeed + c.Gameplay.Level*c.Objects.SpeedPerLevel; !finitePositive(base) {
		errs = append(errs, fmt.Errorf("fall speed %g at level %g must be positive", base, c.Gameplay.Level))
	}
	if c.Objects.BonusPoints <= 0 {
		errs = append(errs, errors.New("bonus points must be positive"))
	}
	if len(c.Objects.Hazards) == 0 || len(c.Objects.Bonuses) == 0 {
		errs = append(errs, errors.New("hazard and bonus texture pools must not be empty"))
	}
	if c.Spawn.HazardPeriod <= 0 || c.Spawn.BonusPeriod <= 0 {
		errs = append(errs, errors.New("spawn periods must be positive"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, errors.New("lives must be positive"))
	}
	if c.Gameplay.Invulnerable < 0 {
		errs = append(errs, errors.New("invulnerable duration must not be negative"))
	}
	if !finitePositive(c.Playfield.WidthFactor, c.Playfield.HeightFactor) {
		errs = append(errs, errors.New("playfield factors must be positive"))
	}
	if !finitePositive(c.Playfield.UnitsPerColumn, c.Playfield.UnitsPerRow) {
		errs = append(errs, errors.New("playfield units per cell must be positive"))
	}
	switch c.Compat.TexturePick {
	case TexturePickUniform, TexturePickFirst:
	default:
		errs = append(errs, fmt.Errorf("unknown texture_pick %q", c.Compat.TexturePick))
	}
	switch c.Compat.Clamp {
	case ClampAxis, ClampPriority:
	default:
		errs = append(errs, fmt.Errorf("unknown clamp mode %q", c.Compat.Clamp))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid dodge config: %w", errors.Join(errs...))
	}
	return nil
}

// finitePositive reports whether every value is a real number above zero.
// NaN fails every comparison, so the checks are written to reject it.
func finitePositive(vals ...float64) bool {
	for _, v := range vals {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// finiteNonNegative reports whether every value is a real number at or above zero.
func finiteNonNegative(vals ...float64) bool {
	for _, v := range vals {
		if !(v >= 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
