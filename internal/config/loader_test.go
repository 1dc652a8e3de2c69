package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	cfg, err := ParseDodge(defaultDodgeYAML)
	if err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}

	def := DefaultDodgeConfig()
	if cfg.Player != def.Player {
		t.Errorf("player section differs: %+v vs %+v", cfg.Player, def.Player)
	}
	if cfg.Spawn != def.Spawn {
		t.Errorf("spawn section differs: %+v vs %+v", cfg.Spawn, def.Spawn)
	}
	if cfg.Gameplay != def.Gameplay {
		t.Errorf("gameplay section differs: %+v vs %+v", cfg.Gameplay, def.Gameplay)
	}
	if cfg.Compat != def.Compat {
		t.Errorf("compat section differs: %+v vs %+v", cfg.Compat, def.Compat)
	}
	if len(cfg.Objects.Hazards) != 2 || len(cfg.Objects.Bonuses) != 3 {
		t.Errorf("texture pools = %d/%d, expected 2/3", len(cfg.Objects.Hazards), len(cfg.Objects.Bonuses))
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	data := "gameplay:\n  level: 4\n  lives: 5\nspawn:\n  hazard_period: 500ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Gameplay.Level != 4 || cfg.Gameplay.Lives != 5 {
		t.Errorf("overrides not applied: %+v", cfg.Gameplay)
	}
	if cfg.Spawn.HazardPeriod != 500*time.Millisecond {
		t.Errorf("hazard period = %v, expected 500ms", cfg.Spawn.HazardPeriod)
	}
	// Untouched fields keep their defaults
	if cfg.Spawn.BonusPeriod != 2*time.Second || cfg.Player.Width != 70 {
		t.Errorf("defaults should survive partial files, got %+v / %+v", cfg.Spawn, cfg.Player)
	}
}

func TestLoadCustomMissing(t *testing.T) {
	_, _, err := LoadDodge(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DodgeConfig)
		wantErr string
	}{
		{"defaults", func(*DodgeConfig) {}, ""},
		{"classic", ApplyClassicCompat, ""},
		{"zero lives", func(c *DodgeConfig) { c.Gameplay.Lives = 0 }, "lives"},
		{"inverted modifiers", func(c *DodgeConfig) { c.Objects.MinModifier = 2 }, "modifier"},
		{"no hazards", func(c *DodgeConfig) { c.Objects.Hazards = nil }, "texture pools"},
		{"bad clamp", func(c *DodgeConfig) { c.Compat.Clamp = "diagonal" }, "clamp"},
		{"bad pick", func(c *DodgeConfig) { c.Compat.TexturePick = "last" }, "texture_pick"},
		{"zero period", func(c *DodgeConfig) { c.Spawn.BonusPeriod = 0 }, "spawn periods"},
		{"negative level", func(c *DodgeConfig) { c.Gameplay.Level = -10 }, "level"},
		{"NaN level", func(c *DodgeConfig) { c.Gameplay.Level = math.NaN() }, "level"},
		{"negative base speed", func(c *DodgeConfig) { c.Objects.BaseSpeed = -200 }, "base_speed"},
		{"zero fall speed", func(c *DodgeConfig) {
			c.Objects.BaseSpeed = 0
			c.Objects.SpeedPerLevel = 0
		}, "fall speed"},
		{"zero min modifier", func(c *DodgeConfig) { c.Objects.MinModifier = 0 }, "modifier"},
		{"infinite max modifier", func(c *DodgeConfig) { c.Objects.MaxModifier = math.Inf(1) }, "modifier"},
		{"NaN player width", func(c *DodgeConfig) { c.Player.Width = math.NaN() }, "player size"},
		{"NaN player speed", func(c *DodgeConfig) { c.Player.Speed = math.NaN() }, "player speed"},
		{"NaN object height", func(c *DodgeConfig) { c.Objects.Height = math.NaN() }, "object size"},
		{"NaN playfield factor", func(c *DodgeConfig) { c.Playfield.HeightFactor = math.NaN() }, "playfield factors"},
		{"NaN units per row", func(c *DodgeConfig) { c.Playfield.UnitsPerRow = math.NaN() }, "units per cell"},
		{"level zero", func(c *DodgeConfig) { c.Gameplay.Level = 0 }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseRejectsNegativeLevel(t *testing.T) {
	if _, err := ParseDodge([]byte("gameplay:\n  level: -10\n")); err == nil {
		t.Error("ParseDodge() accepted a level that makes objects rise")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultDodgeConfig()
	ApplyClassicCompat(&cfg)

	data, err := MarshalDodge(cfg)
	if err != nil {
		t.Fatalf("MarshalDodge() failed: %v", err)
	}
	back, err := ParseDodge(data)
	if err != nil {
		t.Fatalf("ParseDodge() failed: %v", err)
	}
	if back.Compat != cfg.Compat || back.Gameplay != cfg.Gameplay {
		t.Errorf("round trip changed config: %+v vs %+v", back.Compat, cfg.Compat)
	}
}
