package dodge

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

func newTestSpawner(mutate func(*config.DodgeConfig)) (*Spawner, config.DodgeConfig) {
	cfg := config.DefaultDodgeConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewSpawner(cfg, rand.New(rand.NewSource(7))), cfg
}

func TestSpawnerTimers(t *testing.T) {
	s, _ := newTestSpawner(nil)
	w := NewWorld()
	b := ResolveBoundary(1000, 1000, 490, 630)

	hazards, bonuses := 0, 0
	// 6 seconds at 100ms per tick: hazard every 1s, bonus every 2s
	for i := 0; i < 60; i++ {
		s.Tick(100 * time.Millisecond)
		for _, h := range s.Spawn(w, b, 1) {
			o, _ := w.Get(h)
			if o.Kind == KindHazard {
				hazards++
			} else {
				bonuses++
			}
		}
	}

	if hazards != 6 || bonuses != 3 {
		t.Errorf("spawned %d hazards and %d bonuses, expected 6 and 3", hazards, bonuses)
	}
}

func TestSpawnOncePerFiringTick(t *testing.T) {
	s, _ := newTestSpawner(nil)
	w := NewWorld()
	b := ResolveBoundary(1000, 1000, 490, 630)

	// One long tick wraps the hazard timer three times but spawns one hazard
	s.Tick(3 * time.Second)
	spawned := s.Spawn(w, b, 1)
	if len(spawned) != 2 {
		t.Errorf("long tick spawned %d objects, expected one hazard and one bonus", len(spawned))
	}
}

func TestSpawnedObjectProperties(t *testing.T) {
	s, cfg := newTestSpawner(nil)
	b := ResolveBoundary(1000, 1000, 490, 630)
	level := 2.0

	base := cfg.Objects.BaseSpeed + level*cfg.Objects.SpeedPerLevel
	for i := 0; i < 200; i++ {
		kind := KindHazard
		if i%2 == 1 {
			kind = KindBonus
		}
		o := s.newObject(kind, b, level)

		if o.Pos.Y != b.YMax {
			t.Fatalf("spawn Y = %v, expected YMax %v", o.Pos.Y, b.YMax)
		}
		if o.Pos.X < b.XMin || o.Pos.X >= b.XMax {
			t.Fatalf("spawn X = %v outside [%v, %v)", o.Pos.X, b.XMin, b.XMax)
		}
		if o.FallSpeed < base*cfg.Objects.MinModifier || o.FallSpeed >= base*cfg.Objects.MaxModifier {
			t.Fatalf("fall speed %v outside jitter range of base %v", o.FallSpeed, base)
		}
		switch kind {
		case KindHazard:
			if o.Points != 0 {
				t.Fatalf("hazard points = %d, expected 0", o.Points)
			}
		case KindBonus:
			if o.Points != cfg.Objects.BonusPoints {
				t.Fatalf("bonus points = %d, expected %d", o.Points, cfg.Objects.BonusPoints)
			}
		}
	}
}

func TestTexturePick(t *testing.T) {
	tests := []struct {
		name     string
		mode     config.TexturePick
		wantSeen int // distinct bonus textures seen
	}{
		{"uniform covers the pool", config.TexturePickUniform, 3},
		{"first always picks index zero", config.TexturePickFirst, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, cfg := newTestSpawner(func(c *config.DodgeConfig) { c.Compat.TexturePick = tc.mode })
			b := ResolveBoundary(1000, 1000, 490, 630)

			seen := make(map[string]bool)
			for i := 0; i < 300; i++ {
				seen[s.newObject(KindBonus, b, 1).Texture.Name] = true
			}
			if len(seen) != tc.wantSeen {
				t.Errorf("saw %d textures (%v), expected %d", len(seen), seen, tc.wantSeen)
			}
			if tc.mode == config.TexturePickFirst && !seen[cfg.Objects.Bonuses[0].Name] {
				t.Errorf("first mode should pick %q", cfg.Objects.Bonuses[0].Name)
			}
		})
	}
}
