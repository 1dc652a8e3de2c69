package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func newTestPlayer(x, y float64) Player {
	return Player{Pos: core.Vec2{X: x, Y: y}, Size: core.Vec2{X: 70, Y: 84}}
}

func spawnAt(w *World, kind Kind, x, y float64, points int) Handle {
	return w.Spawn(FallingObject{
		Kind:   kind,
		Pos:    core.Vec2{X: x, Y: y},
		Size:   core.Vec2{X: 51, Y: 73},
		Points: points,
	})
}

func TestResolveCollisionsHazard(t *testing.T) {
	w := NewWorld()
	p := newTestPlayer(50, 10)
	var q EventQueue

	h := spawnAt(w, KindHazard, 50, 60, 0)
	hits := ResolveCollisions(&p, w, 1.0, 3.0, &q)

	if hits != 1 {
		t.Fatalf("expected 1 hit, got %d", hits)
	}
	if _, ok := w.Get(h); ok {
		t.Error("hazard should be removed after a hit")
	}
	if p.InvulnerableUntil != 4.0 {
		t.Errorf("InvulnerableUntil = %v, expected 4", p.InvulnerableUntil)
	}

	events := q.Drain()
	if len(events) != 1 || events[0].Kind != core.EventLifeLost {
		t.Errorf("expected one LifeLost event, got %v", events)
	}
}

func TestResolveCollisionsInvulnerable(t *testing.T) {
	w := NewWorld()
	p := newTestPlayer(50, 10)
	p.InvulnerableUntil = 4.0
	var q EventQueue

	h := spawnAt(w, KindHazard, 50, 60, 0)
	ResolveCollisions(&p, w, 2.0, 3.0, &q)

	if _, ok := w.Get(h); ok {
		t.Error("hazard should be removed even while invulnerable")
	}
	if q.Len() != 0 {
		t.Errorf("no life should be lost while invulnerable, got %d events", q.Len())
	}
	if p.InvulnerableUntil != 4.0 {
		t.Error("window must not be extended by a blocked hit")
	}

	// The window is inclusive at its end
	spawnAt(w, KindHazard, 50, 60, 0)
	ResolveCollisions(&p, w, 4.0, 3.0, &q)
	if q.Len() != 0 {
		t.Error("hit at exactly the window end should be ignored")
	}

	spawnAt(w, KindHazard, 50, 60, 0)
	ResolveCollisions(&p, w, 4.01, 3.0, &q)
	if q.Len() != 1 {
		t.Error("hit after the window should cost a life")
	}
}

func TestResolveCollisionsBonus(t *testing.T) {
	w := NewWorld()
	p := newTestPlayer(50, 10)
	p.InvulnerableUntil = 100
	var q EventQueue

	spawnAt(w, KindBonus, 40, 20, 10)
	spawnAt(w, KindBonus, 60, 20, 25)
	ResolveCollisions(&p, w, 1.0, 3.0, &q)

	events := q.Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Spawn order is preserved
	if events[0].Value != 10 || events[1].Value != 25 {
		t.Errorf("unexpected points %d, %d", events[0].Value, events[1].Value)
	}
	if w.Live() != 0 {
		t.Errorf("collected bonuses should be removed, %d live", w.Live())
	}
}

func TestResolveCollisionsMiss(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"far above", 50, 200},
		{"far left", -100, 10},
		{"touching edge", 50 + 70.0/2 + 51.0/2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			p := newTestPlayer(50, 10)
			var q EventQueue

			h := spawnAt(w, KindHazard, tt.x, tt.y, 0)
			if hits := ResolveCollisions(&p, w, 1.0, 3.0, &q); hits != 0 {
				t.Errorf("expected no hit, got %d", hits)
			}
			if _, ok := w.Get(h); !ok {
				t.Error("missed object should stay alive")
			}
		})
	}
}
