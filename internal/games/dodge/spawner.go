package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Spawner creates hazards and bonuses on two independent repeating timers.
type Spawner struct {
	hazardTimer *core.Timer
	bonusTimer  *core.Timer
	hazards     []Texture
	bonuses     []Texture
	objects     config.ObjectsConfig
	pick        config.TexturePick
	rng         *rand.Rand
}

// NewSpawner creates a spawner drawing randomness from rng.
func NewSpawner(cfg config.DodgeConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		hazardTimer: core.NewTimer(cfg.Spawn.HazardPeriod),
		bonusTimer:  core.NewTimer(cfg.Spawn.BonusPeriod),
		hazards:     texturesFrom(cfg.Objects.Hazards),
		bonuses:     texturesFrom(cfg.Objects.Bonuses),
		objects:     cfg.Objects,
		pick:        cfg.Compat.TexturePick,
		rng:         rng,
	}
}

// Tick advances both timers. Must run before Spawn in the same tick.
func (s *Spawner) Tick(dt time.Duration) {
	s.hazardTimer.Tick(dt)
	s.bonusTimer.Tick(dt)
}

// Spawn creates at most one hazard and one bonus, one for each timer that
// fired during the last Tick. Returns the handles created, hazards first.
func (s *Spawner) Spawn(w *World, b Boundary, level float64) []Handle {
	var spawned []Handle
	if s.hazardTimer.Finished() {
		spawned = append(spawned, w.Spawn(s.newObject(KindHazard, b, level)))
	}
	if s.bonusTimer.Finished() {
		spawned = append(spawned, w.Spawn(s.newObject(KindBonus, b, level)))
	}
	return spawned
}

// newObject builds an object at a random X along the top edge.
func (s *Spawner) newObject(kind Kind, b Boundary, level float64) FallingObject {
	pool, points := s.hazards, 0
	if kind == KindBonus {
		pool, points = s.bonuses, s.objects.BonusPoints
	}

	texture := pickTexture(pool, s.rng, s.pick)
	x := s.rng.Float64()*b.Width() + b.XMin

	return FallingObject{
		Kind:      kind,
		Pos:       core.Vec2{X: x, Y: b.YMax},
		Size:      core.Vec2{X: s.objects.Width, Y: s.objects.Height},
		FallSpeed: fallSpeed(s.objects, level, s.rng),
		Points:    points,
		Texture:   texture,
	}
}
