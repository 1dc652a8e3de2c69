// Package dodge implements a falling-object dodge game: the player moves
// around a fixed play area, avoids falling hazards, catches falling bonuses and
// loses when all lives are gone.
package dodge

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// Registered variant IDs.
const (
	IDDodge   = "dodge"
	IDClassic = "dodge_classic"
)

// Game implements the dodge game logic.
type Game struct {
	id      string
	classic bool
	fixed   *config.DodgeConfig // Bypasses config loading when set

	runtime  core.RuntimeConfig
	cfg      config.DodgeConfig
	rng      *rand.Rand
	boundary Boundary
	world    *World
	spawner  *Spawner
	player   Player
	hud      HUD
	events   EventQueue

	level     float64
	lives     int
	score     int
	elapsed   float64 // Seconds of unpaused simulation
	tickCount int
	paused    bool
	gameOver  bool
}

var (
	configPath    string
	levelOverride *float64
	logger        = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevel overrides the configured level for games reset afterwards.
func SetLevel(level float64) {
	levelOverride = &level
}

// SetLogger sets the logger used by all dodge games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates the standard dodge game.
func New() *Game {
	return &Game{id: IDDodge}
}

// NewClassic creates the variant that keeps the classic build's quirks.
func NewClassic() *Game {
	return &Game{id: IDClassic, classic: true}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(cfg config.DodgeConfig) *Game {
	return &Game{id: IDDodge, fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Dodge (classic)"
	}
	return "Dodge"
}

// Description returns a one-line summary for game lists.
func (g *Game) Description() string {
	if g.classic {
		return "Dodge with the original movement, clamping and sprite quirks"
	}
	return "Dodge falling ghosts, catch slimes, keep your lives"
}

// ExitOnGameOver tells the host to end the session instead of offering a restart.
func (g *Game) ExitOnGameOver() bool {
	return g.cfg.Gameplay.ExitOnGameOver
}

// loadConfig resolves the configuration for a new session.
func (g *Game) loadConfig() config.DodgeConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, src, err := config.LoadDodge(configPath)
	if err != nil {
		logger.Warn("using built-in config", "error", err)
	} else {
		logger.Debug("config loaded", "source", src)
	}
	if g.classic {
		config.ApplyClassicCompat(&cfg)
	}
	if levelOverride != nil {
		withLevel := cfg
		withLevel.Gameplay.Level = *levelOverride
		if err := withLevel.Validate(); err != nil {
			logger.Warn("ignoring level override", "level", *levelOverride, "error", err)
		} else {
			cfg = withLevel
		}
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	windowW := float64(runtime.ScreenW) * g.cfg.Playfield.UnitsPerColumn
	windowH := float64(runtime.ScreenH) * g.cfg.Playfield.UnitsPerRow
	g.boundary = boundaryFor(windowW, windowH, g.cfg)

	if g.world == nil {
		g.world = NewWorld()
	} else {
		g.world.Reset()
	}
	g.spawner = NewSpawner(g.cfg, g.rng)
	g.player = NewPlayer(g.cfg.Player, g.boundary)
	g.events = EventQueue{}

	g.level = g.cfg.Gameplay.Level
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.elapsed = 0
	g.tickCount = 0
	g.paused = false
	g.gameOver = false
	g.hud = NewHUD(g.lives, g.score, g.boundary, g.cfg.Player.Width)

	logger.Info("session started",
		"game", g.id,
		"level", g.level,
		"lives", g.lives,
		"boundary", g.boundary,
	)
}

// delta returns this tick's elapsed time, bounded by max_delta.
func (g *Game) delta(in core.InputFrame) time.Duration {
	dt := in.Delta
	if dt <= 0 {
		dt = g.runtime.TickDuration()
	}
	if limit := g.cfg.Gameplay.MaxDelta; limit > 0 && dt > limit {
		dt = limit
	}
	return dt
}

// Step advances the game by one tick.
// Order: timers, spawns, fall, cleanup, player, collisions, outcome handlers,
// game-over gate, compaction.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.delta(in)
	secs := dt.Seconds()
	g.tickCount++
	g.elapsed += secs

	g.spawner.Tick(dt)
	for _, h := range g.spawner.Spawn(g.world, g.boundary, g.level) {
		if o, ok := g.world.Get(h); ok {
			logger.Debug("spawned", "kind", o.Kind, "texture", o.Texture.Name, "x", o.Pos.X, "speed", o.FallSpeed)
		}
	}

	Fall(g.world, secs)
	Cleanup(g.world, g.boundary)

	g.player.Move(in, secs, g.elapsed, g.cfg, g.boundary)

	ResolveCollisions(&g.player, g.world, g.elapsed, g.cfg.Gameplay.Invulnerable.Seconds(), &g.events)

	events := g.handleEvents()
	events = g.checkGameOver(events)

	g.world.Compact()

	return core.StepResult{State: g.State(), Events: events}
}

// handleEvents applies queued outcomes to lives, score and the HUD.
// Returned events carry the value after the change was applied.
func (g *Game) handleEvents() []core.Event {
	pending := g.events.Drain()
	out := make([]core.Event, 0, len(pending))

	for _, e := range pending {
		switch e.Kind {
		case core.EventLifeLost:
			if g.lives == 0 {
				continue
			}
			g.lives--
			g.hud.RemoveIconsFrom(g.lives)
			logger.Info("life lost", "lives", g.lives, "invulnerable_until", g.player.InvulnerableUntil)
			out = append(out, core.Event{Kind: core.EventLifeLost, Value: g.lives})

		case core.EventPointsEarned:
			g.score += e.Value
			g.hud.SetScore(g.score)
			logger.Info("points earned", "points", e.Value, "score", g.score)
			out = append(out, e)
		}
	}
	return out
}

// checkGameOver latches game over the first time lives reach zero.
func (g *Game) checkGameOver(events []core.Event) []core.Event {
	if g.gameOver || g.lives > 0 {
		return events
	}
	g.gameOver = true
	logger.Info("game over", "score", g.score, "ticks", g.tickCount, "elapsed", g.elapsed)
	return append(events, core.Event{Kind: core.EventGameOver, Value: g.score})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Boundary returns the play area of the current session.
func (g *Game) Boundary() Boundary {
	return g.boundary
}

// Register the game variants with the registry
func init() {
	registry.Register(IDDodge, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}
