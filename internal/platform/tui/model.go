package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// GameOverExiter is implemented by games that end the session on game over
// instead of waiting for a restart.
type GameOverExiter interface {
	ExitOnGameOver() bool
}

// Options tune the host.
type Options struct {
	Hold   time.Duration // Held-key window, DefaultHold when zero
	Logger *log.Logger   // Session events, discarded when nil
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	fixedSeed bool // Restarts reuse the seed when it was given explicitly
	keys      KeyMap
	help      help.Model
	held      *HeldKeys
	pending   core.InputFrame // One-shot actions for the next tick
	gameState core.GameState
	lastTick  time.Time
	logger    *log.Logger
	width     int
	height    int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	fixedSeed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH, 1)),
		config:    cfg,
		fixedSeed: fixedSeed,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		held:      NewHeldKeys(opts.Hold),
		pending:   core.NewInputFrame(),
		logger:    logger,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
}

// playHeight leaves room below the game for the help footer.
func playHeight(h, footerLines int) int {
	return core.Max(h-footerLines, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "screen", [2]int{m.config.ScreenW, m.config.ScreenH})

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Pause):
		m.pending.Set(core.ActionPause)

	case key.Matches(msg, m.keys.Restart):
		if m.gameState.GameOver {
			m.restart()
		}

	default:
		m.held.Press(m.keys.Direction(msg), now)
	}

	return m, nil
}

// restart begins a new session with the same screen.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.held.Reset()
	m.pending.Clear()
	m.lastTick = time.Time{}
	m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// handleResize processes window resize events.
// The play area is fixed for a session; only the viewport follows the window.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.pending
	m.held.Apply(&frame, now)
	frame.Delta = frameDelta(m.lastTick, now)
	m.lastTick = now

	result := m.game.Step(frame)
	m.gameState = result.State
	m.pending = core.NewInputFrame()

	for _, e := range result.Events {
		m.logger.Debug("event", "kind", e.Kind, "value", e.Value)
	}

	if result.Has(core.EventGameOver) {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
		if ex, ok := m.game.(GameOverExiter); ok && ex.ExitOnGameOver() {
			m.quitting = true
			return m, tea.Quit
		}
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	rows := playHeight(m.height, strings.Count(footer, "\n")+1)
	if m.screen.Height() != rows || m.screen.Width() != m.width {
		m.screen.Resize(m.width, rows)
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderFrame(m.screen, footer)
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
