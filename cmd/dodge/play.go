package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

var (
	flagLevel float64
	flagHold  time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game variant",
	Long: `Start playing the given variant (default: dodge).

Controls:
  Arrows/WASD  - Move
  P            - Pause
  R            - Restart (after game over)
  Q/Esc        - Quit
  ?            - Toggle help

Variants:
  dodge          - Default rules
  dodge_classic  - Classic quirks: right also moves up, one clamp edge per
                   frame, only the first sprite of each kind, exit on game over

Examples:
  dodge play
  dodge play dodge_classic
  dodge play --level 4 --seed 7
  dodge play --config ./my-dodge.yaml --log-file dodge.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&flagLevel, "level", 0, "Difficulty level, scales fall speed (default: from config)")
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHold, "How long a direction stays held after a key press")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := dodge.IDDodge
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'dodge list' to see available variants", gameID)
	}

	// Surface config errors before the alternate screen hides them
	gameCfg, _, err := config.LoadDodge(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("level") {
		gameCfg.Gameplay.Level = flagLevel
		if err := gameCfg.Validate(); err != nil {
			return fmt.Errorf("invalid --level %g: %w", flagLevel, err)
		}
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	dodge.SetConfigPath(flagConfig)
	dodge.SetLogger(logger)
	if cmd.Flags().Changed("level") {
		dodge.SetLevel(flagLevel)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	state, err := tui.Run(game, cfg, tui.Options{Hold: flagHold, Logger: logger})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if state.GameOver {
		fmt.Fprintf(cmd.OutOrStdout(), "Game over. Score: %d\n", state.Score)
	}
	return nil
}
