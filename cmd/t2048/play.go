package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/telemetry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - Restart
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options (chance that a new tile is a 4):
  easy   - 5%
  normal - 10%
  hard   - 20%

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --difficulty hard --log-file /tmp/t2048.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs are dropped unless a file is set.
	logger, closeLog, err := newLogger(appConfig.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	ctx := cmd.Context()
	stopTelemetry, err := startTelemetry(ctx, appConfig.Telemetry, logger)
	if err != nil {
		return err
	}
	defer stopTelemetry()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    appConfig.Game.Seed,
	}

	game := t2048.New(t2048.Options{
		FourProbability: appConfig.SpawnFourProbability(),
		Logger:          logger,
		Tracer:          telemetry.Tracer("game"),
	})
	game.Reset(cfg)

	return tui.Run(ctx, game, cfg)
}
