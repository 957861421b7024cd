package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/telemetry"
)

var (
	flagMoves  string
	flagRandom int
	flagBoard  string
	flagRender bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Apply a move sequence headlessly",
	Long: `Run a game without the terminal UI and print the final board.

Moves are queued in order and applied one at a time. Moves that do not
change the board spawn nothing; moves left in the queue when the game
ends are dropped.

Examples:
  t2048 sim --seed 7 --moves l,u,r,d
  t2048 sim --seed 7 --moves lurdlurd
  t2048 sim --seed 7 --random 500
  t2048 sim --board "2 2 4 4/0 0 0 0/0 0 0 0/0 0 0 0" --moves left --render`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", `Moves to apply, e.g. "l,u,r,d" or "lurd"`)
	simCmd.Flags().IntVar(&flagRandom, "random", 0, "Append N seeded random moves")
	simCmd.Flags().StringVar(&flagBoard, "board", "", `Starting board, rows separated by "/"`)
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the rendered board")
}

// simOptions is the headless input of one sim run.
type simOptions struct {
	Moves  string
	Random int
	Board  string
	Render bool
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(appConfig.Log, os.Stderr)
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

	game := t2048.New(t2048.Options{
		FourProbability: appConfig.SpawnFourProbability(),
		Logger:          logger,
		Tracer:          telemetry.Tracer("sim"),
	})
	game.Reset(core.RuntimeConfig{Seed: appConfig.Game.Seed})

	return simulate(ctx, game, simOptions{
		Moves:  flagMoves,
		Random: flagRandom,
		Board:  flagBoard,
		Render: flagRender,
	}, cmd.OutOrStdout())
}

// simulate queues the requested moves on a reset game, flushes them and
// writes a report to out.
func simulate(ctx context.Context, game *t2048.Game, opts simOptions, out io.Writer) error {
	if opts.Board != "" {
		board, err := t2048.ParseBoard(opts.Board)
		if err != nil {
			return fmt.Errorf("--board: %w", err)
		}
		if err := game.SetBoard(board); err != nil {
			return fmt.Errorf("--board: %w", err)
		}
	}

	dirs, err := t2048.ParseDirections(opts.Moves)
	if err != nil {
		return fmt.Errorf("--moves: %w", err)
	}
	if opts.Random < 0 {
		return fmt.Errorf("--random must be non-negative, got %d", opts.Random)
	}
	if opts.Random > 0 {
		rng := rand.New(rand.NewSource(game.Seed()))
		for range opts.Random {
			dirs = append(dirs, t2048.Directions[rng.Intn(len(t2048.Directions))])
		}
	}

	for _, d := range dirs {
		game.Push(d)
	}
	applied := game.Flush(ctx)

	snap := game.Snapshot()
	fmt.Fprintf(out, "seed:  %d\n", snap.Seed)
	fmt.Fprintf(out, "moves: %d/%d changed the board\n", applied, len(dirs))
	fmt.Fprintf(out, "state: %s\n", snap.State)
	fmt.Fprintf(out, "max:   %d\n", snap.MaxTile)
	fmt.Fprintf(out, "board: %s\n", snap.Board)

	if opts.Render {
		w, h := t2048.MinScreenSize()
		screen := core.NewScreen(w, h)
		game.Render(screen)
		fmt.Fprintln(out, screen.String())
	} else {
		for _, row := range snap.Board {
			for _, v := range row {
				fmt.Fprintf(out, "%6d", v)
			}
			fmt.Fprintln(out)
		}
	}
	return nil
}
