// Package t2048 implements the 2048 sliding-tile puzzle: a pure board core
// (ReduceLine, Transform, SpawnTile, IsTerminal) and the Game shell that owns
// the current board and feeds player moves through it one at a time.
package t2048

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gammazero/deque"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// State is the game lifecycle state.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// Options configures a Game.
type Options struct {
	FourProbability float64      // Chance a spawned tile is a 4
	Logger          *log.Logger  // Defaults to a discarding logger
	Tracer          trace.Tracer // Defaults to a no-op tracer
}

// DefaultOptions returns options with the classic 90/10 spawn split.
func DefaultOptions() Options {
	return Options{FourProbability: DefaultFourProbability}
}

// Game holds the single canonical board of a play session.
// It is not safe for concurrent use; callers serialize input.
type Game struct {
	id       uuid.UUID
	seed     int64
	rng      *rand.Rand
	spawner  *Spawner
	fourProb float64

	board Board
	state State
	moves int // effective moves since the last reset

	queue deque.Deque // pending Directions, oldest first

	logger *log.Logger
	tracer trace.Tracer
}

// New creates a game. Call Reset before use.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("t2048")
	}

	return &Game{
		fourProb: opts.FourProbability,
		logger:   logger,
		tracer:   tracer,
	}
}

// Reset starts a new game with an empty board and two spawned tiles.
// A zero seed is replaced with a time-based one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.id = uuid.New()
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
	g.spawner = NewSpawner(g.rng, g.fourProb)
	g.board = g.spawner.InitialBoard()
	g.state = StatePlaying
	g.moves = 0
	for g.queue.Len() > 0 {
		g.queue.PopFront()
	}

	g.logger.Info("new game", "game", g.id, "seed", seed, "four_probability", g.spawner.FourProbability())
	g.checkTerminal()
}

// Restart begins a fresh game. The new seed is drawn from the current
// generator, so a seeded session stays reproducible across restarts.
func (g *Game) Restart() {
	g.Reset(core.RuntimeConfig{Seed: g.rng.Int63()})
}

// SetBoard replaces the current board, for example with a position read
// from the command line. The queue is cleared and the game re-enters
// Playing unless the board is already terminal.
func (g *Game) SetBoard(board Board) error {
	if err := Validate(board); err != nil {
		return err
	}
	if g.rng == nil {
		g.Reset(core.RuntimeConfig{})
	}

	g.board = board
	g.state = StatePlaying
	g.moves = 0
	for g.queue.Len() > 0 {
		g.queue.PopFront()
	}

	g.logger.Debug("board loaded", "game", g.id, "board", board)
	g.checkTerminal()
	return nil
}

// ID returns the session identifier used in logs.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Seed returns the seed of the current game.
func (g *Game) Seed() int64 {
	return g.seed
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Over reports whether no further moves are accepted.
func (g *Game) Over() bool {
	return g.state == StateGameOver
}

// Moves returns the number of effective moves since the last reset.
func (g *Game) Moves() int {
	return g.moves
}

// Pending returns the number of queued directions.
func (g *Game) Pending() int {
	return g.queue.Len()
}

// Push queues a direction. Nothing happens until Flush.
func (g *Game) Push(dir Direction) {
	g.queue.PushBack(dir)
}

// Flush applies queued directions in arrival order and returns how many
// changed the board. Directions still queued when the game ends are dropped.
func (g *Game) Flush(ctx context.Context) int {
	changed := 0
	for g.queue.Len() > 0 {
		dir, ok := g.queue.PopFront().(Direction)
		if !ok || g.Over() {
			continue
		}
		if g.apply(ctx, dir) {
			changed++
		}
	}
	return changed
}

// Move applies a single direction and reports whether the board changed.
func (g *Game) Move(ctx context.Context, dir Direction) bool {
	g.Push(dir)
	return g.Flush(ctx) > 0
}

// actionDirections maps the platform move actions to board directions.
var actionDirections = map[core.Action]Direction{
	core.ActionUp:    DirUp,
	core.ActionDown:  DirDown,
	core.ActionLeft:  DirLeft,
	core.ActionRight: DirRight,
}

// Step handles one platform action. Returns true if the board was replaced.
func (g *Game) Step(ctx context.Context, action core.Action) bool {
	switch {
	case action.IsMove():
		return g.Move(ctx, actionDirections[action])
	case action == core.ActionRestart:
		g.Restart()
		return true
	default:
		return false
	}
}

// apply runs transform, no-op check, spawn and terminal check for one move.
func (g *Game) apply(ctx context.Context, dir Direction) bool {
	_, span := g.tracer.Start(ctx, "t2048.move",
		trace.WithAttributes(attribute.String("direction", dir.String())))
	defer span.End()

	next := Transform(g.board, dir)
	if Equal(next, g.board) {
		span.SetAttributes(attribute.Bool("changed", false))
		return false
	}

	g.board = g.spawner.Spawn(next)
	g.moves++
	g.logger.Debug("move", "game", g.id, "dir", dir, "n", g.moves, "max", MaxTile(g.board))

	g.checkTerminal()
	span.SetAttributes(
		attribute.Bool("changed", true),
		attribute.Bool("terminal", g.Over()),
		attribute.Int("max_tile", MaxTile(g.board)),
	)
	return true
}

func (g *Game) checkTerminal() {
	if g.state == StatePlaying && IsTerminal(g.board) {
		g.state = StateGameOver
		g.logger.Info("game over", "game", g.id, "moves", g.moves, "max", MaxTile(g.board))
	}
}
