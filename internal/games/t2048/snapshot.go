package t2048

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	ID      string
	Seed    int64
	Board   Board
	State   State
	Moves   int
	MaxTile int
	Empty   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:      g.id.String(),
		Seed:    g.seed,
		Board:   g.board,
		State:   g.state,
		Moves:   g.moves,
		MaxTile: MaxTile(g.board),
		Empty:   len(EmptyCells(g.board)),
	}
}
