package t2048

// DefaultFourProbability is the chance that a spawned tile is a 4 rather than a 2.
const DefaultFourProbability = 0.10

// Rand is the source of randomness for spawning. *math/rand.Rand satisfies it,
// so tests seed one for reproducible boards.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Spawner places new tiles using an injected random source.
type Spawner struct {
	rng      Rand
	fourProb float64
}

// NewSpawner creates a spawner. The probability of a 4 is clamped to [0, 1].
func NewSpawner(rng Rand, fourProb float64) *Spawner {
	return &Spawner{
		rng:      rng,
		fourProb: min(max(fourProb, 0), 1),
	}
}

// FourProbability returns the chance of spawning a 4.
func (s *Spawner) FourProbability() float64 {
	return s.fourProb
}

// Spawn returns a copy of the board with one random empty cell set to 2 or 4.
// A full board is returned unchanged.
func (s *Spawner) Spawn(board Board) Board {
	empty := EmptyCells(board)
	if len(empty) == 0 {
		return board
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}

	board[cell.Row][cell.Col] = value
	return board
}

// InitialBoard returns an empty board with two spawned tiles.
func (s *Spawner) InitialBoard() Board {
	return s.Spawn(s.Spawn(Board{}))
}

// SpawnTile spawns one tile with the default 90/10 split between 2 and 4.
func SpawnTile(board Board, rng Rand) Board {
	return NewSpawner(rng, DefaultFourProbability).Spawn(board)
}

// InitialBoard builds a starting board with the default spawn odds.
func InitialBoard(rng Rand) Board {
	return NewSpawner(rng, DefaultFourProbability).InitialBoard()
}
