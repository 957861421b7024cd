package t2048

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns canned values so spawn placement can be asserted exactly.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(n int) int {
	return r.n % n
}

func (r fixedRand) Float64() float64 {
	return r.f
}

func TestSpawnTileChangesExactlyOneEmptyCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	board := Board{
		{2, 0, 4, 0},
		{0, 8, 0, 0},
		{16, 0, 0, 32},
		{0, 0, 64, 0},
	}

	for range 200 {
		next := SpawnTile(board, rng)

		changed := 0
		for r := range BoardSize {
			for c := range BoardSize {
				if board[r][c] == next[r][c] {
					continue
				}
				changed++
				require.Zero(t, board[r][c], "spawn overwrote a tile at (%d,%d)", r, c)
				assert.Contains(t, []int{2, 4}, next[r][c])
			}
		}
		assert.Equal(t, 1, changed)
	}
}

func TestSpawnTilePlacement(t *testing.T) {
	board := Board{
		{2, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	// Second empty cell in row-major order is (0,3); 0.05 < 0.10 spawns a 4.
	next := NewSpawner(fixedRand{n: 1, f: 0.05}, DefaultFourProbability).Spawn(board)
	assert.Equal(t, 4, next[0][3])

	// 0.5 is above the 4 threshold, so a 2 lands in the first empty cell.
	next = NewSpawner(fixedRand{n: 0, f: 0.5}, DefaultFourProbability).Spawn(board)
	assert.Equal(t, 2, next[0][1])
}

func TestSpawnTileFullBoard(t *testing.T) {
	board := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	assert.Equal(t, board, SpawnTile(board, rand.New(rand.NewSource(3))))
}

func TestSpawnTileDoesNotMutateInput(t *testing.T) {
	board := Board{}
	_ = SpawnTile(board, rand.New(rand.NewSource(5)))
	assert.Equal(t, Board{}, board)
}

func TestSpawnDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	seen := make(map[Cell]int)
	fours := 0
	const samples = 5000

	for range samples {
		next := SpawnTile(Board{}, rng)
		for r := range BoardSize {
			for c := range BoardSize {
				if next[r][c] != 0 {
					seen[Cell{Row: r, Col: c}]++
					if next[r][c] == 4 {
						fours++
					}
				}
			}
		}
	}

	assert.Len(t, seen, BoardSize*BoardSize, "every empty cell should be reachable")
	assert.InDelta(t, 0.10, float64(fours)/samples, 0.03)
}

func TestSpawnerProbabilityBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	always4 := NewSpawner(rng, 1.5)
	assert.Equal(t, 1.0, always4.FourProbability())
	assert.Equal(t, 4, MaxTile(always4.Spawn(Board{})))

	never4 := NewSpawner(rng, -0.2)
	assert.Equal(t, 0.0, never4.FourProbability())
	for range 50 {
		assert.Equal(t, 2, MaxTile(never4.Spawn(Board{})))
	}
}

func TestInitialBoard(t *testing.T) {
	board := InitialBoard(rand.New(rand.NewSource(12345)))
	assert.Len(t, EmptyCells(board), BoardSize*BoardSize-2)
	assert.NoError(t, Validate(board))

	// Same seed, same board
	assert.Equal(t, board, InitialBoard(rand.New(rand.NewSource(12345))))
}
