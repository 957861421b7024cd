package t2048

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceLine(t *testing.T) {
	tests := []struct {
		name     string
		input    Line
		expected Line
	}{
		{"simple merge", Line{2, 2, 0, 0}, Line{4, 0, 0, 0}},
		{"merge with trailing tile", Line{2, 2, 2, 0}, Line{4, 2, 0, 0}},
		{"no cascading merge", Line{2, 2, 2, 2}, Line{4, 4, 0, 0}},
		{"merged tile does not merge again", Line{4, 4, 8, 0}, Line{8, 8, 0, 0}},
		{"no merge possible", Line{2, 4, 8, 16}, Line{2, 4, 8, 16}},
		{"alternating values", Line{2, 4, 2, 4}, Line{2, 4, 2, 4}},
		{"slide with gap", Line{0, 0, 2, 2}, Line{4, 0, 0, 0}},
		{"merge across gaps", Line{0, 2, 0, 2}, Line{4, 0, 0, 0}},
		{"slide with multiple gaps", Line{2, 0, 0, 2}, Line{4, 0, 0, 0}},
		{"leftmost pair merges first", Line{8, 4, 4, 4}, Line{8, 8, 4, 0}},
		{"no change needed", Line{4, 2, 0, 0}, Line{4, 2, 0, 0}},
		{"empty line", Line{0, 0, 0, 0}, Line{0, 0, 0, 0}},
		{"single tile", Line{0, 4, 0, 0}, Line{4, 0, 0, 0}},
		{"single tile at far edge", Line{0, 0, 0, 1024}, Line{1024, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReduceLine(tt.input), "ReduceLine(%v)", tt.input)
		})
	}
}

func TestReduceLineDoesNotMutateInput(t *testing.T) {
	line := Line{2, 2, 0, 4}
	_ = ReduceLine(line)
	assert.Equal(t, Line{2, 2, 0, 4}, line)
}

func TestReduceLineFixedPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 500 {
		reduced := ReduceLine(randomLine(rng))
		again := ReduceLine(reduced)

		if hasAdjacentPair(reduced) {
			// Two tiles produced side by side (e.g. {4,4,0,0}) merge on the next pass.
			assert.NotEqual(t, reduced, again)
			continue
		}
		assert.Equal(t, reduced, again, "reduced line %v should be a fixed point", reduced)
	}
}

func TestReduceLinePreservesSum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for range 500 {
		line := randomLine(rng)
		before, after := 0, 0
		for i := range BoardSize {
			before += line[i]
		}
		reduced := ReduceLine(line)
		for i := range BoardSize {
			after += reduced[i]
		}
		assert.Equal(t, before, after, "sum changed for %v -> %v", line, reduced)
	}
}

func TestTransformLeft(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result := Transform(board, DirLeft)
	if result != expected {
		t.Errorf("Transform left: got\n%v\nwant\n%v", result, expected)
	}
}

func TestTransformRight(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result := Transform(board, DirRight)
	if result != expected {
		t.Errorf("Transform right: got\n%v\nwant\n%v", result, expected)
	}
}

func TestTransformRightSinglePair(t *testing.T) {
	board := Board{{2, 2, 0, 0}}
	assert.Equal(t, Board{{0, 0, 0, 4}}, Transform(board, DirRight))
}

func TestTransformUp(t *testing.T) {
	board := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result := Transform(board, DirUp)
	if result != expected {
		t.Errorf("Transform up: got\n%v\nwant\n%v", result, expected)
	}
}

func TestTransformDown(t *testing.T) {
	board := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result := Transform(board, DirDown)
	if result != expected {
		t.Errorf("Transform down: got\n%v\nwant\n%v", result, expected)
	}
}

func TestTransformUnknownDirection(t *testing.T) {
	board := Board{{2, 0, 2, 0}}
	assert.Equal(t, board, Transform(board, Direction(42)))
}

func TestTransformNoChange(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	// Already left-aligned with no pairs
	assert.True(t, Equal(board, Transform(board, DirLeft)))
	assert.True(t, Equal(board, Transform(board, DirUp)))
	assert.False(t, Equal(board, Transform(board, DirRight)))
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 4, 0, 4},
		{8, 0, 8, 0},
		{0, 0, 0, 2},
	}
	original := board

	for _, dir := range Directions {
		_ = Transform(board, dir)
		assert.Equal(t, original, board, "input mutated by %s", dir)
	}
}

func TestTransformProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))

	for range 300 {
		board := randomBoard(rng)
		for _, dir := range Directions {
			once := Transform(board, dir)

			assert.Equal(t, Sum(board), Sum(once), "sum changed moving %s:\n%v", dir, board)
			assert.NoError(t, Validate(once))

			if !hasMergeAlong(once, dir) {
				assert.Equal(t, once, Transform(once, dir),
					"second %s move should be a no-op for\n%v", dir, once)
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		expected bool
	}{
		{
			name: "all distinct",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
		{
			name: "checkerboard",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			expected: true,
		},
		{
			name: "horizontal pair",
			board: Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: false,
		},
		{
			name: "vertical pair in last column",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 4096},
			},
			expected: false,
		},
		{
			name: "single empty cell",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: false,
		},
		{
			name:     "empty board",
			board:    Board{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTerminal(tt.board))
		})
	}
}

func TestIsTerminalMatchesMoveAvailability(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for range 500 {
		board := randomFullBoard(rng)
		canMove := false
		for _, dir := range Directions {
			if !Equal(board, Transform(board, dir)) {
				canMove = true
			}
		}
		assert.Equal(t, !canMove, IsTerminal(board), "board:\n%v", board)
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	assert.Equal(t, 2048, MaxTile(board))
	assert.Equal(t, 0, MaxTile(Board{}))
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(board)
	assert.Len(t, cells, 8)
	assert.Equal(t, Cell{Row: 0, Col: 1}, cells[0])
	assert.Equal(t, Cell{Row: 3, Col: 2}, cells[7])
	assert.True(t, HasEmptyCell(board))
	assert.False(t, HasEmptyCell(Board{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 2}}))
}

func randomLine(rng *rand.Rand) Line {
	var l Line
	for i := range BoardSize {
		l[i] = randomTile(rng)
	}
	return l
}

func randomBoard(rng *rand.Rand) Board {
	var b Board
	for r := range BoardSize {
		for c := range BoardSize {
			b[r][c] = randomTile(rng)
		}
	}
	return b
}

func randomFullBoard(rng *rand.Rand) Board {
	var b Board
	for r := range BoardSize {
		for c := range BoardSize {
			b[r][c] = 2 << rng.Intn(3) // 2, 4 or 8 so pairs stay likely
		}
	}
	return b
}

// randomTile returns 0 half the time, otherwise 2..32.
func randomTile(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return 0
	}
	return 2 << rng.Intn(5)
}

func hasAdjacentPair(l Line) bool {
	for i := 0; i < BoardSize-1; i++ {
		if l[i] != 0 && l[i] == l[i+1] {
			return true
		}
	}
	return false
}

// hasMergeAlong reports whether any line of an already-compacted board
// still holds an equal pair along the direction's axis.
func hasMergeAlong(b Board, dir Direction) bool {
	o, _ := dir.orientation()
	for k := range BoardSize {
		var l Line
		for i := range BoardSize {
			r, c := o.cell(k, i)
			l[i] = b[r][c]
		}
		if hasAdjacentPair(l) {
			return true
		}
	}
	return false
}
