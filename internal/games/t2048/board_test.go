package t2048

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
	}{
		{"up", DirUp},
		{"U", DirUp},
		{"Down", DirDown},
		{"d", DirDown},
		{" left ", DirLeft},
		{"l", DirLeft},
		{"RIGHT", DirRight},
		{"r", DirRight},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, got, tt.in)
	}

	_, err := ParseDirection("north")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestParseDirections(t *testing.T) {
	dirs, err := ParseDirections("left, up right\ndown")
	require.NoError(t, err)
	assert.Equal(t, []Direction{DirLeft, DirUp, DirRight, DirDown}, dirs)

	dirs, err = ParseDirections("lurd")
	require.NoError(t, err)
	assert.Equal(t, []Direction{DirLeft, DirUp, DirRight, DirDown}, dirs)

	dirs, err = ParseDirections("")
	require.NoError(t, err)
	assert.Empty(t, dirs)

	_, err = ParseDirections("lxr")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", DirUp.String())
	assert.Equal(t, "right", DirRight.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}

func TestBoardStringRoundTrip(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 1024, 0},
		{0, 0, 0, 65536},
	}

	text := board.String()
	assert.Equal(t, "2 2 0 0/0 4 0 0/0 0 1024 0/0 0 0 65536", text)

	parsed, err := ParseBoard(text)
	require.NoError(t, err)
	assert.Equal(t, board, parsed)
}

func TestParseBoardFormats(t *testing.T) {
	parsed, err := ParseBoard("2,2,0,0\n0,0,0,0\n0,0,0,0\n0,0,0,4\n")
	require.NoError(t, err)
	assert.Equal(t, Board{{2, 2, 0, 0}, {}, {}, {0, 0, 0, 4}}, parsed)
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"too few rows", "2 0 0 0/0 0 0 0", ErrInvalidBoard},
		{"short row", "2 0 0/0 0 0 0/0 0 0 0/0 0 0 0", ErrInvalidBoard},
		{"not a number", "2 x 0 0/0 0 0 0/0 0 0 0/0 0 0 0", ErrInvalidBoard},
		{"not a power of two", "3 0 0 0/0 0 0 0/0 0 0 0/0 0 0 0", ErrInvalidTile},
		{"one is not a tile", "1 0 0 0/0 0 0 0/0 0 0 0/0 0 0 0", ErrInvalidTile},
		{"negative", "-2 0 0 0/0 0 0 0/0 0 0 0/0 0 0 0", ErrInvalidTile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.in)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
