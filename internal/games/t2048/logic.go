package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// BoardSize is the board dimension.
const BoardSize = 4

// Board represents a 4x4 game board addressed as Board[row][col].
// Zero is an empty cell. Being an array, a Board is copied on assignment,
// so every function below works on its own copy.
type Board [BoardSize][BoardSize]int

// Line is one row or column, oriented so index 0 is the edge tiles slide toward.
type Line [BoardSize]int

type axis int

const (
	axisRow axis = iota
	axisColumn
)

// orientation says which lines a direction reduces and from which end.
type orientation struct {
	axis     axis
	reversed bool
}

func (d Direction) orientation() (orientation, bool) {
	switch d {
	case DirLeft:
		return orientation{axis: axisRow}, true
	case DirRight:
		return orientation{axis: axisRow, reversed: true}, true
	case DirUp:
		return orientation{axis: axisColumn}, true
	case DirDown:
		return orientation{axis: axisColumn, reversed: true}, true
	default:
		return orientation{}, false
	}
}

// cell maps position i of line k to board coordinates.
func (o orientation) cell(k, i int) (row, col int) {
	if o.reversed {
		i = BoardSize - 1 - i
	}
	if o.axis == axisRow {
		return k, i
	}
	return i, k
}

// ReduceLine slides every tile toward index 0 and merges equal neighbours.
// Each tile takes part in at most one merge, so {2,2,2,2} becomes {4,4,0,0}.
func ReduceLine(line Line) Line {
	tiles := compact(line[:])

	for i := 0; i < len(tiles)-1; i++ {
		if tiles[i] == tiles[i+1] {
			tiles[i] *= 2
			tiles[i+1] = 0 // sentinel, dropped below
		}
	}

	var result Line
	copy(result[:], compact(tiles))
	return result
}

// compact returns the non-zero values in order.
func compact(values []int) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}

// Transform applies ReduceLine to every row or column as the direction
// requires and returns the resulting board. The caller compares the result
// with the input to tell whether the move did anything.
func Transform(board Board, dir Direction) Board {
	o, ok := dir.orientation()
	if !ok {
		return board
	}

	var result Board
	for k := range BoardSize {
		var line Line
		for i := range BoardSize {
			r, c := o.cell(k, i)
			line[i] = board[r][c]
		}

		reduced := ReduceLine(line)
		for i := range BoardSize {
			r, c := o.cell(k, i)
			result[r][c] = reduced[i]
		}
	}
	return result
}

// Equal reports whether two boards hold the same values.
func Equal(a, b Board) bool {
	return a == b
}

// IsTerminal returns true if no move can change the board: there is no
// empty cell and no two orthogonally adjacent cells are equal.
// Comparing each cell with its upper and left neighbours covers every pair.
func IsTerminal(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			v := board[r][c]
			if v == 0 {
				return false
			}
			if r > 0 && board[r-1][c] == v {
				return false
			}
			if c > 0 && board[r][c-1] == v {
				return false
			}
		}
	}
	return true
}

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			maxVal = max(maxVal, board[r][c])
		}
	}
	return maxVal
}

// Sum returns the total of all tile values. Moves never change it.
func Sum(board Board) int {
	total := 0
	for r := range BoardSize {
		for c := range BoardSize {
			total += board[r][c]
		}
	}
	return total
}
