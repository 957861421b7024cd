package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidBoard is returned when board text has the wrong shape.
	ErrInvalidBoard = errors.New("t2048: invalid board")
	// ErrInvalidTile is returned for cells that are neither empty nor a power of two >= 2.
	ErrInvalidTile = errors.New("t2048: invalid tile")
	// ErrUnknownDirection is returned by ParseDirection.
	ErrUnknownDirection = errors.New("t2048: unknown direction")
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses a direction name or its first letter.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ParseDirections parses a list such as "l,u,r,d" or "left up".
// A run of letters without separators ("lurd") is read one letter per move.
func ParseDirections(s string) ([]Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	var dirs []Direction
	for _, f := range fields {
		if d, err := ParseDirection(f); err == nil {
			dirs = append(dirs, d)
			continue
		}
		for _, r := range f {
			d, err := ParseDirection(string(r))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownDirection, f)
			}
			dirs = append(dirs, d)
		}
	}
	return dirs, nil
}

// String formats the board as rows separated by '/', e.g. "2 2 0 0/0 0 0 0/...".
func (b Board) String() string {
	rows := make([]string, BoardSize)
	for r := range BoardSize {
		cells := make([]string, BoardSize)
		for c := range BoardSize {
			cells[c] = strconv.Itoa(b[r][c])
		}
		rows[r] = strings.Join(cells, " ")
	}
	return strings.Join(rows, "/")
}

// ParseBoard reads the format produced by Board.String. Rows may also be
// separated by newlines and cells by commas. The result is validated.
func ParseBoard(s string) (Board, error) {
	var b Board

	rows := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '/' || r == '\n'
	})
	if len(rows) != BoardSize {
		return b, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidBoard, BoardSize, len(rows))
	}

	for r, row := range rows {
		cells := strings.FieldsFunc(row, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(cells) != BoardSize {
			return b, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(cells), BoardSize)
		}
		for c, cell := range cells {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return b, fmt.Errorf("%w: row %d col %d: %w", ErrInvalidBoard, r, c, err)
			}
			b[r][c] = v
		}
	}

	if err := Validate(b); err != nil {
		return b, err
	}
	return b, nil
}

// Validate checks that every cell is empty or a power of two no smaller than 2.
func Validate(b Board) error {
	for r := range BoardSize {
		for c := range BoardSize {
			if !validTile(b[r][c]) {
				return fmt.Errorf("%w: %d at row %d col %d", ErrInvalidTile, b[r][c], r, c)
			}
		}
	}
	return nil
}

func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}
