package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3

	boardW = BoardSize*cellWidth + 1
	boardH = BoardSize*cellHeight + 1
)

// tileColors follows the pale-to-hot ramp of the classic web palette.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorBrightYellow,
	32:   core.ColorOrange,
	64:   core.ColorDarkOrange,
	128:  core.ColorGold,
	256:  core.ColorGold,
	512:  core.ColorRed,
	1024: core.ColorBrightRed,
	2048: core.ColorMagenta,
}

// TileColor returns the display color of a tile value.
func TileColor(value int) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	if value > 2048 {
		return core.ColorMagenta
	}
	return core.ColorDefault
}

// MinScreenSize returns the smallest screen that fits the board and HUD.
func MinScreenSize() (w, h int) {
	return boardW, hudHeight + 1 + boardH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1
	area := core.NewRect(boardX, boardY, boardW, boardH)

	g.renderHUD(dst, area)
	renderBoard(dst, g.board, area)

	if g.Over() {
		cx, cy := area.Center()
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(g.board))
		drawOverlay(dst, cx, cy, "GAME OVER", maxStr, "Press R to restart")
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and the highest tile above the board.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	title := "2048"
	dst.DrawTextColored(area.X+(area.W-len(title))/2, 0, title, core.ColorBrightYellow)

	maxStr := fmt.Sprintf("Max: %d", MaxTile(g.board))
	dst.DrawText(area.X, 1, maxStr)

	status := "Playing"
	if g.Over() {
		status = "Game over"
	}
	dst.DrawText(core.Max(area.Right()-len(status), area.X), 1, status)
}

// renderBoard draws the grid lines and the tiles.
func renderBoard(dst *core.Screen, board Board, area core.Rect) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := area.X + x*cellWidth
			py := area.Y + y*cellHeight

			dst.SetColored(px, py, junction(x, y), core.ColorGray)
			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for r := range BoardSize {
		for c := range BoardSize {
			val := board[r][c]
			if val == 0 {
				continue
			}

			cellX := area.X + c*cellWidth + 1
			cellY := area.Y + r*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// junction picks the box-drawing rune for a grid intersection.
func junction(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}

// drawOverlay draws a boxed block of centered lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightRed
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}
