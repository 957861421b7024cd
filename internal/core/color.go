package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the board renderer. Tile colors climb from pale to hot
// as values grow.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorBrightYellow
	ColorGold
	ColorOrange
	ColorDarkOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
)
