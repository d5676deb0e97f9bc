package core

// Color represents a foreground color for a screen cell.
// Platforms map these to terminal or canvas colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDim
)

// Cell is a single character cell of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}
