package core

import "strconv"

// Color is a cell's foreground color. Non-zero values are ANSI 256-color
// indices; zero keeps the terminal's own foreground.
type Color uint8

// Colors used by the sprites and HUD.
const (
	ColorDefault       Color = 0
	ColorRed           Color = 1
	ColorGreen         Color = 2
	ColorYellow        Color = 3
	ColorBlue          Color = 4
	ColorMagenta       Color = 5
	ColorCyan          Color = 6
	ColorWhite         Color = 7
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
	ColorOrange        Color = 208
	ColorGray          Color = 245
)

// ANSI returns the 256-color index as a string, or "" for ColorDefault.
func (c Color) ANSI() string {
	if c == ColorDefault {
		return ""
	}
	return strconv.Itoa(int(c))
}
