package jumper

import "github.com/vovakirdan/dungeon-jump/internal/core"

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Viewport maps world pixels onto a centered block of screen cells. Cells
// are treated as twice as tall as they are wide, so the playfield keeps the
// world's proportions.
type Viewport struct {
	X, Y       int // Top-left cell of the playfield
	Cols, Rows int
	worldW     int
	worldH     int
}

// NewViewport fits a worldW×worldH world into a screenW×screenH terminal,
// leaving room for the HUD.
func NewViewport(screenW, screenH, worldW, worldH int) Viewport {
	rows := max(screenH-hudRows, 1)
	cols := rows * 2 * worldW / worldH
	if cols > screenW {
		cols = screenW
		rows = max(cols*worldH/(2*worldW), 1)
	}
	cols = max(cols, 1)

	return Viewport{
		X:      max((screenW-cols)/2, 0),
		Y:      hudRows,
		Cols:   cols,
		Rows:   rows,
		worldW: worldW,
		worldH: worldH,
	}
}

// Cell returns the screen cell holding world point (px, py).
func (v Viewport) Cell(px, py int) (int, int) {
	return v.X + floorDiv(px*v.Cols, v.worldW), v.Y + floorDiv(py*v.Rows, v.worldH)
}

// CellRect returns the block of cells covered by a world rectangle. Every
// rectangle covers at least one cell.
func (v Viewport) CellRect(r core.Rect) core.Rect {
	x0, y0 := v.Cell(r.X, r.Y)
	x1, y1 := v.Cell(r.Right()-1, r.Bottom()-1)
	return core.NewRect(x0, y0, max(x1-x0+1, 1), max(y1-y0+1, 1))
}

// World returns the world point at the center of screen cell (cx, cy).
func (v Viewport) World(cx, cy int) (int, int) {
	wx := (2*(cx-v.X) + 1) * v.worldW / (2 * v.Cols)
	wy := (2*(cy-v.Y) + 1) * v.worldH / (2 * v.Rows)
	return wx, wy
}

// Contains reports whether screen cell (cx, cy) is inside the playfield.
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.X && cx < v.X+v.Cols && cy >= v.Y && cy < v.Y+v.Rows
}

// PixelsPerRow returns how many world pixels one screen row spans.
func (v Viewport) PixelsPerRow() int {
	return max(v.worldH/v.Rows, 1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
