// Package core provides fundamental types and utilities for the sketch pad
// platform. It contains no external dependencies (especially no Bubble Tea)
// so layout and hit-testing stay pure and testable.
package core

// Rect represents an axis-aligned box in terminal cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// GridLayout places a square grid of cells inside a screen area.
// Each cell is CellW columns wide and one row tall.
type GridLayout struct {
	Bounds Rect // Area covered by the grid in screen coordinates
	Size   int  // Cells per side
	CellW  int  // Columns per cell
}

// NewGridLayout positions a size×size grid at (x, y).
func NewGridLayout(x, y, size, cellW int) GridLayout {
	cellW = Clamp(cellW, 1, 4)
	return GridLayout{
		Bounds: NewRect(x, y, size*cellW, size),
		Size:   size,
		CellW:  cellW,
	}
}

// CellAt maps a screen point to grid column and row.
// ok is false when the point lies outside the grid.
func (l GridLayout) CellAt(x, y int) (col, row int, ok bool) {
	if !l.Bounds.Contains(x, y) {
		return 0, 0, false
	}
	return (x - l.Bounds.X) / l.CellW, y - l.Bounds.Y, true
}
