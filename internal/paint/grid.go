package paint

import "fmt"

// Coord is a cell position on the grid.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the square drawing surface and the sole owner of its cells.
// Cells are stored in row-major order: index = y*Size + x.
type Grid struct {
	Size  int
	Cells []Cell
}

// Counts summarizes the grid contents.
type Counts struct {
	Painted  int // Cells no longer plain white at zero darkness
	Darkened int // Cells with at least one darkening step
	Black    int // Cells darkened to zero lightness
}

// NewGrid builds a size×size grid of fresh white cells.
func NewGrid(size int) *Grid {
	g := &Grid{}
	g.Resize(size)
	return g
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.Size + c.X
}

// InBounds returns true if the coordinate is on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// At returns the cell at c and whether c is on the grid.
func (g *Grid) At(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.Cells[g.index(c)], true
}

// Apply runs one interaction on the cell at c. Off-grid coordinates are
// ignored. The cell is left unchanged if the dispatcher fails.
func (g *Grid) Apply(c Coord, d *Dispatcher, state AppState) error {
	if !g.InBounds(c) {
		return nil
	}
	i := g.index(c)
	next, err := d.ApplyInteraction(g.Cells[i], state)
	if err != nil {
		return fmt.Errorf("cell %s: %w", c, err)
	}
	g.Cells[i] = next
	return nil
}

// Clear resets every cell to the fresh white state.
func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = NewCell()
	}
}

// Resize discards all cells and rebuilds the grid at the new size.
// Sizes below 1 are raised to 1.
func (g *Grid) Resize(size int) {
	size = max(size, 1)
	g.Size = size
	g.Cells = make([]Cell, size*size)
	g.Clear()
}

// Counts returns a summary of the grid contents.
func (g *Grid) Counts() Counts {
	var out Counts
	for _, cell := range g.Cells {
		if cell.Darkness > 0 {
			out.Darkened++
		}
		if cell.Darkness > 0 || cell.Rendered != White {
			out.Painted++
		}
		if cell.Darkness > 0 && cell.Rendered.IsHSL() {
			if hsl, err := HexToHSL(cell.Rendered); err == nil && hsl.L == 0 {
				out.Black++
			}
		}
	}
	return out
}
