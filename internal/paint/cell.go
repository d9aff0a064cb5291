package paint

import "fmt"

// Darkening limits.
const (
	MaxDarkness = 10 // Darkening steps before a cell is saturated
	DarkenStep  = 10 // Lightness percentage removed per step
)

// Cell is one unit of the drawing grid.
type Cell struct {
	Rendered Color // Color currently displayed
	Darkness int   // Darkening steps since the last flat/random paint
	Original Color // Darkening baseline; empty when unset
}

// NewCell returns a fresh white cell.
func NewCell() Cell {
	return Cell{Rendered: White}
}

// HasBaseline reports whether the darkening baseline is set.
func (c Cell) HasBaseline() bool {
	return c.Original != ""
}

// Saturated reports whether further darkening is a no-op.
func (c Cell) Saturated() bool {
	return c.Darkness >= MaxDarkness
}

// PaintFlat paints the cell with a solid color and resets its darkness.
func PaintFlat(_ Cell, color Color) Cell {
	return Cell{
		Rendered: color,
		Darkness: 0,
		Original: color,
	}
}

// PaintRandom paints the cell with a caller-generated random color.
// It has the same shape as PaintFlat.
func PaintRandom(cell Cell, randomColor Color) Cell {
	return PaintFlat(cell, randomColor)
}

// Converter turns a color into HSL for darkening.
type Converter func(Color) (HSL, error)

// Darken applies one progressive darkening step.
//
// A saturated cell is returned unchanged. Otherwise the darkness level is
// incremented and the new rendered color is the baseline's hue and
// saturation at lightness max(0, baseline.L - darkness*DarkenStep). The
// baseline is the cell's Original color, or fallback() when none is set yet.
// On a conversion error the cell is returned unchanged with the error.
func Darken(cell Cell, fallback func() Color, convert Converter) (Cell, error) {
	if cell.Saturated() {
		return cell, nil
	}

	baseline := cell.Original
	if baseline == "" {
		baseline = fallback()
	}

	hsl, err := convert(baseline)
	if err != nil {
		return cell, fmt.Errorf("paint: darken baseline: %w", err)
	}

	level := cell.Darkness + 1
	return Cell{
		Rendered: hsl.Darken(level).Color(),
		Darkness: level,
		Original: baseline,
	}, nil
}
