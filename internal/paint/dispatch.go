package paint

import (
	"fmt"
	"math/rand"
	"strings"
)

// AppState is the UI-owned state an interaction reads.
type AppState struct {
	Mode    Mode
	Current Color // Color used by ModeNormal
}

// BaselinePolicy decides the darkening baseline of a cell that has never
// been painted.
type BaselinePolicy int

const (
	// BaselineRendered uses whatever the cell currently shows.
	BaselineRendered BaselinePolicy = iota
	// BaselineLegacy uses a fresh random color when the active mode is
	// rainbow and the current color otherwise.
	BaselineLegacy
)

// String returns the policy name used in config.
func (p BaselinePolicy) String() string {
	switch p {
	case BaselineRendered:
		return "rendered"
	case BaselineLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseBaselinePolicy converts a policy name to a BaselinePolicy.
func ParseBaselinePolicy(s string) (BaselinePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rendered":
		return BaselineRendered, nil
	case "legacy":
		return BaselineLegacy, nil
	default:
		return BaselineRendered, fmt.Errorf("paint: unknown baseline policy %q", s)
	}
}

// DispatcherOptions configures a Dispatcher.
type DispatcherOptions struct {
	Seed     int64
	Baseline BaselinePolicy
	Lenient  bool // Treat malformed colors as black instead of failing
}

// Dispatcher routes an interaction to the transform selected by the mode.
// A Dispatcher is not safe for concurrent use; each grid owns its own.
type Dispatcher struct {
	rng      *rand.Rand
	baseline BaselinePolicy
	lenient  bool
}

// NewDispatcher creates a dispatcher with its own random source.
func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	return &Dispatcher{
		rng:      rand.New(rand.NewSource(opts.Seed)),
		baseline: opts.Baseline,
		lenient:  opts.Lenient,
	}
}

// RandomColor returns a fully saturated color with a uniformly drawn hue.
func (d *Dispatcher) RandomColor() Color {
	return HSL{H: d.rng.Intn(360), S: 100, L: 50}.Color()
}

// ApplyInteraction returns the new state of cell after one qualifying
// interaction under state. An unknown mode yields ErrUnrecognizedMode and
// leaves the cell unchanged.
func (d *Dispatcher) ApplyInteraction(cell Cell, state AppState) (Cell, error) {
	switch state.Mode {
	case ModeNormal:
		return PaintFlat(cell, state.Current), nil
	case ModeRainbow:
		return PaintRandom(cell, d.RandomColor()), nil
	case ModeDarken:
		return Darken(cell, d.fallback(cell, state), d.convert)
	default:
		return cell, fmt.Errorf("%w: %d", ErrUnrecognizedMode, int(state.Mode))
	}
}

func (d *Dispatcher) fallback(cell Cell, state AppState) func() Color {
	return func() Color {
		if d.baseline == BaselineLegacy {
			if state.Mode == ModeRainbow {
				return d.RandomColor()
			}
			return state.Current
		}
		return cell.Rendered
	}
}

func (d *Dispatcher) convert(c Color) (HSL, error) {
	if d.lenient {
		return HexToHSLLenient(c), nil
	}
	return HexToHSL(c)
}
