package paint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedMode is returned when a paint mode outside the known set
// reaches the dispatcher. It indicates a programming error in the caller.
var ErrUnrecognizedMode = errors.New("paint: unrecognized mode")

// Mode selects which color transform an interaction applies.
type Mode int

const (
	ModeNormal  Mode = iota // Paint with the current color
	ModeRainbow             // Paint with a random fully saturated hue
	ModeDarken              // Progressively darken toward black
)

// String returns the mode name used in config and on the command line.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeRainbow:
		return "rainbow"
	case ModeDarken:
		return "darken"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Description returns a one-line summary for listings.
func (m Mode) Description() string {
	switch m {
	case ModeNormal:
		return "paint cells with the current color"
	case ModeRainbow:
		return "paint cells with a random hue at full saturation"
	case ModeDarken:
		return "darken cells by 10% lightness per pass, up to 10 passes"
	default:
		return ""
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= ModeNormal && m <= ModeDarken
}

// AllModes returns every paint mode in display order.
func AllModes() []Mode {
	return []Mode{ModeNormal, ModeRainbow, ModeDarken}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "n":
		return ModeNormal, nil
	case "rainbow", "r":
		return ModeRainbow, nil
	case "darken", "d":
		return ModeDarken, nil
	default:
		return ModeNormal, fmt.Errorf("%w: %q", ErrUnrecognizedMode, s)
	}
}
