// Package paint implements the sketch pad's cell color state machine.
// It contains no external dependencies (especially no Bubble Tea) so the
// color math, cell transforms and mode dispatch stay pure and testable.
package paint

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a color string is neither a
// #rgb/#rrggbb hex value nor an hsl(...) value with three numbers.
var ErrInvalidColorFormat = errors.New("paint: invalid color format")

// Color is a color string understood by the display layer.
// Either "#rgb", "#rrggbb" or "hsl(h,s%,l%)".
type Color string

// White is the color of a fresh cell.
const White Color = "#ffffff"

// HSL is a color in hue/saturation/lightness space.
// H is in degrees [0,360), S and L are percentages [0,100].
type HSL struct {
	H int
	S int
	L int
}

// String formats the color the way cells render it.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d,%d%%,%d%%)", c.H, c.S, c.L)
}

// Color returns the HSL value as a renderable Color.
func (c HSL) Color() Color {
	return Color(c.String())
}

// Darken returns the color with lightness reduced by level*DarkenStep,
// floored at pure black.
func (c HSL) Darken(level int) HSL {
	c.L = max(0, c.L-level*DarkenStep)
	return c
}

var hslNumbers = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// IsHSL reports whether the color is in hsl(...) notation.
func (c Color) IsHSL() bool {
	return strings.HasPrefix(string(c), "hsl")
}

// HexToHSL converts a color to HSL.
//
// Hex input ("#rgb" or "#rrggbb") goes through the usual max/min channel
// conversion. Input already in hsl(...) notation passes through: the three
// embedded numbers are returned as they are, without any color math.
// Malformed input yields ErrInvalidColorFormat.
func HexToHSL(color Color) (HSL, error) {
	if color.IsHSL() {
		return parseHSL(color)
	}

	r, g, b, err := parseHex(string(color))
	if err != nil {
		return HSL{}, err
	}
	return rgbToHSL(r, g, b), nil
}

// HexToHSLLenient converts like HexToHSL but never fails: hex strings of
// the wrong length or with bad digits are treated as black, and an hsl
// string without three numbers yields the zero HSL.
func HexToHSLLenient(color Color) HSL {
	if color.IsHSL() {
		hsl, err := parseHSL(color)
		if err != nil {
			return HSL{}
		}
		return hsl
	}

	r, g, b, err := parseHex(string(color))
	if err != nil {
		return HSL{}
	}
	return rgbToHSL(r, g, b)
}

// ConvertColor is the introspection entry point for callers that only need
// the HSL triple of a color.
func ConvertColor(s string) (HSL, error) {
	return HexToHSL(Color(s))
}

// ParseColor validates user-entered color text and normalizes it.
// Whitespace is trimmed, hex digits are lower-cased and a missing leading
// '#' is added. Both hex and hsl(...) notation are accepted.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("%w: empty color", ErrInvalidColorFormat)
	}

	c := Color(s)
	if c.IsHSL() {
		v, err := hslValues(c)
		if err != nil {
			return "", err
		}
		if v[0] >= 360 || v[1] > 100 || v[2] > 100 {
			return "", fmt.Errorf("%w: %q out of range", ErrInvalidColorFormat, s)
		}
		return roundHSL(v).Color(), nil
	}

	if !strings.HasPrefix(s, "#") {
		c = Color("#" + s)
	}
	if _, _, _, err := parseHex(string(c)); err != nil {
		return "", err
	}
	return c, nil
}

func parseHSL(color Color) (HSL, error) {
	v, err := hslValues(color)
	if err != nil {
		return HSL{}, err
	}
	return roundHSL(v), nil
}

// hslValues extracts the three numbers of an hsl(...) string. Negative
// numbers are rejected.
func hslValues(color Color) ([3]float64, error) {
	var out [3]float64
	values := hslNumbers.FindAllString(string(color), 3)
	if len(values) < 3 {
		return out, fmt.Errorf("%w: %q", ErrInvalidColorFormat, string(color))
	}

	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return out, fmt.Errorf("%w: %q", ErrInvalidColorFormat, string(color))
		}
		out[i] = f
	}
	return out, nil
}

// roundHSL rounds to whole units. A hue just below 360 wraps to 0.
func roundHSL(v [3]float64) HSL {
	h := int(math.Round(v[0]))
	if h == 360 && v[0] < 360 {
		h = 0
	}
	return HSL{H: h, S: int(math.Round(v[1])), L: int(math.Round(v[2]))}
}

// parseHex returns the channels of a #rgb or #rrggbb string in [0,1].
func parseHex(hex string) (r, g, b float64, err error) {
	if !strings.HasPrefix(hex, "#") {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	var digits string
	switch len(hex) {
	case 4:
		digits = string([]byte{hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	case 7:
		digits = hex[1:]
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	v, perr := strconv.ParseUint(digits, 16, 32)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	r = float64((v>>16)&0xff) / 255
	g = float64((v>>8)&0xff) / 255
	b = float64(v&0xff) / 255
	return r, g, b, nil
}

// rgbToHSL converts channels in [0,1] to rounded HSL.
func rgbToHSL(r, g, b float64) HSL {
	maxC := max(r, g, b)
	minC := min(r, g, b)
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	hue := int(math.Round(h * 360))
	if hue >= 360 {
		hue -= 360
	}
	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
