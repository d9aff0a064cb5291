package paint_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-etch/internal/paint"
)

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		name     string
		color    paint.Color
		expected paint.HSL
	}{
		{"short black", "#000", paint.HSL{H: 0, S: 0, L: 0}},
		{"short white", "#fff", paint.HSL{H: 0, S: 0, L: 100}},
		{"long white", "#ffffff", paint.HSL{H: 0, S: 0, L: 100}},
		{"red", "#ff0000", paint.HSL{H: 0, S: 100, L: 50}},
		{"green", "#00ff00", paint.HSL{H: 120, S: 100, L: 50}},
		{"blue", "#0000ff", paint.HSL{H: 240, S: 100, L: 50}},
		{"yellow", "#ffff00", paint.HSL{H: 60, S: 100, L: 50}},
		{"magenta short", "#f0f", paint.HSL{H: 300, S: 100, L: 50}},
		{"gray", "#808080", paint.HSL{H: 0, S: 0, L: 50}},
		{"dark red", "#800000", paint.HSL{H: 0, S: 100, L: 25}},
		{"uppercase digits", "#FF0000", paint.HSL{H: 0, S: 100, L: 50}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := paint.HexToHSL(tc.color)
			if err != nil {
				t.Fatalf("HexToHSL(%q) failed: %v", tc.color, err)
			}
			if got != tc.expected {
				t.Errorf("HexToHSL(%q) = %+v, expected %+v", tc.color, got, tc.expected)
			}
		})
	}
}

func TestHexToHSLRange(t *testing.T) {
	for v := 0; v < 0x1000; v++ {
		color := paint.Color(fmt.Sprintf("#%03x", v))
		hsl, err := paint.HexToHSL(color)
		if err != nil {
			t.Fatalf("HexToHSL(%q) failed: %v", color, err)
		}
		if hsl.H < 0 || hsl.H >= 360 {
			t.Errorf("HexToHSL(%q): hue %d out of [0,360)", color, hsl.H)
		}
		if hsl.S < 0 || hsl.S > 100 || hsl.L < 0 || hsl.L > 100 {
			t.Errorf("HexToHSL(%q): s=%d l=%d out of [0,100]", color, hsl.S, hsl.L)
		}
	}
}

func TestHexToHSLPassThrough(t *testing.T) {
	tests := []struct {
		color    paint.Color
		expected paint.HSL
	}{
		{"hsl(0,0%,90%)", paint.HSL{H: 0, S: 0, L: 90}},
		{"hsl(200, 100%, 50%)", paint.HSL{H: 200, S: 100, L: 50}},
		{"hsl(359,100%,0%)", paint.HSL{H: 359, S: 100, L: 0}},
		{"hsl(12.6, 40%, 33%)", paint.HSL{H: 13, S: 40, L: 33}},
		{"hsl(359.6,100%,50%)", paint.HSL{H: 0, S: 100, L: 50}},
	}

	for _, tc := range tests {
		got, err := paint.HexToHSL(tc.color)
		if err != nil {
			t.Fatalf("HexToHSL(%q) failed: %v", tc.color, err)
		}
		if got != tc.expected {
			t.Errorf("HexToHSL(%q) = %+v, expected %+v", tc.color, got, tc.expected)
		}
	}
}

func TestHexToHSLRoundTripsFormattedHSL(t *testing.T) {
	in := paint.HSL{H: 217, S: 63, L: 41}
	got, err := paint.HexToHSL(in.Color())
	if err != nil {
		t.Fatalf("HexToHSL failed: %v", err)
	}
	if got != in {
		t.Errorf("expected %+v, got %+v", in, got)
	}
}

func TestHexToHSLInvalid(t *testing.T) {
	invalid := []paint.Color{
		"",
		"#",
		"#ff",
		"#ffff",
		"#fffff",
		"#fffffff",
		"#ggg",
		"#12345z",
		"ff0000",
		"hsl(10, 20%)",
		"hsl()",
		"hsl(-20,50%,50%)",
		"hsl(20,-50%,50%)",
	}

	for _, c := range invalid {
		_, err := paint.HexToHSL(c)
		if !errors.Is(err, paint.ErrInvalidColorFormat) {
			t.Errorf("HexToHSL(%q): expected ErrInvalidColorFormat, got %v", c, err)
		}
	}
}

func TestHexToHSLLenient(t *testing.T) {
	tests := []struct {
		color    paint.Color
		expected paint.HSL
	}{
		{"#ff", paint.HSL{}},
		{"#12345z", paint.HSL{}},
		{"hsl(1)", paint.HSL{}},
		{"#ff0000", paint.HSL{H: 0, S: 100, L: 50}},
		{"hsl(10,20%,30%)", paint.HSL{H: 10, S: 20, L: 30}},
	}

	for _, tc := range tests {
		if got := paint.HexToHSLLenient(tc.color); got != tc.expected {
			t.Errorf("HexToHSLLenient(%q) = %+v, expected %+v", tc.color, got, tc.expected)
		}
	}
}

func TestHSLDarken(t *testing.T) {
	base := paint.HSL{H: 0, S: 100, L: 50}

	prev := base.L
	for level := 1; level <= paint.MaxDarkness; level++ {
		l := base.Darken(level).L
		if l > prev {
			t.Errorf("level %d: lightness %d rose above %d", level, l, prev)
		}
		if l < 0 {
			t.Errorf("level %d: lightness %d below zero", level, l)
		}
		prev = l
	}

	if got := base.Darken(3); got != (paint.HSL{H: 0, S: 100, L: 20}) {
		t.Errorf("Darken(3) = %+v", got)
	}
	if got := base.Darken(10).L; got != 0 {
		t.Errorf("Darken(10) lightness = %d, expected 0", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected paint.Color
		ok       bool
	}{
		{"#FF0000", "#ff0000", true},
		{"  00ff00 ", "#00ff00", true},
		{"abc", "#abc", true},
		{"HSL(120, 50%, 40%)", "hsl(120,50%,40%)", true},
		{"hsl(400,50%,40%)", "", false},
		{"hsl(10,150%,40%)", "", false},
		{"hsl(359.6,100%,50%)", "hsl(0,100%,50%)", true},
		{"hsl(-20,50%,50%)", "", false},
		{"hsl(20,50%,-1%)", "", false},
		{"", "", false},
		{"#abcd", "", false},
		{"red", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := paint.ParseColor(tc.input)
			if tc.ok {
				if err != nil {
					t.Fatalf("ParseColor(%q) failed: %v", tc.input, err)
				}
				if got != tc.expected {
					t.Errorf("ParseColor(%q) = %q, expected %q", tc.input, got, tc.expected)
				}
				return
			}
			if !errors.Is(err, paint.ErrInvalidColorFormat) {
				t.Errorf("ParseColor(%q): expected ErrInvalidColorFormat, got %v", tc.input, err)
			}
		})
	}
}

func TestConvertColor(t *testing.T) {
	hsl, err := paint.ConvertColor("#000")
	if err != nil {
		t.Fatalf("ConvertColor failed: %v", err)
	}
	if hsl != (paint.HSL{}) {
		t.Errorf("ConvertColor(#000) = %+v", hsl)
	}
}
