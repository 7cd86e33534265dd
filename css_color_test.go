package ggchart

import (
	"testing"

	"github.com/gogpu/gg"
)

func rgbaApprox(got, want gg.RGBA) bool {
	const e = 1.0 / 255
	return approxWithin(got.R, want.R, e) && approxWithin(got.G, want.G, e) &&
		approxWithin(got.B, want.B, e) && approxWithin(got.A, want.A, e)
}

func approxWithin(a, b, e float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= e
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want gg.RGBA
	}{
		{"hex rrggbb", "#ff0000", gg.RGBA{R: 1, A: 1}},
		{"hex without hash", "00ff00", gg.RGBA{G: 1, A: 1}},
		{"hex short", "#00f", gg.RGBA{B: 1, A: 1}},
		{"hex short alpha", "#f008", gg.RGBA{R: 1, A: 0x88 / 255.0}},
		{"hex rrggbbaa", "#ff000080", gg.RGBA{R: 1, A: 0x80 / 255.0}},
		{"hex mixed case", "#FFA500", gg.RGBA{R: 1, G: 0.647, A: 1}},
		{"rgb ints", "rgb(255, 0, 0)", gg.RGBA{R: 1, A: 1}},
		{"rgb no spaces", "rgb(0,128,255)", gg.RGBA{G: 0.502, B: 1, A: 1}},
		{"rgb percent", "rgb(100%, 50%, 0%)", gg.RGBA{R: 1, G: 0.5, A: 1}},
		{"rgba", "rgba(255, 0, 0, 0.5)", gg.RGBA{R: 1, A: 0.5}},
		{"rgba alpha percent", "rgba(0, 0, 255, 50%)", gg.RGBA{B: 1, A: 0.5}},
		{"named", "red", gg.RGBA{R: 1, A: 1}},
		{"named case insensitive", "SteelBlue", gg.RGBA{R: 0.275, G: 0.510, B: 0.706, A: 1}},
		{"named svg extended", "mediumseagreen", gg.RGBA{R: 0.235, G: 0.702, B: 0.443, A: 1}},
		{"named grey alias", "lightgrey", gg.RGBA{R: 0.827, G: 0.827, B: 0.827, A: 1}},
		{"transparent", "transparent", gg.RGBA{}},
		{"whitespace tolerated", "  #ff0000  ", gg.RGBA{R: 1, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColor(tt.in); !rgbaApprox(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorFallback(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"garbage", "not-a-color"},
		{"bad hex length", "#ff000"},
		{"bad hex digits", "#zzzzzz"},
		{"rgb missing channel", "rgb(255, 0)"},
		{"rgb bad number", "rgb(a, b, c)"},
		{"rgba missing alpha", "rgba(1, 2, 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColor(tt.in); got != fallbackColor {
				t.Errorf("ParseColor(%q) = %+v, want gray fallback", tt.in, got)
			}
		})
	}
}

func TestParseColorChannelClamping(t *testing.T) {
	got := ParseColor("rgb(300, -5, 128)")
	if !rgbaApprox(got, (gg.RGBA{R: 1, G: 0, B: 0.502, A: 1})) {
		t.Errorf("out-of-range channels = %+v, want clamped", got)
	}
}
