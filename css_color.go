package ggchart

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// fallbackColor is the opaque neutral gray returned for color strings that
// cannot be parsed. Chart series degrade visibly but harmlessly instead of
// failing the frame.
var fallbackColor = gg.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}


// ParseColor resolves a CSS-style color string to a gg.RGBA with
// components in [0, 1].
//
// Supported forms:
//   - hex: #rgb, #rgba, #rrggbb, #rrggbbaa (leading # optional)
//   - functional: rgb(r, g, b), rgba(r, g, b, a) with 0-255 channels
//     (percentages accepted) and 0-1 alpha
//   - the SVG 1.1 named colors, plus "transparent"
//
// Unrecognized input returns an opaque neutral gray so a bad palette entry
// degrades a single series instead of aborting the frame.
func ParseColor(s string) gg.RGBA {
	c, ok := parseColor(s)
	if !ok {
		return fallbackColor
	}
	return c
}

func parseColor(s string) (gg.RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return gg.RGBA{}, false
	}
	if s == "transparent" {
		return gg.RGBA{}, true
	}
	if c, ok := colornames.Map[s]; ok {
		// colornames entries are always opaque.
		return gg.RGBA{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: 1,
		}, true
	}
	if strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb(") {
		return parseRGBFunc(s)
	}
	return parseHex(s)
}

// parseHex parses #rgb, #rgba, #rrggbb, and #rrggbbaa. The leading '#'
// is optional.
func parseHex(s string) (gg.RGBA, bool) {
	s = strings.TrimPrefix(s, "#")

	hex1 := func(c byte) (uint8, bool) {
		v, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil {
			return 0, false
		}
		return uint8(v*16 + v), true
	}
	hex2 := func(cs string) (uint8, bool) {
		v, err := strconv.ParseUint(cs, 16, 8)
		if err != nil {
			return 0, false
		}
		return uint8(v), true
	}

	var r, g, b uint8
	a := uint8(255)
	var ok1, ok2, ok3, ok4 bool

	switch len(s) {
	case 3:
		r, ok1 = hex1(s[0])
		g, ok2 = hex1(s[1])
		b, ok3 = hex1(s[2])
		ok4 = true
	case 4:
		r, ok1 = hex1(s[0])
		g, ok2 = hex1(s[1])
		b, ok3 = hex1(s[2])
		a, ok4 = hex1(s[3])
	case 6:
		r, ok1 = hex2(s[0:2])
		g, ok2 = hex2(s[2:4])
		b, ok3 = hex2(s[4:6])
		ok4 = true
	case 8:
		r, ok1 = hex2(s[0:2])
		g, ok2 = hex2(s[2:4])
		b, ok3 = hex2(s[4:6])
		a, ok4 = hex2(s[6:8])
	default:
		return gg.RGBA{}, false
	}
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return gg.RGBA{}, false
	}
	return gg.RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// parseRGBFunc parses rgb(r, g, b) and rgba(r, g, b, a). Channels are
// 0-255 numbers or percentages; alpha is a 0-1 number or a percentage.
func parseRGBFunc(s string) (gg.RGBA, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return gg.RGBA{}, false
	}
	wantAlpha := strings.HasPrefix(s, "rgba")
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if wantAlpha && len(parts) != 4 || !wantAlpha && len(parts) != 3 {
		return gg.RGBA{}, false
	}

	channel := func(p string) (float64, bool) {
		p = strings.TrimSpace(p)
		if strings.HasSuffix(p, "%") {
			v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
			if err != nil {
				return 0, false
			}
			return clamp01(v / 100), true
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return clamp01(v / 255), true
	}

	r, ok1 := channel(parts[0])
	g, ok2 := channel(parts[1])
	b, ok3 := channel(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return gg.RGBA{}, false
	}

	a := 1.0
	if wantAlpha {
		p := strings.TrimSpace(parts[3])
		if strings.HasSuffix(p, "%") {
			v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
			if err != nil {
				return gg.RGBA{}, false
			}
			a = clamp01(v / 100)
		} else {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return gg.RGBA{}, false
			}
			a = clamp01(v)
		}
	}
	return gg.RGBA{R: r, G: g, B: b, A: a}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
