// File: utils/color.go
package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses "#rrggbb" (or "rrggbb") into an opaque color.
func ParseHexColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("color %q must have 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustParseHexColor is ParseHexColor for values already checked by Config.Validate.
func MustParseHexColor(hex string) color.NRGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Shade adds amt to every channel, clamping to [0, 255]. Alpha is kept.
func Shade(c color.NRGBA, amt int) color.NRGBA {
	shift := func(v uint8) uint8 {
		return uint8(max(0, min(255, int(v)+amt)))
	}
	return color.NRGBA{R: shift(c.R), G: shift(c.G), B: shift(c.B), A: c.A}
}

// WithAlpha returns c with its alpha set to a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(Clamp(a, 0, 1)*255 + 0.5)
	return c
}

// Alpha returns the alpha channel of c in [0, 1].
func Alpha(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

// LerpColor interpolates every channel, alpha included.
func LerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(Lerp(float64(x), float64(y), t) + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Over composites src over an opaque dst and returns an opaque color.
func Over(dst, src color.NRGBA) color.NRGBA {
	out := LerpColor(dst, src, Alpha(src))
	out.A = 0xff
	return out
}
