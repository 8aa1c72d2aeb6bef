// File: game/replay.go
package game

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseCSSColor reads the rgba() form written by CSSColor.
func ParseCSSColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	var a float64
	if _, err := fmt.Sscanf(s, "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid css color %q: %w", s, err)
	}
	if a < 0 || a > 1 {
		return color.NRGBA{}, fmt.Errorf("invalid css color %q: alpha out of range", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}, nil
}

// ParseCSSFont reads the shorthand written by CSSFont.
func ParseCSSFont(s string) (Font, error) {
	var f Font
	rest := s
	if after, ok := strings.CutPrefix(rest, "bold "); ok {
		f.Bold = true
		rest = after
	}
	size, family, ok := strings.Cut(rest, "px")
	if !ok {
		return Font{}, fmt.Errorf("invalid css font %q", s)
	}
	var err error
	if f.Size, err = strconv.ParseFloat(size, 64); err != nil {
		return Font{}, fmt.Errorf("invalid css font %q: %w", s, err)
	}
	f.Family = strings.TrimSpace(family)
	return f, nil
}

func ParseAlign(s string) Align {
	switch s {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	}
	return AlignLeft
}

// Replay draws recorded commands onto surface. It stops at the first
// command it cannot decode.
func Replay(commands []DrawCommand, surface Surface) error {
	for i, cmd := range commands {
		if err := replayOne(cmd, surface); err != nil {
			return fmt.Errorf("command %d (%s): %w", i, cmd.Op, err)
		}
	}
	return nil
}

func replayOne(cmd DrawCommand, surface Surface) error {
	rect := Rect{X: cmd.X, Y: cmd.Y, W: cmd.W, H: cmd.H}
	switch cmd.Op {
	case "clear":
		if !(cmd.W > 0 && cmd.H > 0) {
			return fmt.Errorf("invalid field size %gx%g", cmd.W, cmd.H)
		}
		surface.Clear(cmd.W, cmd.H)
	case "rect":
		c, err := ParseCSSColor(cmd.Fill)
		if err != nil {
			return err
		}
		surface.FillRect(rect, cmd.Radius, c)
	case "gradientRect":
		if cmd.Gradient == nil {
			return fmt.Errorf("missing gradient")
		}
		from, err := ParseCSSColor(cmd.Gradient.From)
		if err != nil {
			return err
		}
		to, err := ParseCSSColor(cmd.Gradient.To)
		if err != nil {
			return err
		}
		surface.FillGradientRect(rect, cmd.Radius, LinearGradient{
			X0: cmd.Gradient.X0, Y0: cmd.Gradient.Y0, X1: cmd.Gradient.X1, Y1: cmd.Gradient.Y1,
			From: from, To: to,
		})
	case "circle":
		c, err := ParseCSSColor(cmd.Fill)
		if err != nil {
			return err
		}
		surface.FillCircle(cmd.X, cmd.Y, cmd.Radius, c)
	case "text":
		c, err := ParseCSSColor(cmd.Fill)
		if err != nil {
			return err
		}
		font, err := ParseCSSFont(cmd.Font)
		if err != nil {
			return err
		}
		surface.FillText(cmd.Text, cmd.X, cmd.Y, font, ParseAlign(cmd.Align), c)
	default:
		return fmt.Errorf("unknown op")
	}
	return nil
}
