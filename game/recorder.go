// File: game/recorder.go
package game

import (
	"fmt"
	"image/color"
	"strings"
)

// DrawCommand is one recorded drawing call. Colors are CSS strings so a browser
// canvas can replay a frame without translation.
type DrawCommand struct {
	Op     string  `json:"op"` // "clear", "rect", "gradientRect", "circle", "text"
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Fill   string  `json:"fill,omitempty"`

	Gradient *GradientStops `json:"gradient,omitempty"`

	Text  string `json:"text,omitempty"`
	Font  string `json:"font,omitempty"`
	Align string `json:"align,omitempty"`
}

// GradientStops is the wire form of a LinearGradient.
type GradientStops struct {
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	From string  `json:"from"`
	To   string  `json:"to"`
}

// Recorder is a Surface that keeps every call as a DrawCommand.
type Recorder struct {
	Commands []DrawCommand
}

func NewRecorder() *Recorder {
	return &Recorder{Commands: make([]DrawCommand, 0, 128)}
}

// Reset empties the recorder, keeping its capacity.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Take returns a copy of the recorded commands and resets the recorder.
func (r *Recorder) Take() []DrawCommand {
	out := make([]DrawCommand, len(r.Commands))
	copy(out, r.Commands)
	r.Reset()
	return out
}

// Count returns how many commands with the given op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns every recorded text in draw order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, c := range r.Commands {
		if c.Op == "text" {
			texts = append(texts, c.Text)
		}
	}
	return texts
}

func (r *Recorder) Clear(width, height float64) {
	r.Commands = append(r.Commands, DrawCommand{Op: "clear", W: width, H: height})
}

func (r *Recorder) FillRect(rect Rect, radius float64, c color.NRGBA) {
	r.Commands = append(r.Commands, DrawCommand{
		Op: "rect", X: rect.X, Y: rect.Y, W: rect.W, H: rect.H, Radius: radius, Fill: CSSColor(c),
	})
}

func (r *Recorder) FillGradientRect(rect Rect, radius float64, g LinearGradient) {
	r.Commands = append(r.Commands, DrawCommand{
		Op: "gradientRect", X: rect.X, Y: rect.Y, W: rect.W, H: rect.H, Radius: radius,
		Gradient: &GradientStops{X0: g.X0, Y0: g.Y0, X1: g.X1, Y1: g.Y1, From: CSSColor(g.From), To: CSSColor(g.To)},
	})
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.NRGBA) {
	r.Commands = append(r.Commands, DrawCommand{Op: "circle", X: x, Y: y, Radius: radius, Fill: CSSColor(c)})
}

func (r *Recorder) FillText(text string, x, y float64, font Font, align Align, c color.NRGBA) {
	r.Commands = append(r.Commands, DrawCommand{
		Op: "text", X: x, Y: y, Text: text, Font: CSSFont(font), Align: align.String(), Fill: CSSColor(c),
	})
}

// CSSColor formats c as rgba() with alpha in [0, 1].
func CSSColor(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/255)
}

// CSSFont formats f as a canvas font shorthand, e.g. "bold 48px sans-serif".
func CSSFont(f Font) string {
	var b strings.Builder
	if f.Bold {
		b.WriteString("bold ")
	}
	fmt.Fprintf(&b, "%gpx ", f.Size)
	if f.Family == "" {
		b.WriteString("sans-serif")
	} else {
		b.WriteString(f.Family)
	}
	return b.String()
}
