// File: game/surface.go
package game

import (
	"image/color"
	"math"

	"github.com/lguibr/brickbreaker/utils"
)

// Rect is an axis-aligned rectangle in field units.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Inset shrinks the rectangle by d on every side (grows it for negative d).
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// CornerInset is the horizontal inset of a rounded rectangle's outline on the
// horizontal line y. Raster surfaces fill rounded shapes one span at a time.
func (r Rect) CornerInset(radius, y float64) float64 {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if radius <= 0 {
		return 0
	}
	var dy float64
	switch {
	case y < r.Y+radius:
		dy = r.Y + radius - y
	case y > r.Bottom()-radius:
		dy = y - (r.Bottom() - radius)
	default:
		return 0
	}
	dy = math.Min(dy, radius)
	return radius - math.Sqrt(radius*radius-dy*dy)
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Font describes the text style requested from a surface.
type Font struct {
	Size   float64 `json:"size"`
	Bold   bool    `json:"bold,omitempty"`
	Family string  `json:"family,omitempty"`
}

// LinearGradient runs from From at (X0,Y0) to To at (X1,Y1).
type LinearGradient struct {
	X0   float64     `json:"x0"`
	Y0   float64     `json:"y0"`
	X1   float64     `json:"x1"`
	Y1   float64     `json:"y1"`
	From color.NRGBA `json:"-"`
	To   color.NRGBA `json:"-"`
}

// At returns the gradient color at a point, projecting it onto the gradient axis.
func (g LinearGradient) At(x, y float64) color.NRGBA {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	length := dx*dx + dy*dy
	if length == 0 {
		return g.From
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / length
	return utils.LerpColor(g.From, g.To, t)
}

// Surface is the set of drawing primitives the game renders with. Colors carry
// their own alpha and every surface supports rounded rectangles natively.
type Surface interface {
	Clear(width, height float64)
	FillRect(r Rect, radius float64, c color.NRGBA)
	FillGradientRect(r Rect, radius float64, g LinearGradient)
	FillCircle(x, y, radius float64, c color.NRGBA)
	FillText(text string, x, y float64, font Font, align Align, c color.NRGBA)
}
