// File: render/canvas.go
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"unicode/utf8"

	"fortio.org/log"
	"fortio.org/safecast"
	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/utils"
)

// Background is the color cells are cleared to.
var Background = color.NRGBA{R: 0x10, G: 0x10, B: 0x24, A: 0xff}

// Cell is one character of the canvas.
type Cell struct {
	Rune rune
	Fg   color.NRGBA
	Bg   color.NRGBA
	Bold bool
}

// Canvas is a game.Surface on a grid of terminal cells. Shapes are sampled at
// cell centers and blended over what is already there.
type Canvas struct {
	cols, rows     int
	scaleX, scaleY float64 // field units per cell
	cells          []Cell
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{scaleX: 1, scaleY: 1}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size. Contents are lost.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 1), max(rows, 1)
	c.cells = make([]Cell, c.cols*c.rows)
	c.fill(Background)
}

func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// At returns the cell at (col, row). It panics outside the grid.
func (c *Canvas) At(col, row int) Cell {
	return c.cells[row*c.cols+col]
}

func (c *Canvas) fill(bg color.NRGBA) {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	}
}

// Clear maps a width x height field onto the grid and blanks it. A
// non-positive size keeps the previous mapping.
func (c *Canvas) Clear(width, height float64) {
	if width > 0 && height > 0 {
		c.scaleX = width / float64(c.cols)
		c.scaleY = height / float64(c.rows)
	}
	c.fill(Background)
}

// span returns the cell range whose centers lie in [lo, hi] along one axis.
func span(lo, hi, scale float64, limit int) (first, last int) {
	first = safecast.MustRound[int](math.Ceil(utils.Clamp(lo/scale-0.5, -1, float64(limit))))
	last = safecast.MustRound[int](math.Floor(utils.Clamp(hi/scale-0.5, -1, float64(limit))))
	return max(first, 0), min(last, limit-1)
}

func (c *Canvas) blend(col, row int, shade func(x, y float64) color.NRGBA) {
	cell := &c.cells[row*c.cols+col]
	src := shade((float64(col)+0.5)*c.scaleX, (float64(row)+0.5)*c.scaleY)
	cell.Bg = utils.Over(cell.Bg, src)
	cell.Fg = utils.Over(cell.Fg, src)
}

func (c *Canvas) fillRounded(r game.Rect, radius float64, shade func(x, y float64) color.NRGBA) {
	top, bottom := span(r.Y, r.Bottom(), c.scaleY, c.rows)
	for row := top; row <= bottom; row++ {
		y := (float64(row) + 0.5) * c.scaleY
		inset := r.CornerInset(radius, y)
		left, right := span(r.X+inset, r.Right()-inset, c.scaleX, c.cols)
		for col := left; col <= right; col++ {
			c.blend(col, row, shade)
		}
	}
}

func (c *Canvas) FillRect(r game.Rect, radius float64, clr color.NRGBA) {
	c.fillRounded(r, radius, func(_, _ float64) color.NRGBA { return clr })
}

func (c *Canvas) FillGradientRect(r game.Rect, radius float64, g game.LinearGradient) {
	c.fillRounded(r, radius, g.At)
}

// FillCircle paints the cells whose centers are inside the circle. A circle
// smaller than a cell still marks the cell under its center.
func (c *Canvas) FillCircle(x, y, radius float64, clr color.NRGBA) {
	shade := func(_, _ float64) color.NRGBA { return clr }
	covered := 0
	top, bottom := span(y-radius, y+radius, c.scaleY, c.rows)
	left, right := span(x-radius, x+radius, c.scaleX, c.cols)
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			cx, cy := (float64(col)+0.5)*c.scaleX, (float64(row)+0.5)*c.scaleY
			if utils.Distance(cx, cy, x, y) <= radius {
				c.blend(col, row, shade)
				covered++
			}
		}
	}
	if covered > 0 {
		return
	}
	col, row, ok := c.cellAt(x, y)
	if ok {
		c.blend(col, row, shade)
	}
}

func (c *Canvas) cellAt(x, y float64) (col, row int, ok bool) {
	if x < 0 || y < 0 || math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	col = safecast.MustRound[int](math.Floor(math.Min(x/c.scaleX, float64(c.cols))))
	row = safecast.MustRound[int](math.Floor(math.Min(y/c.scaleY, float64(c.rows))))
	return col, row, col < c.cols && row < c.rows
}

// FillText writes text on the row holding the glyphs' vertical middle.
// Characters falling outside the grid are dropped.
func (c *Canvas) FillText(text string, x, y float64, font game.Font, align game.Align, clr color.NRGBA) {
	_, row, ok := c.cellAt(math.Max(x, 0), math.Max(y-font.Size/3, 0))
	if !ok {
		return
	}
	n := utf8.RuneCountInString(text)
	start := x / c.scaleX
	switch align {
	case game.AlignCenter:
		start -= float64(n) / 2
	case game.AlignRight:
		start -= float64(n)
	}
	col := safecast.MustRound[int](math.Round(utils.Clamp(start, -float64(n), float64(c.cols))))
	for _, r := range text {
		if col >= 0 && col < c.cols {
			cell := &c.cells[row*c.cols+col]
			cell.Rune = r
			cell.Fg = utils.Over(cell.Bg, clr)
			cell.Bold = font.Bold
		}
		col++
	}
}

// Line returns the runes of one row, for tests and plain-text output.
func (c *Canvas) Line(row int) string {
	var b strings.Builder
	for col := 0; col < c.cols; col++ {
		b.WriteRune(c.At(col, row).Rune)
	}
	return b.String()
}

// rgbToAnsi converts colors to ANSI 24-bit foreground and background escapes.
func rgbToAnsi(fg, bg color.NRGBA) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm", fg.R, fg.G, fg.B, bg.R, bg.G, bg.B)
}

// ANSILine renders one row as true-color ANSI text ending with a color reset.
func (c *Canvas) ANSILine(row int) string {
	var out strings.Builder
	prev := ""
	for col := 0; col < c.cols; col++ {
		cell := c.At(col, row)
		ansi := rgbToAnsi(cell.Fg, cell.Bg)
		if ansi != prev {
			out.WriteString(ansi)
			prev = ansi
		}
		out.WriteRune(cell.Rune)
	}
	out.WriteString(log.ANSIColors.Reset)
	return out.String()
}

// String renders the canvas as true-color ANSI text, one line per row.
func (c *Canvas) String() string {
	var out strings.Builder
	for row := 0; row < c.rows; row++ {
		out.WriteString(c.ANSILine(row))
		out.WriteString("\n")
	}
	return out.String()
}

// Image returns the canvas as one pixel per cell. Cells holding a glyph take
// its foreground color.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.cols, c.rows))
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cell := c.At(col, row)
			clr := cell.Bg
			if cell.Rune != ' ' {
				clr = cell.Fg
			}
			img.Set(col, row, clr)
		}
	}
	return img
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw copies the canvas onto a tcell screen at its top-left corner.
func (c *Canvas) Draw(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cell := c.At(col, row)
			style := tcell.StyleDefault.
				Foreground(tcellColor(cell.Fg)).
				Background(tcellColor(cell.Bg)).
				Bold(cell.Bold)
			screen.SetContent(col, row, cell.Rune, nil, style)
		}
	}
}
