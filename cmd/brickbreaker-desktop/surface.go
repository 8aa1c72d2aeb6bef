// File: cmd/brickbreaker-desktop/surface.go
package main

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/render"
)

// Glyph cell of the ebitenutil debug font.
const (
	glyphWidth    = 6
	glyphHeight   = 16
	maxGlyphCache = 64
)

// ebitenSurface draws game layers onto an ebiten image. Rounded and gradient
// shapes are filled one pixel row at a time.
type ebitenSurface struct {
	dst   *ebiten.Image
	texts map[string]*ebiten.Image
}

func newEbitenSurface() *ebitenSurface {
	return &ebitenSurface{texts: make(map[string]*ebiten.Image)}
}

func (s *ebitenSurface) Clear(width, height float64) {
	s.dst.Fill(render.Background)
}

func (s *ebitenSurface) spans(r game.Rect, radius float64, shade func(y float64) color.NRGBA) {
	for y := math.Floor(r.Y); y < r.Bottom(); y++ {
		top := math.Max(y, r.Y)
		bottom := math.Min(y+1, r.Bottom())
		inset := r.CornerInset(radius, (top+bottom)/2)
		w := r.W - 2*inset
		if w <= 0 {
			continue
		}
		vector.DrawFilledRect(s.dst, float32(r.X+inset), float32(top), float32(w), float32(bottom-top), shade((top+bottom)/2), true)
	}
}

func (s *ebitenSurface) FillRect(r game.Rect, radius float64, c color.NRGBA) {
	if radius <= 0 {
		vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
		return
	}
	s.spans(r, radius, func(float64) color.NRGBA { return c })
}

// FillGradientRect samples the gradient at the horizontal center of each row,
// exact for the vertical gradients the game draws.
func (s *ebitenSurface) FillGradientRect(r game.Rect, radius float64, g game.LinearGradient) {
	cx := r.X + r.W/2
	s.spans(r, radius, func(y float64) color.NRGBA { return g.At(cx, y) })
}

func (s *ebitenSurface) FillCircle(x, y, radius float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(radius), c, true)
}

// textBox returns the top-left corner and scale for text drawn with the debug
// font so its baseline sits at y.
func textBox(text string, x, y float64, font game.Font, align game.Align) (left, top, scale float64) {
	scale = math.Max(font.Size/glyphHeight*1.25, 0.5)
	width := float64(utf8.RuneCountInString(text)*glyphWidth) * scale
	switch align {
	case game.AlignCenter:
		left = x - width/2
	case game.AlignRight:
		left = x - width
	default:
		left = x
	}
	top = y - 0.75*glyphHeight*scale
	return left, top, scale
}

func (s *ebitenSurface) glyphs(text string) *ebiten.Image {
	if img, ok := s.texts[text]; ok {
		return img
	}
	if len(s.texts) >= maxGlyphCache {
		for key, img := range s.texts {
			img.Deallocate()
			delete(s.texts, key)
		}
	}
	img := ebiten.NewImage(max(utf8.RuneCountInString(text)*glyphWidth, 1), glyphHeight)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	s.texts[text] = img
	return img
}

func (s *ebitenSurface) FillText(text string, x, y float64, font game.Font, align game.Align, c color.NRGBA) {
	if text == "" {
		return
	}
	left, top, scale := textBox(text, x, y, font, align)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(left, top)
	op.ColorScale.ScaleWithColor(c)
	if font.Bold {
		// Debug font has no bold face, overdraw shifted by a pixel.
		s.dst.DrawImage(s.glyphs(text), op)
		op.GeoM.Translate(1, 0)
	}
	s.dst.DrawImage(s.glyphs(text), op)
}
