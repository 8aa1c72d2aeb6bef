// File: game/draw.go
package game

import (
	"fmt"
	"image/color"

	"github.com/lguibr/brickbreaker/utils"
)

var (
	white        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	titleColor   = color.NRGBA{R: 0x00, G: 0xd9, B: 0xff, A: 255}
	overlayShade = color.NRGBA{A: 178} // 0.7
	highlight    = color.NRGBA{R: 255, G: 255, B: 255, A: 38}
)

const (
	brickRadius     = 4
	highlightRadius = 2
	paddleRadius    = 6
	paddleGlow      = 4
	hudMargin       = 15
	hudBaseline     = 25
)

// Render clears the surface and draws the layers for the current state, back to front.
func (s *Session) Render(surface Surface) {
	w, h := s.cfg.Field.Width, s.cfg.Field.Height
	surface.Clear(w, h)

	switch s.state {
	case StatePlaying:
		s.drawBricks(surface)
		s.drawTrail(surface)
		s.drawPaddle(surface)
		s.drawBall(surface)
		s.drawParticles(surface)
		s.drawHUD(surface)
	case StateStart:
		s.drawBricks(surface)
		s.drawPaddle(surface)
		s.drawBall(surface)
		s.drawParticles(surface)
		s.drawOverlay(surface, "BRICK BREAKER", "Click or press Space to start")
	case StateGameOver:
		s.drawBricks(surface)
		s.drawPaddle(surface)
		s.drawParticles(surface)
		s.drawOverlay(surface, "GAME OVER", fmt.Sprintf("Final Score: %d — Click or press Space to retry", s.score))
	case StateWin:
		s.drawParticles(surface)
		s.drawOverlay(surface, "YOU WIN!", fmt.Sprintf("Score: %d — Click or press Space to play again", s.score))
	}
}

func (s *Session) drawBricks(surface Surface) {
	s.grid.ForEach(func(b *Brick) bool {
		if !b.Alive {
			return true
		}
		surface.FillGradientRect(b.Rect(), brickRadius, LinearGradient{
			X0: b.X, Y0: b.Y, X1: b.X, Y1: b.Y + b.Height,
			From: b.Color, To: utils.Shade(b.Color, -30),
		})
		surface.FillRect(Rect{X: b.X + 2, Y: b.Y + 2, W: b.Width - 4, H: b.Height/2 - 2}, highlightRadius, highlight)
		return true
	})
}

func (s *Session) drawTrail(surface Surface) {
	points := s.trail.Points()
	n := float64(len(points))
	for i, p := range points {
		f := float64(i) / n
		radius := s.ball.Radius * f
		if radius <= 0 {
			continue
		}
		surface.FillCircle(p.X, p.Y, radius, utils.WithAlpha(s.ballColor, f*s.cfg.Trail.MaxAlpha))
	}
}

func (s *Session) drawPaddle(surface Surface) {
	r := s.paddle.Rect()
	surface.FillRect(r.Inset(-paddleGlow), paddleRadius+paddleGlow, utils.WithAlpha(s.paddleColor, 0.25))
	surface.FillRect(r, paddleRadius, s.paddleColor)
}

func (s *Session) drawBall(surface Surface) {
	surface.FillCircle(s.ball.X, s.ball.Y, s.ball.Radius, s.ballColor)
}

func (s *Session) drawParticles(surface Surface) {
	for _, p := range s.particles.Particles() {
		surface.FillCircle(p.X, p.Y, p.Radius, utils.WithAlpha(p.Color, p.Life))
	}
}

func (s *Session) drawHUD(surface Surface) {
	font := Font{Size: 16, Family: s.cfg.Font}
	surface.FillText(fmt.Sprintf("Score: %d", s.score), hudMargin, hudBaseline, font, AlignLeft, white)
	surface.FillText(fmt.Sprintf("Lives: %d", s.lives), s.cfg.Field.Width-hudMargin, hudBaseline, font, AlignRight, white)
}

func (s *Session) drawOverlay(surface Surface, title, subtitle string) {
	w, h := s.cfg.Field.Width, s.cfg.Field.Height
	surface.FillRect(Rect{W: w, H: h}, 0, overlayShade)
	surface.FillText(title, w/2, h/2-20, Font{Size: 48, Bold: true, Family: s.cfg.Font}, AlignCenter, titleColor)
	surface.FillText(subtitle, w/2, h/2+25, Font{Size: 18, Family: s.cfg.Font}, AlignCenter, white)
}
