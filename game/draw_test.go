// File: game/draw_test.go
package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(s *Session) *Recorder {
	rec := NewRecorder()
	s.Render(rec)
	return rec
}

func TestRender_Start(t *testing.T) {
	s := NewTestSession(t)
	rec := render(s)

	require.NotEmpty(t, rec.Commands)
	assert.Equal(t, "clear", rec.Commands[0].Op)
	assert.Equal(t, 800.0, rec.Commands[0].W)
	assert.Equal(t, 50, rec.Count("gradientRect"))
	assert.Equal(t, 1, rec.Count("circle"), "ball only, no trail")
	assert.Equal(t, []string{"BRICK BREAKER", "Click or press Space to start"}, rec.Texts())

	last := rec.Commands[len(rec.Commands)-1]
	assert.Equal(t, "center", last.Align)
	assert.Equal(t, 400.0, last.X)
	assert.Equal(t, 325.0, last.Y)
}

func TestRender_Playing(t *testing.T) {
	s := NewTestSession(t)
	s.Start()
	for range 5 {
		s.Update()
	}
	rec := render(s)

	assert.Equal(t, []string{"Score: 0", "Lives: 3"}, rec.Texts())
	// Five trail points, the oldest drawn with zero radius and skipped, plus the ball.
	assert.Equal(t, 5, rec.Count("circle"))

	var hud []DrawCommand
	for _, c := range rec.Commands {
		if c.Op == "text" {
			hud = append(hud, c)
		}
	}
	assert.Equal(t, "left", hud[0].Align)
	assert.Equal(t, 15.0, hud[0].X)
	assert.Equal(t, "right", hud[1].Align)
	assert.Equal(t, 785.0, hud[1].X)
	assert.Equal(t, "16px Segoe UI, sans-serif", hud[1].Font)
}

func TestRender_PlayingLayerOrder(t *testing.T) {
	s := NewTestSession(t)
	s.Start()
	s.Update()
	s.Update()
	PlaceBall(s, 106, 40, 0, 4)
	s.Update()
	rec := render(s)

	ops := make([]string, 0, len(rec.Commands))
	for _, c := range rec.Commands {
		ops = append(ops, c.Op)
	}
	joined := strings.Join(ops, ",")
	firstCircle := strings.Index(joined, "circle")
	lastGradient := strings.LastIndex(joined, "gradientRect")
	assert.Less(t, lastGradient, firstCircle, "bricks are drawn under the ball")
	assert.Equal(t, "text", ops[len(ops)-1], "HUD is on top")
	assert.Equal(t, 49, rec.Count("gradientRect"))
}

func TestRender_GameOver(t *testing.T) {
	s := NewTestSession(t)
	s.Start()
	s.lives = 1
	s.score = 120
	PlaceBall(s, 100, 590, 0, 4)
	s.Update()
	require.Equal(t, StateGameOver, s.State())

	rec := render(s)
	assert.Equal(t, []string{"GAME OVER", "Final Score: 120 — Click or press Space to retry"}, rec.Texts())
	assert.Equal(t, 50, rec.Count("gradientRect"))
	assert.Zero(t, rec.Count("circle"), "no ball after the game ends")

	title := rec.Commands[len(rec.Commands)-2]
	assert.Equal(t, "bold 48px Segoe UI, sans-serif", title.Font)
	assert.Equal(t, "rgba(0,217,255,1)", title.Fill)
	assert.Equal(t, 280.0, title.Y)
}

func TestRender_Win(t *testing.T) {
	s := NewTestSession(t)
	s.Start()
	DestroyAllBut(s, [2]int{0, 0})
	PlaceBall(s, 69, 40, 0, 4)
	s.Update()
	require.Equal(t, StateWin, s.State())

	rec := render(s)
	assert.Equal(t, []string{"YOU WIN!", "Score: 50 — Click or press Space to play again"}, rec.Texts())
	assert.Zero(t, rec.Count("gradientRect"))
	assert.Equal(t, s.Particles().Len(), rec.Count("circle"), "particles keep fading on the win screen")
	assert.Equal(t, 8, s.Particles().Len())
}
