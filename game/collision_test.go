// File: game/collision_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBall_InterceptsRect(t *testing.T) {
	b := &Ball{Radius: 8}
	r := Rect{X: 100, Y: 100, W: 50, H: 20}

	testCases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Inside", 120, 110, true},
		{"OverlapLeft", 95, 110, true},
		{"TouchLeft", 92, 110, false},
		{"TouchBottom", 120, 128, false},
		{"OverlapBottom", 120, 127, true},
		{"CornerBoxOverlap", 95, 95, true},
		{"Far", 300, 300, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b.X, b.Y = tc.x, tc.y
			assert.Equal(t, tc.want, b.InterceptsRect(r))
		})
	}
}

func TestBall_Penetration(t *testing.T) {
	b := &Ball{X: 95, Y: 110, Radius: 8}
	ox, oy := b.Penetration(Rect{X: 100, Y: 100, W: 50, H: 20})
	assert.Equal(t, 3.0, ox)
	assert.Equal(t, 18.0, oy)
}

func TestBall_BrickFaceSelection(t *testing.T) {
	testCases := []struct {
		name           string
		x, y, dx, dy   float64
		wantDx, wantDy float64
	}{
		// Row 0, col 0 spans x 35..103, y 50..70; the rows below are cleared.
		{"FromBelow", 69, 81, 0, -4, 0, 4},
		{"FromAbove", 69, 40, 0, 4, 0, -4},
		{"FromLeftSide", 24, 60, 4, 1, -4, 1},
		{"FromRightSide", 114, 60, -4, 1, 4, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, p, g := newBallFixture()
			g.ForEach(func(br *Brick) bool {
				if br.Row > 0 || br.Col > 0 {
					g.Destroy(br)
				}
				return true
			})
			b.X, b.Y, b.Dx, b.Dy = tc.x, tc.y, tc.dx, tc.dy

			contact := b.Update(p, g)
			require.NotNil(t, contact.Brick)
			assert.Equal(t, 0, contact.Brick.Row)
			assert.Equal(t, 0, contact.Brick.Col)
			assert.False(t, contact.Brick.Alive)
			assert.Equal(t, tc.wantDx, b.Dx)
			assert.Equal(t, tc.wantDy, b.Dy)
		})
	}
}

func TestBall_OneBrickPerTick(t *testing.T) {
	b, p, g := newBallFixture()
	// Between columns 0 and 1 of row 0, overlapping both.
	b.X, b.Y, b.Dx, b.Dy = 106, 40, 0, 4

	contact := b.Update(p, g)
	require.NotNil(t, contact.Brick)
	assert.Equal(t, [2]int{0, 0}, [2]int{contact.Brick.Row, contact.Brick.Col})
	assert.False(t, g.At(0, 0).Alive)
	assert.True(t, g.At(0, 1).Alive, "the second overlapping brick survives this tick")
	assert.Equal(t, 49, g.Alive())
	assert.Equal(t, -4.0, b.Dy)
}

func TestBall_DeadBricksIgnored(t *testing.T) {
	b, p, g := newBallFixture()
	g.Destroy(g.At(0, 0))
	b.X, b.Y, b.Dx, b.Dy = 69, 40, 0, 4

	contact := b.Update(p, g)
	assert.Nil(t, contact.Brick)
	assert.Equal(t, 4.0, b.Dy)
}
