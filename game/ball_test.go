// File: game/ball_test.go
package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lguibr/brickbreaker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBallFixture() (*Ball, *Paddle, *BrickGrid) {
	cfg := utils.DefaultConfig()
	return NewBall(cfg), NewPaddle(cfg), NewBrickGrid(cfg.Bricks)
}

func TestBall_Reset(t *testing.T) {
	b, p, _ := newBallFixture()
	rng := rand.New(rand.NewPCG(3, 4))

	sawLeft, sawRight := false, false
	for range 64 {
		b.Reset(p, rng)
		assert.Equal(t, 400.0, b.X)
		assert.Equal(t, 558.0, b.Y)
		assert.Equal(t, -4.0, b.Dy)
		require.Equal(t, 4.0, math.Abs(b.Dx))
		sawLeft = sawLeft || b.Dx < 0
		sawRight = sawRight || b.Dx > 0
	}
	assert.True(t, sawLeft && sawRight, "launch direction should vary")
}

func TestBall_ResetDeterministic(t *testing.T) {
	b1, p, _ := newBallFixture()
	b2, _, _ := newBallFixture()
	r1 := rand.New(rand.NewPCG(9, 9))
	r2 := rand.New(rand.NewPCG(9, 9))
	for range 10 {
		b1.Reset(p, r1)
		b2.Reset(p, r2)
		assert.Equal(t, b1.Dx, b2.Dx)
	}
}

func TestBall_Walls(t *testing.T) {
	testCases := []struct {
		name           string
		x, y, dx, dy   float64
		wantX, wantY   float64
		wantDx, wantDy float64
	}{
		{"Left", 10, 300, -4, 4, 8, 304, 4, 4},
		{"Right", 790, 300, 4, -4, 792, 296, -4, -4},
		{"Ceiling", 400, 10, 4, -4, 404, 8, 4, 4},
		{"Corner", 10, 10, -4, -4, 8, 8, 4, 4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, p, g := newBallFixture()
			b.X, b.Y, b.Dx, b.Dy = tc.x, tc.y, tc.dx, tc.dy

			contact := b.Update(p, g)
			assert.True(t, contact.Wall)
			assert.False(t, contact.Floor)
			assert.Equal(t, tc.wantX, b.X)
			assert.Equal(t, tc.wantY, b.Y)
			assert.Equal(t, tc.wantDx, b.Dx)
			assert.Equal(t, tc.wantDy, b.Dy)
		})
	}
}

func TestBall_FloorStopsResolution(t *testing.T) {
	b, p, g := newBallFixture()
	b.X, b.Y, b.Dx, b.Dy = 100, 590, 0, 4

	contact := b.Update(p, g)
	assert.True(t, contact.Floor)
	assert.False(t, contact.Paddle)
	assert.Nil(t, contact.Brick)
	assert.Equal(t, 4.0, b.Dy, "velocity is untouched on the floor")
}

func TestBall_PaddleCenterGoesStraightUp(t *testing.T) {
	b, p, g := newBallFixture()
	b.X, b.Y, b.Dx, b.Dy = 400, 560, 0, 4

	contact := b.Update(p, g)
	require.True(t, contact.Paddle)
	assert.Equal(t, p.Y-b.Radius, b.Y, "ball sits on the paddle")
	assert.InDelta(t, 0, b.Dx, 1e-12)
	assert.InDelta(t, -b.LaunchSpeed(), b.Dy, 1e-9)
}

func TestBall_PaddleLeftEdgeDeflectsMost(t *testing.T) {
	b, p, g := newBallFixture()
	b.X, b.Y, b.Dx, b.Dy = p.X, 560, 0, 4

	contact := b.Update(p, g)
	require.True(t, contact.Paddle)
	// Before renormalisation dx = -MaxDeflection/2 = -3 and dy = -4.
	assert.Less(t, b.Dx, 0.0)
	assert.InDelta(t, 0.75, b.Dx/b.Dy, 1e-9)
	assert.InDelta(t, b.LaunchSpeed(), b.Speed(), 1e-9)

	steepest := b.Dx
	for _, hitPos := range []float64{0.1, 0.25, 0.4} {
		b.X, b.Y, b.Dx, b.Dy = p.X+hitPos*p.Width, 560, 0, 4
		b.Update(p, g)
		assert.Greater(t, b.Dx, steepest, "hitPos %v", hitPos)
	}
}

func TestBall_PaddleBounceKeepsLaunchSpeed(t *testing.T) {
	b, p, g := newBallFixture()
	rng := rand.New(rand.NewPCG(11, 5))
	for i := range 500 {
		hitPos := rng.Float64()
		dy := 1 + rng.Float64()*9
		b.X, b.Y, b.Dx, b.Dy = p.X+hitPos*p.Width, p.Y-b.Radius-dy/2, 0, dy

		contact := b.Update(p, g)
		require.True(t, contact.Paddle, "case %d", i)
		require.InDelta(t, b.LaunchSpeed(), b.Speed(), 1e-9, "case %d", i)
		require.Less(t, b.Dy, 0.0)
	}
}

func TestBall_PaddleIgnoredWhenRising(t *testing.T) {
	b, p, g := newBallFixture()
	b.X, b.Y, b.Dx, b.Dy = 400, 580, 0, -4

	contact := b.Update(p, g)
	assert.False(t, contact.Paddle)
	assert.Equal(t, -4.0, b.Dy)
}

func TestBall_PaddleMissedOutsideExtent(t *testing.T) {
	b, p, g := newBallFixture()
	b.X, b.Y, b.Dx, b.Dy = p.X-5, 560, 0, 4

	contact := b.Update(p, g)
	assert.False(t, contact.Paddle)
	assert.Equal(t, 4.0, b.Dy)
}
