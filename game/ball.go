// File: game/ball.go
package game

import (
	"math"
	"math/rand/v2"

	"github.com/lguibr/brickbreaker/utils"
)

// Contact reports what the ball touched during one Update.
type Contact struct {
	Wall   bool   // a side wall or the ceiling
	Paddle bool   // a bounce off the paddle
	Floor  bool   // the ball left the field; nothing else was resolved
	Brick  *Brick // the brick destroyed this tick, if any
}

// Ball is the moving circle. Its speed returns to LaunchSpeed after every paddle bounce.
type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Dx     float64 `json:"dx"`
	Dy     float64 `json:"dy"`
	Radius float64 `json:"radius"`

	launchSpeed   float64
	initialDx     float64
	initialDy     float64
	maxDeflection float64
	spawnGap      float64
	fieldWidth    float64
	fieldHeight   float64
}

func NewBall(cfg utils.Config) *Ball {
	return &Ball{
		Radius:        cfg.Ball.Radius,
		launchSpeed:   cfg.LaunchSpeed(),
		initialDx:     cfg.Ball.InitialDx,
		initialDy:     cfg.Ball.InitialDy,
		maxDeflection: cfg.Ball.MaxDeflection,
		spawnGap:      cfg.Ball.SpawnGap,
		fieldWidth:    cfg.Field.Width,
		fieldHeight:   cfg.Field.Height,
	}
}

// Reset puts the ball above the paddle, launching it up toward a random side.
func (b *Ball) Reset(paddle *Paddle, rng *rand.Rand) {
	b.X = b.fieldWidth / 2
	b.Y = paddle.Y - b.Radius - b.spawnGap
	b.Dx = b.initialDx * utils.RandomSign(rng)
	b.Dy = b.initialDy
}

func (b *Ball) Speed() float64 {
	return math.Hypot(b.Dx, b.Dy)
}

// LaunchSpeed is the speed the ball is held to after paddle bounces.
func (b *Ball) LaunchSpeed() float64 {
	return b.launchSpeed
}

// Update moves the ball one tick and resolves, in order: side walls, ceiling,
// floor, paddle and bricks. Reaching the floor stops resolution for the tick.
func (b *Ball) Update(paddle *Paddle, grid *BrickGrid) Contact {
	b.X += b.Dx
	b.Y += b.Dy

	var contact Contact
	contact.Wall = b.collideWalls()
	if b.CollidesFloor() {
		contact.Floor = true
		return contact
	}
	contact.Paddle = b.CollidePaddle(paddle)
	contact.Brick = b.CollideBricks(grid)
	return contact
}

func (b *Ball) normalizeSpeed() {
	speed := b.Speed()
	if speed == 0 {
		return
	}
	scale := b.launchSpeed / speed
	b.Dx *= scale
	b.Dy *= scale
}
