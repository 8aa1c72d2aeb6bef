// File: game/collision.go
package game

import "math"

func (b *Ball) CollidesLeftWall() bool {
	return b.X-b.Radius <= 0
}

func (b *Ball) CollidesRightWall() bool {
	return b.X+b.Radius >= b.fieldWidth
}

func (b *Ball) CollidesCeiling() bool {
	return b.Y-b.Radius <= 0
}

func (b *Ball) CollidesFloor() bool {
	return b.Y+b.Radius >= b.fieldHeight
}

// collideWalls reflects off the side walls and the ceiling, clamping the ball
// so it stays tangent to the wall it hit.
func (b *Ball) collideWalls() bool {
	hit := false
	if b.CollidesLeftWall() {
		b.Dx = math.Abs(b.Dx)
		b.X = b.Radius
		hit = true
	} else if b.CollidesRightWall() {
		b.Dx = -math.Abs(b.Dx)
		b.X = b.fieldWidth - b.Radius
		hit = true
	}
	if b.CollidesCeiling() {
		b.Dy = math.Abs(b.Dy)
		b.Y = b.Radius
		hit = true
	}
	return hit
}

// InterceptsPaddle reports a descending ball whose bottom edge lies in the
// paddle's top band with its center over the paddle.
func (b *Ball) InterceptsPaddle(p *Paddle) bool {
	bottom := b.Y + b.Radius
	return b.Dy > 0 &&
		bottom >= p.Y && bottom <= p.Y+p.Height &&
		b.X >= p.X && b.X <= p.X+p.Width
}

// CollidePaddle bounces the ball off the paddle. The hit position steers the
// rebound: the center sends it straight up, the edges at the sharpest angle.
func (b *Ball) CollidePaddle(p *Paddle) bool {
	if p == nil || !b.InterceptsPaddle(p) {
		return false
	}
	b.Y = p.Y - b.Radius
	hitPos := (b.X - p.X) / p.Width
	b.Dx = b.maxDeflection * (hitPos - 0.5)
	b.Dy = -math.Abs(b.Dy)
	b.normalizeSpeed()
	return true
}

// InterceptsRect tests the ball's bounding box against r. Touching edges do not count.
func (b *Ball) InterceptsRect(r Rect) bool {
	return b.X+b.Radius > r.X &&
		b.X-b.Radius < r.Right() &&
		b.Y+b.Radius > r.Y &&
		b.Y-b.Radius < r.Bottom()
}

// Penetration returns how deep the ball's bounding box reaches into r on each axis.
func (b *Ball) Penetration(r Rect) (overlapX, overlapY float64) {
	overlapX = math.Min(b.X+b.Radius-r.X, r.Right()-(b.X-b.Radius))
	overlapY = math.Min(b.Y+b.Radius-r.Y, r.Bottom()-(b.Y-b.Radius))
	return overlapX, overlapY
}

// CollideBricks destroys the first live brick, in row-major order, that the ball
// overlaps and reflects off the face with the shallower penetration. At most one
// brick is resolved per call.
func (b *Ball) CollideBricks(grid *BrickGrid) *Brick {
	if grid == nil {
		return nil
	}
	var hit *Brick
	grid.ForEach(func(brick *Brick) bool {
		if !brick.Alive || !b.InterceptsRect(brick.Rect()) {
			return true
		}
		hit = brick
		return false
	})
	if hit == nil {
		return nil
	}
	grid.Destroy(hit)
	overlapX, overlapY := b.Penetration(hit.Rect())
	if overlapX < overlapY {
		b.Dx = -b.Dx
	} else {
		b.Dy = -b.Dy
	}
	return hit
}
