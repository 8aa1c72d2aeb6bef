// File: game/paddle.go
package game

import "github.com/lguibr/brickbreaker/utils"

// Paddle is the player's bat. It only moves horizontally.
type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`

	ease         float64
	fieldWidth   float64
	fieldHeight  float64
	bottomOffset float64
}

func NewPaddle(cfg utils.Config) *Paddle {
	p := &Paddle{
		Width:        cfg.Paddle.Width,
		Height:       cfg.Paddle.Height,
		Speed:        cfg.Paddle.Speed,
		ease:         cfg.Paddle.PointerEase,
		fieldWidth:   cfg.Field.Width,
		fieldHeight:  cfg.Field.Height,
		bottomOffset: cfg.Paddle.BottomOffset,
	}
	p.Reset()
	return p
}

// Reset centers the paddle at its fixed height above the floor.
func (p *Paddle) Reset() {
	p.X = (p.fieldWidth - p.Width) / 2
	p.Y = p.fieldHeight - p.bottomOffset
}

// Update moves the paddle from held keys, then toward the pointer if it is over
// the field, and keeps it inside the field.
func (p *Paddle) Update(in *Input) {
	if in.IsLeft() {
		p.X -= p.Speed
	}
	if in.IsRight() {
		p.X += p.Speed
	}
	if in.PointerActive {
		target := in.PointerX - p.Width/2
		p.X += (target - p.X) * p.ease
	}
	p.X = utils.Clamp(p.X, 0, p.MaxX())
}

// MaxX is the largest x the paddle may take.
func (p *Paddle) MaxX() float64 {
	return p.fieldWidth - p.Width
}

func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
