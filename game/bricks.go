// File: game/bricks.go
package game

import (
	"image/color"

	"github.com/lguibr/brickbreaker/utils"
)

// Brick is one grid cell. It goes from alive to dead once per game.
type Brick struct {
	Row    int         `json:"row"`
	Col    int         `json:"col"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Alive  bool        `json:"alive"`
	Color  color.NRGBA `json:"-"`
	Points int         `json:"points"`
}

func (b *Brick) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

func (b *Brick) Center() (x, y float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// BrickGrid is a rows x cols grid of bricks, tiered by row.
type BrickGrid struct {
	cfg    utils.BricksConfig
	bricks [][]Brick
}

// NewBrickGrid builds a grid with every brick alive. cfg must have passed validation.
func NewBrickGrid(cfg utils.BricksConfig) *BrickGrid {
	g := &BrickGrid{cfg: cfg}
	g.Create()
	return g
}

// Create regenerates the whole grid, every brick alive.
func (g *BrickGrid) Create() {
	g.bricks = make([][]Brick, g.cfg.Rows)
	for r := range g.bricks {
		tier := utils.MustParseHexColor(g.cfg.Colors[r])
		g.bricks[r] = make([]Brick, g.cfg.Cols)
		for c := range g.bricks[r] {
			g.bricks[r][c] = Brick{
				Row:    r,
				Col:    c,
				X:      g.cfg.OffsetLeft + float64(c)*(g.cfg.Width+g.cfg.Padding),
				Y:      g.cfg.OffsetTop + float64(r)*(g.cfg.Height+g.cfg.Padding),
				Width:  g.cfg.Width,
				Height: g.cfg.Height,
				Alive:  true,
				Color:  tier,
				Points: g.cfg.Points[r],
			}
		}
	}
}

func (g *BrickGrid) Rows() int { return len(g.bricks) }
func (g *BrickGrid) Cols() int { return g.cfg.Cols }

// At returns the brick at (row, col), or nil outside the grid.
func (g *BrickGrid) At(row, col int) *Brick {
	if row < 0 || row >= len(g.bricks) || col < 0 || col >= len(g.bricks[row]) {
		return nil
	}
	return &g.bricks[row][col]
}

// ForEach visits bricks in row-major order until fn returns false.
func (g *BrickGrid) ForEach(fn func(b *Brick) bool) {
	for r := range g.bricks {
		for c := range g.bricks[r] {
			if !fn(&g.bricks[r][c]) {
				return
			}
		}
	}
}

// Destroy kills a live brick. It returns false if the brick was already dead.
func (g *BrickGrid) Destroy(b *Brick) bool {
	if b == nil || !b.Alive {
		return false
	}
	b.Alive = false
	return true
}

// Alive counts the bricks still standing.
func (g *BrickGrid) Alive() int {
	n := 0
	g.ForEach(func(b *Brick) bool {
		if b.Alive {
			n++
		}
		return true
	})
	return n
}

// AllDestroyed reports whether no brick is left alive.
func (g *BrickGrid) AllDestroyed() bool {
	cleared := true
	g.ForEach(func(b *Brick) bool {
		cleared = !b.Alive
		return cleared
	})
	return cleared
}
