// File: game/particles.go
package game

import (
	"image/color"
	"math/rand/v2"

	"github.com/lguibr/brickbreaker/utils"
)

// Particle is a short-lived dot. Life runs from 1 down to 0 and doubles as its alpha.
type Particle struct {
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Dx     float64     `json:"dx"`
	Dy     float64     `json:"dy"`
	Radius float64     `json:"radius"`
	Color  color.NRGBA `json:"-"`
	Life   float64     `json:"life"`
}

// ParticleSystem holds every live particle. There is no cap; decay bounds it.
type ParticleSystem struct {
	cfg       utils.ParticlesConfig
	particles []Particle
}

func NewParticleSystem(cfg utils.ParticlesConfig) *ParticleSystem {
	return &ParticleSystem{cfg: cfg}
}

// Spawn emits a burst of cfg.Count particles at (x, y).
func (ps *ParticleSystem) Spawn(rng *rand.Rand, x, y float64, c color.NRGBA) {
	for range ps.cfg.Count {
		ps.particles = append(ps.particles, Particle{
			X:      x,
			Y:      y,
			Dx:     utils.Spread(rng, ps.cfg.Speed),
			Dy:     utils.Spread(rng, ps.cfg.Speed),
			Radius: rng.Float64()*ps.cfg.MaxRadius + ps.cfg.MinRadius,
			Color:  c,
			Life:   1,
		})
	}
}

// Update advances and ages every particle, dropping the ones whose life ran out.
func (ps *ParticleSystem) Update() {
	for i := len(ps.particles) - 1; i >= 0; i-- {
		p := &ps.particles[i]
		p.X += p.Dx
		p.Y += p.Dy
		p.Life -= ps.cfg.Decay
		if p.Life <= 0 {
			ps.particles = append(ps.particles[:i], ps.particles[i+1:]...)
		}
	}
}

func (ps *ParticleSystem) Len() int { return len(ps.particles) }

// Particles returns the live particles. The slice is only valid until the next Update.
func (ps *ParticleSystem) Particles() []Particle { return ps.particles }

func (ps *ParticleSystem) Clear() { ps.particles = ps.particles[:0] }
