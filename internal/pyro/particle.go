package pyro

import (
	"math"

	"github.com/san-kum/skyburst/internal/palette"
	"github.com/san-kum/skyburst/internal/randx"
)

const (
	defaultGravity = 80.0  // px/s^2
	defaultDrag    = 0.995 // per-step multiplicative velocity decay
	flickerRate    = 20.0  // rad/s
)

// Particle is a single glowing point with velocity, drag, gravity, and a
// finite lifetime. It fades and shrinks as it ages and may flicker.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Age      float64
	Lifetime float64
	Color    palette.Color
	Size     float64
	Gravity  float64
	Drag     float64
	Flicker  bool

	dead bool
}

// NewParticle creates a live particle with default gravity and drag. Roughly
// half of all particles flicker.
func NewParticle(r *randx.Rand, x, y, vx, vy, lifetime, size float64, c palette.Color) *Particle {
	return &Particle{
		X: x, Y: y,
		VX: vx, VY: vy,
		Lifetime: lifetime,
		Color:    c,
		Size:     size,
		Gravity:  defaultGravity,
		Drag:     defaultDrag,
		Flicker:  r.Chance(0.5),
	}
}

// Update advances the particle by dt seconds using semi-implicit Euler.
// Once age reaches the lifetime the particle is marked dead and no further
// integration happens.
func (p *Particle) Update(dt float64) {
	p.Age += dt
	if p.Age >= p.Lifetime {
		p.dead = true
		return
	}
	p.VX *= p.Drag
	p.VY *= p.Drag
	p.VY += p.Gravity * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

func (p *Particle) Dead() bool { return p.dead }

// renderAlpha is the drawn opacity: the base fade from 1 to 0 over the
// lifetime, optionally modulated by a sinusoidal flicker in (0.6, 1.0).
func (p *Particle) renderAlpha() float64 {
	t := p.Age / p.Lifetime
	alpha := 1 - t
	if alpha < 0 {
		alpha = 0
	}
	if p.Flicker {
		alpha *= 0.8 + 0.2*math.Sin(flickerRate*p.Age)
	}
	return alpha
}

// renderRadius shrinks the particle from 1.5x down to 1x its size over the
// lifetime.
func (p *Particle) renderRadius() float64 {
	t := p.Age / p.Lifetime
	return p.Size * (1 + 0.5*(1-t))
}

func (p *Particle) Draw(s Surface) {
	s.FillCircle(p.X, p.Y, p.renderRadius(), p.Color.WithAlpha(p.renderAlpha()), true)
}
