package pyro

import (
	"math"

	"github.com/san-kum/skyburst/internal/palette"
	"github.com/san-kum/skyburst/internal/randx"
)

// Phase is the firework lifecycle state.
type Phase int

const (
	PhaseAscending Phase = iota
	PhaseExploded
	PhaseDead
)

func (p Phase) String() string {
	switch p {
	case PhaseAscending:
		return "ascending"
	case PhaseExploded:
		return "exploded"
	case PhaseDead:
		return "dead"
	}
	return "unknown"
}

const (
	thrustDecay   = 20.0  // upward velocity lost per second while ascending
	apexThreshold = -60.0 // explode once vy has decayed past this
	trailChance   = 0.6   // probability of emitting a trail particle per step
	trailOffset   = 4.0   // trail spawns slightly below the rocket head
	rocketRadius  = 2.2
)

// Firework is a two-phase entity: an ascending rocket that emits a sparkle
// trail, then an exploded cloud of particles it owns until they all expire.
type Firework struct {
	X, Y    float64
	VX, VY  float64
	Color   palette.Color
	phase   Phase
	targetY float64

	children []*Particle
	rng      *randx.Rand
}

// Launch creates a rocket at (x, groundY) heading up toward targetY.
func Launch(r *randx.Rand, x, groundY, targetY float64, c palette.Color) *Firework {
	return &Firework{
		X:       x,
		Y:       groundY,
		VX:      r.Range(-30, 30),
		VY:      -r.Range(320, 520),
		Color:   c,
		targetY: targetY,
		rng:     r,
	}
}

func (f *Firework) Phase() Phase           { return f.phase }
func (f *Firework) Exploded() bool         { return f.phase != PhaseAscending }
func (f *Firework) Dead() bool             { return f.phase == PhaseDead }
func (f *Firework) ParticleCount() int     { return len(f.children) }
func (f *Firework) Particles() []*Particle { return f.children }

func (f *Firework) Update(dt float64) {
	switch f.phase {
	case PhaseAscending:
		f.VY += thrustDecay * dt
		f.X += f.VX * dt
		f.Y += f.VY * dt
		if f.rng.Chance(trailChance) {
			f.emitTrail()
		}
		f.stepChildren(dt)
		if f.Y <= f.targetY || f.VY >= apexThreshold {
			f.explode()
		}
	case PhaseExploded:
		f.stepChildren(dt)
		if len(f.children) == 0 {
			f.phase = PhaseDead
		}
	}
}

// stepChildren updates owned particles and sweeps out the dead ones.
func (f *Firework) stepChildren(dt float64) {
	live := f.children[:0]
	for _, p := range f.children {
		p.Update(dt)
		if !p.Dead() {
			live = append(live, p)
		}
	}
	f.children = live
}

func (f *Firework) emitTrail() {
	p := NewParticle(f.rng,
		f.X, f.Y+trailOffset,
		f.rng.Range(-30, 30), f.rng.Range(20, 60),
		f.rng.Range(0.25, 0.45),
		f.rng.Range(1.2, 2.2),
		f.Color,
	)
	f.children = append(f.children, p)
}

// explode releases the particle burst. The palette is the rocket's own
// color plus three fresh vivid ones; each particle gets its own randomized
// drag and gravity. The burst replaces whatever is left of the trail, so
// after explosion the owned count is exactly the burst count.
func (f *Firework) explode() {
	f.phase = PhaseExploded

	colors := []palette.Color{
		f.Color,
		palette.RandomVivid(f.rng, 1),
		palette.RandomVivid(f.rng, 1),
		palette.RandomVivid(f.rng, 1),
	}

	n := f.rng.RangeInt(60, 120)
	f.children = make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		angle := f.rng.Range(0, 2*math.Pi)
		speed := f.rng.Range(120, 360)
		p := NewParticle(f.rng,
			f.X, f.Y,
			math.Cos(angle)*speed, math.Sin(angle)*speed,
			f.rng.Range(0.8, 1.8),
			f.rng.Range(1.2, 3.2),
			randx.Pick(f.rng, colors).WithAlpha(1),
		)
		p.Drag = f.rng.Range(0.985, 0.998)
		p.Gravity = f.rng.Range(60, 140)
		f.children = append(f.children, p)
	}
}

func (f *Firework) Draw(s Surface) {
	if f.phase == PhaseAscending {
		s.FillCircle(f.X, f.Y, rocketRadius, f.Color, true)
	}
	for _, p := range f.children {
		p.Draw(s)
	}
}
