// Package show owns the active entity collection and drives the per-frame
// update/draw cycle, independent of any particular renderer.
package show

import (
	"time"

	"github.com/san-kum/skyburst/internal/palette"
	"github.com/san-kum/skyburst/internal/pyro"
	"github.com/san-kum/skyburst/internal/randx"
)

const (
	// MaxFrameDelta clamps the per-frame delta time so large gaps (a
	// backgrounded window, a stalled terminal) cannot blow up the physics.
	MaxFrameDelta = 33 * time.Millisecond

	// AllClearDelay is how long the entity collection must stay empty
	// before the show counts as complete. Debounces the completion banner
	// between consecutive bursts.
	AllClearDelay = 200 * time.Millisecond

	// launchMargin keeps rockets away from the side edges, as a fraction of
	// the canvas width.
	launchMargin = 0.06

	// Rockets aim for a random altitude in the upper band of the canvas.
	targetBandTop    = 0.22
	targetBandBottom = 0.48
)

// Background fill and ambient glow used by Render.
var (
	fadeColor = palette.Color{H: 225, S: 55, L: 5, A: 0.22}
	glowColor = palette.Color{H: 28, S: 80, L: 55, A: 0.05}
)

// Show manages the fireworks display: it spawns bursts, steps every live
// entity, sweeps the dead, and flags completion once the sky stays empty.
type Show struct {
	rng      *randx.Rand
	entities []pyro.Entity

	width, height float64
	running       bool
	completed     bool
	emptyFor      float64
	elapsed       float64
}

func New(rng *randx.Rand, width, height float64) *Show {
	return &Show{
		rng:    rng,
		width:  width,
		height: height,
	}
}

// Resize updates the logical canvas dimensions.
func (s *Show) Resize(width, height float64) {
	s.width = width
	s.height = height
}

func (s *Show) Running() bool    { return s.running }
func (s *Show) Completed() bool  { return s.completed }
func (s *Show) Elapsed() float64 { return s.elapsed }
func (s *Show) EntityCount() int { return len(s.entities) }

// ParticleCount sums the particles owned by every live firework.
func (s *Show) ParticleCount() int {
	total := 0
	for _, e := range s.entities {
		if fw, ok := e.(*pyro.Firework); ok {
			total += fw.ParticleCount()
		}
	}
	return total
}

// LaunchBurst adds count rockets at random horizontal positions, clears the
// completion state, and marks the show running.
func (s *Show) LaunchBurst(count int) {
	s.completed = false
	s.emptyFor = 0
	s.running = true

	margin := s.width * launchMargin
	for i := 0; i < count; i++ {
		x := s.rng.Range(margin, s.width-margin)
		targetY := s.rng.Range(targetBandTop, targetBandBottom) * s.height
		c := palette.RandomVivid(s.rng, 1)
		s.entities = append(s.entities, pyro.Launch(s.rng, x, s.height, targetY, c))
	}
}

// LaunchRandom fires a burst of uniform random size in [min, max] and
// returns the count.
func (s *Show) LaunchRandom(min, max int) int {
	n := s.rng.RangeInt(min, max)
	s.LaunchBurst(n)
	return n
}

// Step advances the simulation by dt seconds, clamped to MaxFrameDelta.
// Once the entity collection has been empty for AllClearDelay of simulated
// time the show stops running and is marked completed.
func (s *Show) Step(dt float64) {
	if !s.running {
		return
	}
	if limit := MaxFrameDelta.Seconds(); dt > limit {
		dt = limit
	}
	s.elapsed += dt

	live := s.entities[:0]
	for _, e := range s.entities {
		e.Update(dt)
		if !e.Dead() {
			live = append(live, e)
		}
	}
	s.entities = live

	if len(s.entities) > 0 {
		s.emptyFor = 0
		return
	}
	s.emptyFor += dt
	if s.emptyFor >= AllClearDelay.Seconds() {
		s.running = false
		s.completed = true
	}
}

// Render paints one frame: the translucent trail fade, the ambient glow,
// then every live entity.
func (s *Show) Render(surface pyro.Surface) {
	surface.Fade(fadeColor)
	surface.Glow(s.width/2, s.height, s.height*0.9, glowColor)
	for _, e := range s.entities {
		e.Draw(surface)
	}
}
