package pyro

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/skyburst/internal/palette"
	"github.com/san-kum/skyburst/internal/randx"
)

const dt = 0.016

var _ = Describe("Firework", func() {
	var (
		rng *randx.Rand
		fw  *Firework
	)

	BeforeEach(func() {
		rng = randx.New(42)
		fw = Launch(rng, 100, 500, 150, palette.RandomVivid(rng, 1))
	})

	It("launches ascending with upward velocity", func() {
		Expect(fw.Phase()).To(Equal(PhaseAscending))
		Expect(fw.VY).To(BeNumerically("<=", -320))
		Expect(fw.VY).To(BeNumerically(">=", -520))
		Expect(fw.VX).To(BeNumerically("~", 0, 30))
		Expect(fw.Dead()).To(BeFalse())
	})

	It("explodes within a bounded number of steps", func() {
		steps := 0
		for !fw.Exploded() {
			fw.Update(dt)
			steps++
			Expect(steps).To(BeNumerically("<", 500), "rocket never reached its target")
		}
		Expect(fw.Phase()).To(Equal(PhaseExploded))
	})

	It("rises while ascending", func() {
		y0 := fw.Y
		fw.Update(dt)
		Expect(fw.Y).To(BeNumerically("<", y0))
	})

	Context("after exploding", func() {
		BeforeEach(func() {
			for !fw.Exploded() {
				fw.Update(dt)
			}
		})

		It("owns between 60 and 120 particles", func() {
			Expect(fw.ParticleCount()).To(BeNumerically(">=", 60))
			Expect(fw.ParticleCount()).To(BeNumerically("<=", 120))
		})

		It("never transitions back to ascending", func() {
			for i := 0; i < 50; i++ {
				fw.Update(dt)
				Expect(fw.Exploded()).To(BeTrue())
			}
		})

		It("gives each burst particle full opacity and its own drag and gravity", func() {
			for _, p := range fw.Particles() {
				Expect(p.Color.A).To(Equal(1.0))
				Expect(p.Drag).To(BeNumerically(">=", 0.985))
				Expect(p.Drag).To(BeNumerically("<=", 0.998))
				Expect(p.Gravity).To(BeNumerically(">=", 60))
				Expect(p.Gravity).To(BeNumerically("<=", 140))
				Expect(p.Lifetime).To(BeNumerically(">=", 0.8))
				Expect(p.Lifetime).To(BeNumerically("<=", 1.8))
			}
		})

		It("dies exactly when its particle cloud empties", func() {
			steps := 0
			for !fw.Dead() {
				Expect(fw.Dead()).To(Equal(fw.Exploded() && fw.ParticleCount() == 0))
				fw.Update(dt)
				steps++
				// Burst lifetimes cap at 1.8s, so 16ms steps bound this well
				// under 200 iterations.
				Expect(steps).To(BeNumerically("<", 500), "exploded firework never emptied")
			}
			Expect(fw.ParticleCount()).To(BeZero())
			Expect(fw.Dead()).To(BeTrue())
		})
	})

	Context("trail emission", func() {
		It("emits short-lived trail particles in the rocket's color", func() {
			// Step a few frames; with 0.6 emission probability the trail is
			// virtually guaranteed to exist.
			for i := 0; i < 10 && fw.Phase() == PhaseAscending; i++ {
				fw.Update(dt)
			}
			Expect(fw.ParticleCount()).To(BeNumerically(">", 0))

			if fw.Phase() == PhaseAscending {
				for _, p := range fw.Particles() {
					Expect(p.Lifetime).To(BeNumerically(">=", 0.25))
					Expect(p.Lifetime).To(BeNumerically("<=", 0.45))
					Expect(p.Size).To(BeNumerically(">=", 1.2))
					Expect(p.Size).To(BeNumerically("<=", 2.2))
					Expect(p.Color).To(Equal(fw.Color))
				}
			}
		})
	})

	Describe("apex fallback", func() {
		It("explodes near apex even when the target is unreachably high", func() {
			// Target above the screen; the velocity decay threshold has to
			// trigger the explosion instead.
			slow := Launch(rng, 100, 500, -1e9, palette.RandomVivid(rng, 1))
			slow.VY = -61 // one nudge away from the threshold

			steps := 0
			for !slow.Exploded() {
				slow.Update(dt)
				steps++
				Expect(steps).To(BeNumerically("<", 100))
			}
		})
	})
})
