// Package stats collects per-frame counters from a running show.
package stats

type Sample struct {
	Time      float64
	Rockets   int
	Particles int
}

type Summary struct {
	Frames        int
	Duration      float64
	TotalLaunched int
	PeakParticles int
}

// Recorder observes the show once per frame and keeps the full count
// history for plotting and persistence.
type Recorder struct {
	samples  []Sample
	launched int
	peak     int
}

func NewRecorder() *Recorder {
	return &Recorder{samples: make([]Sample, 0, 1024)}
}

// Observe records one frame worth of counts.
func (r *Recorder) Observe(t float64, rockets, particles int) {
	r.samples = append(r.samples, Sample{Time: t, Rockets: rockets, Particles: particles})
	if particles > r.peak {
		r.peak = particles
	}
}

// AddLaunched accumulates the rocket count of a burst.
func (r *Recorder) AddLaunched(n int) { r.launched += n }

func (r *Recorder) Samples() []Sample { return r.samples }

// ParticleSeries returns the particle counts as a float series for plotting.
func (r *Recorder) ParticleSeries() []float64 {
	series := make([]float64, len(r.samples))
	for i, s := range r.samples {
		series[i] = float64(s.Particles)
	}
	return series
}

func (r *Recorder) Summary() Summary {
	s := Summary{
		Frames:        len(r.samples),
		TotalLaunched: r.launched,
		PeakParticles: r.peak,
	}
	if len(r.samples) > 0 {
		s.Duration = r.samples[len(r.samples)-1].Time
	}
	return s
}

func (r *Recorder) Reset() {
	r.samples = r.samples[:0]
	r.launched = 0
	r.peak = 0
}
