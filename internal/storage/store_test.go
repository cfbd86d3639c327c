package storage

import (
	"testing"

	"github.com/san-kum/skyburst/internal/stats"
)

func testRecorder() *stats.Recorder {
	rec := stats.NewRecorder()
	rec.AddLaunched(8)
	rec.Observe(0.016, 8, 0)
	rec.Observe(0.032, 8, 95)
	rec.Observe(0.048, 0, 40)
	return rec
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(1234, 0.016, testRecorder())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", meta.Seed)
	}
	if meta.Frames != 3 {
		t.Errorf("frames = %d, want 3", meta.Frames)
	}
	if meta.TotalLaunched != 8 {
		t.Errorf("launched = %d, want 8", meta.TotalLaunched)
	}
	if meta.PeakParticles != 95 {
		t.Errorf("peak = %d, want 95", meta.PeakParticles)
	}

	samples, err := st.LoadCounts(runID)
	if err != nil {
		t.Fatalf("load counts failed: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("samples = %d, want 3", len(samples))
	}
	if samples[1].Particles != 95 || samples[1].Rockets != 8 {
		t.Errorf("sample[1] = %+v", samples[1])
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Save(1, 0.016, testRecorder()); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	if runs[0].Seed != 1 {
		t.Errorf("seed = %d, want 1", runs[0].Seed)
	}
}

func TestList_MissingDir(t *testing.T) {
	st := New("/nonexistent/skyburst-data")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list of missing dir should not fail: %v", err)
	}
	if runs != nil {
		t.Errorf("runs = %v, want nil", runs)
	}
}

func TestLoad_Unknown(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("show_0"); err == nil {
		t.Error("expected error for unknown run")
	}
}
