// Package storage persists completed show runs under a data directory, one
// subdirectory per run holding metadata.json and counts.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/skyburst/internal/stats"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Seed          int64     `json:"seed"`
	Dt            float64   `json:"dt"`
	Duration      float64   `json:"duration"`
	Frames        int       `json:"frames"`
	TotalLaunched int       `json:"total_launched"`
	PeakParticles int       `json:"peak_particles"`
}

func (s *Store) Save(seed int64, dt float64, rec *stats.Recorder) (string, error) {
	runID := fmt.Sprintf("show_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	sum := rec.Summary()
	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Seed:          seed,
		Dt:            dt,
		Duration:      sum.Duration,
		Frames:        sum.Frames,
		TotalLaunched: sum.TotalLaunched,
		PeakParticles: sum.PeakParticles,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "counts.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "rockets", "particles"}); err != nil {
		return "", err
	}
	for _, sample := range rec.Samples() {
		row := []string{
			strconv.FormatFloat(sample.Time, 'f', 6, 64),
			strconv.Itoa(sample.Rockets),
			strconv.Itoa(sample.Particles),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) LoadCounts(runID string) ([]stats.Sample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "counts.csv"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(rows) < 1 {
		return nil, nil
	}

	samples := make([]stats.Sample, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 3 {
			return nil, fmt.Errorf("run %s: malformed counts row %v", runID, row)
		}
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", runID, err)
		}
		rockets, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", runID, err)
		}
		particles, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", runID, err)
		}
		samples = append(samples, stats.Sample{Time: t, Rockets: rockets, Particles: particles})
	}
	return samples, nil
}
