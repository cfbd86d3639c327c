package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Burst.Min != 6 || cfg.Burst.Max != 10 {
		t.Errorf("default burst range = [%d,%d], want [6,10]", cfg.Burst.Min, cfg.Burst.Max)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "show.yaml")

	cfg := DefaultConfig()
	cfg.Seed = 1234
	cfg.Burst.Min = 3
	cfg.Burst.Max = 5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", loaded.Seed)
	}
	if loaded.Burst.Min != 3 || loaded.Burst.Max != 5 {
		t.Errorf("burst range = [%d,%d], want [3,5]", loaded.Burst.Min, loaded.Burst.Max)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "show.yaml")
	if err := os.WriteFile(path, []byte("seed: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("fps = %d, want default %d", cfg.FPS, DefaultFPS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero fps", func(c *Config) { c.FPS = 0 }, true},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"zero burst min", func(c *Config) { c.Burst.Min = 0 }, true},
		{"inverted burst", func(c *Config) { c.Burst.Min = 8; c.Burst.Max = 4 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("finale")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Burst.Min <= DefaultBurstMin {
		t.Error("finale should fire bigger bursts than the default")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		if GetPreset(name) == nil {
			t.Errorf("listed preset %q not retrievable", name)
		}
	}
}
