package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		FPS: 60, Width: 800, Height: 600,
		Burst: BurstConfig{Min: 6, Max: 10},
	},
	"calm": {
		FPS: 60, Width: 800, Height: 600,
		Burst: BurstConfig{Min: 2, Max: 4},
	},
	"finale": {
		FPS: 60, Width: 1280, Height: 720,
		Burst: BurstConfig{Min: 14, Max: 20},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
