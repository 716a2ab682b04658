package config

import "sort"

var Presets = map[string]*Config{
	"tiny": {
		Algorithm: "Bubble Sort", Delay: 0.3,
		Dataset: DatasetConfig{Size: 8, Min: 1, Max: 20},
		Display: DisplayConfig{Width: 48, Height: 12, Fill: DefaultFill, Theme: DefaultTheme},
	},
	"classic": {
		Algorithm: "Bubble Sort", Delay: DefaultDelay,
		Dataset: DatasetConfig{Size: DefaultSize, Min: DefaultMin, Max: DefaultMax},
		Display: DisplayConfig{Width: DefaultWidth, Height: DefaultHeight, Fill: DefaultFill, Theme: DefaultTheme},
	},
	"merge": {
		Algorithm: "Merge Sort", Delay: 0.05,
		Dataset: DatasetConfig{Size: 100, Min: DefaultMin, Max: DefaultMax},
		Display: DisplayConfig{Width: DefaultWidth, Height: DefaultHeight, Fill: DefaultFill, Theme: "ocean"},
	},
	"heap": {
		Algorithm: "Heap Sort", Delay: 0.05,
		Dataset: DatasetConfig{Size: 64, Min: DefaultMin, Max: DefaultMax},
		Display: DisplayConfig{Width: 128, Height: DefaultHeight, Fill: DefaultFill, Theme: "sunset"},
	},
	"search": {
		Algorithm: "Binary Search", Delay: 0.5, Target: "42",
		Dataset: DatasetConfig{Size: 30, Min: 1, Max: 60},
		Display: DisplayConfig{Width: 90, Height: 16, Fill: DefaultFill, Theme: DefaultTheme},
	},
	"slow": {
		Algorithm: "Selection Sort", Delay: MaxDelay,
		Dataset: DatasetConfig{Size: 12, Min: DefaultMin, Max: DefaultMax},
		Display: DisplayConfig{Width: 60, Height: 16, Fill: DefaultFill, Theme: "retro"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
