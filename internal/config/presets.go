package config

import "sort"

var Presets = map[string]*Config{
	"reef": {
		Palette: "reef", FPS: 30, ResizeDebounceMs: 250,
		Surface: SurfaceConfig{Width: 960, Height: 480, FontSize: 16, LineHeight: 1.2, Frames: 120},
	},
	"night": {
		Palette: "abyss", FPS: 20, ResizeDebounceMs: 250,
		Surface: SurfaceConfig{Width: 1280, Height: 720, FontSize: 14, LineHeight: 1.2, Frames: 120},
	},
	"banner": {
		Palette: "lagoon", FPS: 30, ResizeDebounceMs: 250,
		Surface: SurfaceConfig{Width: 1200, Height: 160, FontSize: 12, LineHeight: 1.1, Frames: 60},
	},
	"tiny": {
		Palette: "mono", FPS: 15, ResizeDebounceMs: 250,
		Surface: SurfaceConfig{Width: 140, Height: 96, FontSize: 0, LineHeight: 1.2, Frames: 30},
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

// ListPresets returns the preset names in alphabetical order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
