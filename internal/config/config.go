package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/aquarium/internal/aquarium"
	"github.com/san-kum/aquarium/internal/palette"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPalette          = "reef"
	DefaultFPS              = 30
	DefaultResizeDebounceMs = 250
	DefaultWidth            = 960.0
	DefaultHeight           = 480.0
	DefaultFontSize         = 16.0
	DefaultLineHeight       = 1.2
	DefaultFrames           = 120
)

type Config struct {
	Palette          string          `yaml:"palette"`
	Colors           palette.Palette `yaml:"colors"`
	FPS              int             `yaml:"fps"`
	ResizeDebounceMs int             `yaml:"resize_debounce_ms"`
	Seed             int64           `yaml:"seed"`
	Surface          SurfaceConfig   `yaml:"surface"`
}

// SurfaceConfig describes the offline page element used by render and stats.
type SurfaceConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FontSize   float64 `yaml:"font_size"`
	LineHeight float64 `yaml:"line_height"`
	Frames     int     `yaml:"frames"`
}

func DefaultConfig() *Config {
	return &Config{
		Palette:          DefaultPalette,
		FPS:              DefaultFPS,
		ResizeDebounceMs: DefaultResizeDebounceMs,
		Surface: SurfaceConfig{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			FontSize:   DefaultFontSize,
			LineHeight: DefaultLineHeight,
			Frames:     DefaultFrames,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolvePalette returns the named palette with any explicit color overrides.
func (c *Config) ResolvePalette() (palette.Palette, error) {
	base, ok := palette.Lookup(c.Palette)
	if !ok {
		return palette.Palette{}, fmt.Errorf("%w: %q (available: %v)", aquarium.ErrUnknownPalette, c.Palette, palette.Names())
	}
	return palette.Merge(base, c.Colors), nil
}

func (c *Config) ResizeDebounce() time.Duration {
	if c.ResizeDebounceMs <= 0 {
		return DefaultResizeDebounceMs * time.Millisecond
	}
	return time.Duration(c.ResizeDebounceMs) * time.Millisecond
}
