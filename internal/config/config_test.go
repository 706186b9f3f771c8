package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/aquarium/internal/aquarium"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Palette != "reef" {
		t.Errorf("expected palette reef, got %s", cfg.Palette)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.ResizeDebounce() != 250*time.Millisecond {
		t.Errorf("expected 250ms debounce, got %v", cfg.ResizeDebounce())
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("night")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Palette != "abyss" {
		t.Errorf("expected palette abyss, got %s", cfg.Palette)
	}

	cfg.FPS = 99
	if Presets["night"].FPS == 99 {
		t.Error("preset was mutated through the returned copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Error("expected every preset listed")
	}
	if names[0] != "banner" || names[len(names)-1] != "tiny" {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aquarium.yaml")
	data := []byte("palette: abyss\nfps: 12\ncolors:\n  wave: \"#000000\"\nsurface:\n  width: 640\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FPS != 12 || cfg.Surface.Width != 640 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Surface.Height != DefaultHeight || cfg.ResizeDebounceMs != DefaultResizeDebounceMs {
		t.Errorf("defaults lost: %+v", cfg)
	}

	p, err := cfg.ResolvePalette()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if p.Name != "abyss" || p.Wave != "#000000" {
		t.Errorf("unexpected palette %+v", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aquarium.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Palette = "lagoon"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 42 || loaded.Palette != "lagoon" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolvePaletteUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = "tundra"
	if _, err := cfg.ResolvePalette(); !errors.Is(err, aquarium.ErrUnknownPalette) {
		t.Errorf("expected ErrUnknownPalette, got %v", err)
	}
}
