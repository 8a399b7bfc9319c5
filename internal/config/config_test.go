package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Generator != "mandelbrot" {
		t.Errorf("expected generator mandelbrot, got %s", cfg.Generator)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown generator", func(c *Config) { c.Generator = "plasma" }, ErrUnknownGenerator},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidValue},
		{"negative height", func(c *Config) { c.Height = -4 }, ErrInvalidValue},
		{"zero max iter", func(c *Config) { c.Fractal.MaxIter = 0 }, ErrInvalidValue},
		{"zero zoom", func(c *Config) { c.Fractal.Zoom = 0 }, ErrInvalidValue},
		{"zoom rate collapses view", func(c *Config) { c.Fractal.ZoomRate = -1 }, ErrInvalidValue},
		{"shrinking zoom rate", func(c *Config) { c.Fractal.ZoomRate = -0.5 }, nil},
		{"zero frames per step", func(c *Config) { c.Life.FramesPerStep = 0 }, ErrInvalidValue},
		{"held generations", func(c *Config) { c.Life.FramesPerStep = 4 }, nil},
		{"no particles", func(c *Config) { c.Particles.Count = 0 }, ErrInvalidValue},
		{"fade above one", func(c *Config) { c.Particles.Fade = 1.5 }, ErrInvalidValue},
		{"zero scale", func(c *Config) { c.Output.Scale = 0 }, ErrInvalidValue},
		{"negative delay", func(c *Config) { c.Output.Delay = -1 }, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")

	cfg := DefaultConfig()
	cfg.Generator = "life"
	cfg.Width = 64
	cfg.Life.StepsPerFrame = 3
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Generator != "life" || loaded.Width != 64 || loaded.Life.StepsPerFrame != 3 {
		t.Errorf("unexpected config after round trip: %+v", loaded)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("generator: raytrace\nraytrace:\n  time: 2.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Raytrace.Time != 2.5 {
		t.Errorf("expected time 2.5, got %f", cfg.Raytrace.Time)
	}
	if cfg.Raytrace.TimeStep != DefaultTimeStep {
		t.Errorf("expected default time step, got %f", cfg.Raytrace.TimeStep)
	}
	if cfg.Width != DefaultWidth {
		t.Errorf("expected default width, got %d", cfg.Width)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("mandelbrot", "seahorse")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Fractal.Zoom != 40 {
		t.Errorf("expected zoom 40, got %f", cfg.Fractal.Zoom)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("mandelbrot", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "small") != nil {
		t.Error("expected nil for nonexistent generator")
	}
}

func TestApplyPresetUnknown(t *testing.T) {
	cfg := DefaultConfig()
	if err := ApplyPreset(cfg, "nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for _, gen := range Generators {
		names := ListPresets(gen)
		if len(names) == 0 {
			t.Errorf("expected presets for %s", gen)
		}
		for _, name := range names {
			if err := GetPreset(gen, name).Validate(); err != nil {
				t.Errorf("%s/%s: %v", gen, name, err)
			}
		}
	}
}

func TestListPresets(t *testing.T) {
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent generator")
	}
}
