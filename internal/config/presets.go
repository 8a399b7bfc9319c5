package config

import (
	"fmt"
	"sort"
)

// Presets holds per-generator overrides applied on top of DefaultConfig.
var Presets = map[string]map[string]func(*Config){
	"particles": {
		"fountain": func(c *Config) {
			c.Width, c.Height = 400, 300
			c.Particles.Count = 500
		},
		"dense": func(c *Config) {
			c.Width, c.Height = 400, 300
			c.Particles.Count = 2000
			c.Particles.Fade = 0.3
		},
		"slowmo": func(c *Config) {
			c.Particles.Delta = 0.25
			c.Particles.Fade = 0.05
		},
	},
	"mandelbrot": {
		"overview": func(c *Config) {
			c.Width, c.Height = 400, 400
		},
		"seahorse": func(c *Config) {
			c.Width, c.Height = 400, 400
			c.Fractal.CenterX, c.Fractal.CenterY = -0.745, 0.11
			c.Fractal.Zoom = 40
			c.Fractal.MaxIter = 400
		},
		"elephant": func(c *Config) {
			c.Width, c.Height = 400, 400
			c.Fractal.CenterX, c.Fractal.CenterY = 0.282, 0.01
			c.Fractal.Zoom = 60
			c.Fractal.MaxIter = 300
		},
		"dive": func(c *Config) {
			c.Fractal.CenterX, c.Fractal.CenterY = -0.7453, 0.1127
			c.Fractal.ZoomRate = 0.1
			c.Fractal.MaxIter = 250
			c.Output.Frames = 90
		},
	},
	"life": {
		"classic": func(c *Config) {
			c.Width, c.Height = 200, 150
		},
		"small": func(c *Config) {
			c.Width, c.Height = 64, 48
			c.Output.Scale = 4
		},
		"fast": func(c *Config) {
			c.Life.StepsPerFrame = 5
		},
		"slow": func(c *Config) {
			c.Life.FramesPerStep = 4
		},
	},
	"raytrace": {
		"orbit": func(c *Config) {
			c.Width, c.Height = 320, 240
			c.Output.Frames = 120
		},
		"timelapse": func(c *Config) {
			c.Raytrace.TimeStep = 0.25
			c.Output.Frames = 100
		},
	},
}

// ApplyPreset mutates cfg with the named preset of its generator.
func ApplyPreset(cfg *Config, preset string) error {
	fn, ok := Presets[cfg.Generator][preset]
	if !ok {
		return fmt.Errorf("%w: %s/%s (available: %v)", ErrUnknownPreset, cfg.Generator, preset, ListPresets(cfg.Generator))
	}
	fn(cfg)
	return nil
}

// GetPreset returns DefaultConfig with the preset applied, or nil.
func GetPreset(generator, preset string) *Config {
	cfg := DefaultConfig()
	cfg.Generator = generator
	if err := ApplyPreset(cfg, preset); err != nil {
		return nil
	}
	return cfg
}

func ListPresets(generator string) []string {
	presets, ok := Presets[generator]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
