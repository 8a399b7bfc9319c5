package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 200
	DefaultHeight        = 150
	DefaultParticles     = 500
	DefaultDelta         = 1.0
	DefaultFade          = 0.1
	DefaultMaxIter       = 100
	DefaultZoom          = 1.0
	DefaultCenterX       = -0.5
	DefaultStepsPerFrame = 1
	DefaultFramesPerStep = 1
	DefaultTimeStep      = 1.0 / 30
	DefaultScale         = 1
	DefaultFrames        = 60
	DefaultDelay         = 3
)

// Generators lists the names accepted by the generator field.
var Generators = []string{"particles", "mandelbrot", "life", "raytrace"}

var (
	ErrUnknownGenerator = errors.New("config: unknown generator")
	ErrUnknownPreset    = errors.New("config: unknown preset")
	ErrInvalidValue     = errors.New("config: invalid value")
)

type Config struct {
	Generator string          `yaml:"generator"`
	Width     int             `yaml:"width"`
	Height    int             `yaml:"height"`
	Particles ParticlesConfig `yaml:"particles"`
	Fractal   FractalConfig   `yaml:"fractal"`
	Life      LifeConfig      `yaml:"life"`
	Raytrace  RaytraceConfig  `yaml:"raytrace"`
	Output    OutputConfig    `yaml:"output"`
}

type ParticlesConfig struct {
	Count int     `yaml:"count"`
	Delta float64 `yaml:"delta"`
	// Fade is the opacity of the black wash drawn before each frame;
	// 1 clears completely, smaller values leave trails.
	Fade float64 `yaml:"fade"`
}

type FractalConfig struct {
	CenterX  float64 `yaml:"center_x"`
	CenterY  float64 `yaml:"center_y"`
	Zoom     float64 `yaml:"zoom"`
	MaxIter  int     `yaml:"max_iter"`
	ZoomRate float64 `yaml:"zoom_rate"`
}

// LifeConfig sets the generation rate: StepsPerFrame generations are run
// on every FramesPerStep-th frame.
type LifeConfig struct {
	StepsPerFrame int `yaml:"steps_per_frame"`
	FramesPerStep int `yaml:"frames_per_step"`
}

type RaytraceConfig struct {
	Time     float64 `yaml:"time"`
	TimeStep float64 `yaml:"time_step"`
}

type OutputConfig struct {
	Path   string `yaml:"path"`
	Scale  int    `yaml:"scale"`
	Frames int    `yaml:"frames"`
	// Delay between GIF frames in hundredths of a second.
	Delay int `yaml:"delay"`
}

func DefaultConfig() *Config {
	return &Config{
		Generator: "mandelbrot",
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Particles: ParticlesConfig{
			Count: DefaultParticles,
			Delta: DefaultDelta,
			Fade:  DefaultFade,
		},
		Fractal: FractalConfig{
			CenterX: DefaultCenterX,
			Zoom:    DefaultZoom,
			MaxIter: DefaultMaxIter,
		},
		Life: LifeConfig{
			StepsPerFrame: DefaultStepsPerFrame,
			FramesPerStep: DefaultFramesPerStep,
		},
		Raytrace: RaytraceConfig{
			TimeStep: DefaultTimeStep,
		},
		Output: OutputConfig{
			Scale:  DefaultScale,
			Frames: DefaultFrames,
			Delay:  DefaultDelay,
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
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// Validate rejects configurations that would make a generator divide by zero
// or allocate an empty buffer.
func (c *Config) Validate() error {
	if !IsGenerator(c.Generator) {
		return fmt.Errorf("%w: %q (available: %v)", ErrUnknownGenerator, c.Generator, Generators)
	}

	checks := []struct {
		ok   bool
		name string
		val  any
	}{
		{c.Width > 0, "width", c.Width},
		{c.Height > 0, "height", c.Height},
		{c.Particles.Count > 0, "particles.count", c.Particles.Count},
		{c.Particles.Fade > 0 && c.Particles.Fade <= 1, "particles.fade", c.Particles.Fade},
		{c.Fractal.MaxIter > 0, "fractal.max_iter", c.Fractal.MaxIter},
		{c.Fractal.Zoom > 0, "fractal.zoom", c.Fractal.Zoom},
		{c.Fractal.ZoomRate > -1, "fractal.zoom_rate", c.Fractal.ZoomRate},
		{c.Life.StepsPerFrame > 0, "life.steps_per_frame", c.Life.StepsPerFrame},
		{c.Life.FramesPerStep > 0, "life.frames_per_step", c.Life.FramesPerStep},
		{c.Output.Scale > 0, "output.scale", c.Output.Scale},
		{c.Output.Frames > 0, "output.frames", c.Output.Frames},
		{c.Output.Delay >= 0, "output.delay", c.Output.Delay},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s = %v", ErrInvalidValue, chk.name, chk.val)
		}
	}
	return nil
}

func IsGenerator(name string) bool {
	for _, g := range Generators {
		if g == name {
			return true
		}
	}
	return false
}
