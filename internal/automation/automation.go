// Package automation runs scripted sequences of generator renders and
// parameter sweeps.
package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/procvis/internal/config"
	"github.com/san-kum/procvis/internal/export"
	"github.com/san-kum/procvis/internal/generator"
	"github.com/san-kum/procvis/internal/logging"
	"github.com/san-kum/procvis/internal/pixel"
)

var ErrUnknownParam = errors.New("automation: unknown parameter")

// Scenario is a scripted list of renders.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep renders one generator. Output ending in .gif gets every
// frame, .png the last one; an empty output only samples.
type ScenarioStep struct {
	Generator string             `yaml:"generator"`
	Preset    string             `yaml:"preset"`
	Frames    int                `yaml:"frames"`
	Params    map[string]float64 `yaml:"params"`
	Output    string             `yaml:"output"`
}

type StepResult struct {
	Generator string
	Output    string
	Series    []float64
}

// params maps parameter names, as used in scenario files and sweeps, onto
// config fields.
var params = map[string]func(*config.Config, float64){
	"width":           func(c *config.Config, v float64) { c.Width = int(v) },
	"height":          func(c *config.Config, v float64) { c.Height = int(v) },
	"count":           func(c *config.Config, v float64) { c.Particles.Count = int(v) },
	"delta":           func(c *config.Config, v float64) { c.Particles.Delta = v },
	"fade":            func(c *config.Config, v float64) { c.Particles.Fade = v },
	"center_x":        func(c *config.Config, v float64) { c.Fractal.CenterX = v },
	"center_y":        func(c *config.Config, v float64) { c.Fractal.CenterY = v },
	"zoom":            func(c *config.Config, v float64) { c.Fractal.Zoom = v },
	"max_iter":        func(c *config.Config, v float64) { c.Fractal.MaxIter = int(v) },
	"zoom_rate":       func(c *config.Config, v float64) { c.Fractal.ZoomRate = v },
	"steps_per_frame": func(c *config.Config, v float64) { c.Life.StepsPerFrame = int(v) },
	"frames_per_step": func(c *config.Config, v float64) { c.Life.FramesPerStep = int(v) },
	"time":            func(c *config.Config, v float64) { c.Raytrace.Time = v },
	"time_step":       func(c *config.Config, v float64) { c.Raytrace.TimeStep = v },
}

// ParamNames lists the names accepted by SetParam.
func ParamNames() []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func SetParam(cfg *config.Config, name string, v float64) error {
	fn, ok := params[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	fn(cfg, v)
	return nil
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}

	return &scenario, nil
}

// stepConfig layers a step's generator, preset and params over base.
func stepConfig(base *config.Config, step ScenarioStep) (*config.Config, error) {
	cfg := *base
	cfg.Generator = step.Generator
	if step.Preset != "" {
		if err := config.ApplyPreset(&cfg, step.Preset); err != nil {
			return nil, err
		}
	}
	for name, v := range step.Params {
		if err := SetParam(&cfg, name, v); err != nil {
			return nil, err
		}
	}
	if step.Frames > 0 {
		cfg.Output.Frames = step.Frames
	}
	return &cfg, nil
}

// RunScenario executes all steps in a scenario
func RunScenario(ctx context.Context, scenario *Scenario, base *config.Config, registry *generator.Registry) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logging.Logger().Info("scenario step", "step", i+1, "of", len(scenario.Steps), "generator", step.Generator)

		cfg, err := stepConfig(base, step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		res, err := runStep(ctx, cfg, step.Output, registry)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func runStep(ctx context.Context, cfg *config.Config, output string, registry *generator.Registry) (StepResult, error) {
	res := StepResult{Generator: cfg.Generator, Output: output}

	src, err := registry.Get(cfg)
	if err != nil {
		return res, err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(output))
	var frames []*pixel.Frame
	for i := 0; i < cfg.Output.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		v, err := src.Sample()
		if err != nil {
			return res, err
		}
		res.Series = append(res.Series, v)

		if ext == ".gif" || (ext == ".png" && i == cfg.Output.Frames-1) {
			f, err := src.Frame()
			if err != nil {
				return res, err
			}
			frames = append(frames, f)
		}
		src.Advance()
	}

	switch ext {
	case "":
		return res, nil
	case ".gif":
		return res, export.WriteGIF(output, frames, cfg.Output.Delay, cfg.Output.Scale)
	case ".png":
		return res, export.WritePNG(output, frames[len(frames)-1], cfg.Output.Scale)
	}
	return res, fmt.Errorf("unsupported output %q", output)
}

// ParameterSweep samples a generator across evenly spaced values of one
// parameter.
type ParameterSweep struct {
	Param    string
	Min, Max float64
	NumSteps int
	// Frames advanced before each sample.
	Frames int
}

// SweepResult holds the sample taken at one parameter value.
type SweepResult struct {
	ParamValue float64
	Sample     float64
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sweep *ParameterSweep, base *config.Config, registry *generator.Registry) ([]SweepResult, error) {
	if _, ok := params[sweep.Param]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParam, sweep.Param)
	}
	if sweep.NumSteps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.NumSteps)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	paramStep := (sweep.Max - sweep.Min) / float64(sweep.NumSteps-1)

	for i := 0; i < sweep.NumSteps; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		paramVal := sweep.Min + float64(i)*paramStep

		cfg := *base
		if err := SetParam(&cfg, sweep.Param, paramVal); err != nil {
			return nil, err
		}
		src, err := registry.Get(&cfg)
		if err != nil {
			return results, fmt.Errorf("%s=%g: %w", sweep.Param, paramVal, err)
		}
		for j := 0; j < sweep.Frames; j++ {
			src.Advance()
		}
		v, err := src.Sample()
		src.Close()
		if err != nil {
			return results, err
		}

		results = append(results, SweepResult{ParamValue: paramVal, Sample: v})
		logging.Logger().Debug("sweep", "param", sweep.Param, "value", paramVal, "sample", v)
	}

	return results, nil
}
