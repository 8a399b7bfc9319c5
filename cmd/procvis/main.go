package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/procvis/internal/analysis"
	"github.com/san-kum/procvis/internal/automation"
	"github.com/san-kum/procvis/internal/config"
	"github.com/san-kum/procvis/internal/export"
	"github.com/san-kum/procvis/internal/generator"
	"github.com/san-kum/procvis/internal/logging"
	"github.com/san-kum/procvis/internal/particles"
	"github.com/san-kum/procvis/internal/pixel"
	"github.com/san-kum/procvis/internal/viz"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	verbose    bool

	// generator parameters
	count         int
	delta         float64
	fade          float64
	centerX       float64
	centerY       float64
	zoom          float64
	maxIter       int
	zoomRate      float64
	stepsPerFrame int
	framesPerStep int
	startTime     float64
	timeStep      float64

	// output
	outPath string
	scale   int
	frames  int
	delay   int
	steps   int
	csvPath string
	svgPath string
	theme   string

	// sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

var registry = generator.NewRegistry()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "procvis",
		Short: "procedural visual generators",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, config.DefaultConfig().Generator)
			if err != nil {
				return err
			}
			return viz.RunPicker(registry, cfg, viz.Options{Theme: theme, Delay: cfg.Output.Delay, Scale: cfg.Output.Scale})
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "frame width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "frame height in pixels")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.Flags().StringVar(&theme, "theme", "neon", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	renderCmd := &cobra.Command{
		Use:   "render [generator]",
		Short: "render one frame to PNG (or SVG for particles)",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	addGeneratorFlags(renderCmd)
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <generator>.png)")
	renderCmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "integer upscale factor")
	renderCmd.Flags().IntVar(&steps, "steps", 0, "frames to advance before capturing")

	animCmd := &cobra.Command{
		Use:   "anim [generator]",
		Short: "render an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnim,
	}
	addGeneratorFlags(animCmd)
	animCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <generator>.gif)")
	animCmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "integer upscale factor")
	animCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	animCmd.Flags().IntVar(&delay, "delay", config.DefaultDelay, "frame delay in 1/100 s")

	liveCmd := &cobra.Command{
		Use:   "live [generator]",
		Short: "interactive terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addGeneratorFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", "neon", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	liveCmd.Flags().StringVarP(&outPath, "out", "o", "", "recording file (default <generator>.gif)")
	liveCmd.Flags().IntVar(&delay, "delay", config.DefaultDelay, "recording frame delay in 1/100 s")
	liveCmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "recording upscale factor")

	statsCmd := &cobra.Command{
		Use:   "stats [generator]",
		Short: "plot the generator's scalar series and find its period",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
	addGeneratorFlags(statsCmd)
	statsCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames to sample")
	statsCmd.Flags().StringVar(&csvPath, "csv", "", "write the series as CSV")
	statsCmd.Flags().StringVar(&svgPath, "svg", "", "write the series plot as SVG")

	presetsCmd := &cobra.Command{
		Use:   "presets [generator]",
		Short: "list available presets for a generator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePresets(os.Stdout, args[0])
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [csv]",
		Short: "plot and summarize a series written by stats --csv",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeFile(os.Stdout, args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list generators",
		RunE:  listGenerators,
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := config.DefaultConfig().Generator
			if cmd.Flags().Changed("generator") {
				gen, _ = cmd.Flags().GetString("generator")
			}
			cfg, err := loadConfig(cmd, gen)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("config written to %s\n", args[0])
			return nil
		},
	}
	addGeneratorFlags(configCmd)
	configCmd.Flags().String("generator", config.DefaultConfig().Generator, "generator recorded in the file")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of renders",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [generator]",
		Short: "sample a generator across a parameter range",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addGeneratorFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "max_iter", "parameter to sweep ("+strings.Join(automation.ParamNames(), ", ")+")")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 10, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 200, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 20, "number of values")
	sweepCmd.Flags().IntVar(&steps, "advance", 0, "frames to advance before each sample")

	rootCmd.AddCommand(renderCmd, animCmd, liveCmd, statsCmd, analyzeCmd, presetsCmd, listCmd, configCmd, scenarioCmd, sweepCmd)
	return rootCmd
}

func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&count, "count", config.DefaultParticles, "particle count")
	cmd.Flags().Float64Var(&delta, "delta", config.DefaultDelta, "particle time step")
	cmd.Flags().Float64Var(&fade, "fade", config.DefaultFade, "particle trail fade (1 clears each frame)")
	cmd.Flags().Float64Var(&centerX, "center-x", config.DefaultCenterX, "mandelbrot view center (real)")
	cmd.Flags().Float64Var(&centerY, "center-y", 0, "mandelbrot view center (imaginary)")
	cmd.Flags().Float64Var(&zoom, "zoom", config.DefaultZoom, "mandelbrot zoom")
	cmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "mandelbrot iteration cap")
	cmd.Flags().Float64Var(&zoomRate, "zoom-rate", 0, "mandelbrot zoom growth per frame")
	cmd.Flags().IntVar(&stepsPerFrame, "steps-per-frame", config.DefaultStepsPerFrame, "life generations per frame")
	cmd.Flags().IntVar(&framesPerStep, "frames-per-step", config.DefaultFramesPerStep, "frames each life generation is held for")
	cmd.Flags().Float64Var(&startTime, "time", 0, "raytrace start time")
	cmd.Flags().Float64Var(&timeStep, "time-step", config.DefaultTimeStep, "raytrace time per frame")
}

// loadConfig builds the configuration for gen: file (or defaults), then the
// preset, then any flag set on the command line.
func loadConfig(cmd *cobra.Command, gen string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.Generator = gen

	if preset != "" {
		if err := config.ApplyPreset(cfg, preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	override := func(name string, apply func()) {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			apply()
		}
	}
	override("width", func() { cfg.Width = width })
	override("height", func() { cfg.Height = height })
	override("count", func() { cfg.Particles.Count = count })
	override("delta", func() { cfg.Particles.Delta = delta })
	override("fade", func() { cfg.Particles.Fade = fade })
	override("center-x", func() { cfg.Fractal.CenterX = centerX })
	override("center-y", func() { cfg.Fractal.CenterY = centerY })
	override("zoom", func() { cfg.Fractal.Zoom = zoom })
	override("max-iter", func() { cfg.Fractal.MaxIter = maxIter })
	override("zoom-rate", func() { cfg.Fractal.ZoomRate = zoomRate })
	override("steps-per-frame", func() { cfg.Life.StepsPerFrame = stepsPerFrame })
	override("frames-per-step", func() { cfg.Life.FramesPerStep = framesPerStep })
	override("time", func() { cfg.Raytrace.Time = startTime })
	override("time-step", func() { cfg.Raytrace.TimeStep = timeStep })
	override("out", func() { cfg.Output.Path = outPath })
	override("scale", func() { cfg.Output.Scale = scale })
	override("frames", func() { cfg.Output.Frames = frames })
	override("delay", func() { cfg.Output.Delay = delay })

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logging.Logger().Debug("config resolved", "generator", cfg.Generator, "preset", preset, "file", configFile)
	return cfg, nil
}

func openSource(cmd *cobra.Command, gen string) (*config.Config, generator.Source, error) {
	cfg, err := loadConfig(cmd, gen)
	if err != nil {
		return nil, nil, err
	}
	src, err := registry.Get(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, src, nil
}

func outputPath(cfg *config.Config, ext string) string {
	if cfg.Output.Path != "" {
		return cfg.Output.Path
	}
	return cfg.Generator + ext
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, src, err := openSource(cmd, args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	for i := 0; i < steps; i++ {
		src.Advance()
	}

	path := outputPath(cfg, ".png")
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		ps, ok := src.(interface{ System() *particles.System })
		if !ok {
			return fmt.Errorf("svg output is only available for particles, not %s", cfg.Generator)
		}
		if err := export.WriteSVG(path, export.ParticlesToSVG(ps.System().Data(), cfg.Width, cfg.Height)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	}

	f, err := src.Frame()
	if err != nil {
		return err
	}
	if err := export.WritePNG(path, f, cfg.Output.Scale); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d)\n", path, f.Width*max(cfg.Output.Scale, 1), f.Height*max(cfg.Output.Scale, 1))
	return nil
}

func runAnim(cmd *cobra.Command, args []string) error {
	cfg, src, err := openSource(cmd, args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	captured := make([]*pixel.Frame, 0, cfg.Output.Frames)
	for i := 0; i < cfg.Output.Frames; i++ {
		f, err := src.Frame()
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		captured = append(captured, f)
		src.Advance()
	}

	path := outputPath(cfg, ".gif")
	if err := export.WriteGIF(path, captured, cfg.Output.Delay, cfg.Output.Scale); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames)\n", path, len(captured))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	gen := config.DefaultConfig().Generator
	if len(args) == 0 {
		cfg, err := loadConfig(cmd, gen)
		if err != nil {
			return err
		}
		return viz.RunPicker(registry, cfg, viz.Options{Theme: theme, GIFPath: cfg.Output.Path, Delay: cfg.Output.Delay, Scale: cfg.Output.Scale})
	}

	cfg, src, err := openSource(cmd, args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	return viz.Run(src, viz.Options{
		Theme:   theme,
		GIFPath: cfg.Output.Path,
		Delay:   cfg.Output.Delay,
		Scale:   cfg.Output.Scale,
	})
}

// collectSeries samples src before each of n advances.
func collectSeries(src generator.Source, n int) ([]float64, error) {
	series := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v, err := src.Sample()
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		series = append(series, v)
		src.Advance()
	}
	return series, nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, src, err := openSource(cmd, args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	series, err := collectSeries(src, cfg.Output.Frames)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no frames sampled")
	}

	name := src.SampleName()
	plotSeries(os.Stdout, name, series)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "generator\t%s\n", cfg.Generator)
	summarize(w, name, series)
	if ps, ok := src.(interface{ System() *particles.System }); ok {
		st := ps.System().Stats()
		fmt.Fprintf(w, "mean speed\t%.4f\n", st.MeanSpeed)
		fmt.Fprintf(w, "mean height\t%.4f\n", st.MeanHeight)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if csvPath != "" {
		if err := export.WriteSeriesFile(csvPath, name, series); err != nil {
			return err
		}
		fmt.Printf("\nseries written to %s\n", csvPath)
	}
	if svgPath != "" {
		if err := export.WriteSVG(svgPath, export.SeriesToSVG(series, 800, 300, "#00ff88")); err != nil {
			return err
		}
		fmt.Printf("plot written to %s\n", svgPath)
	}
	return nil
}

func plotSeries(out io.Writer, name string, series []float64) {
	if len(series) < 2 {
		return
	}
	fmt.Fprintln(out, asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s over %d frames", name, len(series))),
	))
	fmt.Fprintln(out)
}

func summarize(w *tabwriter.Writer, name string, series []float64) {
	lo, hi := analysis.Range(series)
	fmt.Fprintf(w, "series\t%s\n", name)
	fmt.Fprintf(w, "mean\t%.4f\n", analysis.Mean(series))
	fmt.Fprintf(w, "range\t[%.4f, %.4f]\n", lo, hi)
	if period, ok := analysis.DominantPeriod(series); ok {
		fmt.Fprintf(w, "dominant period\t%.2f frames\n", period)
	} else {
		fmt.Fprintf(w, "dominant period\tnone\n")
	}
}

// analyzeFile reports on a series previously saved with stats --csv.
func analyzeFile(out io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	name, series, err := export.ReadSeries(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(series) == 0 {
		return fmt.Errorf("no samples in %s", path)
	}

	plotSeries(out, name, series)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "file\t%s\n", path)
	fmt.Fprintf(w, "samples\t%d\n", len(series))
	summarize(w, name, series)
	return w.Flush()
}

func writePresets(out io.Writer, gen string) error {
	if !config.IsGenerator(gen) {
		return fmt.Errorf("%w: %s", config.ErrUnknownGenerator, gen)
	}
	presets := config.ListPresets(gen)
	if len(presets) == 0 {
		fmt.Fprintf(out, "no presets for generator: %s\n", gen)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSIZE\tSCALE\tFRAMES")
	for _, p := range presets {
		cfg := config.GetPreset(gen, p)
		if cfg == nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%d\n", p, cfg.Width, cfg.Height, cfg.Output.Scale, cfg.Output.Frames)
	}
	return w.Flush()
}

func listGenerators(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GENERATOR\tSERIES\tPRESETS")

	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.Particles.Count = 1
	for _, name := range registry.List() {
		cfg.Generator = name
		series := "-"
		if src, err := registry.Get(cfg); err == nil {
			series = src.SampleName()
			src.Close()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, series, strings.Join(config.ListPresets(name), ", "))
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	base, err := loadConfig(cmd, config.DefaultConfig().Generator)
	if err != nil {
		return err
	}

	results, err := automation.RunScenario(context.Background(), sc, base, registry)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tGENERATOR\tFRAMES\tMEAN\tOUTPUT")
	for i, res := range results {
		out := res.Output
		if out == "" {
			out = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%.4f\t%s\n", i+1, res.Generator, len(res.Series), analysis.Mean(res.Series), out)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	base, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}
	sweep := &automation.ParameterSweep{
		Param:    sweepParam,
		Min:      sweepMin,
		Max:      sweepMax,
		NumSteps: sweepSteps,
		Frames:   steps,
	}
	results, err := automation.RunSweep(context.Background(), sweep, base, registry)
	if err != nil {
		return err
	}

	samples := make([]float64, len(results))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tSAMPLE\n", strings.ToUpper(sweepParam))
	for i, r := range results {
		samples[i] = r.Sample
		fmt.Fprintf(w, "%.4g\t%.4f\n", r.ParamValue, r.Sample)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(samples,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("sample vs %s", sweepParam)),
	))
	return nil
}
