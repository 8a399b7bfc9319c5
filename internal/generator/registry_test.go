package generator

import (
	"errors"
	"testing"

	"github.com/san-kum/procvis/internal/config"
	"github.com/san-kum/procvis/internal/pixel"
)

func smallConfig(gen string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Generator = gen
	cfg.Width = 32
	cfg.Height = 24
	cfg.Particles.Count = 20
	cfg.Fractal.MaxIter = 30
	return cfg
}

func TestRegistryList(t *testing.T) {
	names := NewRegistry().List()
	if len(names) != len(config.Generators) {
		t.Fatalf("expected %d generators, got %v", len(config.Generators), names)
	}
	for _, n := range names {
		if !config.IsGenerator(n) {
			t.Errorf("registry exposes unknown generator %q", n)
		}
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	cfg := smallConfig("plasma")
	if _, err := NewRegistry().Get(cfg); !errors.Is(err, config.ErrUnknownGenerator) {
		t.Errorf("expected ErrUnknownGenerator, got %v", err)
	}
}

func TestRegistryGetInvalid(t *testing.T) {
	cfg := smallConfig("life")
	cfg.Width = 0
	if _, err := NewRegistry().Get(cfg); !errors.Is(err, config.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}

func TestRegistryRejectsCollapsingZoomRate(t *testing.T) {
	cfg := smallConfig("mandelbrot")
	cfg.Fractal.ZoomRate = -1
	if _, err := NewRegistry().Get(cfg); !errors.Is(err, config.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}

func TestSourcesProduceFrames(t *testing.T) {
	reg := NewRegistry()
	for _, gen := range config.Generators {
		t.Run(gen, func(t *testing.T) {
			src, err := reg.Get(smallConfig(gen))
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			defer src.Close()

			if src.Name() != gen {
				t.Errorf("expected name %s, got %s", gen, src.Name())
			}

			for i := 0; i < 3; i++ {
				f, err := src.Frame()
				if err != nil {
					t.Fatalf("frame %d failed: %v", i, err)
				}
				if f.Width != 32 || f.Height != 24 || len(f.Pix) != 32*24*pixel.Channels {
					t.Fatalf("frame %d has wrong shape %dx%d (%d bytes)", i, f.Width, f.Height, len(f.Pix))
				}
				for j := 3; j < len(f.Pix); j += pixel.Channels {
					if f.Pix[j] != 255 {
						t.Fatalf("frame %d: alpha at byte %d is %d", i, j, f.Pix[j])
					}
				}
				src.Advance()
			}

			if _, err := src.Sample(); err != nil {
				t.Errorf("sample failed: %v", err)
			}
			if src.SampleName() == "" {
				t.Error("expected a sample name")
			}
			if err := src.Reset(); err != nil {
				t.Errorf("reset failed: %v", err)
			}
		})
	}
}

func TestParticleFrameDrawsParticles(t *testing.T) {
	src, err := NewRegistry().Get(smallConfig("particles"))
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	defer src.Close()

	f, err := src.Frame()
	if err != nil {
		t.Fatalf("frame failed: %v", err)
	}
	r, g, b, _ := f.At(16, 12)
	if r == 0 && g == 0 && b == 0 {
		t.Error("expected particles drawn around the canvas center")
	}
	r, g, b, _ = f.At(0, 0)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("expected black corner, got (%d,%d,%d)", r, g, b)
	}
}

func TestLifeSourceEditable(t *testing.T) {
	src, _ := NewRegistry().Get(smallConfig("life"))
	ed, ok := src.(Editable)
	if !ok {
		t.Fatal("life source should be editable")
	}

	ed.Clear()
	if v, _ := src.Sample(); v != 0 {
		t.Errorf("expected empty population, got %f", v)
	}
	ed.Toggle(5, 5)
	ed.Toggle(100, 100)
	if v, _ := src.Sample(); v != 1 {
		t.Errorf("expected population 1, got %f", v)
	}
}

func TestLifeSourceGenerationRate(t *testing.T) {
	tests := []struct {
		name          string
		stepsPerFrame int
		framesPerStep int
		advances      int
		want          int
	}{
		{"one per frame", 1, 1, 6, 6},
		{"several per frame", 3, 1, 4, 12},
		{"held for four frames", 1, 4, 3, 0},
		{"fourth frame steps", 1, 4, 4, 1},
		{"held and batched", 2, 3, 7, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smallConfig("life")
			cfg.Life.StepsPerFrame = tt.stepsPerFrame
			cfg.Life.FramesPerStep = tt.framesPerStep
			src, err := NewRegistry().Get(cfg)
			if err != nil {
				t.Fatal(err)
			}
			ls := src.(*lifeSource)
			for i := 0; i < tt.advances; i++ {
				src.Advance()
			}
			if got := ls.grid.Generation(); got != tt.want {
				t.Errorf("expected generation %d, got %d", tt.want, got)
			}
		})
	}
}

func TestLifeSourceResetRestartsHold(t *testing.T) {
	cfg := smallConfig("life")
	cfg.Life.FramesPerStep = 2
	src, _ := NewRegistry().Get(cfg)
	ls := src.(*lifeSource)

	src.Advance()
	if err := src.Reset(); err != nil {
		t.Fatal(err)
	}
	start := ls.grid.Generation()
	src.Advance()
	if ls.grid.Generation() != start {
		t.Error("first frame after reset should hold the generation")
	}
	src.Advance()
	if ls.grid.Generation() != start+1 {
		t.Errorf("expected generation %d, got %d", start+1, ls.grid.Generation())
	}
}

func TestFractalSourceNavigable(t *testing.T) {
	cfg := smallConfig("mandelbrot")
	cfg.Fractal.ZoomRate = 1
	src, _ := NewRegistry().Get(cfg)
	nav, ok := src.(Navigable)
	if !ok {
		t.Fatal("mandelbrot source should be navigable")
	}

	src.Advance()
	if z := nav.View().Zoom; z != 2 {
		t.Errorf("expected zoom 2 after one advance, got %f", z)
	}

	nav.SetMaxIter(0)
	if nav.MaxIter() != 30 {
		t.Errorf("non-positive iteration cap should be ignored, got %d", nav.MaxIter())
	}

	if err := src.Reset(); err != nil {
		t.Fatal(err)
	}
	if nav.View().Zoom != 1 {
		t.Errorf("expected zoom reset to 1, got %f", nav.View().Zoom)
	}
}

func TestRaySourceAdvancesTime(t *testing.T) {
	cfg := smallConfig("raytrace")
	cfg.Raytrace.Time = 1
	cfg.Raytrace.TimeStep = 0.5
	src, _ := NewRegistry().Get(cfg)
	rs := src.(*raySource)

	src.Advance()
	src.Advance()
	if rs.Time() != 2 {
		t.Errorf("expected time 2, got %f", rs.Time())
	}
	src.Reset()
	if rs.Time() != 1 {
		t.Errorf("expected time reset to 1, got %f", rs.Time())
	}
}
