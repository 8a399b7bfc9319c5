package generator

import (
	"github.com/san-kum/procvis/internal/config"
	"github.com/san-kum/procvis/internal/pixel"
	"github.com/san-kum/procvis/internal/raytrace"
)

type raySource struct {
	cfg           config.RaytraceConfig
	width, height int
	time          float64
}

func newRaySource(cfg *config.Config) (Source, error) {
	return &raySource{
		cfg:    cfg.Raytrace,
		width:  cfg.Width,
		height: cfg.Height,
		time:   cfg.Raytrace.Time,
	}, nil
}

func (s *raySource) Name() string { return "raytrace" }

func (s *raySource) Advance() { s.time += s.cfg.TimeStep }

func (s *raySource) Reset() error {
	s.time = s.cfg.Time
	return nil
}

func (s *raySource) Frame() (*pixel.Frame, error) {
	return raytrace.Render(s.width, s.height, s.time)
}

func (s *raySource) Sample() (float64, error) {
	f, err := s.Frame()
	if err != nil {
		return 0, err
	}
	return raytrace.LitRatio(f), nil
}

func (s *raySource) SampleName() string { return "lit ratio" }

func (s *raySource) Close() error { return nil }

// Time is the current scene time.
func (s *raySource) Time() float64 { return s.time }
