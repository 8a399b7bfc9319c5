package generator

import (
	"github.com/san-kum/procvis/internal/config"
	"github.com/san-kum/procvis/internal/fractal"
	"github.com/san-kum/procvis/internal/pixel"
)

type fractalSource struct {
	cfg           config.FractalConfig
	width, height int
	view          fractal.View
	maxIter       int
}

func newFractalSource(cfg *config.Config) (Source, error) {
	s := &fractalSource{
		cfg:    cfg.Fractal,
		width:  cfg.Width,
		height: cfg.Height,
	}
	return s, s.Reset()
}

func (s *fractalSource) Name() string { return "mandelbrot" }

// Advance zooms toward the view center by the configured rate.
func (s *fractalSource) Advance() {
	s.view.Zoom *= 1 + s.cfg.ZoomRate
}

func (s *fractalSource) Reset() error {
	s.view = fractal.View{
		CenterX: s.cfg.CenterX,
		CenterY: s.cfg.CenterY,
		Zoom:    s.cfg.Zoom,
	}
	s.maxIter = s.cfg.MaxIter
	return nil
}

func (s *fractalSource) Frame() (*pixel.Frame, error) {
	return fractal.Render(s.width, s.height, s.view.Viewport(), s.maxIter)
}

func (s *fractalSource) Sample() (float64, error) {
	f, err := s.Frame()
	if err != nil {
		return 0, err
	}
	return fractal.InSetRatio(f), nil
}

func (s *fractalSource) SampleName() string { return "in-set ratio" }

func (s *fractalSource) Close() error { return nil }

func (s *fractalSource) View() fractal.View     { return s.view }
func (s *fractalSource) SetView(v fractal.View) { s.view = v }
func (s *fractalSource) MaxIter() int           { return s.maxIter }

func (s *fractalSource) SetMaxIter(n int) {
	if n > 0 {
		s.maxIter = n
	}
}
