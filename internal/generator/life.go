package generator

import (
	"github.com/san-kum/procvis/internal/config"
	"github.com/san-kum/procvis/internal/life"
	"github.com/san-kum/procvis/internal/pixel"
)

type lifeSource struct {
	steps int
	hold  int
	frame int
	grid  *life.Grid
}

func newLifeSource(cfg *config.Config) (Source, error) {
	grid, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &lifeSource{steps: cfg.Life.StepsPerFrame, hold: max(cfg.Life.FramesPerStep, 1), grid: grid}, nil
}

func (s *lifeSource) Name() string { return "life" }

// Advance runs the configured generations once every hold frames.
func (s *lifeSource) Advance() {
	s.frame++
	if s.frame%s.hold != 0 {
		return
	}
	for i := 0; i < s.steps; i++ {
		s.grid.Step()
	}
}

func (s *lifeSource) Reset() error {
	s.frame = 0
	s.grid.Randomize()
	return nil
}

func (s *lifeSource) Frame() (*pixel.Frame, error) { return s.grid.Frame(), nil }

func (s *lifeSource) Sample() (float64, error) {
	return float64(s.grid.Population()), nil
}

func (s *lifeSource) SampleName() string { return "population" }

func (s *lifeSource) Close() error { return nil }

func (s *lifeSource) Toggle(x, y int) { s.grid.Toggle(x, y) }
func (s *lifeSource) Clear()          { s.grid.Clear() }
