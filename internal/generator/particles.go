package generator

import (
	"github.com/gogpu/gg"

	"github.com/san-kum/procvis/internal/config"
	"github.com/san-kum/procvis/internal/hsl"
	"github.com/san-kum/procvis/internal/particles"
	"github.com/san-kum/procvis/internal/pixel"
)

const (
	particleSaturation = 0.8
	particleLightness  = 0.6
)

type particleSource struct {
	cfg           config.ParticlesConfig
	width, height int
	sys           *particles.System
	dc            *gg.Context
}

func newParticleSource(cfg *config.Config) (Source, error) {
	s := &particleSource{
		cfg:    cfg.Particles,
		width:  cfg.Width,
		height: cfg.Height,
		dc:     gg.NewContext(cfg.Width, cfg.Height),
	}
	if err := s.Reset(); err != nil {
		s.dc.Close()
		return nil, err
	}
	return s, nil
}

func (s *particleSource) Name() string { return "particles" }

func (s *particleSource) Advance() { s.sys.Update(s.cfg.Delta) }

func (s *particleSource) Reset() error {
	sys, err := particles.New(float64(s.width), float64(s.height), s.cfg.Count)
	if err != nil {
		return err
	}
	s.sys = sys
	s.dc.ClearWithColor(gg.RGB(0, 0, 0))
	return nil
}

// Frame washes the previous frame with translucent black, leaving trails when
// Fade < 1, then draws every particle as a disc of radius Size.
func (s *particleSource) Frame() (*pixel.Frame, error) {
	dc := s.dc
	dc.SetRGBA(0, 0, 0, s.cfg.Fade)
	dc.DrawRectangle(0, 0, float64(s.width), float64(s.height))
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	for i := 0; i < s.sys.Len(); i++ {
		p := s.sys.Particle(i)
		r, g, b := hsl.ToRGB(p.Hue, particleSaturation, particleLightness)
		dc.SetRGB(float64(r)/255, float64(g)/255, float64(b)/255)
		dc.DrawCircle(p.X, p.Y, p.Size)
		if err := dc.Fill(); err != nil {
			return nil, err
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	return pixel.FromImage(dc.Image())
}

func (s *particleSource) Sample() (float64, error) {
	return s.sys.Stats().KineticEnergy, nil
}

func (s *particleSource) SampleName() string { return "kinetic energy" }

func (s *particleSource) Close() error { return s.dc.Close() }

// System exposes the underlying simulation.
func (s *particleSource) System() *particles.System { return s.sys }
