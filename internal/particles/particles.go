// Package particles implements a fixed-size 2D point-mass pool with wall
// bounce, constant gravity and hue cycling.
//
// A [System] is owned by a single caller; concurrent Update calls on the
// same instance are not supported.
package particles

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/procvis/internal/pixel"
)

const (
	SpawnRadius = 2.0
	LaunchSpeed = 2.0
	Restitution = 0.95
	Gravity     = 0.5
	HueRate     = 0.5
)

// ErrInvalidCount indicates a particle count below one.
var ErrInvalidCount = errors.New("particles: count must be at least 1")

type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Hue    float64
}

type System struct {
	width, height float64
	particles     []Particle
}

// New creates count particles on a small circle around the canvas center,
// each launched outward along its own angle 2π·i/count.
func New(width, height float64, count int) (*System, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w (got %gx%g)", pixel.ErrInvalidDimensions, width, height)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCount, count)
	}

	cx, cy := width/2, height/2
	ps := make([]Particle, count)
	for i := range ps {
		frac := float64(i) / float64(count)
		angle := frac * 2 * math.Pi
		cos, sin := math.Cos(angle), math.Sin(angle)
		ps[i] = Particle{
			X:    cx + SpawnRadius*cos,
			Y:    cy + SpawnRadius*sin,
			VX:   LaunchSpeed * cos,
			VY:   LaunchSpeed * sin,
			Size: 2 + float64(i%5),
			Hue:  frac * 360,
		}
	}

	return &System{width: width, height: height, particles: ps}, nil
}

// Update advances every particle by one explicit Euler tick of length delta.
func (s *System) Update(delta float64) {
	for i := range s.particles {
		p := &s.particles[i]

		p.X += p.VX * delta
		p.Y += p.VY * delta

		if p.X < 0 || p.X > s.width {
			p.VX *= -Restitution
			p.X = clamp(p.X, 0, s.width)
		}
		if p.Y < 0 || p.Y > s.height {
			p.VY *= -Restitution
			p.Y = clamp(p.Y, 0, s.height)
		}

		p.VY += Gravity * delta

		p.Hue = wrapHue(p.Hue + HueRate*delta)
	}
}

// Data returns x, y, size, hue for every particle in creation order.
func (s *System) Data() []float64 {
	data := make([]float64, 0, len(s.particles)*4)
	for _, p := range s.particles {
		data = append(data, p.X, p.Y, p.Size, p.Hue)
	}
	return data
}

func (s *System) Len() int { return len(s.particles) }

// Particle returns a copy of the i-th particle.
func (s *System) Particle(i int) Particle { return s.particles[i] }

func (s *System) Bounds() (width, height float64) { return s.width, s.height }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// wrapHue keeps the hue in [0, 360) even for negative deltas.
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
