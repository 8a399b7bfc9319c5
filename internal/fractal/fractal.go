// Package fractal rasterizes the Mandelbrot set by escape-time iteration.
//
// Render is a pure function of its arguments and is safe to call from
// multiple goroutines.
package fractal

import (
	"errors"
	"fmt"

	"github.com/san-kum/procvis/internal/hsl"
	"github.com/san-kum/procvis/internal/pixel"
)

const (
	DefaultMaxIter = 100
	escapeRadius2  = 4.0
	saturation     = 0.8
	lightness      = 0.5
)

// ErrInvalidIterations indicates a zero or negative iteration cap.
var ErrInvalidIterations = errors.New("fractal: max iterations must be positive")

// Viewport is the region of the complex plane mapped onto the frame.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Escape returns the number of iterations before |z| exceeds 2, capped at maxIter.
func Escape(x0, y0 float64, maxIter int) int {
	x, y := 0.0, 0.0
	iter := 0
	for x*x+y*y <= escapeRadius2 && iter < maxIter {
		x, y = x*x-y*y+x0, 2*x*y+y0
		iter++
	}
	return iter
}

// Render samples the viewport at pixel corners (px/width, py/height) without
// a half-pixel offset. Points that reach maxIter are painted black; escaping
// points get a hue proportional to their escape iteration.
func Render(width, height int, vp Viewport, maxIter int) (*pixel.Frame, error) {
	if maxIter <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidIterations, maxIter)
	}
	frame, err := pixel.NewFrame(width, height)
	if err != nil {
		return nil, err
	}

	dx := vp.XMax - vp.XMin
	dy := vp.YMax - vp.YMin
	for py := 0; py < height; py++ {
		y0 := vp.YMin + dy*float64(py)/float64(height)
		for px := 0; px < width; px++ {
			x0 := vp.XMin + dx*float64(px)/float64(width)

			iter := Escape(x0, y0, maxIter)
			if iter == maxIter {
				frame.Set(px, py, 0, 0, 0)
				continue
			}
			ratio := float64(iter) / float64(maxIter)
			r, g, b := hsl.ToRGB(360*ratio, saturation, lightness)
			frame.Set(px, py, r, g, b)
		}
	}

	return frame, nil
}

// InSetRatio returns the fraction of frame pixels that are painted black,
// i.e. classified as inside the set.
func InSetRatio(f *pixel.Frame) float64 {
	black := 0
	for i := 0; i < len(f.Pix); i += pixel.Channels {
		if f.Pix[i] == 0 && f.Pix[i+1] == 0 && f.Pix[i+2] == 0 {
			black++
		}
	}
	return float64(black) / float64(f.Width*f.Height)
}
