// Package raytrace renders a single orbiting sphere lit by one point light.
//
// The camera sits at the origin looking down +Z. Render is a pure function of
// (width, height, time) and safe for concurrent use.
package raytrace

import (
	"math"

	"github.com/san-kum/procvis/internal/hsl"
	"github.com/san-kum/procvis/internal/pixel"
)

const (
	SphereRadius = 2.0
	sphereDepth  = 10.0
	hueRate      = 50.0
	saturation   = 0.7
	lightness    = 0.5
)

var (
	Light      = Vec3{5, 5, -5}
	Background = [3]uint8{20, 20, 30}
)

// SphereCenter returns the sphere position at the given scene time.
func SphereCenter(time float64) Vec3 {
	return Vec3{
		X: math.Cos(time*0.5) * 2,
		Y: math.Sin(time*0.3) * 1.5,
		Z: sphereDepth,
	}
}

// SurfaceHue is the sphere hue in degrees at the given time.
func SurfaceHue(time float64) float64 {
	h := math.Mod(time*hueRate, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Intersect returns the near root t of the ray origin+t·dir against the
// sphere, and false when the ray misses or the sphere is behind the camera.
func Intersect(dir, center Vec3, radius float64) (float64, bool) {
	a := dir.Dot(dir)
	b := -2 * dir.Dot(center)
	c := center.Dot(center) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// Trace shades one camera ray. hit is false when the background was returned.
func Trace(dir Vec3, time float64) (r, g, b uint8, hit bool) {
	center := SphereCenter(time)
	t, ok := Intersect(dir, center, SphereRadius)
	if !ok {
		return Background[0], Background[1], Background[2], false
	}

	point := dir.Scale(t)
	normal := point.Sub(center).Div(SphereRadius)
	toLight := Light.Sub(point)
	brightness := math.Max(0, normal.Dot(toLight)/toLight.Length())

	cr, cg, cb := hsl.ToRGB(SurfaceHue(time), saturation, lightness)
	return shade(cr, brightness), shade(cg, brightness), shade(cb, brightness), true
}

// RayDir maps pixel (px, py) to a camera ray with x, y in [-1, 1]; image
// rows grow downward so y is inverted.
func RayDir(px, py, width, height int) Vec3 {
	x := (float64(px)/float64(width) - 0.5) * 2
	y := -(float64(py)/float64(height) - 0.5) * 2
	return Vec3{x, y, 1}
}

func Render(width, height int, time float64) (*pixel.Frame, error) {
	frame, err := pixel.NewFrame(width, height)
	if err != nil {
		return nil, err
	}
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			r, g, b, _ := Trace(RayDir(px, py, width, height), time)
			frame.Set(px, py, r, g, b)
		}
	}
	return frame, nil
}

// LitRatio returns the fraction of pixels that differ from the background.
func LitRatio(f *pixel.Frame) float64 {
	lit := 0
	for i := 0; i < len(f.Pix); i += pixel.Channels {
		if f.Pix[i] != Background[0] || f.Pix[i+1] != Background[1] || f.Pix[i+2] != Background[2] {
			lit++
		}
	}
	return float64(lit) / float64(f.Width*f.Height)
}

func shade(c uint8, brightness float64) uint8 {
	return uint8(float64(c) * brightness)
}
