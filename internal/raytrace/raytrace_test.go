package raytrace

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/procvis/internal/pixel"
)

func TestSphereCenter(t *testing.T) {
	c := SphereCenter(0)
	if c != (Vec3{2, 0, 10}) {
		t.Errorf("expected (2,0,10) at t=0, got %+v", c)
	}
}

func TestTraceThroughCenterHits(t *testing.T) {
	for _, tm := range []float64{0, 1.3, 7, 42} {
		center := SphereCenter(tm)
		dir := Vec3{center.X / center.Z, center.Y / center.Z, 1}
		_, _, _, hit := Trace(dir, tm)
		if !hit {
			t.Errorf("t=%v: ray through sphere center should hit", tm)
		}
	}
}

func TestTraceMiss(t *testing.T) {
	// at t=0 the sphere sits at x=2, far from the upper-left corner ray
	r, g, b, hit := Trace(Vec3{-1, 1, 1}, 0)
	if hit {
		t.Fatal("corner ray should miss")
	}
	if r != 20 || g != 20 || b != 30 {
		t.Errorf("expected background (20,20,30), got (%d,%d,%d)", r, g, b)
	}
}

func TestIntersectBehindCamera(t *testing.T) {
	if _, ok := Intersect(Vec3{0, 0, 1}, Vec3{0, 0, -10}, 2); ok {
		t.Error("sphere behind the camera must not be hit")
	}
	tm, ok := Intersect(Vec3{0, 0, 1}, Vec3{0, 0, 10}, 2)
	if !ok || math.Abs(tm-8) > 1e-12 {
		t.Errorf("expected near root 8, got %v (ok=%v)", tm, ok)
	}
}

func TestRenderCornersAreBackground(t *testing.T) {
	f, err := Render(64, 48, 0)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, p := range [][2]int{{0, 0}, {0, 47}} {
		r, g, b, a := f.At(p[0], p[1])
		if r != 20 || g != 20 || b != 30 || a != 255 {
			t.Errorf("pixel %v: expected background, got (%d,%d,%d,%d)", p, r, g, b, a)
		}
	}
}

func TestRenderHitsSphere(t *testing.T) {
	w, h := 64, 64
	f, _ := Render(w, h, 0)

	// sphere center (2,0,10) projects to x=0.2, y=0
	px := int((0.2/2 + 0.5) * float64(w))
	r, g, b, a := f.At(px, h/2)
	if a != 255 {
		t.Errorf("expected alpha 255, got %d", a)
	}
	if r == 20 && g == 20 && b == 30 {
		t.Error("expected sphere color at the projected center")
	}
	if LitRatio(f) == 0 {
		t.Error("expected some lit pixels")
	}
}

func TestRenderInvalid(t *testing.T) {
	if _, err := Render(0, 10, 1); !errors.Is(err, pixel.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestSurfaceHue(t *testing.T) {
	tests := []struct {
		time, want float64
	}{
		{0, 0},
		{1, 50},
		{8, 40},
		{-1, 310},
	}
	for _, tt := range tests {
		if got := SurfaceHue(tt.time); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SurfaceHue(%v) = %v, want %v", tt.time, got, tt.want)
		}
	}
}
