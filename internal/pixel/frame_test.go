package pixel

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f, err := NewFrame(3, 2)
	if err != nil {
		t.Fatalf("new frame failed: %v", err)
	}
	if len(f.Pix) != 3*2*4 {
		t.Errorf("expected %d bytes, got %d", 24, len(f.Pix))
	}
}

func TestNewFrameInvalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrame(tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}

func TestSetAndAt(t *testing.T) {
	f, _ := NewFrame(4, 4)
	f.Set(2, 1, 10, 20, 30)
	f.Set(-1, 0, 1, 1, 1)
	f.Set(4, 0, 1, 1, 1)

	r, g, b, a := f.At(2, 1)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("unexpected pixel (%d,%d,%d,%d)", r, g, b, a)
	}
	if f.Offset(2, 1) != (1*4+2)*4 {
		t.Errorf("unexpected offset %d", f.Offset(2, 1))
	}
}

func TestImageSharesPixels(t *testing.T) {
	f, _ := NewFrame(2, 2)
	f.Fill(20, 20, 30)
	img := f.Image()

	got := img.RGBAAt(1, 1)
	if got != (color.RGBA{20, 20, 30, 255}) {
		t.Errorf("unexpected color %v", got)
	}

	img.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	if r, _, _, _ := f.At(0, 0); r != 1 {
		t.Error("image should share the frame's backing slice")
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	f, _ := NewFrame(3, 3)
	f.Set(1, 2, 200, 100, 50)

	c, err := FromImage(f.Image())
	if err != nil {
		t.Fatalf("from image failed: %v", err)
	}
	if r, g, b, a := c.At(1, 2); r != 200 || g != 100 || b != 50 || a != 255 {
		t.Errorf("unexpected pixel (%d,%d,%d,%d)", r, g, b, a)
	}
}
