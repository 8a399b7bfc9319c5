package pixel

import (
	"image"

	"golang.org/x/image/draw"
)

// Channels is the number of bytes per pixel.
const Channels = 4

type Frame struct {
	Width, Height int
	Pix           []byte
}

// NewFrame allocates a zeroed frame.
func NewFrame(width, height int) (*Frame, error) {
	if err := CheckDimensions(width, height); err != nil {
		return nil, err
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*Channels),
	}, nil
}

// Offset returns the index of the red channel of (x, y).
func (f *Frame) Offset(x, y int) int {
	return (y*f.Width + x) * Channels
}

// Set writes an opaque pixel. Out-of-range coordinates are ignored.
func (f *Frame) Set(x, y int, r, g, b uint8) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	i := f.Offset(x, y)
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
	f.Pix[i+3] = 255
}

// At returns the RGBA bytes of (x, y).
func (f *Frame) At(x, y int) (r, g, b, a uint8) {
	i := f.Offset(x, y)
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}

// Fill paints every pixel with an opaque color.
func (f *Frame) Fill(r, g, b uint8) {
	for i := 0; i < len(f.Pix); i += Channels {
		f.Pix[i] = r
		f.Pix[i+1] = g
		f.Pix[i+2] = b
		f.Pix[i+3] = 255
	}
}

// Image wraps the frame as an *image.RGBA sharing the same backing slice.
// Alpha is always 255, so premultiplied and straight alpha agree.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.Width * Channels,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

// FromImage copies any image into a new frame with alpha forced to 255.
func FromImage(img image.Image) (*Frame, error) {
	b := img.Bounds()
	f, err := NewFrame(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(f.Image(), f.Image().Bounds(), img, b.Min, draw.Src)
	for i := 3; i < len(f.Pix); i += Channels {
		f.Pix[i] = 255
	}
	return f, nil
}
