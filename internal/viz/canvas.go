package viz

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/procvis/internal/pixel"
)

// Half blocks pack two vertical pixels per cell:
// the upper half is the foreground, the lower half the background.
const halfBlock = "▀"

// Canvas maps a frame onto Cols x Rows terminal cells, two pixel rows per
// cell, with nearest-neighbour sampling.
type Canvas struct {
	Cols, Rows int
}

func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{Cols: max(cols, 1), Rows: max(rows, 1)}
}

// Resize keeps at least one cell in each direction.
func (c *Canvas) Resize(cols, rows int) {
	c.Cols, c.Rows = max(cols, 1), max(rows, 1)
}

// fit returns the sampled area in sub-pixels, preserving the frame's
// aspect ratio inside the canvas.
func (c *Canvas) fit(f *pixel.Frame) (w, h int) {
	w, h = c.Cols, c.Rows*2
	if f.Width*h > f.Height*w {
		h = max(f.Height*w/f.Width, 1)
	} else {
		w = max(f.Width*h/f.Height, 1)
	}
	return w, h
}

// Source returns the frame pixel shown at sub-pixel (sx, sy).
func (c *Canvas) Source(f *pixel.Frame, sx, sy int) (int, int) {
	w, h := c.fit(f)
	return sx * f.Width / w, sy * f.Height / h
}

// Cell returns the terminal cell holding frame pixel (x, y) and whether the
// pixel falls in its upper half.
func (c *Canvas) Cell(f *pixel.Frame, x, y int) (col, row int, upper bool) {
	w, h := c.fit(f)
	sx, sy := x*w/f.Width, y*h/f.Height
	return sx, sy / 2, sy%2 == 0
}

// Render draws f; the pixel at mark, when non-nil, is replaced by markColor.
func (c *Canvas) Render(f *pixel.Frame, mark *image.Point, markColor lipgloss.Color) string {
	if f == nil || f.Width == 0 || f.Height == 0 {
		return ""
	}
	w, h := c.fit(f)

	markCol, markRow, markUpper := -1, -1, false
	if mark != nil {
		markCol, markRow, markUpper = c.Cell(f, mark.X, mark.Y)
	}

	var sb strings.Builder
	for row := 0; row*2 < h; row++ {
		for col := 0; col < w; col++ {
			top := lipgloss.Color(c.hex(f, col, row*2))
			bottom := lipgloss.Color("#000000")
			if row*2+1 < h {
				bottom = lipgloss.Color(c.hex(f, col, row*2+1))
			}
			if col == markCol && row == markRow {
				if markUpper {
					top = markColor
				} else {
					bottom = markColor
				}
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render(halfBlock))
		}
		if (row+1)*2 < h {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (c *Canvas) hex(f *pixel.Frame, sx, sy int) string {
	x, y := c.Source(f, sx, sy)
	r, g, b, _ := f.At(x, y)
	return Hex(r, g, b)
}

// Hex formats an 8-bit RGB triple as #rrggbb.
func Hex(r, g, b uint8) string {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}
