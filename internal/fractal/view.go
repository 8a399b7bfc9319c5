package fractal

// View describes a square window onto the plane by its center and zoom.
// At zoom 1 the window spans 3 units either side of the center.
type View struct {
	CenterX, CenterY float64
	Zoom             float64
}

func DefaultView() View {
	return View{CenterX: -0.5, CenterY: 0, Zoom: 1}
}

// HalfSize is the distance from the center to each edge of the window.
func (v View) HalfSize() float64 {
	return 3 / v.Zoom
}

func (v View) Viewport() Viewport {
	size := v.HalfSize()
	return Viewport{
		XMin: v.CenterX - size,
		XMax: v.CenterX + size,
		YMin: v.CenterY - size,
		YMax: v.CenterY + size,
	}
}

// ZoomAt recenters on pixel (px, py) of a width×height frame and doubles the zoom.
func (v View) ZoomAt(px, py, width, height int) View {
	size := v.HalfSize()
	fx := float64(px) / float64(width)
	fy := float64(py) / float64(height)
	return View{
		CenterX: v.CenterX - size + fx*size*2,
		CenterY: v.CenterY - size + fy*size*2,
		Zoom:    v.Zoom * 2,
	}
}

// Pan shifts the center by (dx, dy) window half-sizes.
func (v View) Pan(dx, dy float64) View {
	size := v.HalfSize()
	v.CenterX += dx * size
	v.CenterY += dy * size
	return v
}
