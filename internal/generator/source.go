package generator

import (
	"github.com/san-kum/procvis/internal/fractal"
	"github.com/san-kum/procvis/internal/pixel"
)

type Source interface {
	Name() string
	// Advance moves the generator forward by one configured frame step.
	Advance()
	Frame() (*pixel.Frame, error)
	Reset() error
	// Sample returns the scalar plotted by the stats command.
	Sample() (float64, error)
	SampleName() string
	Close() error
}

// Editable sources accept per-cell edits from user input.
type Editable interface {
	Toggle(x, y int)
	Clear()
}

// Navigable sources expose a movable view of the complex plane.
type Navigable interface {
	View() fractal.View
	SetView(v fractal.View)
	MaxIter() int
	SetMaxIter(n int)
}
