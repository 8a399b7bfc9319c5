// Package viz renders generator frames in the terminal.
//
// Frames are drawn with half-block cells, two pixels per cell, inside a
// Bubble Tea program:
//
//   - [Model]: live view of one generator with a status panel and plot
//   - [Canvas]: nearest-neighbour mapping from frame pixels to cells
//   - [RunPicker]: menu to choose a generator before going live
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset (re-seed the life grid)
//	G     - Toggle GIF recording
//	T     - Cycle color themes
//	?     - Show help
//
// Mandelbrot views pan with the arrow keys, zoom with +/- or a mouse click
// and change the iteration cap with [ and ]. Life grids move a cursor with
// the arrow keys, toggle cells with Enter or a click and clear with C.
package viz
