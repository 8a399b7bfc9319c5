// Package life implements Conway's Game of Life on a toroidal grid.
//
// Both axes wrap, so a cell on the right edge neighbours the left edge.
// A [Grid] double-buffers its cells: Step computes the whole next generation
// into a scratch slice and then swaps, so readers never observe a partially
// updated generation.
package life

import (
	"fmt"

	"github.com/san-kum/procvis/internal/pixel"
)

// seedPrime drives the deterministic seed pattern: cell i starts alive iff
// (i*seedPrime) % 3 == 0.
const seedPrime = 7919

type Grid struct {
	width, height int
	cur, next     []bool
	generation    int
}

func New(width, height int) (*Grid, error) {
	if err := pixel.CheckDimensions(width, height); err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	g := &Grid{
		width:  width,
		height: height,
		cur:    make([]bool, width*height),
		next:   make([]bool, width*height),
	}
	g.seed()
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Generation counts Step calls since construction, Clear or Randomize.
func (g *Grid) Generation() int { return g.generation }

// Step advances one generation under the B3/S23 rule.
func (g *Grid) Step() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			idx := y*g.width + x
			n := g.neighbors(x, y)
			g.next[idx] = n == 3 || (n == 2 && g.cur[idx])
		}
	}
	g.cur, g.next = g.next, g.cur
	g.generation++
}

func (g *Grid) neighbors(x, y int) int {
	w, h := g.width, g.height
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + h) % h
		row := ny * w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			if g.cur[row+nx] {
				count++
			}
		}
	}
	return count
}

// Alive reports whether (x, y) is alive. Out-of-range cells are dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cur[y*g.width+x]
}

// Toggle flips one cell. Out-of-range coordinates are ignored.
func (g *Grid) Toggle(x, y int) {
	if !g.inBounds(x, y) {
		return
	}
	idx := y*g.width + x
	g.cur[idx] = !g.cur[idx]
}

func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = false
	}
	g.generation = 0
}

// Randomize restores the construction seed pattern.
func (g *Grid) Randomize() {
	g.seed()
	g.generation = 0
}

func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// Cells renders the grid as RGBA bytes: alive cells white, dead cells black.
func (g *Grid) Cells() []byte {
	data := make([]byte, len(g.cur)*pixel.Channels)
	for i, alive := range g.cur {
		var v byte
		if alive {
			v = 255
		}
		j := i * pixel.Channels
		data[j] = v
		data[j+1] = v
		data[j+2] = v
		data[j+3] = 255
	}
	return data
}

// Frame wraps Cells in a pixel.Frame.
func (g *Grid) Frame() *pixel.Frame {
	return &pixel.Frame{Width: g.width, Height: g.height, Pix: g.Cells()}
}

func (g *Grid) seed() {
	for i := range g.cur {
		g.cur[i] = (i*seedPrime)%3 == 0
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}
