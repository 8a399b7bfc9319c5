package life_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/procvis/internal/life"
)

func TestLife(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Life Suite")
}

var _ = Describe("Grid", func() {
	var g *life.Grid

	BeforeEach(func() {
		var err error
		g, err = life.New(10, 10)
		Expect(err).NotTo(HaveOccurred())
		g.Clear()
	})

	Describe("a glider", func() {
		BeforeEach(func() {
			for _, c := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
				g.Toggle(c[0], c[1])
			}
		})

		It("keeps five cells every generation", func() {
			for i := 0; i < 40; i++ {
				g.Step()
				Expect(g.Population()).To(Equal(5))
			}
		})

		It("returns to its starting shape after wrapping the torus", func() {
			start := g.Cells()
			// a glider moves one cell diagonally every 4 generations
			for i := 0; i < 4*10; i++ {
				g.Step()
			}
			Expect(g.Cells()).To(Equal(start))
		})
	})

	Describe("Cells", func() {
		It("renders live cells as opaque white", func() {
			g.Toggle(3, 4)
			cells := g.Cells()
			i := (4*10 + 3) * 4
			Expect(cells[i : i+4]).To(Equal([]byte{255, 255, 255, 255}))
		})
	})

	Describe("Frame", func() {
		It("matches the grid dimensions", func() {
			f := g.Frame()
			Expect(f.Width).To(Equal(10))
			Expect(f.Height).To(Equal(10))
			Expect(f.Pix).To(HaveLen(400))
		})
	})
})
