package particles

import "math"

// Stats summarizes the pool for plotting. Every particle has unit mass.
type Stats struct {
	MeanSpeed     float64
	KineticEnergy float64
	MeanHeight    float64
}

func (s *System) Stats() Stats {
	var st Stats
	n := float64(len(s.particles))
	for _, p := range s.particles {
		v2 := p.VX*p.VX + p.VY*p.VY
		st.MeanSpeed += math.Sqrt(v2)
		st.KineticEnergy += 0.5 * v2
		// screen y grows downward
		st.MeanHeight += s.height - p.Y
	}
	st.MeanSpeed /= n
	st.MeanHeight /= n
	return st
}
