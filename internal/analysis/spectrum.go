package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns |X[k]| for k in [0, n/2] after removing the mean, so
// bin 0 carries no DC offset. Bin n/2 holds the period-2 component.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	mean := Mean(data)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	coeffs := fft.FFTReal(centered)
	ps := make([]float64, len(coeffs)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// DominantPeriod returns the period, in samples, of the strongest non-DC
// frequency. ok is false for series too short or flat to have one.
func DominantPeriod(data []float64) (float64, bool) {
	ps := PowerSpectrum(data)
	best, bestIdx := 0.0, 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > best {
			best, bestIdx = ps[k], k
		}
	}
	if bestIdx == 0 || best < 1e-9 {
		return 0, false
	}
	return float64(len(data)) / float64(bestIdx), true
}

func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Range returns the minimum and maximum of data.
func Range(data []float64) (lo, hi float64) {
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range data {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
