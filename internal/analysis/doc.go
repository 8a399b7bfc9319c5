// Package analysis provides frequency tools for per-frame scalar series.
//
// A Game of Life population settling into oscillators, or a bouncing
// particle cloud, shows up as a peak in the power spectrum:
//
//	period, ok := analysis.DominantPeriod(population)
//	if ok {
//	    // population repeats roughly every period frames
//	}
package analysis
