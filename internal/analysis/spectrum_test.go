package analysis

import (
	"math"
	"testing"
)

func TestDominantPeriodSine(t *testing.T) {
	const n, period = 256, 16.0
	data := make([]float64, n)
	for i := range data {
		data[i] = 5 + math.Sin(2*math.Pi*float64(i)/period)
	}

	got, ok := DominantPeriod(data)
	if !ok {
		t.Fatal("expected a dominant period")
	}
	if math.Abs(got-period) > 1e-9 {
		t.Errorf("expected period %f, got %f", period, got)
	}
}

func TestDominantPeriodBlinker(t *testing.T) {
	// a period-2 oscillator that is not a power-of-two length
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(3 + 2*(i%2))
	}
	got, ok := DominantPeriod(data)
	if !ok || math.Abs(got-2) > 1e-9 {
		t.Errorf("expected period 2, got %f (ok=%v)", got, ok)
	}
}

func TestDominantPeriodAlternating(t *testing.T) {
	got, ok := DominantPeriod([]float64{1, 3, 1, 3, 1, 3, 1, 3})
	if !ok || got != 2 {
		t.Errorf("expected period 2, got %f (ok=%v)", got, ok)
	}
	ps := PowerSpectrum([]float64{1, 3, 1, 3, 1, 3, 1, 3})
	if len(ps) != 5 || ps[4] < 7.99 {
		t.Errorf("expected all power in the last of 5 bins, got %v", ps)
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	data := []float64{4, 4, 4, 4, 4, 4, 4, 4}
	if _, ok := DominantPeriod(data); ok {
		t.Error("flat series has no dominant period")
	}
	if _, ok := DominantPeriod([]float64{1}); ok {
		t.Error("single sample has no dominant period")
	}
}

func TestPowerSpectrumLength(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 64))
	if len(ps) != 33 {
		t.Errorf("expected 33 bins, got %d", len(ps))
	}
}

func TestMeanAndRange(t *testing.T) {
	data := []float64{3, -1, 7, 2}
	if m := Mean(data); m != 2.75 {
		t.Errorf("expected mean 2.75, got %f", m)
	}
	lo, hi := Range(data)
	if lo != -1 || hi != 7 {
		t.Errorf("expected range [-1, 7], got [%f, %f]", lo, hi)
	}
}
