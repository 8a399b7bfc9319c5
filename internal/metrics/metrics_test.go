package metrics

import (
	"math"
	"testing"
	"time"
)

func TestSeriesCapacity(t *testing.T) {
	s := NewSeries("population", 3)
	for i := 1; i <= 5; i++ {
		s.Observe(float64(i))
	}

	if s.Len() != 3 {
		t.Fatalf("expected 3 values, got %d", s.Len())
	}
	if got := s.Values(); got[0] != 3 || got[2] != 5 {
		t.Errorf("expected [3 4 5], got %v", got)
	}
	if s.Value() != 5 {
		t.Errorf("expected latest 5, got %f", s.Value())
	}

	s.Reset()
	if s.Len() != 0 || s.Value() != 0 {
		t.Error("expected empty series after reset")
	}
}

func TestSeriesUnbounded(t *testing.T) {
	s := NewSeries("energy", 0)
	for i := 0; i < 1000; i++ {
		s.Observe(1)
	}
	if s.Len() != 1000 {
		t.Errorf("expected 1000 values, got %d", s.Len())
	}
}

func TestFPS(t *testing.T) {
	f := NewFPS(30)
	if f.Value() != 0 {
		t.Errorf("expected 0 before ticks, got %f", f.Value())
	}

	start := time.Unix(0, 0)
	for i := 0; i <= 60; i++ {
		f.Tick(start.Add(time.Duration(i) * time.Second / 60))
	}

	if math.Abs(f.Value()-60) > 0.01 {
		t.Errorf("expected ~60 fps, got %f", f.Value())
	}

	f.Reset()
	f.Observe(0.5)
	f.Observe(0.5)
	if math.Abs(f.Value()-2) > 1e-9 {
		t.Errorf("expected 2 fps, got %f", f.Value())
	}
}

var _ Metric = (*Series)(nil)
var _ Metric = (*FPS)(nil)
