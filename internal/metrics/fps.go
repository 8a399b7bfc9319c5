package metrics

import "time"

const DefaultFPSWindow = 30

// FPS averages the last window frame intervals.
type FPS struct {
	window int
	deltas []time.Duration
	last   time.Time
}

func NewFPS(window int) *FPS {
	if window < 1 {
		window = DefaultFPSWindow
	}
	return &FPS{window: window, deltas: make([]time.Duration, 0, window)}
}

func (f *FPS) Name() string { return "fps" }

// Tick records a frame presented at now.
func (f *FPS) Tick(now time.Time) {
	if !f.last.IsZero() {
		f.Observe(now.Sub(f.last).Seconds())
	}
	f.last = now
}

// Observe records one frame interval given in seconds.
func (f *FPS) Observe(seconds float64) {
	f.add(time.Duration(seconds * float64(time.Second)))
}

func (f *FPS) add(d time.Duration) {
	f.deltas = append(f.deltas, d)
	if len(f.deltas) > f.window {
		f.deltas = f.deltas[1:]
	}
}

// Value is the mean frames per second over the window, 0 before two ticks.
func (f *FPS) Value() float64 {
	if len(f.deltas) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range f.deltas {
		sum += d
	}
	if sum <= 0 {
		return 0
	}
	return float64(len(f.deltas)) / sum.Seconds()
}

func (f *FPS) Reset() {
	f.deltas = f.deltas[:0]
	f.last = time.Time{}
}
