package metrics

// Metric accumulates scalar observations taken once per frame.
type Metric interface {
	Name() string
	Observe(v float64)
	Value() float64
	Reset()
}

// Series keeps the most recent observations, dropping the oldest once
// capacity is reached. A capacity of zero keeps everything.
type Series struct {
	name     string
	capacity int
	values   []float64
}

func NewSeries(name string, capacity int) *Series {
	return &Series{name: name, capacity: capacity}
}

func (s *Series) Name() string { return s.name }

func (s *Series) Observe(v float64) {
	s.values = append(s.values, v)
	if s.capacity > 0 && len(s.values) > s.capacity {
		s.values = s.values[1:]
	}
}

// Value returns the latest observation, or 0 when empty.
func (s *Series) Value() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

func (s *Series) Values() []float64 { return s.values }

func (s *Series) Len() int { return len(s.values) }

func (s *Series) Reset() { s.values = s.values[:0] }
