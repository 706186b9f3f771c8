package metrics

import "github.com/san-kum/aquarium/internal/aquarium"

// Metric accumulates one number over the frames of a run.
type Metric interface {
	Name() string
	Observe(s *aquarium.Scene)
	Value() float64
	Reset()
}

// Set fans frames out to several metrics. It satisfies driver.Observer.
type Set []Metric

func (m Set) OnFrame(s *aquarium.Scene) {
	for _, metric := range m {
		metric.Observe(s)
	}
}

func (m Set) Reset() {
	for _, metric := range m {
		metric.Reset()
	}
}

// Values returns the current value of every metric, keyed by name.
func (m Set) Values() map[string]float64 {
	out := make(map[string]float64, len(m))
	for _, metric := range m {
		out[metric.Name()] = metric.Value()
	}
	return out
}

// Default returns the metrics reported by the stats command.
func Default() Set {
	return Set{NewCoverage(), NewVisibleFish(), NewRecycles()}
}

// Coverage returns the first coverage metric in the set, or nil.
func (m Set) Coverage() *Coverage {
	for _, metric := range m {
		if c, ok := metric.(*Coverage); ok {
			return c
		}
	}
	return nil
}
