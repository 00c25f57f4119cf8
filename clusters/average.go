package clusters

import "gonum.org/v1/gonum/floats"

// meanStore accumulates the running sum and member count of one cluster
// during a single update pass.
type meanStore struct {
	sum   []float64
	count int
}

func newMeanStore(dimension int) *meanStore {
	return &meanStore{sum: make([]float64, dimension)}
}

func (s *meanStore) Add(p []float64) {
	floats.Add(s.sum, p)
	s.count++
}

func (s *meanStore) Count() int { return s.count }

// Mean returns the average of the added points. With no members it returns a
// copy of prev, which equals averaging prev with itself.
func (s *meanStore) Mean(prev []float64) []float64 {
	if s.count == 0 {
		return clone(prev)
	}

	m := clone(s.sum)
	floats.Scale(1/float64(s.count), m)
	return m
}

func (s *meanStore) Reset() {
	for i := range s.sum {
		s.sum[i] = 0
	}
	s.count = 0
}
