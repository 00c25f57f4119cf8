package clusters

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// validate checks that every point shares the dimension of the first one and
// holds only finite values. It returns that dimension.
func validate(data [][]float64) (int, error) {
	f := len(data[0])
	if f == 0 {
		return 0, ErrEmptyPoint
	}

	for i, p := range data {
		if len(p) != f {
			return 0, errors.Wrapf(ErrDimensionMismatch, "point %d has %d features, want %d", i, len(p), f)
		}

		if j := nonFinite(p); j >= 0 {
			return 0, errors.Wrapf(ErrNonFinite, "point %d, feature %d", i, j)
		}
	}

	return f, nil
}

// checkObservation applies the training set rules to a single point that is
// about to be compared against fitted data of the given dimension.
func checkObservation(p []float64, dimension int) error {
	if len(p) != dimension {
		return errors.Wrapf(ErrDimensionMismatch, "observation has %d features, want %d", len(p), dimension)
	}

	if j := nonFinite(p); j >= 0 {
		return errors.Wrapf(ErrNonFinite, "observation feature %d", j)
	}

	return nil
}

// nonFinite returns the index of the first NaN or infinite value in p, or -1.
func nonFinite(p []float64) int {
	for j, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return j
		}
	}
	return -1
}

// sampleIndices picks k distinct indices from [0, n) uniformly at random.
// Callers guarantee 0 < k <= n.
func sampleIndices(r *rand.Rand, k, n int) []int {
	return r.Perm(n)[:k]
}

func clone(p []float64) []float64 {
	c := make([]float64, len(p))
	copy(c, p)
	return c
}

func cloneAll(m [][]float64) [][]float64 {
	c := make([][]float64, len(m))
	for i := range m {
		c[i] = clone(m[i])
	}
	return c
}
