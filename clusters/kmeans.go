package clusters

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var _ CentroidClusterer = (*KMeans)(nil)

// KMeans is a Lloyd's algorithm clusterer. A single instance may be refitted;
// each successful Fit replaces the previous centroids.
type KMeans struct {
	number    int
	dimension int

	rand *rand.Rand
	log  *slog.Logger

	// Cluster means, one per cluster. Access is synchronized.
	mu sync.RWMutex
	m  [][]float64

	// Per-cluster accumulators reused across iterations of one fit.
	s []*meanStore

	// Nearest centroid for each training point in the current iteration.
	a []int
}

func NewKMeans(opts ...Option) (*KMeans, error) {
	c := &KMeans{
		rand: rand.New(rand.NewSource(time.Now().UTC().UnixNano())),
		log:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Fit clusters points into k groups by running exactly iterations Lloyd
// steps from k distinct randomly chosen points. points is never modified.
// When Fit returns an error the previously fitted state is kept.
func (c *KMeans) Fit(points [][]float64, k, iterations int) error {
	switch {
	case len(points) == 0:
		return ErrEmptySet
	case k < 1:
		return errors.Wrapf(ErrZeroClusters, "k = %d", k)
	case k > len(points):
		return errors.Wrapf(ErrTooManyClusters, "k = %d, points = %d", k, len(points))
	case iterations < 0:
		return errors.Wrapf(ErrNegativeIterations, "iterations = %d", iterations)
	}

	f, err := validate(points)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.number = k
	c.dimension = f

	c.log.Debug("kmeans fit started",
		slog.Int("points", len(points)),
		slog.Int("k", k),
		slog.Int("dimension", f),
		slog.Int("iterations", iterations))

	c.initializeMeans(points)

	c.a = make([]int, len(points))
	c.s = make([]*meanStore, k)
	for i := range c.s {
		c.s[i] = newMeanStore(f)
	}

	var changes int
	for i := 0; i < iterations; i++ {
		changes = c.run(points, i == 0)
	}

	c.log.Debug("kmeans fit finished",
		slog.Int("k", k),
		slog.Int("last_changes", changes))

	c.a = nil
	c.s = nil

	return nil
}

func (c *KMeans) Centroids() ([][]float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.m == nil {
		return nil, ErrNotTrained
	}

	return cloneAll(c.m), nil
}

func (c *KMeans) Predict(p []float64) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.m == nil {
		return -1, ErrNotTrained
	}

	if err := checkObservation(p, c.dimension); err != nil {
		return -1, err
	}

	return nearest(p, c.m), nil
}

// K returns the number of fitted clusters, or 0 before the first Fit.
func (c *KMeans) K() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.number
}

// Dimension returns the number of features per centroid, or 0 before the first Fit.
func (c *KMeans) Dimension() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.dimension
}

// private
func (c *KMeans) initializeMeans(points [][]float64) {
	c.m = make([][]float64, c.number)

	for i, j := range sampleIndices(c.rand, c.number, len(points)) {
		c.m[i] = clone(points[j])
	}
}

// run performs one assignment pass followed by one update pass and returns
// how many points changed cluster. On the first pass every point counts as
// changed.
func (c *KMeans) run(points [][]float64, first bool) int {
	var changes int

	for i, p := range points {
		n := nearest(p, c.m)
		if first || c.a[i] != n {
			changes++
		}
		c.a[i] = n
	}

	for _, s := range c.s {
		s.Reset()
	}

	for i, p := range points {
		c.s[c.a[i]].Add(p)
	}

	// New means are built aside and swapped in together so the pass only
	// reads centroids from the start of the iteration.
	m := make([][]float64, c.number)
	for i, s := range c.s {
		m[i] = s.Mean(c.m[i])
	}
	c.m = m

	return changes
}

// nearest returns the index of the centroid closest to p. Ties go to the
// lowest index.
func nearest(p []float64, means [][]float64) int {
	var (
		n    int
		d, m float64 = 0, EuclideanDistance(p, means[0])
	)

	for j := 1; j < len(means); j++ {
		if d = EuclideanDistance(p, means[j]); d < m {
			m = d
			n = j
		}
	}

	return n
}
