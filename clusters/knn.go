package clusters

import (
	"container/heap"
	"sync"

	"github.com/pkg/errors"
)

// KNN classifies observations by a majority vote among the k labelled
// training points closest to them.
type KNN struct {
	number    int
	dimension int

	// Training set and its labels. Access is synchronized.
	mu sync.RWMutex
	d  [][]float64
	l  []int
}

func NewKNN(neighbours int) (*KNN, error) {
	if neighbours < 1 {
		return nil, errors.Wrapf(ErrZeroNeighbours, "k = %d", neighbours)
	}

	return &KNN{number: neighbours}, nil
}

// Fit stores copies of the training points and their labels. It replaces any
// earlier training set, unless it returns an error.
func (c *KNN) Fit(points [][]float64, labels []int) error {
	if len(points) == 0 {
		return ErrEmptySet
	}

	if len(points) != len(labels) {
		return errors.Wrapf(ErrLabelMismatch, "%d points, %d labels", len(points), len(labels))
	}

	f, err := validate(points)
	if err != nil {
		return err
	}

	l := make([]int, len(labels))
	copy(l, labels)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.dimension = f
	c.d = cloneAll(points)
	c.l = l

	return nil
}

// Predict returns one label per observation.
func (c *KNN) Predict(observations [][]float64) ([]int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.d == nil {
		return nil, ErrNotTrained
	}

	r := make([]int, len(observations))
	for i, o := range observations {
		if err := checkObservation(o, c.dimension); err != nil {
			return nil, errors.Wrapf(err, "observation %d", i)
		}

		r[i] = c.classify(o)
	}

	return r, nil
}

// K returns the number of neighbours consulted per vote.
func (c *KNN) K() int {
	return c.number
}

// private
func (c *KNN) neighbours(o []float64) []*pItem {
	q := newPriorityQueue(c.number)

	for i, p := range c.d {
		d := EuclideanDistance(o, p)

		if q.Len() < c.number {
			heap.Push(&q, &pItem{v: i, p: d})
		} else if top := q.Peek(); top.p > d {
			q.Update(top, i, d)
		}
	}

	// Pops come farthest first; store them nearest first.
	n := make([]*pItem, q.Len())
	for j := len(n) - 1; j >= 0; j-- {
		n[j] = heap.Pop(&q).(*pItem)
	}

	return n
}

// classify votes among the nearest neighbours of o. A tie between labels goes
// to the label of the closest neighbour among them.
func (c *KNN) classify(o []float64) int {
	var (
		n      = c.neighbours(o)
		counts = make(map[int]int, len(n))
		order  = make([]int, 0, len(n))
	)

	for _, it := range n {
		label := c.l[it.v]
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}

	best := order[0]
	for _, label := range order[1:] {
		if counts[label] > counts[best] {
			best = label
		}
	}

	return best
}
