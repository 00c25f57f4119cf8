// Package clusters partitions numeric observations into a fixed number of
// groups using Lloyd's k-means algorithm.
package clusters

import (
	"gonum.org/v1/gonum/floats"
)

type Clusterer interface {
	Fit(points [][]float64, k, iterations int) error
}

type CentroidClusterer interface {
	// Centroids returns a copy of the fitted cluster means.
	Centroids() ([][]float64, error)

	// Predict returns the index of the centroid nearest to observation.
	Predict(observation []float64) (int, error)

	Clusterer
}

// EuclideanDistance panics if a and b differ in length.
func EuclideanDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}
