package clusters

import (
	"log/slog"
	"math/rand"
)

type Option func(*KMeans) error

// WithRand sets the random source used to pick the initial centroids.
// Passing the same seeded source to two clusterers makes their fits identical.
func WithRand(r *rand.Rand) Option {
	return func(c *KMeans) error {
		if r == nil {
			return ErrNilRand
		}
		c.rand = r
		return nil
	}
}

// WithSeed is shorthand for WithRand with a source seeded by seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the logger that receives debug records about each fit.
// By default log output is discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *KMeans) error {
		if l == nil {
			return ErrNilLogger
		}
		c.log = l
		return nil
	}
}
