package clusters

import "errors"

var (
	ErrEmptySet           = errors.New("empty training set")
	ErrNotTrained         = errors.New("you need to train the algorithm first")
	ErrZeroClusters       = errors.New("number of clusters cannot be less than 1")
	ErrTooManyClusters    = errors.New("number of clusters cannot exceed number of points")
	ErrNegativeIterations = errors.New("number of iterations cannot be negative")
	ErrEmptyPoint         = errors.New("points must have at least one feature")
	ErrDimensionMismatch  = errors.New("point dimension mismatch")
	ErrNonFinite          = errors.New("point contains NaN or infinite value")
	ErrInvalidRange       = errors.New("invalid column range")
	ErrZeroNeighbours     = errors.New("number of neighbours cannot be less than 1")
	ErrLabelMismatch      = errors.New("number of labels does not match number of points")
	ErrNilRand            = errors.New("random source cannot be nil")
	ErrNilLogger          = errors.New("logger cannot be nil")
)
