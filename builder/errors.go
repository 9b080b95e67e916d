package builder

import "errors"

var (
	// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is too small.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates that a stochastic constructor ran without a seed.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or nil target graph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
