package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrOutOfRange is returned when a randomness request is malformed: a
// probability outside [0, 1], an empty interval, or an empty sample set.
var ErrOutOfRange = errors.New("argument out of range")

// Source supplies the randomness consumed by the carving algorithms. The
// engine never owns a global generator; callers inject a Source so tests
// can substitute a deterministic or scripted sequence.
//
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// Bool returns true with the given probability.
	// Returns ErrOutOfRange if prob is outside [0, 1].
	Bool(prob float64) (bool, error)

	// IntN returns a uniform integer in the half-open interval
	// [start, end). Returns ErrOutOfRange if start >= end.
	IntN(start, end int) (int, error)
}

// Sample returns one element of items chosen uniformly via src.
// Returns ErrOutOfRange if items is empty.
func Sample[T any](src Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: cannot sample an empty sequence", ErrOutOfRange)
	}
	if len(items) == 1 {
		return items[0], nil
	}
	i, err := src.IntN(0, len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// randSource adapts a seeded math/rand generator to the Source interface.
type randSource struct {
	rng *rand.Rand
}

// NewSource returns a Source backed by math/rand with the given seed.
// The same seed always yields the same carving for a given algorithm and
// grid size.
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Bool(prob float64) (bool, error) {
	if prob < 0 || prob > 1 {
		return false, fmt.Errorf("%w: probability %v outside [0, 1]", ErrOutOfRange, prob)
	}
	return s.rng.Float64() < prob, nil
}

func (s *randSource) IntN(start, end int) (int, error) {
	if start >= end {
		return 0, fmt.Errorf("%w: empty interval [%d, %d)", ErrOutOfRange, start, end)
	}
	return start + s.rng.Intn(end-start), nil
}
