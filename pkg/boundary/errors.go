package boundary

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonFiniteInput reports a NaN or infinite value passed to a
	// point-level operation.
	ErrNonFiniteInput = errors.New("non-finite input")

	// ErrNegativeRatio reports a negative chi passed to Evaluate. The
	// calculator never produces one, so this is a caller precondition
	// violation.
	ErrNegativeRatio = errors.New("negative chi ratio")
)

// checkFinite rejects NaN and ±Inf, naming the offending input.
func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%v", ErrNonFiniteInput, name, v)
	}
	return nil
}
