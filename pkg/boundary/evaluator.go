package boundary

import (
	"fmt"

	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/pkg/config"
)

// Condition is the result of classifying a chi value against the boundary.
// It is immutable once produced; equality is structural.
type Condition struct {
	// Chi is the classified ratio value.
	Chi float64

	// Valid reports chi <= threshold + tolerance. The boundary itself counts
	// as valid (closed-set convention), including at the tolerance edge.
	Valid bool

	// DistanceFromBoundary is threshold - chi: positive inside the valid
	// region, negative outside, zero on the boundary. Tolerance loosens the
	// validity test only and never shifts this distance.
	DistanceFromBoundary float64
}

// Evaluator classifies chi values against the configured boundary.
type Evaluator struct {
	cfg *config.EngineConfig
}

// NewEvaluator creates a new Evaluator instance.
func NewEvaluator(cfg *config.EngineConfig) (*Evaluator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return &Evaluator{cfg: cfg}, nil
}

// Evaluate classifies chi against the boundary. Chi must be finite and
// non-negative; the Calculator never produces anything else, but Evaluate
// may be called with caller-supplied values, so the guard is required.
func (e *Evaluator) Evaluate(chi float64) (Condition, error) {
	if err := checkFinite("chi", chi); err != nil {
		return Condition{}, err
	}
	if chi < 0 {
		return Condition{}, fmt.Errorf("%w: chi=%v", ErrNegativeRatio, chi)
	}

	return Condition{
		Chi:                  chi,
		Valid:                chi <= e.cfg.Threshold+e.cfg.Tolerance,
		DistanceFromBoundary: e.cfg.Threshold - chi,
	}, nil
}
