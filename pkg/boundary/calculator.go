package boundary

import (
	"fmt"
	"math"

	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/pkg/config"
)

// Calculator computes the dimensionless chi ratio for 2-D parameter points.
type Calculator struct {
	cfg *config.EngineConfig
}

// NewCalculator creates a new Calculator instance.
func NewCalculator(cfg *config.EngineConfig) (*Calculator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return &Calculator{cfg: cfg}, nil
}

// Chi computes the chi ratio for the point (x, y):
//
//	chi = (E_vac / E_planck) * sqrt(r²) / (1 + r²), r² = x² + y²
//
// The denominator is at least 1, so the ratio is defined for every finite
// point. Chi is non-negative everywhere and zero exactly at the origin, and
// depends only on r², so it is symmetric under sign flips and axis swaps.
//
// The radial factor is evaluated as 1/(r + 1/r) with r = hypot(x, y), which
// is the same algebraic form but keeps chi finite and non-negative even
// where x² + y² would overflow or underflow.
func (c *Calculator) Chi(x, y float64) (float64, error) {
	if err := checkFinite("x", x); err != nil {
		return 0, err
	}
	if err := checkFinite("y", y); err != nil {
		return 0, err
	}

	r := math.Hypot(x, y)
	if r == 0 {
		return 0, nil
	}
	return (c.cfg.VacuumEnergy / c.cfg.PlanckEnergy) / (r + 1/r), nil
}

// Config returns the shared engine configuration.
func (c *Calculator) Config() *config.EngineConfig {
	return c.cfg
}
