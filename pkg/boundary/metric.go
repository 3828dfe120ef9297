package boundary

import (
	"fmt"
	"math"
)

// Metric derives the g00 metric tensor component, the local deviation from a
// flat reference induced by chi.
type Metric struct {
	calc *Calculator
}

// NewMetric creates a new Metric sharing the given Calculator.
func NewMetric(calc *Calculator) (*Metric, error) {
	if calc == nil {
		return nil, fmt.Errorf("calculator cannot be nil")
	}
	return &Metric{calc: calc}, nil
}

// Component computes the g00 component at a 3-D point:
//
//	g00 = 1 + 2 * chi * r / (1 + r), r = sqrt(x² + y²)
//
// The perturbation is additive and non-negative, so g00 >= 1 everywhere.
// The radial factor r/(1+r) is evaluated as 1/(1 + 1/r) so it saturates at
// 1 instead of degenerating where x² + y² would overflow.
//
// z is part of the documented signature but the formula is a function of x
// and y only; it is validated and then ignored. The source material leaves
// open whether a z-dependent term was intended, so none is invented here.
func (m *Metric) Component(x, y, z float64) (float64, error) {
	if err := checkFinite("z", z); err != nil {
		return 0, err
	}

	chi, err := m.calc.Chi(x, y)
	if err != nil {
		return 0, err
	}

	r := math.Hypot(x, y)
	if r == 0 {
		return 1, nil
	}
	phi := chi / (1 + 1/r)
	return 1 + 2*phi, nil
}
