package scanner

import (
	"context"
	"fmt"
	"math"

	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/internal/logging"
)

// Profile is chi sampled along the diagonal ray x = y = r/√2.
type Profile struct {
	// Radii and Chi are the sample radii in [0, maxRadius] and the chi value
	// at each, both of length samples.
	Radii []float64
	Chi   []float64

	// CriticalRadius is the sample radius whose chi is nearest the
	// configured threshold. It is an estimate, not a root: with the default
	// scale constants the documented critical radii disagree with each
	// other, so no closed form is assumed and the grid sample is reported
	// as-is.
	CriticalRadius float64

	// CriticalChi is the chi value at CriticalRadius.
	CriticalChi float64
}

// RadialProfile samples chi along the diagonal ray out to maxRadius and
// locates the sample closest to the boundary threshold. samples must be
// >= 2 and maxRadius positive and finite.
func (s *Scanner) RadialProfile(ctx context.Context, maxRadius float64, samples int) (*Profile, error) {
	if math.IsNaN(maxRadius) || math.IsInf(maxRadius, 0) || maxRadius <= 0 {
		return nil, fmt.Errorf("%w: maxRadius must be positive and finite, got %v", ErrInvalidRange, maxRadius)
	}
	if samples < 2 {
		return nil, fmt.Errorf("%w: samples must be >= 2, got %d", ErrInvalidResolution, samples)
	}

	threshold := s.calc.Config().Threshold
	p := &Profile{
		Radii: axis(0, maxRadius, samples),
		Chi:   make([]float64, samples),
	}

	bestDelta := math.Inf(1)
	bestIdx := 0
	for i, r := range p.Radii {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c := r / math.Sqrt2
		chi, err := s.calc.Chi(c, c)
		if err != nil {
			return nil, err
		}
		p.Chi[i] = chi
		if delta := math.Abs(chi - threshold); delta < bestDelta {
			bestDelta = delta
			bestIdx = i
		}
	}

	p.CriticalRadius = p.Radii[bestIdx]
	p.CriticalChi = p.Chi[bestIdx]

	s.log.V(logging.DEBUG).Info("Radial profile completed",
		"samples", samples,
		"maxRadius", maxRadius,
		"criticalRadius", p.CriticalRadius,
		"criticalChi", p.CriticalChi)

	return p, nil
}
