package scanner

import (
	"context"
	"time"

	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/internal/logging"
)

// Grid is the per-point scan product consumed by map and contour renderers.
// Chi and Valid are indexed [row][col], row following the Y axis and col the
// X axis.
type Grid struct {
	// X and Y are the axis sample values, each of length Resolution.
	X []float64
	Y []float64

	Chi   [][]float64
	Valid [][]bool

	// Result carries the aggregate statistics for the same grid.
	Result Result
}

// ScanGrid evaluates the request's grid and returns per-point chi values and
// validity flags alongside the aggregate result. Aggregates are identical to
// what Scan would report for the same request.
func (s *Scanner) ScanGrid(ctx context.Context, req Request) (*Grid, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	grid := &Grid{
		X:     axis(req.XMin, req.XMax, req.Resolution),
		Y:     axis(req.YMin, req.YMax, req.Resolution),
		Chi:   make([][]float64, req.Resolution),
		Valid: make([][]bool, req.Resolution),
	}

	rowCounts := make([]int, req.Resolution)
	if err := s.forEachRow(ctx, req.Resolution, func(j int) error {
		chiRow := make([]float64, req.Resolution)
		validRow := make([]bool, req.Resolution)
		n := 0
		for i := 0; i < req.Resolution; i++ {
			cond, err := s.classify(grid.X[i], grid.Y[j])
			if err != nil {
				return err
			}
			chiRow[i] = cond.Chi
			validRow[i] = cond.Valid
			if cond.Valid {
				n++
			}
		}
		grid.Chi[j] = chiRow
		grid.Valid[j] = validRow
		rowCounts[j] = n
		return nil
	}); err != nil {
		if s.emitter != nil {
			s.emitter.ObserveFailure()
		}
		return nil, err
	}

	validCount := 0
	for _, n := range rowCounts {
		validCount += n
	}
	totalPoints := req.Resolution * req.Resolution

	grid.Result = Result{
		TotalPoints:   totalPoints,
		ValidCount:    validCount,
		ValidFraction: float64(validCount) / float64(totalPoints),
		XMin:          req.XMin,
		XMax:          req.XMax,
		YMin:          req.YMin,
		YMax:          req.YMax,
		Resolution:    req.Resolution,
	}

	elapsed := time.Since(start)
	if s.emitter != nil {
		s.emitter.ObserveScan(totalPoints, grid.Result.ValidFraction, elapsed.Seconds())
	}
	s.log.V(logging.DEBUG).Info("Grid scan completed",
		"totalPoints", totalPoints,
		"validCount", validCount,
		"elapsed", elapsed)

	return grid, nil
}
