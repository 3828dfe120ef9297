// Package scanner drives grids of 2-D parameter points through the
// chi-boundary engine and aggregates validity statistics.
//
// A scan covers a rectangular window [xMin, xMax] × [yMin, yMax] with a
// resolution × resolution grid, inclusive of both endpoints on each axis.
// Every grid point is independent, so rows are evaluated in parallel and
// reduced with a plain integer sum; identical inputs always yield identical
// results.
//
// Three scan products are available:
//
//   - Scan: aggregate counts and the valid fraction of the window
//   - ScanGrid: per-point chi and validity grids for read-only consumers
//     such as map and contour renderers
//   - RadialProfile: chi sampled along the diagonal ray, with an estimate of
//     the radius at which chi crosses the threshold
//
// Example usage:
//
//	engine, _ := boundary.NewEngine(config.Default())
//	s, err := scanner.New(engine, nil)
//	if err != nil {
//	    return err
//	}
//
//	result, err := s.Scan(ctx, scanner.Request{
//	    XMin: -1, XMax: 1,
//	    YMin: -1, YMax: 1,
//	    Resolution: 100,
//	})
//	if err != nil {
//	    return err
//	}
//
//	log.Info("scan complete",
//	    "totalPoints", result.TotalPoints,
//	    "validCount", result.ValidCount,
//	    "validFraction", result.ValidFraction)
//
// Cancellation:
//
// Scans are bounded deterministic computations, but large resolutions can
// take a while; the context is checked between row partitions so callers can
// abort early. A cancelled scan returns the context error and no partial
// result.
package scanner
