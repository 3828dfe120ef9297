// Package boundary provides the point-level components of the chi-boundary
// analysis engine.
//
// The package computes a dimensionless ratio chi for points in a 2-D
// parameter space, classifies chi against a configured threshold, lifts 2-D
// points into 3-D coordinates, and derives a metric tensor component from
// them:
//
//   - Calculator: chi = (E_vac/E_planck) * sqrt(r²) / (1 + r²), r² = x² + y²
//   - Evaluator: classifies chi against threshold + tolerance
//   - Transformer: (x, y) → (x, y, sqrt(E_vac)·r²/(1+chi))
//   - Metric: g00 = 1 + 2·chi·r/(1+r)
//
// All components are stateless pure functions over an immutable shared
// EngineConfig; identical inputs always produce identical outputs.
//
// Example usage:
//
//	cfg := config.Default()
//	engine, err := boundary.NewEngine(cfg)
//	if err != nil {
//	    return err
//	}
//
//	chi, err := engine.Calculator.Chi(0.3, 0.2)
//	if err != nil {
//	    return err
//	}
//
//	cond, err := engine.Evaluator.Evaluate(chi)
//	if err != nil {
//	    return err
//	}
//
//	log.Info("point classified",
//	    "chi", cond.Chi,
//	    "valid", cond.Valid,
//	    "distance", cond.DistanceFromBoundary)
//
// Error Handling:
//
// Contract violations fail fast before any computation:
//   - ErrNonFiniteInput: NaN or ±Inf passed for any coordinate or chi
//   - ErrNegativeRatio: negative chi passed directly to Evaluate
//
// Both are sentinel errors usable with errors.Is. NaN must never reach the
// comparison in Evaluate: a silent NaN would corrupt validity counts
// downstream.
//
// The boundary package is designed to be:
//   - Deterministic: same inputs produce same outputs
//   - Immutable: value-type results with structural equality
//   - Independent of any I/O or presentation surface (pure domain logic)
package boundary
