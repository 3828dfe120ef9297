package scanner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/internal/logging"
	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/internal/metrics"
	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/pkg/boundary"
)

var (
	// ErrInvalidRange reports a scan window whose bounds are non-finite or
	// not strictly increasing.
	ErrInvalidRange = errors.New("invalid scan range")

	// ErrInvalidResolution reports a grid resolution below 2. A single-point
	// axis cannot span a window inclusively.
	ErrInvalidResolution = errors.New("invalid resolution")
)

// Request describes a rectangular scan window.
type Request struct {
	XMin, XMax float64
	YMin, YMax float64

	// Resolution is the number of evenly spaced grid points per axis,
	// inclusive of both endpoints. Must be >= 2.
	Resolution int
}

// Result aggregates a completed scan. It is immutable once produced;
// equality is structural.
type Result struct {
	TotalPoints int
	ValidCount  int

	// ValidFraction is ValidCount / TotalPoints, real-valued division.
	ValidFraction float64

	// Echo of the scanned window.
	XMin, XMax float64
	YMin, YMax float64
	Resolution int
}

// Config holds optional Scanner settings.
type Config struct {
	// Workers bounds the number of row partitions evaluated concurrently.
	// Defaults to runtime.NumCPU().
	Workers int

	// Logger receives scan progress lines. Defaults to the package logger.
	Logger logr.Logger

	// Emitter, when set, receives scan observations.
	Emitter *metrics.Emitter
}

// Scanner evaluates grids of parameter points against the boundary.
type Scanner struct {
	calc    *boundary.Calculator
	eval    *boundary.Evaluator
	workers int
	log     logr.Logger
	emitter *metrics.Emitter
}

// New creates a Scanner over the given engine. A nil config uses defaults.
func New(engine *boundary.Engine, cfg *Config) (*Scanner, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := cfg.Logger
	if log.IsZero() {
		log = logging.Logger()
	}

	return &Scanner{
		calc:    engine.Calculator,
		eval:    engine.Evaluator,
		workers: workers,
		log:     log,
		emitter: cfg.Emitter,
	}, nil
}

// Validate checks the request against the scan preconditions. Validation
// precedes all computation; a failed request performs no partial work.
func (r Request) Validate() error {
	for name, v := range map[string]float64{
		"xMin": r.XMin, "xMax": r.XMax,
		"yMin": r.YMin, "yMax": r.YMax,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v is not finite", ErrInvalidRange, name, v)
		}
	}
	if r.XMin >= r.XMax {
		return fmt.Errorf("%w: xMin (%g) must be < xMax (%g)", ErrInvalidRange, r.XMin, r.XMax)
	}
	if r.YMin >= r.YMax {
		return fmt.Errorf("%w: yMin (%g) must be < yMax (%g)", ErrInvalidRange, r.YMin, r.YMax)
	}
	if r.Resolution < 2 {
		return fmt.Errorf("%w: resolution must be >= 2, got %d", ErrInvalidResolution, r.Resolution)
	}
	return nil
}

// axis returns n evenly spaced values spanning [min, max] inclusive.
func axis(min, max float64, n int) []float64 {
	return floats.Span(make([]float64, n), min, max)
}

// Scan evaluates the request's grid and aggregates validity counts.
//
// Rows are independent partitions: each worker classifies one row and writes
// its count into a dedicated slot, so the only synchronization is the final
// sum. The integer reduction makes the result independent of row completion
// order.
func (s *Scanner) Scan(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	xs := axis(req.XMin, req.XMax, req.Resolution)
	ys := axis(req.YMin, req.YMax, req.Resolution)

	rowCounts := make([]int, req.Resolution)
	if err := s.forEachRow(ctx, req.Resolution, func(j int) error {
		n := 0
		for i := 0; i < req.Resolution; i++ {
			cond, err := s.classify(xs[i], ys[j])
			if err != nil {
				return err
			}
			if cond.Valid {
				n++
			}
		}
		rowCounts[j] = n
		s.log.V(logging.TRACE).Info("Scan row classified",
			"row", j,
			"y", ys[j],
			"validCount", n)
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

	result := &Result{
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
		s.emitter.ObserveScan(totalPoints, result.ValidFraction, elapsed.Seconds())
	}
	s.log.V(logging.DEBUG).Info("Parameter space scan completed",
		"totalPoints", totalPoints,
		"validCount", validCount,
		"validFraction", result.ValidFraction,
		"elapsed", elapsed)

	return result, nil
}

// classify computes chi for a point and evaluates it against the boundary.
func (s *Scanner) classify(x, y float64) (boundary.Condition, error) {
	chi, err := s.calc.Chi(x, y)
	if err != nil {
		return boundary.Condition{}, err
	}
	return s.eval.Evaluate(chi)
}

// forEachRow runs fn for every row index, bounded by the worker limit.
// Cancellation is checked before each row starts; rows already running are
// allowed to finish.
func (s *Scanner) forEachRow(ctx context.Context, rows int, fn func(j int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
loop:
	for j := 0; j < rows; j++ {
		select {
		case <-gctx.Done():
			break loop
		default:
		}
		j := j
		g.Go(func() error {
			return fn(j)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
