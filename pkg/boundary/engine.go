package boundary

import (
	"fmt"

	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/pkg/config"
)

// Engine bundles the point-level components built over one shared engine
// configuration. Multiple engines with different configurations can coexist
// in a process without interfering.
type Engine struct {
	Calculator  *Calculator
	Evaluator   *Evaluator
	Transformer *Transformer
	Metric      *Metric
}

// NewEngine wires the point-level components around a single configuration
// instance so constant changes stay consistent across them.
func NewEngine(cfg *config.EngineConfig) (*Engine, error) {
	calc, err := NewCalculator(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating calculator: %w", err)
	}
	eval, err := NewEvaluator(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating evaluator: %w", err)
	}
	transformer, err := NewTransformer(calc)
	if err != nil {
		return nil, fmt.Errorf("creating transformer: %w", err)
	}
	metric, err := NewMetric(calc)
	if err != nil {
		return nil, fmt.Errorf("creating metric: %w", err)
	}

	return &Engine{
		Calculator:  calc,
		Evaluator:   eval,
		Transformer: transformer,
		Metric:      metric,
	}, nil
}
