// Package metrics defines the Prometheus instruments emitted by the
// scan engine. Consumers register the emitter against their own registry;
// the engine itself never exposes an endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Scan outcome label values.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)

// Emitter owns the engine's Prometheus instruments.
type Emitter struct {
	scansTotal    *prometheus.CounterVec
	pointsScanned prometheus.Counter
	scanDuration  prometheus.Histogram
	validFraction prometheus.Gauge
}

// NewEmitter creates an Emitter and registers its instruments with reg.
// Passing nil registers against the default registry.
func NewEmitter(reg prometheus.Registerer) *Emitter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	e := &Emitter{
		scansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chi_scans_total",
			Help: "Number of parameter space scans, by outcome.",
		}, []string{"outcome"}),
		pointsScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chi_scan_points_total",
			Help: "Total number of grid points evaluated across all scans.",
		}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chi_scan_duration_seconds",
			Help:    "Wall-clock duration of parameter space scans.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		validFraction: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chi_scan_valid_fraction",
			Help: "Valid fraction reported by the most recent completed scan.",
		}),
	}

	reg.MustRegister(e.scansTotal, e.pointsScanned, e.scanDuration, e.validFraction)
	return e
}

// ObserveScan records a completed scan.
func (e *Emitter) ObserveScan(totalPoints int, validFraction, seconds float64) {
	e.scansTotal.WithLabelValues(OutcomeCompleted).Inc()
	e.pointsScanned.Add(float64(totalPoints))
	e.scanDuration.Observe(seconds)
	e.validFraction.Set(validFraction)
}

// ObserveFailure records a scan that ended in an error or cancellation.
func (e *Emitter) ObserveFailure() {
	e.scansTotal.WithLabelValues(OutcomeFailed).Inc()
}
