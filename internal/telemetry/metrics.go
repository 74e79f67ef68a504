// SPDX-License-Identifier: MIT

// Package telemetry records search metrics through OpenTelemetry.
package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	MetricEvaluated = "gridpatrol.candidates.evaluated"
	MetricLooped    = "gridpatrol.candidates.looped"
	MetricStates    = "gridpatrol.traversal.states"
	MetricDuration  = "gridpatrol.search.duration"
	MetricWorkers   = "gridpatrol.workers.active"
	MetricSearches  = "gridpatrol.searches"
)

// Config configures Metrics.
type Config struct {
	// MeterName is the instrumentation scope name.
	MeterName string
	// MeterVersion is the instrumentation scope version.
	MeterVersion string
	// Provider overrides the global meter provider when set.
	Provider metric.MeterProvider
}

// DefaultConfig returns a config bound to the global meter provider.
func DefaultConfig() Config {
	return Config{
		MeterName:    "github.com/katalvlaran/gridpatrol",
		MeterVersion: "1.0.0",
	}
}

// Metrics holds the search instruments.
type Metrics struct {
	evaluated metric.Int64Counter
	looped    metric.Int64Counter
	searches  metric.Int64Counter
	states    metric.Int64Histogram
	duration  metric.Float64Histogram
	workers   metric.Int64UpDownCounter
}

// New creates the instruments. Instrument creation errors are joined.
func New(cfg Config) (*Metrics, error) {
	if cfg.MeterName == "" {
		cfg.MeterName = DefaultConfig().MeterName
	}
	provider := cfg.Provider
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(cfg.MeterName, metric.WithInstrumentationVersion(cfg.MeterVersion))

	m := &Metrics{}
	var err, e error

	m.evaluated, e = meter.Int64Counter(MetricEvaluated,
		metric.WithDescription("Candidate obstacle placements simulated"),
		metric.WithUnit("{candidate}"))
	err = errors.Join(err, e)

	m.looped, e = meter.Int64Counter(MetricLooped,
		metric.WithDescription("Candidate placements that trapped the agent in a loop"),
		metric.WithUnit("{candidate}"))
	err = errors.Join(err, e)

	m.searches, e = meter.Int64Counter(MetricSearches,
		metric.WithDescription("Completed searches by outcome"),
		metric.WithUnit("{search}"))
	err = errors.Join(err, e)

	m.states, e = meter.Int64Histogram(MetricStates,
		metric.WithDescription("States recorded per traversal"),
		metric.WithUnit("{state}"))
	err = errors.Join(err, e)

	m.duration, e = meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Wall time of a full search"),
		metric.WithUnit("ms"))
	err = errors.Join(err, e)

	m.workers, e = meter.Int64UpDownCounter(MetricWorkers,
		metric.WithDescription("Workers currently evaluating candidates"),
		metric.WithUnit("{worker}"))
	err = errors.Join(err, e)

	if err != nil {
		return nil, err
	}
	return m, nil
}

// CandidateEvaluated records one simulated placement and its state count.
func (m *Metrics) CandidateEvaluated(ctx context.Context, looped bool, states int) {
	m.evaluated.Add(ctx, 1)
	if looped {
		m.looped.Add(ctx, 1)
	}
	m.states.Record(ctx, int64(states), metric.WithAttributes(attribute.Bool("looped", looped)))
}

// WorkerStarted increments the active worker gauge.
func (m *Metrics) WorkerStarted(ctx context.Context) {
	m.workers.Add(ctx, 1)
}

// WorkerStopped decrements the active worker gauge.
func (m *Metrics) WorkerStopped(ctx context.Context) {
	m.workers.Add(ctx, -1)
}

// SearchFinished records the duration and outcome of a search.
func (m *Metrics) SearchFinished(ctx context.Context, workers int, d time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.Int("workers", workers),
		attribute.Bool("success", err == nil),
	)
	m.searches.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(d.Microseconds())/1000, attrs)
}
