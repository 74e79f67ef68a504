// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/internal/logging"
)

// Recorder receives search measurements. Implementations must be safe for
// concurrent use; every worker reports through the same Recorder.
type Recorder interface {
	// CandidateEvaluated is called once per simulated placement.
	CandidateEvaluated(ctx context.Context, looped bool, states int)
	// WorkerStarted and WorkerStopped bracket each worker's lifetime.
	WorkerStarted(ctx context.Context)
	WorkerStopped(ctx context.Context)
	// SearchFinished is called once per search, successful or not.
	SearchFinished(ctx context.Context, workers int, d time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) CandidateEvaluated(context.Context, bool, int) {}
func (nopRecorder) WorkerStarted(context.Context) {}
func (nopRecorder) WorkerStopped(context.Context) {}
func (nopRecorder) SearchFinished(context.Context, int, time.Duration, error) {}

// evaluator simulates the grid with an obstacle at p.
type evaluator func(g *grid.Grid, p grid.Position) (looped bool, states int, err error)

// Option configures a search.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Workers is the requested worker count; zero or less means GOMAXPROCS.
	Workers int
	// RunID tags log lines; Analyze fills it when empty.
	RunID string
	// Logger receives progress at debug level and failures at error level.
	Logger *bolt.Logger
	// Recorder receives metrics.
	Recorder Recorder

	evaluate evaluator
}

// DefaultOptions returns hardware-sized workers, a discarding logger and
// no metrics.
func DefaultOptions() Options {
	return Options{
		Logger:   logging.Nop(),
		Recorder: nopRecorder{},
		evaluate: evaluate,
	}
}

// WithWorkers sets the worker count. n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithRunID sets the identifier attached to log lines.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *bolt.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics sets the metrics recorder. Panics if r is nil.
func WithMetrics(r Recorder) Option {
	if r == nil {
		panic("search: WithMetrics(nil)")
	}
	return func(o *Options) {
		o.Recorder = r
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
