// SPDX-License-Identifier: MIT

package cycle

import (
	"errors"
	"sort"

	"github.com/katalvlaran/gridpatrol/grid"
)

// Sentinel errors for traversal.
var (
	// ErrNilGrid is returned when Traverse receives a nil grid.
	ErrNilGrid = errors.New("cycle: grid is nil")
	// ErrBadStart is returned when a custom start lies outside the grid or
	// carries an unknown facing.
	ErrBadStart = errors.New("cycle: invalid start state")
	// ErrStateBound is returned if the visited set would exceed W×H×4 states.
	ErrStateBound = errors.New("cycle: visited states exceed grid state space")
)

// Outcome is the terminal classification of a traversal.
type Outcome int

const (
	// Exited means the agent walked off the grid.
	Exited Outcome = iota
	// Looped means the agent revisited an exact state and will never exit.
	Looped
)

func (o Outcome) String() string {
	switch o {
	case Exited:
		return "exited"
	case Looped:
		return "looped"
	default:
		return "unknown"
	}
}

// Result describes a finished traversal.
type Result struct {
	// Outcome is Exited or Looped.
	Outcome Outcome
	// Trace holds the ordered positions of an Exited walk, one per recorded
	// state, so in-place turns repeat a position. It is nil for Looped walks
	// and when WithoutTrace is set.
	Trace []grid.Position
	// States is the size of the visited-state set at termination.
	States int

	size grid.Size
}

// Distinct returns the distinct positions of the trace in row-major order.
// Complexity: O(len(Trace) + W×H).
func (r Result) Distinct() []grid.Position {
	if len(r.Trace) == 0 {
		return nil
	}
	seen := make([]bool, r.size.Cells())
	out := make([]grid.Position, 0, len(r.Trace))
	for _, p := range r.Trace {
		i := r.size.Index(p)
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Visited returns the number of distinct cells in the trace.
func (r Result) Visited() int {
	return len(r.Distinct())
}

// Option configures Traverse.
type Option func(*Options)

// Options holds traversal parameters and hooks.
type Options struct {
	// Start overrides the grid's start state when HasStart is set.
	Start    grid.Agent
	HasStart bool
	// KeepTrace controls whether Exited results carry the trace.
	KeepTrace bool
	// OnState is called for every recorded state, in order.
	OnState func(grid.Agent)
}

// DefaultOptions returns Options that start from the grid's own agent,
// keep the trace and install a no-op hook.
func DefaultOptions() Options {
	return Options{
		KeepTrace: true,
		OnState:   func(grid.Agent) {},
	}
}

// WithStart traverses from a custom agent state instead of g.Start().
func WithStart(a grid.Agent) Option {
	return func(o *Options) {
		o.Start = a
		o.HasStart = true
	}
}

// WithoutTrace drops trace accumulation; only Outcome and States are filled.
func WithoutTrace() Option {
	return func(o *Options) {
		o.KeepTrace = false
	}
}

// WithOnState installs a hook called for every recorded state.
// Panics if fn is nil.
func WithOnState(fn func(grid.Agent)) Option {
	if fn == nil {
		panic("cycle: WithOnState(nil)")
	}
	return func(o *Options) {
		o.OnState = fn
	}
}
