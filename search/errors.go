// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search.
var (
	// ErrBaselineLoops is returned when the unmodified grid already traps
	// the agent, which leaves the candidate set undefined.
	ErrBaselineLoops = errors.New("search: baseline traversal loops")
	// ErrWorkerFailure is returned when a worker panics.
	ErrWorkerFailure = errors.New("search: worker failure")
	// ErrInvariantViolation is returned when a candidate cannot be evaluated,
	// e.g. placing its obstacle fails.
	ErrInvariantViolation = errors.New("search: invariant violation")
)

// WorkerError carries a recovered worker panic. It unwraps to ErrWorkerFailure.
type WorkerError struct {
	// Worker is the zero-based index of the failing worker.
	Worker int
	// Panic is the recovered value.
	Panic any
	// Stack is the goroutine stack at the point of recovery.
	Stack []byte
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("search: worker %d panicked: %v", e.Worker, e.Panic)
}

// Unwrap returns ErrWorkerFailure.
func (e *WorkerError) Unwrap() error {
	return ErrWorkerFailure
}
