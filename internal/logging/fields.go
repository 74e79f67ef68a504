// SPDX-License-Identifier: MIT

package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// RunID adds a run ID field.
func RunID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("run_id", id)
	}
}

// Component adds a component field.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// GridSize adds width and height fields.
func GridSize(width, height int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("width", width).Int("height", height)
	}
}

// Workers adds the worker count.
func Workers(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("workers", n)
	}
}

// Worker adds a worker index.
func Worker(i int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("worker", i)
	}
}

// Candidates adds a candidate count.
func Candidates(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("candidates", n)
	}
}

// Loops adds the number of loop-inducing obstacles.
func Loops(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("loops", n)
	}
}

// Visited adds the number of distinct visited cells.
func Visited(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("visited", n)
	}
}

// Outcome adds a traversal outcome.
func Outcome(o string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("outcome", o)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field; nil errors are skipped.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}
