// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooSmall indicates that width or height is smaller than 1.
// Usage: if errors.Is(err, ErrTooSmall) { /* report invalid size */ }.
var ErrTooSmall = errors.New("builder: grid dimension too small")

// ErrBadDensity indicates an obstacle density outside [0, 1). A density of 1
// would leave no room for the agent.
var ErrBadDensity = errors.New("builder: density out of range")
