// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Option customizes Patrol by mutating a config before generation.
// Option constructors panic on meaningless inputs; Patrol itself never panics.
type Option func(*config)

const (
	defaultDensity = 0.1
	defaultSeed    = int64(1)
)

// config aggregates all knobs used by Patrol. It is passed by value.
type config struct {
	rng     *rand.Rand
	density float64
}

// newConfig applies opts in order on top of deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{density: defaultDensity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG (reproducible output).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the probability of a cell holding an obstacle.
// Range validation happens in Patrol so callers get ErrBadDensity.
func WithDensity(d float64) Option {
	return func(c *config) {
		c.density = d
	}
}
