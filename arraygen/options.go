// SPDX-License-Identifier: MIT
// Package: sortlab/arraygen
//
// options.go: functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors panic on meaningless inputs (nil RNG).
//   • Later options override earlier ones.

package arraygen

import "math/rand"

// Option customizes Generate.
type Option func(*genConfig)

// genConfig aggregates all generator knobs.
type genConfig struct {
	// rng drives every random draw; nil resolves to the default seed.
	rng *rand.Rand
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("arraygen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed (0 means the default seed).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// newGenConfig applies opts in order over the deterministic defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}
