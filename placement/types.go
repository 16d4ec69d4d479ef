// Package placement defines options and sentinel errors for deployment
// generation.
package placement

import (
	"errors"
	"math/rand"
)

// MaxAttempts bounds the placement retry loop: after this many
// non-connectable draws DeployConnected gives up with ErrRangeTooSmall.
const MaxAttempts = 10

// Sentinel errors for placement operations.
var (
	// ErrTooFewSensors is returned when fewer than two sensors are
	// requested; a network needs the sink plus at least one sensor.
	ErrTooFewSensors = errors.New("placement: need at least two sensors")

	// ErrRangeTooSmall is returned when MaxAttempts placements in a row
	// could not be channel-connected at the requested range.
	ErrRangeTooSmall = errors.New("placement: communication range too small to connect placements")

	// ErrNoPositions names an empty position list. No function of this
	// package returns it: MinimumCommunicationRange yields 0 for an empty
	// list.
	ErrNoPositions = errors.New("placement: no positions given")
)

// Option configures a RandomPlacer via functional arguments.
type Option func(*placerConfig)

// placerConfig holds the resolved placer configuration.
type placerConfig struct {
	rng *rand.Rand
}

// newPlacerConfig applies opts in order over the defaults. Without an
// explicit RNG the placer falls back to a fixed-seed stream, so even an
// unconfigured placer is reproducible.
func newPlacerConfig(opts ...Option) placerConfig {
	cfg := placerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}

	return cfg
}

// WithRand sets an explicit *rand.Rand source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *placerConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed installs a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(cfg *placerConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
