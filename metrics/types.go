// Package metrics defines the Kind enumeration, calculator options, and
// sentinel errors.
package metrics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sensornet/geometry"
)

// Default propagation-model configuration. Present-day constants of the
// reference deployment; override them per call with the options below.
const (
	// DefaultSensingRange is the radius within which a sensor detects
	// the modeled event.
	DefaultSensingRange = 15.0

	// DefaultNoise is the channel noise floor, chosen so the bit error
	// rate equals 1e-3 exactly at the communication range.
	DefaultNoise = 0.209434
)

// DefaultEvent is the modeled event position.
var DefaultEvent = geometry.Position{X: 50.0, Y: 50.0}

// Sentinel errors for metric calculation.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("metrics: network is nil")

	// ErrEmptyNetwork is returned when no sensors are deployed.
	ErrEmptyNetwork = errors.New("metrics: empty network")

	// ErrNotRouted is returned when the parent forest does not reach the
	// sink from every sensor; calculators require a completed routing.
	ErrNotRouted = errors.New("metrics: network has no complete routing")

	// ErrUnknownKind is returned for a Kind outside the enumeration.
	ErrUnknownKind = errors.New("metrics: unknown calculator kind")

	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("metrics: invalid option supplied")
)

// Kind identifies one of the five closed metric calculators.
type Kind int

const (
	// DegreeVariance measures how unevenly routing load (child count)
	// spreads across sensors. Lower is better.
	DegreeVariance Kind = iota

	// Robustness measures the fraction of sensors still connected after
	// the most-used non-sink sensor fails. Higher is better.
	Robustness

	// ChannelQuality measures the mean link error rate of triggered
	// sensors' paths under the bit-accuracy propagation model.
	ChannelQuality

	// DataAggregation counts transmissions needed to deliver all
	// triggered reports with in-network aggregation. Lower is better.
	DataAggregation

	// Latency measures the parallel broadcast time from triggered
	// sensors to the sink.
	Latency
)

// numKinds bounds the enumeration for validation.
const numKinds = 5

// kindNames maps each Kind to its file-safe slug and display title.
var kindNames = [numKinds]struct{ slug, title string }{
	{"node_degree_variance", "Node Degree Variance"},
	{"robustness", "Robustness"},
	{"channel_quality", "Channel Quality"},
	{"data_aggregation", "Data Aggregation"},
	{"latency", "Latency"},
}

// Valid reports whether k is one of the five enumerated calculators.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// Slug returns the file-safe name, e.g. "node_degree_variance".
// The metric-table collaborator uses it for output filenames.
func (k Kind) Slug() string {
	if !k.Valid() {
		return fmt.Sprintf("metric_%d", int(k))
	}

	return kindNames[k].slug
}

// Title returns the display string, e.g. "Node Degree Variance".
func (k Kind) Title() string {
	if !k.Valid() {
		return fmt.Sprintf("Metric %d", int(k))
	}

	return kindNames[k].title
}

// String implements fmt.Stringer via the slug.
func (k Kind) String() string { return k.Slug() }

// AllKinds returns the five calculators in their canonical order.
func AllKinds() []Kind {
	return []Kind{DegreeVariance, Robustness, ChannelQuality, DataAggregation, Latency}
}

// Option configures a calculation via functional arguments. An invalid
// option is recorded and surfaced as ErrOptionViolation by Calculate.
type Option func(*calcConfig)

// calcConfig holds the resolved propagation-model configuration.
type calcConfig struct {
	sensingRange float64
	event        geometry.Position
	noise        float64

	// internal error recorded during option parsing
	err error
}

// defaultConfig returns the reference configuration.
func defaultConfig() calcConfig {
	return calcConfig{
		sensingRange: DefaultSensingRange,
		event:        DefaultEvent,
		noise:        DefaultNoise,
	}
}

// newCalcConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newCalcConfig(opts ...Option) calcConfig {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSensingRange overrides the event-detection radius.
//
//	r ≥ 0: use r (0 means only sensors exactly at the event trigger)
//	r < 0: invalid option → ErrOptionViolation
func WithSensingRange(r float64) Option {
	return func(cfg *calcConfig) {
		if r < 0 {
			cfg.err = fmt.Errorf("%w: sensing range cannot be negative (%g)", ErrOptionViolation, r)
			return
		}
		cfg.sensingRange = r
	}
}

// WithEvent overrides the modeled event position.
func WithEvent(p geometry.Position) Option {
	return func(cfg *calcConfig) { cfg.event = p }
}

// WithNoise overrides the channel noise floor.
//
//	noise > 0: use noise
//	noise ≤ 0: invalid option → ErrOptionViolation
func WithNoise(noise float64) Option {
	return func(cfg *calcConfig) {
		if noise <= 0 {
			cfg.err = fmt.Errorf("%w: noise floor must be positive (%g)", ErrOptionViolation, noise)
			return
		}
		cfg.noise = noise
	}
}
