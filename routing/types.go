// Package routing defines the Policy enumeration, functional options,
// and sentinel errors for routing-tree construction.
package routing

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for routing-tree construction.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("routing: network is nil")

	// ErrNotConnected is returned when BFS from the sink fails to reach
	// every sensor: the channel graph is not connected, so no spanning
	// routing tree exists.
	ErrNotConnected = errors.New("routing: channel graph not connected")

	// ErrNoCandidates is returned when a non-sink sensor ends up with an
	// empty candidate list. This cannot happen on a connected network
	// and indicates a programmer error upstream.
	ErrNoCandidates = errors.New("routing: sensor has no parent candidates")

	// ErrLevelInvariant is returned when BFS encounters a neighbor whose
	// already-assigned level differs from the discovering level by more
	// than one. The BFS invariant makes this impossible on a consistent
	// network; it indicates routing state mutated mid-build.
	ErrLevelInvariant = errors.New("routing: BFS level invariant violated")

	// ErrUnknownPolicy is returned for a Policy outside the enumeration.
	ErrUnknownPolicy = errors.New("routing: unknown parent-selection policy")

	// ErrRoutingsNotConnected is returned when the parent forest fails
	// the post-build connectivity check. Unreachable when BFS covered
	// every sensor and the policy returned a valid candidate.
	ErrRoutingsNotConnected = errors.New("routing: built routing is not connected")
)

// Policy identifies one of the eight closed parent-selection policies.
//
// A policy observes (child, ordered candidates, network) and returns
// exactly one candidate. Candidates are ordered as documented on
// ParentCandidates.
type Policy int

const (
	// EarliestFirst picks the first-discovered candidate c[0].
	EarliestFirst Policy = iota

	// SecondEarliestFirst picks c[1], falling back to c[0] on singletons.
	SecondEarliestFirst

	// LatestFirst picks the last-discovered candidate c[k-1].
	LatestFirst

	// NearestFirst picks the candidate closest to the child;
	// the earliest wins ties.
	NearestFirst

	// SecondNearestFirst picks the candidate with the second-smallest
	// distance to the child, falling back to c[0] on singletons.
	SecondNearestFirst

	// FarthestFirst picks the candidate farthest from the child;
	// the earliest wins ties.
	FarthestFirst

	// Randomized picks a uniformly random candidate.
	Randomized

	// WeightedRandomized picks a random candidate weighted inversely to
	// its neighbor count, preferring peripheral sensors.
	WeightedRandomized
)

// numPolicies bounds the enumeration for validation.
const numPolicies = 8

// policyNames maps each Policy to its file-safe slug and display title.
var policyNames = [numPolicies]struct{ slug, title string }{
	{"earliest_first", "Earliest First"},
	{"second_earliest_first", "Second Earliest First"},
	{"latest_first", "Latest First"},
	{"nearest_first", "Nearest First"},
	{"second_nearest_first", "Second Nearest First"},
	{"farthest_first", "Farthest First"},
	{"randomized", "Randomized"},
	{"weighted_randomized", "Weighted Randomized"},
}

// Valid reports whether p is one of the eight enumerated policies.
func (p Policy) Valid() bool { return p >= 0 && p < numPolicies }

// Slug returns the file-safe name of the policy, e.g. "earliest_first".
// Collaborators embed it in SVG filenames and table headers.
func (p Policy) Slug() string {
	if !p.Valid() {
		return fmt.Sprintf("policy_%d", int(p))
	}

	return policyNames[p].slug
}

// Title returns the human-readable display string, e.g. "Earliest First".
func (p Policy) Title() string {
	if !p.Valid() {
		return fmt.Sprintf("Policy %d", int(p))
	}

	return policyNames[p].title
}

// String implements fmt.Stringer via the slug.
func (p Policy) String() string { return p.Slug() }

// AllPolicies returns the eight policies in their canonical order.
// Complexity: O(1) per call (fresh slice each time).
func AllPolicies() []Policy {
	return []Policy{
		EarliestFirst,
		SecondEarliestFirst,
		LatestFirst,
		NearestFirst,
		SecondNearestFirst,
		FarthestFirst,
		Randomized,
		WeightedRandomized,
	}
}

// sharedRand is the process-wide stream the randomized policies draw from
// when no explicit RNG is injected. Reseed it once from the driver via
// Seed; there is no per-component stream.
var sharedRand = rand.New(rand.NewSource(1))

// Seed replaces the process-wide random stream with one seeded by seed.
// Call it once before building; builds are then reproducible per seed.
func Seed(seed int64) { sharedRand = rand.New(rand.NewSource(seed)) }

// Option configures a Builder via functional arguments.
type Option func(*builderConfig)

// builderConfig holds the resolved Builder configuration.
//   - rng: source of randomness; nil means the shared process stream.
type builderConfig struct {
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand sets an explicit *rand.Rand for the randomized policies.
// A nil rng is a no-op and leaves the shared stream in place.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed installs a fresh *rand.Rand seeded with seed, private to this
// Builder. Use it to decouple one builder's draws from the shared stream.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
