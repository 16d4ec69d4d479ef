package routing

import (
	"fmt"

	"github.com/katalvlaran/sensornet/network"
)

// Builder realizes a spanning routing tree on a deployed network using
// one parent-selection policy.
//
// A Builder carries the policy's file-safe slug and display title for
// collaborators (SVG filenames, metric table headers). It holds no
// per-network state and may be reused across deployments.
type Builder struct {
	policy Policy
	cfg    builderConfig
}

// NewBuilder returns a Builder for the given policy. Options inject an
// explicit RNG for the randomized policies; without one, the shared
// process-wide stream is used.
// Complexity: O(len(opts)).
func NewBuilder(policy Policy, opts ...Option) *Builder {
	return &Builder{policy: policy, cfg: newBuilderConfig(opts...)}
}

// Policy returns the builder's selection policy.
func (b *Builder) Policy() Policy { return b.policy }

// Name returns the policy's file-safe slug, e.g. "nearest_first".
func (b *Builder) Name() string { return b.policy.Slug() }

// Title returns the policy's display string, e.g. "Nearest First".
func (b *Builder) Title() string { return b.policy.Title() }

// Build constructs the routing tree:
//  1. Clear all routing state (parents and levels).
//  2. Assign BFS levels and ordered parent candidates; fail with
//     ErrNotConnected if the walk does not cover every sensor.
//  3. For each non-sink sensor, ask the policy for one candidate and
//     record it as the parent. The sink keeps NoParent.
//  4. Verify the parent forest reaches the sink from everywhere.
//
// After a nil error the routing invariants hold: every non-sink sensor's
// parent is a neighbor exactly one level shallower, and following parents
// from any sensor reaches the sink.
//
// Complexity: O(n + m) plus selection cost.
func (b *Builder) Build(net *network.Network) error {
	if net == nil {
		return ErrNetworkNil
	}
	if !b.policy.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, int(b.policy))
	}

	// 1. Fresh routing state.
	net.RemoveParents()

	// 2. Levels and ordered candidates.
	candidates, err := ParentCandidates(net)
	if err != nil {
		return fmt.Errorf("routing: build %s: %w", b.Name(), err)
	}

	// 3. One parent per non-sink sensor.
	rng := b.cfg.rng
	if rng == nil {
		rng = sharedRand
	}
	for i := 1; i < net.NumSensors(); i++ {
		parent, err := selectParent(b.policy, i, candidates[i], net, rng)
		if err != nil {
			return fmt.Errorf("routing: build %s: sensor %d: %w", b.Name(), i, err)
		}
		net.SetParent(i, parent)
	}

	// 4. Post-build connectivity check. Always true when BFS covered
	//    every sensor and every selection returned a valid candidate.
	if !net.ConnectedWithRoutings() {
		return fmt.Errorf("routing: build %s: %w", b.Name(), ErrRoutingsNotConnected)
	}

	return nil
}

// AllBuilders returns one Builder per policy, in canonical order, all
// sharing the supplied options.
// Complexity: O(1).
func AllBuilders(opts ...Option) []*Builder {
	policies := AllPolicies()
	builders := make([]*Builder, len(policies))
	for i, p := range policies {
		builders[i] = NewBuilder(p, opts...)
	}

	return builders
}
