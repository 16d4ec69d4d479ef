// Package placement generates sensor deployments: random positions over
// a region with the sink pinned at the region origin, a retrying
// deploy loop, and the minimum-communication-range helper used to reject
// configurations that cannot be made channel-connected.
//
// What
//
//   - RandomPlacer draws n−1 uniform positions from a Region; position 0
//     (the sink) sits at the region origin.
//   - MinimumCommunicationRange returns the bottleneck edge weight of the
//     minimum spanning tree over the complete pairwise-distance graph:
//     the smallest range at which the positions can be channel-connected.
//   - DeployConnected retries placement up to MaxAttempts times until a
//     deployment is channel-connected at the requested range.
//
// Determinism
//
//	Placement draws from an injected *rand.Rand (WithRand / WithSeed);
//	a fixed seed reproduces the deployment sequence exactly.
package placement
