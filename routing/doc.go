// Package routing constructs a spanning routing tree over a deployed
// network: a breadth-first level assignment from the sink, an ordered
// parent-candidate list per sensor, and a pluggable parent-selection
// policy that picks exactly one candidate per sensor.
//
// What
//
//   - ParentCandidates assigns BFS levels and returns, for every sensor,
//     the ordered list of neighbors sitting exactly one level closer to
//     the sink.
//   - Policy enumerates the eight closed selection policies (earliest,
//     second-earliest, latest, nearest, second-nearest, farthest,
//     randomized, weighted-randomized).
//   - Builder composes the two: Build wipes routing state, runs BFS, and
//     asks the policy for each sensor's parent, producing a spanning
//     arborescence rooted at the sink.
//
// Ordering discipline
//
//	candidates[v] is ordered by the dequeue order of v's shallower
//	neighbors, and neighbor sets iterate in ascending index order, so the
//	candidate order — and with it the earliest/latest policies — is fully
//	deterministic. Each parent appears at most once per child (a sensor
//	is dequeued exactly once).
//
// Randomness
//
//	The randomized policies draw from a single process-wide stream seeded
//	via Seed, or from an explicit *rand.Rand injected with WithRand. With
//	a fixed seed, a full build is reproducible.
//
// Complexity (n sensors, m channels)
//
//   - ParentCandidates: O(n + m) time, O(n + m) space.
//   - Build: O(n + m) plus the per-sensor selection cost (O(k) for a
//     k-candidate list under every policy).
package routing
