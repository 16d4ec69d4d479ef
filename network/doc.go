// Package network models a deployed wireless sensor network: the sensors,
// the channel graph induced by a communication range, and the routing
// state (level and parent) a routing builder writes on top of it.
//
// What
//
//   - Sensor: dense-indexed record holding a position, an ascending set of
//     neighbor indices, a BFS level, and a parent index. Sensor 0 is the
//     base station (the sink) by convention.
//   - Network: owns the sensors, two axis-ordered coordinate indexes for
//     sub-linear range queries, the symmetric pairwise distance matrix,
//     and the configured communication range.
//   - Deploy replaces all state from a position list and links every pair
//     of sensors within range as neighbors; it reports whether the
//     resulting channel graph is connected.
//   - ConnectedWithChannels / ConnectedWithRoutings check connectivity of
//     the undirected channel graph and of the parent forest respectively.
//
// Why
//
//   - Routing builders need deterministic neighbor enumeration: neighbor
//     sets are ascending index slices, so every traversal over them is
//     reproducible run to run.
//   - Metric calculators need O(1) pairwise distances; the matrix is
//     populated once per deployment.
//
// Determinism
//
//	For fixed positions and range, Deploy produces an identical channel
//	graph on every run: range-query candidates are filtered and sorted,
//	and all cross-references are integer indices, never pointers.
//
// Complexity (n = number of sensors)
//
//   - Deploy: O(n²) for the distance matrix, plus the per-sensor range
//     queries used for channel linking.
//   - Range query: O(log n + b) where b is the axis-band candidate count.
//   - Connectivity checks: O(n + channels) and O(n · depth).
package network
