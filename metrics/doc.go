// Package metrics scores a routed sensor network under five
// routing-quality analyses: node-degree variance, single-failure
// robustness, channel bit-accuracy, in-network aggregation cost, and
// parallel broadcast latency.
//
// What
//
//   - Kind enumerates the five closed calculators; Calculate dispatches
//     on it and returns one non-negative real per (network, kind).
//   - The propagation calculators (channel quality, aggregation, latency)
//     model an event at a fixed position: sensors within the sensing
//     range are triggered and report along their routing paths.
//   - Functional options override the event position, sensing range, and
//     noise floor; the defaults reproduce the reference configuration
//     (sensing range 15, event at (50, 50), noise 0.209434, chosen so
//     the per-hop bit error rate is 1e-3 exactly at the communication
//     range).
//
// Degenerate inputs
//
//	A propagation metric with zero triggered sensors returns the sentinel
//	0.0, as does robustness on networks of fewer than three sensors.
//	Aggregating callers must treat 0.0 as "no sample" and exclude it
//	from means.
//
// Complexity (n sensors)
//
//	Every calculator is O(n · depth) or better; none allocates more than
//	O(n) scratch.
package metrics
