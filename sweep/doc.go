// Package sweep drives the two experiment pipelines over the core model:
// rendering one routing SVG per builder for a single deployment, and the
// Monte-Carlo range sweep that averages every metric over repeated random
// deployments per communication range.
//
// What
//
//   - BuildRoutings: one random connected deployment, one routing per
//     parent-selection policy, one SVG file per routing.
//   - Run: for each range in [Lower, Upper] stepped by Step, draw Times
//     random deployments, build all routings, evaluate all calculators,
//     and write one table file per calculator with a
//     "range builder_0 … builder_k" row per range.
//
// Sentinel handling
//
//	A calculator returning 0.0 signals "no sample" (no sensor was
//	triggered for that trial); such values are excluded from the means,
//	matching the error model of the core.
//
// Determinism
//
//	All randomness (placement and the randomized policies) flows from a
//	single stream seeded by Config.Seed, so a sweep is reproducible end
//	to end.
package sweep
