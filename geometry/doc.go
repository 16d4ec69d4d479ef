// Package geometry provides the planar primitives the sensor-network model
// is built on: Position (a point in the plane) and Region (a closed
// axis-aligned rectangle).
//
// What
//
//   - Position carries real-valued (X, Y) coordinates.
//   - Positions are totally ordered lexicographically by (Y, X); Less
//     implements that order so positions can be sorted and used as keys
//     in ordered containers.
//   - Distance computes the Euclidean distance between two positions.
//   - Region bounds a deployment area and answers containment queries.
//
// Why
//
//   - The (Y, X) order gives positions a single canonical sort order. The
//     network layer's per-axis indexes do not use it: they order entries
//     by one coordinate, ties broken by sensor index.
//   - Channel construction and every propagation metric reduce to
//     Euclidean distances between positions.
//
// Complexity
//
//	All operations are O(1).
package geometry
