package placement

import "github.com/katalvlaran/sensornet/geometry"

// MinimumCommunicationRange returns the smallest communication range at
// which the given positions can form a connected channel graph: the
// maximum edge weight of the minimum spanning tree over the complete
// pairwise-distance graph (the MST's bottleneck edge).
//
// Steps (Prim's algorithm from position 0):
//  1. Seed the tree with position 0; every other position's best known
//     attachment cost is its distance to position 0.
//  2. Repeatedly pull the cheapest unattached position into the tree,
//     recording the largest attachment cost seen.
//  3. Relax the remaining positions against the newly attached one.
//
// The graph is complete, so the dense O(n²) formulation beats a heap
// (which would push O(n²) edges). A single position needs no channels
// and yields 0; an empty list yields 0 as well.
//
// Complexity: O(n²) time, O(n) space.
func MinimumCommunicationRange(positions []geometry.Position) float64 {
	n := len(positions)
	if n < 2 {
		return 0
	}

	inTree := make([]bool, n)
	best := make([]float64, n)

	// 1. Seed at position 0.
	inTree[0] = true
	for i := 1; i < n; i++ {
		best[i] = geometry.Distance(positions[0], positions[i])
	}

	var bottleneck float64
	for added := 1; added < n; added++ {
		// 2. Cheapest unattached position.
		next := -1
		for i := 1; i < n; i++ {
			if !inTree[i] && (next == -1 || best[i] < best[next]) {
				next = i
			}
		}
		inTree[next] = true
		if best[next] > bottleneck {
			bottleneck = best[next]
		}

		// 3. Relax against the new tree member.
		for i := 1; i < n; i++ {
			if inTree[i] {
				continue
			}
			if d := geometry.Distance(positions[next], positions[i]); d < best[i] {
				best[i] = d
			}
		}
	}

	return bottleneck
}
