package metrics

import "github.com/katalvlaran/sensornet/network"

// degreeVariance returns the population variance of routing in-degrees:
// with d[p] the number of sensors whose parent is p,
//
//	mean = (n−1) / n        (the n−1 parent edges spread over n sensors)
//	value = (1/n) · Σ (d[i] − mean)²
//
// The mean divides in floating point. Lower is better: a small variance
// means no sensor concentrates routing load.
//
// Complexity: O(n) time, O(n) space.
func degreeVariance(net *network.Network) float64 {
	count := net.NumSensors()

	// In-degree of every sensor under the parent relation.
	degree := make([]int, count)
	for i := 1; i < count; i++ {
		degree[net.Parent(i)]++
	}

	mean := float64(count-1) / float64(count)
	var sum float64
	for _, d := range degree {
		diff := float64(d) - mean
		sum += diff * diff
	}

	return sum / float64(count)
}
