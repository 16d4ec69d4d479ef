package routing

import (
	"math/rand"

	"github.com/katalvlaran/sensornet/network"
)

// selectParent dispatches to the policy's selection rule. candidates must
// be non-empty and ordered as produced by ParentCandidates; the returned
// value is always one of its elements.
//
// Every policy degenerates to the sole candidate on a singleton list.
func selectParent(p Policy, child int, candidates []int, net *network.Network, rng *rand.Rand) (int, error) {
	if len(candidates) == 0 {
		return network.NoParent, ErrNoCandidates
	}

	switch p {
	case EarliestFirst:
		return candidates[0], nil

	case SecondEarliestFirst:
		if len(candidates) >= 2 {
			return candidates[1], nil
		}

		return candidates[0], nil

	case LatestFirst:
		return candidates[len(candidates)-1], nil

	case NearestFirst:
		return nearest(child, candidates, net), nil

	case SecondNearestFirst:
		return secondNearest(child, candidates, net), nil

	case FarthestFirst:
		return farthest(child, candidates, net), nil

	case Randomized:
		return candidates[rng.Intn(len(candidates))], nil

	case WeightedRandomized:
		return weightedRandom(candidates, net, rng), nil

	default:
		return network.NoParent, ErrUnknownPolicy
	}
}

// nearest returns the candidate minimizing the channel distance to child;
// the earliest candidate wins ties.
// Complexity: O(k).
func nearest(child int, candidates []int, net *network.Network) int {
	best := candidates[0]
	bestDist := net.Distance(child, best)
	for _, c := range candidates[1:] {
		if d := net.Distance(child, c); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}

// farthest returns the candidate maximizing the channel distance to child;
// the earliest candidate wins ties.
// Complexity: O(k).
func farthest(child int, candidates []int, net *network.Network) int {
	best := candidates[0]
	bestDist := net.Distance(child, best)
	for _, c := range candidates[1:] {
		if d := net.Distance(child, c); d > bestDist {
			best, bestDist = c, d
		}
	}

	return best
}

// secondNearest returns the candidate with the second-smallest distance to
// child, or the sole candidate on a singleton list. Distances compare as
// distances; candidate order breaks ties (the earlier of two equal
// distances ranks first, so the later one is "second").
// Complexity: O(k).
func secondNearest(child int, candidates []int, net *network.Network) int {
	if len(candidates) == 1 {
		return candidates[0]
	}

	// Two-minimum scan over (distance, position) ranks.
	first, second := candidates[0], candidates[1]
	firstDist, secondDist := net.Distance(child, first), net.Distance(child, second)
	if secondDist < firstDist {
		first, second = second, first
		firstDist, secondDist = secondDist, firstDist
	}
	for _, c := range candidates[2:] {
		d := net.Distance(child, c)
		switch {
		case d < firstDist:
			second, secondDist = first, firstDist
			first, firstDist = c, d
		case d < secondDist:
			second, secondDist = c, d
		}
	}

	return second
}

// weightedRandom draws one candidate with probability proportional to
// 1/|neighbors(candidate)|, preferring peripheral sensors. A candidate's
// neighbor set is never empty: it contains at least the child.
// Complexity: O(k).
func weightedRandom(candidates []int, net *network.Network, rng *rand.Rand) int {
	weights := make([]float64, len(candidates))
	var total float64
	for i, c := range candidates {
		weights[i] = 1.0 / float64(len(net.Neighbors(c)))
		total += weights[i]
	}

	// Inverse-CDF draw over the cumulative weights.
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return candidates[i]
		}
	}

	// Floating-point slack: the draw landed past the last boundary.
	return candidates[len(candidates)-1]
}
