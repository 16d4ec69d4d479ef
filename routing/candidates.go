package routing

import (
	"fmt"

	"github.com/katalvlaran/sensornet/network"
)

// ParentCandidates assigns BFS levels from the sink and returns, for each
// sensor, the ordered list of eligible parents: its neighbors sitting
// exactly one level closer to the sink.
//
// Steps:
//  1. Level the sink at 0 and enqueue it.
//  2. Dequeue u; for each neighbor v in ascending index order:
//     a. Unleveled v gets level(u)+1, u as its first candidate, and a
//     place in the queue.
//     b. A deeper v (level(v) == level(u)+1 by the BFS invariant) gains
//     u as a further candidate but is not re-enqueued.
//     c. A v at the same or a shallower level is ignored: a candidate
//     parent must be exactly one level shallower.
//  3. The walk must cover every sensor; otherwise the channel graph is
//     not connected and ErrNotConnected is returned.
//
// candidates[v] is ordered by the dequeue order of v's shallower
// neighbors, and each parent appears at most once per child (a sensor is
// dequeued exactly once). The sink's candidate list is empty.
//
// Levels are written into net via SetLevel as a side effect; callers
// normally reach this through Builder.Build, which clears routing state
// first.
//
// Complexity: O(n + m) time and space for n sensors and m channels.
func ParentCandidates(net *network.Network) ([][]int, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	count := net.NumSensors()
	if count == 0 {
		return nil, network.ErrNoSensors
	}

	candidates := make([][]int, count)
	queue := make([]int, 0, count)

	// 1. Seed at the sink.
	net.SetLevel(network.SinkIndex, 0)
	queue = append(queue, network.SinkIndex)
	numVisited := 1

	// 2. Main loop.
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		uLevel := net.Level(u)

		for _, v := range net.Neighbors(u) {
			switch vLevel := net.Level(v); {
			case vLevel == network.UnsetLevel:
				// 2a. First discovery: level, first candidate, enqueue.
				net.SetLevel(v, uLevel+1)
				candidates[v] = append(candidates[v], u)
				numVisited++
				queue = append(queue, v)

			case vLevel > uLevel:
				// 2b. Already leveled one deeper: u is a further candidate.
				if vLevel != uLevel+1 {
					return nil, fmt.Errorf("%w: sensor %d at level %d discovered from level %d",
						ErrLevelInvariant, v, vLevel, uLevel)
				}
				candidates[v] = append(candidates[v], u)

			default:
				// 2c. Same or shallower level: not a candidate.
			}
		}
	}

	// 3. Coverage check.
	if numVisited != count {
		return nil, fmt.Errorf("%w: BFS reached %d of %d sensors",
			ErrNotConnected, numVisited, count)
	}

	return candidates, nil
}
