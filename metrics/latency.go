package metrics

import "github.com/katalvlaran/sensornet/network"

// latency returns the parallel broadcast time from the triggered sensors
// to the sink. Each sensor, once all of its active children have
// reported, takes one time unit to transmit to its parent.
//
// Steps:
//  1. Mark every sensor on any triggered→sink path as active.
//  2. Count, per active sensor, its active children.
//  3. Peel childless active sensors in FIFO order: a peeled sensor x
//     reports to its parent p, advancing t[p] = max(t[p], t[x]) + 1 and
//     releasing p once its last child has reported.
//  4. The answer is t[sink]; no triggered sensors yields the sentinel 0.
//
// The peel queue seeds in ascending index order and grows in release
// order, so the result is deterministic for a fixed routing.
//
// Complexity: O(n) time and space plus the triggered-set range query.
func latency(net *network.Network, cfg calcConfig) float64 {
	triggered := net.FindSensorsWithinRange(cfg.event, cfg.sensingRange)
	if len(triggered) == 0 {
		return 0
	}

	count := net.NumSensors()

	// 1. Activate all triggered→sink paths.
	active := make([]bool, count)
	for _, s := range triggered {
		for cur := s; !active[cur]; {
			active[cur] = true
			if cur == network.SinkIndex {
				break
			}
			cur = net.Parent(cur)
		}
	}

	// 2. Active-child counts.
	children := make([]int, count)
	for v := 0; v < count; v++ {
		if active[v] && v != network.SinkIndex {
			children[net.Parent(v)]++
		}
	}

	// 3. Peel.
	t := make([]float64, count)
	queue := make([]int, 0, count)
	for v := 0; v < count; v++ {
		if active[v] && v != network.SinkIndex && children[v] == 0 {
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]

		p := net.Parent(x)
		if t[x] > t[p] {
			t[p] = t[x]
		}
		t[p]++
		children[p]--
		if children[p] == 0 && p != network.SinkIndex {
			queue = append(queue, p)
		}
	}

	// 4. Broadcast completes when the sink has heard everyone.
	return t[network.SinkIndex]
}
