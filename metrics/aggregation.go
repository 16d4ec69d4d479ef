package metrics

import "github.com/katalvlaran/sensornet/network"

// dataAggregation counts the transmissions needed to deliver every
// triggered sensor's report to the sink with in-network aggregation:
// each node on a triggered→sink path transmits exactly once (the sink's
// own emission counts too), and a walk stops as soon as it meets a node
// another walk already visited. Lower is better; no triggered sensors
// yields the sentinel 0.
//
// Complexity: O(n) time (every node is visited at most once) plus the
// triggered-set range query.
func dataAggregation(net *network.Network, cfg calcConfig) float64 {
	triggered := net.FindSensorsWithinRange(cfg.event, cfg.sensingRange)
	if len(triggered) == 0 {
		return 0
	}

	visited := make([]bool, net.NumSensors())
	numTransmissions := 0
	for _, s := range triggered {
		for cur := s; !visited[cur]; {
			visited[cur] = true
			numTransmissions++
			if cur == network.SinkIndex {
				break
			}
			cur = net.Parent(cur)
		}
	}

	return float64(numTransmissions)
}
