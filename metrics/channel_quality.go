package metrics

import (
	"math"

	"github.com/katalvlaran/sensornet/geometry"
	"github.com/katalvlaran/sensornet/network"
)

// bitAccuracyRate returns the per-hop bit accuracy for a hop of length d
// at communication range r under noise floor noise:
//
//	BAR(d) = 1 − 0.5 · erfc( sqrt( 1 / ((d/r)⁴ · noise) ) )
//
// A zero-length hop divides by zero into +Inf, erfc(+Inf) = 0, BAR = 1:
// the correct limit, so no special case is needed.
// Complexity: O(1).
func bitAccuracyRate(d, r, noise float64) float64 {
	ratio := d / r

	return 1 - 0.5*math.Erfc(math.Sqrt(1/(ratio*ratio*ratio*ratio*noise)))
}

// channelQuality returns the mean link error rate across triggered
// sensors. For each sensor within the sensing range of the event, the
// link accuracy rate multiplies per-hop bit accuracies along
// event → sensor → parent → … → sink; the link error rate is its
// complement. With no triggered sensor the sentinel 0 is returned.
//
// Complexity: O(t · depth) time for t triggered sensors.
func channelQuality(net *network.Network, cfg calcConfig) float64 {
	triggered := net.FindSensorsWithinRange(cfg.event, cfg.sensingRange)
	if len(triggered) == 0 {
		return 0
	}

	r := net.CommunicationRange()
	var sum float64
	for _, s := range triggered {
		// Event → sensor hop first, then the routing path.
		lar := bitAccuracyRate(geometry.Distance(cfg.event, net.Position(s)), r, cfg.noise)
		for cur := s; cur != network.SinkIndex; {
			parent := net.Parent(cur)
			lar *= bitAccuracyRate(net.Distance(cur, parent), r, cfg.noise)
			cur = parent
		}
		sum += 1 - lar
	}

	return sum / float64(len(triggered))
}
