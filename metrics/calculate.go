package metrics

import (
	"github.com/katalvlaran/sensornet/network"
)

// Calculate runs the calculator identified by k over a routed network and
// returns its value.
//
// The network must be deployed and carry a complete routing (every sensor
// reaches the sink by following parents); anything else is a programmer
// error surfaced as ErrEmptyNetwork or ErrNotRouted. The propagation
// calculators additionally take the event configuration from opts.
//
// A returned 0.0 from a propagation calculator means "no sensor was
// triggered"; aggregating callers must exclude it from means.
func Calculate(k Kind, net *network.Network, opts ...Option) (float64, error) {
	if net == nil {
		return 0, ErrNetworkNil
	}
	if net.NumSensors() == 0 {
		return 0, ErrEmptyNetwork
	}
	if !net.ConnectedWithRoutings() {
		return 0, ErrNotRouted
	}

	cfg := newCalcConfig(opts...)
	if cfg.err != nil {
		return 0, cfg.err
	}

	switch k {
	case DegreeVariance:
		return degreeVariance(net), nil
	case Robustness:
		return robustness(net), nil
	case ChannelQuality:
		return channelQuality(net, cfg), nil
	case DataAggregation:
		return dataAggregation(net, cfg), nil
	case Latency:
		return latency(net, cfg), nil
	default:
		return 0, ErrUnknownKind
	}
}
