package placement

import (
	"fmt"

	"github.com/katalvlaran/sensornet/geometry"
	"github.com/katalvlaran/sensornet/network"
)

// RandomPlacer draws deployments uniformly at random from a region.
// Position 0, the base station, is always the region origin
// (MinX, MinY); the remaining sensors land anywhere in the rectangle.
type RandomPlacer struct {
	region geometry.Region
	cfg    placerConfig
}

// NewRandomPlacer returns a placer over region. Inject an RNG with
// WithRand or WithSeed; the default is a fixed-seed stream.
// Complexity: O(len(opts)).
func NewRandomPlacer(region geometry.Region, opts ...Option) *RandomPlacer {
	return &RandomPlacer{region: region, cfg: newPlacerConfig(opts...)}
}

// Region returns the placement region.
func (p *RandomPlacer) Region() geometry.Region { return p.region }

// Place returns n positions: the sink at the region origin followed by
// n−1 uniform draws from the rectangle.
// Complexity: O(n).
func (p *RandomPlacer) Place(n int) ([]geometry.Position, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSensors, n)
	}

	positions := make([]geometry.Position, n)
	positions[0] = geometry.Pos(p.region.MinX, p.region.MinY)
	for i := 1; i < n; i++ {
		positions[i] = geometry.Pos(
			p.region.MinX+p.cfg.rng.Float64()*p.region.Width(),
			p.region.MinY+p.cfg.rng.Float64()*p.region.Height(),
		)
	}

	return positions, nil
}

// DeployConnected draws placements until one is channel-connected at
// commRange and deploys it into net. A draw whose minimum communication
// range exceeds commRange is rejected without deploying. After
// MaxAttempts rejections it returns ErrRangeTooSmall; net then holds the
// last failed Deploy, or is untouched when every draw was rejected
// before deploying.
//
// Complexity: O(attempts · n²).
func (p *RandomPlacer) DeployConnected(net *network.Network, n int, commRange float64) ([]geometry.Position, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		positions, err := p.Place(n)
		if err != nil {
			return nil, err
		}

		// Cheap reject before paying for a full deployment.
		if MinimumCommunicationRange(positions) > commRange {
			continue
		}
		if net.Deploy(positions, commRange) {
			return positions, nil
		}
	}

	return nil, fmt.Errorf("%w: %d sensors at range %g after %d attempts",
		ErrRangeTooSmall, n, commRange, MaxAttempts)
}
