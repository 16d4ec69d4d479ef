package placement_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sensornet/geometry"
	"github.com/katalvlaran/sensornet/network"
	"github.com/katalvlaran/sensornet/placement"
)

// TestMinimumCommunicationRange_Line: on a unit-spaced chain the MST is
// the chain itself and every edge weighs 1.
func TestMinimumCommunicationRange_Line(t *testing.T) {
	positions := []geometry.Position{
		geometry.Pos(0, 0),
		geometry.Pos(1, 0),
		geometry.Pos(2, 0),
		geometry.Pos(3, 0),
	}

	assert.InDelta(t, 1.0, placement.MinimumCommunicationRange(positions), 1e-12)
}

// TestMinimumCommunicationRange_Bottleneck: two tight clusters joined by
// one long gap; the bottleneck is the gap, not the cluster spacing.
func TestMinimumCommunicationRange_Bottleneck(t *testing.T) {
	positions := []geometry.Position{
		geometry.Pos(0, 0),
		geometry.Pos(1, 0),
		geometry.Pos(11, 0), // 10 away from the nearest cluster member
		geometry.Pos(12, 0),
	}

	assert.InDelta(t, 10.0, placement.MinimumCommunicationRange(positions), 1e-12)
}

// TestMinimumCommunicationRange_Degenerate: zero or one position needs
// no channels at all.
func TestMinimumCommunicationRange_Degenerate(t *testing.T) {
	assert.Zero(t, placement.MinimumCommunicationRange(nil))
	assert.Zero(t, placement.MinimumCommunicationRange([]geometry.Position{geometry.Pos(3, 3)}))
}

// TestMinimumCommunicationRange_DeployAgreement checks the MST-range
// property on random draws: deploying exactly at the bottleneck range
// connects, deploying just below it does not.
func TestMinimumCommunicationRange_DeployAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	net := network.New()

	for round := 0; round < 5; round++ {
		positions := make([]geometry.Position, 30)
		for i := range positions {
			positions[i] = geometry.Pos(rng.Float64()*100, rng.Float64()*100)
		}
		minRange := placement.MinimumCommunicationRange(positions)

		assert.True(t, net.Deploy(positions, minRange), "round %d at the bottleneck", round)
		assert.False(t, net.Deploy(positions, minRange*(1-1e-9)), "round %d below the bottleneck", round)
	}
}

// TestRandomPlacer_Place pins the contract: the sink sits at the region
// origin and every draw lands inside the region.
func TestRandomPlacer_Place(t *testing.T) {
	region := geometry.NewRegion(10, 60, 20, 80)
	placer := placement.NewRandomPlacer(region, placement.WithSeed(3))

	positions, err := placer.Place(200)
	require.NoError(t, err)
	require.Len(t, positions, 200)

	assert.Equal(t, geometry.Pos(10, 20), positions[0])
	for i, p := range positions {
		assert.True(t, region.Contains(p), "position %d: %+v", i, p)
	}
}

// TestRandomPlacer_Reproducible: equal seeds draw equal deployments.
func TestRandomPlacer_Reproducible(t *testing.T) {
	region := geometry.NewRegion(0, 100, 0, 100)

	a, err := placement.NewRandomPlacer(region, placement.WithSeed(11)).Place(50)
	require.NoError(t, err)
	b, err := placement.NewRandomPlacer(region, placement.WithSeed(11)).Place(50)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestRandomPlacer_TooFew rejects sizes that cannot form a network.
func TestRandomPlacer_TooFew(t *testing.T) {
	placer := placement.NewRandomPlacer(geometry.NewRegion(0, 100, 0, 100))

	_, err := placer.Place(1)
	assert.ErrorIs(t, err, placement.ErrTooFewSensors)
}

// TestDeployConnected succeeds at a generous range and hands back the
// deployed positions.
func TestDeployConnected(t *testing.T) {
	region := geometry.NewRegion(0, 100, 0, 100)
	placer := placement.NewRandomPlacer(region, placement.WithSeed(5))
	net := network.New()

	positions, err := placer.DeployConnected(net, 100, 25)
	require.NoError(t, err)
	require.Len(t, positions, 100)
	assert.True(t, net.ConnectedWithChannels())
	assert.InDelta(t, 25.0, net.CommunicationRange(), 1e-12)
}

// TestDeployConnected_RangeTooSmall exhausts the retry budget when the
// range cannot plausibly connect the area.
func TestDeployConnected_RangeTooSmall(t *testing.T) {
	region := geometry.NewRegion(0, 100, 0, 100)
	placer := placement.NewRandomPlacer(region, placement.WithSeed(5))
	net := network.New()

	_, err := placer.DeployConnected(net, 10, 0.5)
	assert.ErrorIs(t, err, placement.ErrRangeTooSmall)
}

// TestDeployConnected_MathSanity: the bottleneck of any successful
// deployment can never exceed the requested range.
func TestDeployConnected_MathSanity(t *testing.T) {
	region := geometry.NewRegion(0, 100, 0, 100)
	placer := placement.NewRandomPlacer(region, placement.WithSeed(9))
	net := network.New()

	positions, err := placer.DeployConnected(net, 60, 30)
	require.NoError(t, err)

	minRange := placement.MinimumCommunicationRange(positions)
	assert.False(t, math.IsNaN(minRange))
	assert.LessOrEqual(t, minRange, 30.0)
}
