package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sensornet/geometry"
	"github.com/katalvlaran/sensornet/network"
)

// linePositions returns five sensors on the x axis one unit apart, sink
// first: (0,0), (1,0), (2,0), (3,0), (4,0).
func linePositions() []geometry.Position {
	return []geometry.Position{
		geometry.Pos(0, 0),
		geometry.Pos(1, 0),
		geometry.Pos(2, 0),
		geometry.Pos(3, 0),
		geometry.Pos(4, 0),
	}
}

// TestDeploy_LineChannels deploys the five-sensor line at range 1.5 and
// checks the channel graph: each sensor links exactly to its immediate
// neighbors, and the deployment reports connected.
func TestDeploy_LineChannels(t *testing.T) {
	net := network.New()
	connected := net.Deploy(linePositions(), 1.5)

	require.True(t, connected)
	require.Equal(t, 5, net.NumSensors())
	assert.InDelta(t, 1.5, net.CommunicationRange(), 1e-12)

	// Only adjacent sensors are within 1.5 of each other.
	assert.Equal(t, []int{1}, net.Neighbors(0))
	assert.Equal(t, []int{0, 2}, net.Neighbors(1))
	assert.Equal(t, []int{1, 3}, net.Neighbors(2))
	assert.Equal(t, []int{2, 4}, net.Neighbors(3))
	assert.Equal(t, []int{3}, net.Neighbors(4))
}

// TestDeploy_DistanceMatrix verifies the matrix is symmetric with a zero
// diagonal and carries true Euclidean distances.
func TestDeploy_DistanceMatrix(t *testing.T) {
	net := network.New()
	net.Deploy(linePositions(), 1.5)

	for i := 0; i < net.NumSensors(); i++ {
		assert.Zero(t, net.Distance(i, i))
		for j := 0; j < net.NumSensors(); j++ {
			assert.Equal(t, net.Distance(i, j), net.Distance(j, i))
		}
	}
	assert.InDelta(t, 3.0, net.Distance(1, 4), 1e-12)
}

// TestDeploy_Deterministic redeploys the same positions and requires an
// identical channel graph both times.
func TestDeploy_Deterministic(t *testing.T) {
	a, b := network.New(), network.New()
	a.Deploy(linePositions(), 1.5)
	b.Deploy(linePositions(), 1.5)

	for i := 0; i < a.NumSensors(); i++ {
		assert.Equal(t, a.Neighbors(i), b.Neighbors(i))
	}
}

// TestDeploy_ReplacesState deploys twice with different inputs and
// checks no stale sensors, channels, or routing state survive.
func TestDeploy_ReplacesState(t *testing.T) {
	net := network.New()
	net.Deploy(linePositions(), 1.5)
	net.SetParent(1, 0)
	net.SetLevel(1, 1)

	// Redeploy a smaller network; everything prior must be gone.
	connected := net.Deploy([]geometry.Position{geometry.Pos(0, 0), geometry.Pos(1, 0)}, 2)
	require.True(t, connected)
	require.Equal(t, 2, net.NumSensors())
	assert.Equal(t, network.NoParent, net.Parent(1))
	assert.Equal(t, network.UnsetLevel, net.Level(1))
}

// TestDeploy_Disconnected places two clusters farther apart than the
// range and expects a false (not connected) deployment.
func TestDeploy_Disconnected(t *testing.T) {
	net := network.New()
	connected := net.Deploy([]geometry.Position{
		geometry.Pos(0, 0),
		geometry.Pos(1, 0),
		geometry.Pos(50, 0), // unreachable island
	}, 1.5)

	assert.False(t, connected)
	assert.False(t, net.ConnectedWithChannels())
	assert.Empty(t, net.Neighbors(2))
}

// TestNeighborSymmetry checks j ∈ neighbors(i) ⇔ i ∈ neighbors(j) on a
// deployment with mixed distances.
func TestNeighborSymmetry(t *testing.T) {
	net := network.New()
	net.Deploy([]geometry.Position{
		geometry.Pos(0, 0),
		geometry.Pos(1, 1),
		geometry.Pos(2, 0),
		geometry.Pos(0, 2),
	}, 2)

	for i := 0; i < net.NumSensors(); i++ {
		for _, j := range net.Neighbors(i) {
			assert.Contains(t, net.Neighbors(j), i, "channel %d-%d must be symmetric", i, j)
		}
	}
}

// TestFindSensorsWithinRange exercises the axis-band intersection: the
// corner point (1,1) falls inside both one-unit axis bands of the origin
// but outside the Euclidean disc, so it must be filtered out.
func TestFindSensorsWithinRange(t *testing.T) {
	net := network.New()
	net.Deploy([]geometry.Position{
		geometry.Pos(0, 0),
		geometry.Pos(1, 0),
		geometry.Pos(0, 1),
		geometry.Pos(1, 1), // in both axis bands, √2 away
		geometry.Pos(3, 3),
	}, 10)

	got := net.FindSensorsWithinRange(geometry.Pos(0, 0), 1)
	assert.Equal(t, []int{0, 1, 2}, got)

	// Nothing lies within range of a far-away center.
	assert.Empty(t, net.FindSensorsWithinRange(geometry.Pos(-50, -50), 1))

	// Centered on a sensor, the sensor itself is part of the result.
	assert.Contains(t, net.FindSensorsWithinRangeOf(4, 0.5), 4)
}

// TestFindSensorsWithinRange_DuplicateCoordinates places several sensors
// sharing x and y values; the ordered multimaps must keep them apart.
func TestFindSensorsWithinRange_DuplicateCoordinates(t *testing.T) {
	net := network.New()
	net.Deploy([]geometry.Position{
		geometry.Pos(0, 0),
		geometry.Pos(0, 1), // same x as sink
		geometry.Pos(1, 0), // same y as sink
		geometry.Pos(0, 1), // exact duplicate position of sensor 1
	}, 5)

	got := net.FindSensorsWithinRange(geometry.Pos(0, 0), 1)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

// TestRemoveParents clears levels and parents but keeps the deployment.
func TestRemoveParents(t *testing.T) {
	net := network.New()
	net.Deploy(linePositions(), 1.5)
	for i := 1; i < net.NumSensors(); i++ {
		net.SetParent(i, i-1)
		net.SetLevel(i, i)
	}
	net.SetLevel(0, 0)

	net.RemoveParents()
	for i := 0; i < net.NumSensors(); i++ {
		assert.Equal(t, network.NoParent, net.Parent(i))
		assert.Equal(t, network.UnsetLevel, net.Level(i))
	}
	// Channels untouched.
	assert.Equal(t, []int{0, 2}, net.Neighbors(1))
}

// TestConnectedWithRoutings accepts a full parent chain to the sink and
// rejects missing parents and parent cycles.
func TestConnectedWithRoutings(t *testing.T) {
	net := network.New()
	net.Deploy(linePositions(), 1.5)

	// No routing yet.
	assert.False(t, net.ConnectedWithRoutings())

	// Proper chain 4→3→2→1→0.
	for i := 1; i < net.NumSensors(); i++ {
		net.SetParent(i, i-1)
	}
	assert.True(t, net.ConnectedWithRoutings())

	// A hole in the chain disconnects everything above it.
	net.SetParent(2, network.NoParent)
	assert.False(t, net.ConnectedWithRoutings())

	// A parent cycle never reaches the sink.
	net.SetParent(2, 3)
	assert.False(t, net.ConnectedWithRoutings())
}

// TestSensorAccessor checks the record view agrees with the per-field
// accessors.
func TestSensorAccessor(t *testing.T) {
	net := network.New()
	net.Deploy(linePositions(), 1.5)
	net.SetLevel(2, 2)
	net.SetParent(2, 1)

	s := net.Sensor(2)
	assert.Equal(t, net.Position(2), s.Position())
	assert.Equal(t, net.Neighbors(2), s.Neighbors())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 1, s.Parent())
}

// TestConnectivity_EmptyNetwork treats the empty network as unconnected
// under both checks.
func TestConnectivity_EmptyNetwork(t *testing.T) {
	net := network.New()

	assert.False(t, net.ConnectedWithChannels())
	assert.False(t, net.ConnectedWithRoutings())
	assert.Zero(t, net.NumSensors())
}
