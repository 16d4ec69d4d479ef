package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sensornet/geometry"
	"github.com/katalvlaran/sensornet/network"
	"github.com/katalvlaran/sensornet/routing"
)

// deployLine returns the five-sensor line (0,0)…(4,0) deployed at range
// 1.5: a chain where every sensor has exactly one parent candidate.
func deployLine(t *testing.T) *network.Network {
	t.Helper()
	net := network.New()
	require.True(t, net.Deploy([]geometry.Position{
		geometry.Pos(0, 0),
		geometry.Pos(1, 0),
		geometry.Pos(2, 0),
		geometry.Pos(3, 0),
		geometry.Pos(4, 0),
	}, 1.5))

	return net
}

// deployStar returns the sink at the origin with four unit-distance
// leaves, deployed at range 1.5: every leaf's sole candidate is the sink.
func deployStar(t *testing.T) *network.Network {
	t.Helper()
	net := network.New()
	require.True(t, net.Deploy([]geometry.Position{
		geometry.Pos(0, 0),
		geometry.Pos(1, 0),
		geometry.Pos(-1, 0),
		geometry.Pos(0, 1),
		geometry.Pos(0, -1),
	}, 1.5))

	return net
}

// deployRing returns the unit-square ring: sink (0,0), then (1,0),
// (1,1), (0,1). The 1.2 range keeps the diagonal point (1,1) out of the
// sink's reach (√2 ≈ 1.414 > 1.2), so it sits at level 2 with both
// level-1 sensors as candidates.
func deployRing(t *testing.T) *network.Network {
	t.Helper()
	net := network.New()
	require.True(t, net.Deploy([]geometry.Position{
		geometry.Pos(0, 0),
		geometry.Pos(1, 0),
		geometry.Pos(1, 1),
		geometry.Pos(0, 1),
	}, 1.2))

	return net
}

// TestParentCandidates_Line checks BFS levels 0..4 along the chain and
// the single upstream candidate per sensor.
func TestParentCandidates_Line(t *testing.T) {
	net := deployLine(t)

	candidates, err := routing.ParentCandidates(net)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.Equal(t, i, net.Level(i), "sensor %d level", i)
	}
	assert.Empty(t, candidates[0]) // the sink has no candidates
	for i := 1; i < 5; i++ {
		assert.Equal(t, []int{i - 1}, candidates[i], "sensor %d candidates", i)
	}
}

// TestParentCandidates_Star checks that all four leaves sit at level 1
// with the sink as their only candidate.
func TestParentCandidates_Star(t *testing.T) {
	net := deployStar(t)

	candidates, err := routing.ParentCandidates(net)
	require.NoError(t, err)

	assert.Equal(t, 0, net.Level(0))
	for i := 1; i < 5; i++ {
		assert.Equal(t, 1, net.Level(i), "leaf %d level", i)
		assert.Equal(t, []int{0}, candidates[i], "leaf %d candidates", i)
	}
}

// TestParentCandidates_RingOrder pins the candidate ordering discipline:
// the diagonal sensor 2 gains its candidates in the dequeue order of the
// two level-1 sensors, ascending index first.
func TestParentCandidates_RingOrder(t *testing.T) {
	net := deployRing(t)

	candidates, err := routing.ParentCandidates(net)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 1}, []int{
		net.Level(0), net.Level(1), net.Level(2), net.Level(3),
	})
	// Sensor 1 dequeues before sensor 3, so it is discovered first.
	assert.Equal(t, []int{1, 3}, candidates[2])
}

// TestParentCandidates_Disconnected expects ErrNotConnected when BFS
// cannot cover every sensor.
func TestParentCandidates_Disconnected(t *testing.T) {
	net := network.New()
	require.False(t, net.Deploy([]geometry.Position{
		geometry.Pos(0, 0),
		geometry.Pos(1, 0),
		geometry.Pos(50, 50), // island
	}, 1.5))

	_, err := routing.ParentCandidates(net)
	assert.ErrorIs(t, err, routing.ErrNotConnected)
}

// TestParentCandidates_NilAndEmpty covers the defensive entry checks.
func TestParentCandidates_NilAndEmpty(t *testing.T) {
	_, err := routing.ParentCandidates(nil)
	assert.ErrorIs(t, err, routing.ErrNetworkNil)

	_, err = routing.ParentCandidates(network.New())
	assert.ErrorIs(t, err, network.ErrNoSensors)
}
