package network

import (
	"sort"

	"github.com/katalvlaran/sensornet/geometry"
)

// Network owns the deployed sensors, the channel graph, and the routing
// state laid on top of it.
//
// A Network is not safe for concurrent use: the routing builder and the
// metric calculators mutate or inspect it exclusively (the whole pipeline
// is single-threaded and CPU-bound).
type Network struct {
	// sensors is the dense, index-keyed sensor sequence. Index SinkIndex
	// is the base station.
	sensors []Sensor

	// xIndex and yIndex are the axis-ordered coordinate indexes backing
	// sub-linear range queries.
	xIndex axisIndex
	yIndex axisIndex

	// dist is the symmetric pairwise distance matrix with zero diagonal,
	// populated once per deployment.
	dist [][]float64

	// commRange is the configured communication range.
	commRange float64
}

// New returns an empty Network. Populate it with Deploy.
// Complexity: O(1).
func New() *Network { return &Network{} }

// Deploy replaces all network state: it stores the given positions
// (position 0 becomes the sink), builds the axis indexes and the pairwise
// distance matrix, configures the communication range, and links every
// pair of sensors within range as neighbors.
//
// It reports whether the resulting channel graph is connected. A false
// return is a configuration outcome, not an error: the caller may retry
// with different positions or a larger range.
//
// Complexity: O(n²) time for the distance matrix, O(n²) space.
func (n *Network) Deploy(positions []geometry.Position, commRange float64) bool {
	// 1. Reset: prior sensors, channels, and routing state are discarded.
	count := len(positions)
	n.sensors = make([]Sensor, count)
	n.commRange = commRange
	for i, p := range positions {
		n.sensors[i] = Sensor{pos: p, level: UnsetLevel, parent: NoParent}
	}

	// 2. Axis indexes over the raw coordinates.
	xs := make([]float64, count)
	ys := make([]float64, count)
	for i, p := range positions {
		xs[i], ys[i] = p.X, p.Y
	}
	n.xIndex.build(xs)
	n.yIndex.build(ys)

	// 3. Pairwise distance matrix, symmetric with zero diagonal.
	n.dist = make([][]float64, count)
	for i := range n.dist {
		n.dist[i] = make([]float64, count)
	}
	for i := 0; i < count; i++ {
		for j := i + 1; j < count; j++ {
			d := geometry.Distance(positions[i], positions[j])
			n.dist[i][j] = d
			n.dist[j][i] = d
		}
	}

	// 4. Channel linking: each sensor's neighbors are the sensors within
	//    range of it, excluding itself. The range query already filters
	//    by true Euclidean distance and returns ascending indices, so
	//    neighbor sets come out ordered and the relation is symmetric
	//    (distance is).
	for i := 0; i < count; i++ {
		inRange := n.FindSensorsWithinRange(n.sensors[i].pos, commRange)
		nbrs := make([]int, 0, len(inRange))
		for _, j := range inRange {
			if j != i {
				nbrs = append(nbrs, j)
			}
		}
		n.sensors[i].neighbors = nbrs
	}

	return n.ConnectedWithChannels()
}

// NumSensors returns the number of deployed sensors.
func (n *Network) NumSensors() int { return len(n.sensors) }

// Sensor returns the sensor record at index i. The pointer stays owned
// by the network; mutate routing state through SetLevel and SetParent.
func (n *Network) Sensor(i int) *Sensor { return &n.sensors[i] }

// CommunicationRange returns the range configured at deployment.
func (n *Network) CommunicationRange() float64 { return n.commRange }

// Position returns sensor i's position.
func (n *Network) Position(i int) geometry.Position { return n.sensors[i].pos }

// Neighbors returns sensor i's ascending neighbor index slice.
// The caller must not mutate it.
func (n *Network) Neighbors(i int) []int { return n.sensors[i].neighbors }

// Distance returns the deployment-time Euclidean distance between sensors
// i and j. Distance(i, j) == Distance(j, i); Distance(i, i) == 0.
func (n *Network) Distance(i, j int) float64 { return n.dist[i][j] }

// Level returns sensor i's BFS level, or UnsetLevel.
func (n *Network) Level(i int) int { return n.sensors[i].level }

// SetLevel records sensor i's BFS level.
func (n *Network) SetLevel(i, level int) { n.sensors[i].level = level }

// Parent returns sensor i's routing parent, or NoParent.
func (n *Network) Parent(i int) int { return n.sensors[i].parent }

// SetParent records sensor i's routing parent.
func (n *Network) SetParent(i, parent int) { n.sensors[i].parent = parent }

// RemoveParents clears all routing state: every parent becomes NoParent
// and every level becomes UnsetLevel. Sensors and channels are untouched,
// so a routing may be rebuilt repeatedly without redeploying.
// Complexity: O(n).
func (n *Network) RemoveParents() {
	for i := range n.sensors {
		n.sensors[i].parent = NoParent
		n.sensors[i].level = UnsetLevel
	}
}

// FindSensorsWithinRange returns, in ascending index order, every sensor
// whose distance to center is at most r. Nothing is excluded by default;
// when center is a sensor's own position the caller removes the sensor
// itself if needed.
//
// The candidate set is the intersection of the x-band [center.X−r,
// center.X+r] and the y-band [center.Y−r, center.Y+r]; candidates are
// then filtered by true Euclidean distance.
//
// Complexity: O(log n + b + k log k) where b is the combined size of the
// two axis bands and k the number of sensors found.
func (n *Network) FindSensorsWithinRange(center geometry.Position, r float64) []int {
	if len(n.sensors) == 0 || r < 0 {
		return nil
	}

	// 1. Axis bands on both coordinates.
	xBand := n.xIndex.band(nil, center.X-r, center.X+r)
	yBand := n.yIndex.band(nil, center.Y-r, center.Y+r)

	// 2. Intersect: membership set over the x band, scan the y band.
	inX := make(map[int]struct{}, len(xBand))
	for _, i := range xBand {
		inX[i] = struct{}{}
	}

	// 3. Distance filter over the intersection.
	var found []int
	for _, i := range yBand {
		if _, ok := inX[i]; !ok {
			continue
		}
		if geometry.Distance(center, n.sensors[i].pos) <= r {
			found = append(found, i)
		}
	}
	sort.Ints(found)

	return found
}

// FindSensorsWithinRangeOf is FindSensorsWithinRange centered on sensor
// i's own position. Sensor i itself is part of the result (it is at
// distance zero).
func (n *Network) FindSensorsWithinRangeOf(i int, r float64) []int {
	return n.FindSensorsWithinRange(n.sensors[i].pos, r)
}
