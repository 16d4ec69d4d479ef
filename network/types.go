// Package network defines the Sensor record, shared constants, and
// sentinel errors for the network layer.
package network

import (
	"errors"

	"github.com/katalvlaran/sensornet/geometry"
)

const (
	// SinkIndex is the index of the base station. The sensor placed at
	// position 0 of a deployment is the root of every routing tree.
	SinkIndex = 0

	// UnsetLevel marks a sensor whose BFS level has not been assigned.
	UnsetLevel = -1

	// NoParent marks a sensor with no routing parent (the sink, or any
	// sensor before a routing has been built).
	NoParent = -1
)

// Sentinel errors for network operations.
var (
	// ErrNoSensors indicates an operation that requires a deployed
	// network was invoked on an empty one.
	ErrNoSensors = errors.New("network: no sensors deployed")

	// ErrIndexOutOfRange indicates a sensor index outside [0, NumSensors).
	ErrIndexOutOfRange = errors.New("network: sensor index out of range")
)

// Sensor is one node of the deployed network.
//
// All cross-references are dense integer indices into the owning Network;
// a Sensor never points at another Sensor.
type Sensor struct {
	// pos is the sensor's fixed position in the deployment region.
	pos geometry.Position

	// neighbors holds the indices of all sensors within communication
	// range, in ascending order. The ordering is load-bearing: BFS
	// candidate order, and therefore the earliest/latest selection
	// policies, depend on it.
	neighbors []int

	// level is the BFS depth from the sink, or UnsetLevel.
	level int

	// parent is the routing parent index, or NoParent.
	parent int
}

// Position returns the sensor's position.
func (s *Sensor) Position() geometry.Position { return s.pos }

// Neighbors returns the ascending neighbor index slice.
// The caller must not mutate it.
func (s *Sensor) Neighbors() []int { return s.neighbors }

// Level returns the sensor's BFS level, or UnsetLevel.
func (s *Sensor) Level() int { return s.level }

// Parent returns the sensor's routing parent, or NoParent.
func (s *Sensor) Parent() int { return s.parent }
