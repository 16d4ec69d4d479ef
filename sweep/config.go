// Package sweep defines the experiment configurations and their
// validation, plus the reference defaults the CLI drivers expose.
package sweep

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/sensornet/geometry"
)

// Reference defaults, mirrored by the CLI drivers.
const (
	// DefaultNumSensors is the deployment size used when none is given.
	DefaultNumSensors = 100

	// DefaultCommRange is the single-shot communication range.
	DefaultCommRange = 20.0

	// DefaultTimes is the number of random deployments per swept range.
	DefaultTimes = 20

	// DefaultLower and DefaultUpper bound the swept range interval.
	DefaultLower = 25.0
	DefaultUpper = 50.0

	// DefaultStep is the sweep increment.
	DefaultStep = 0.1

	// DefaultScale maps region units to pixels in rendered SVGs.
	DefaultScale = 8.0
)

// Sentinel errors for configuration validation.
var (
	// ErrBadConfig indicates an invalid field combination.
	ErrBadConfig = errors.New("sweep: invalid configuration")
)

// DefaultRegion returns the reference deployment region, a 100×100
// square with the sink corner at the origin (the modeled event sits at
// its center).
func DefaultRegion() geometry.Region {
	return geometry.NewRegion(0, 100, 0, 100)
}

// Config parameterizes the Monte-Carlo metric sweep.
type Config struct {
	// NumSensors is the deployment size, sink included.
	NumSensors int

	// Times is the number of random deployments averaged per range.
	Times int

	// Lower, Upper, Step define the swept communication ranges:
	// Lower, Lower+Step, … up to and including Upper. When Upper is not
	// on that grid, the last range may exceed Upper by less than half a
	// step.
	Lower, Upper, Step float64

	// Region is the placement area.
	Region geometry.Region

	// OutDir receives one table file per calculator.
	OutDir string

	// Seed feeds the single random stream behind placement and the
	// randomized policies.
	Seed int64

	// Log receives progress events; nil disables logging.
	Log *zerolog.Logger
}

// Validate checks that the sweep parameters are runnable.
func (c Config) Validate() error {
	if c.NumSensors < 2 {
		return fmt.Errorf("%w: need at least two sensors, got %d", ErrBadConfig, c.NumSensors)
	}
	if c.Times < 1 {
		return fmt.Errorf("%w: times must be positive, got %d", ErrBadConfig, c.Times)
	}
	if c.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %g", ErrBadConfig, c.Step)
	}
	if c.Upper < c.Lower {
		return fmt.Errorf("%w: upper %g below lower %g", ErrBadConfig, c.Upper, c.Lower)
	}

	return nil
}

// logger returns the configured logger or a disabled one.
func (c Config) logger() zerolog.Logger {
	if c.Log == nil {
		return zerolog.Nop()
	}

	return *c.Log
}

// BuildConfig parameterizes the single-deployment SVG rendering run.
type BuildConfig struct {
	// NumSensors is the deployment size, sink included.
	NumSensors int

	// CommRange is the communication range of the single deployment.
	CommRange float64

	// Region is the placement area; Scale maps it to pixels.
	Region geometry.Region
	Scale  float64

	// OutDir receives one SVG file per builder.
	OutDir string

	// Seed feeds the random stream.
	Seed int64

	// Log receives progress events; nil disables logging.
	Log *zerolog.Logger
}

// Validate checks that the rendering parameters are runnable.
func (c BuildConfig) Validate() error {
	if c.NumSensors < 2 {
		return fmt.Errorf("%w: need at least two sensors, got %d", ErrBadConfig, c.NumSensors)
	}
	if c.CommRange <= 0 {
		return fmt.Errorf("%w: communication range must be positive, got %g", ErrBadConfig, c.CommRange)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %g", ErrBadConfig, c.Scale)
	}

	return nil
}

// logger returns the configured logger or a disabled one.
func (c BuildConfig) logger() zerolog.Logger {
	if c.Log == nil {
		return zerolog.Nop()
	}

	return *c.Log
}
