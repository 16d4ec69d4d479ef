// Command calculate-routing-metrics sweeps the communication range,
// averages every routing metric over repeated random deployments, and
// writes one table file per calculator.
//
// Usage:
//
//	calculate-routing-metrics [num_sensors] [times] [lower] [upper] [step]
//
// Defaults: 100 sensors, 20 deployments per range, ranges 25.0–50.0
// stepped by 0.1, tables written into the current directory.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sensornet/sweep"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := sweep.Config{
		NumSensors: sweep.DefaultNumSensors,
		Times:      sweep.DefaultTimes,
		Lower:      sweep.DefaultLower,
		Upper:      sweep.DefaultUpper,
		Step:       sweep.DefaultStep,
		Region:     sweep.DefaultRegion(),
		Log:        &log,
	}

	cmd := &cobra.Command{
		Use:           "calculate-routing-metrics [num_sensors] [times] [lower] [upper] [step]",
		Short:         "Sweep the communication range and tabulate averaged routing metrics",
		Args:          cobra.MaximumNArgs(5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			ints := []*int{&cfg.NumSensors, &cfg.Times}
			for i := 0; i < len(args) && i < 2; i++ {
				v, err := strconv.Atoi(args[i])
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				*ints[i] = v
			}
			floats := []*float64{&cfg.Lower, &cfg.Upper, &cfg.Step}
			for i := 2; i < len(args); i++ {
				v, err := strconv.ParseFloat(args[i], 64)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				*floats[i-2] = v
			}

			return sweep.Run(cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.OutDir, "out", ".", "directory receiving the metric tables")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "random seed for placement and randomized policies")

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("calculate-routing-metrics failed")
	}
}
