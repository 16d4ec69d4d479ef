// Command build-routings draws one random connected deployment and
// renders one routing SVG per parent-selection policy.
//
// Usage:
//
//	build-routings [num_sensors] [communication_range]
//
// Defaults: 100 sensors at range 20.0, rendered into the current
// directory.
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

	cfg := sweep.BuildConfig{
		NumSensors: sweep.DefaultNumSensors,
		CommRange:  sweep.DefaultCommRange,
		Region:     sweep.DefaultRegion(),
		Scale:      sweep.DefaultScale,
		Log:        &log,
	}

	cmd := &cobra.Command{
		Use:           "build-routings [num_sensors] [communication_range]",
		Short:         "Render one routing SVG per parent-selection policy",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) >= 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("num_sensors: %w", err)
				}
				cfg.NumSensors = n
			}
			if len(args) >= 2 {
				r, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("communication_range: %w", err)
				}
				cfg.CommRange = r
			}

			return sweep.BuildRoutings(cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.OutDir, "out", ".", "directory receiving the SVG files")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "random seed for placement and randomized policies")

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("build-routings failed")
	}
}
