package sweep

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sensornet/metrics"
	"github.com/katalvlaran/sensornet/network"
	"github.com/katalvlaran/sensornet/placement"
	"github.com/katalvlaran/sensornet/routing"
)

// Run executes the Monte-Carlo metric sweep: for every communication
// range in the configured interval it draws cfg.Times random connected
// deployments, builds one routing per policy on each, evaluates every
// calculator, and averages per (range, builder, calculator). One table
// file per calculator lands in cfg.OutDir.
//
// Calculator values of exactly 0.0 are "no sample" sentinels and are
// excluded from the averages; a cell with no surviving samples reports 0.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := cfg.logger()

	// One stream behind placement and the randomized policies.
	rng := rand.New(rand.NewSource(cfg.Seed))
	placer := placement.NewRandomPlacer(cfg.Region, placement.WithRand(rng))
	builders := routing.AllBuilders(routing.WithRand(rng))
	kinds := metrics.AllKinds()
	ranges := sweepRanges(cfg)

	// rows[kind][rangeIdx] = (range, mean per builder).
	rows := make([][][]float64, len(kinds))
	for ki := range rows {
		rows[ki] = make([][]float64, 0, len(ranges))
	}

	net := network.New()
	for _, commRange := range ranges {
		// samples[kind][builder] accumulates non-sentinel trial values.
		samples := make([][][]float64, len(kinds))
		for ki := range samples {
			samples[ki] = make([][]float64, len(builders))
		}

		for trial := 0; trial < cfg.Times; trial++ {
			if _, err := placer.DeployConnected(net, cfg.NumSensors, commRange); err != nil {
				return fmt.Errorf("sweep: range %g trial %d: %w", commRange, trial, err)
			}
			for bi, b := range builders {
				if err := b.Build(net); err != nil {
					return fmt.Errorf("sweep: range %g trial %d: %w", commRange, trial, err)
				}
				for ki, k := range kinds {
					v, err := metrics.Calculate(k, net)
					if err != nil {
						return fmt.Errorf("sweep: range %g trial %d %s: %w", commRange, trial, k, err)
					}
					if v == 0 {
						// No-sample sentinel; skip.
						continue
					}
					samples[ki][bi] = append(samples[ki][bi], v)
				}
			}
		}

		// Collapse the trials into one row per calculator.
		for ki := range kinds {
			row := make([]float64, 0, len(builders)+1)
			row = append(row, commRange)
			for bi := range builders {
				row = append(row, meanOrZero(samples[ki][bi]))
			}
			rows[ki] = append(rows[ki], row)
		}
		log.Info().Float64("range", commRange).Int("trials", cfg.Times).Msg("swept range")
	}

	// One table per calculator.
	for ki, k := range kinds {
		path, err := writeTable(cfg.OutDir, k, builders, rows[ki])
		if err != nil {
			return err
		}
		log.Info().Str("metric", k.Slug()).Str("file", path).Msg("wrote metric table")
	}

	return nil
}

// sweepRanges expands [Lower, Upper] by Step into an inclusive sequence.
// The endpoint test carries a half-step tolerance so accumulated
// floating-point error cannot drop the final range.
func sweepRanges(cfg Config) []float64 {
	var ranges []float64
	for i := 0; ; i++ {
		r := cfg.Lower + float64(i)*cfg.Step
		if r > cfg.Upper+cfg.Step/2 {
			break
		}
		ranges = append(ranges, r)
	}

	return ranges
}

// meanOrZero averages the samples, or reports 0 when none survived the
// sentinel filter.
func meanOrZero(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	return stat.Mean(samples, nil)
}
