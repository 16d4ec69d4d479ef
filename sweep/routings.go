package sweep

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sensornet/network"
	"github.com/katalvlaran/sensornet/placement"
	"github.com/katalvlaran/sensornet/routing"
	"github.com/katalvlaran/sensornet/svgprint"
)

// BuildRoutings draws one connected random deployment and renders one
// SVG per parent-selection policy into cfg.OutDir, named after the
// policy slug ("earliest_first.svg", …).
//
// All builders route the same deployment; only the routing edges differ
// between the rendered files.
func BuildRoutings(cfg BuildConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := cfg.logger()

	// One stream for placement and the randomized policies.
	rng := rand.New(rand.NewSource(cfg.Seed))

	placer := placement.NewRandomPlacer(cfg.Region, placement.WithRand(rng))
	net := network.New()
	if _, err := placer.DeployConnected(net, cfg.NumSensors, cfg.CommRange); err != nil {
		return fmt.Errorf("sweep: build routings: %w", err)
	}
	log.Info().
		Int("sensors", cfg.NumSensors).
		Float64("range", cfg.CommRange).
		Msg("deployed connected network")

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("sweep: build routings: %w", err)
	}

	for _, b := range routing.AllBuilders(routing.WithRand(rng)) {
		if err := b.Build(net); err != nil {
			return fmt.Errorf("sweep: build routings: %w", err)
		}
		if err := writeSVG(cfg, net, b); err != nil {
			return err
		}
		log.Info().Str("builder", b.Name()).Msg("rendered routing")
	}

	return nil
}

// writeSVG renders one builder's routing into "<OutDir>/<slug>.svg".
func writeSVG(cfg BuildConfig, net *network.Network, b *routing.Builder) error {
	path := filepath.Join(cfg.OutDir, b.Name()+".svg")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sweep: build routings: %w", err)
	}
	svgprint.Print(f, net, b.Title(), cfg.Region, cfg.Scale)
	if err := f.Close(); err != nil {
		return fmt.Errorf("sweep: build routings: close %s: %w", path, err)
	}

	return nil
}
