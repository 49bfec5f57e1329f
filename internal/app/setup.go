package app

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fandiandrian/Cellular-Automata/internal/config"
	"github.com/fandiandrian/Cellular-Automata/internal/core"
	"github.com/fandiandrian/Cellular-Automata/internal/sims/life"
	"github.com/fandiandrian/Cellular-Automata/internal/telemetry"
)

// InitialGeneration sizes the grid for a surface of w×h pixels and seeds it
// according to cfg. It also returns the effective seed.
func InitialGeneration(cfg *config.Config, w, h int) (core.Generation, int64) {
	size := core.GridSize(w, h, cfg.CellSize)
	rng := core.NewRNG(cfg.Seed)
	return life.Seed(life.Seeding(cfg.Seeding.Mode), size, rng, cfg.Seeding.NoiseScale), rng.Seed()
}

// AttachTelemetry registers a population collector on loop. When an output
// directory is configured it also writes population.csv and a config
// snapshot there. The returned function flushes and closes everything.
func AttachTelemetry(loop *Loop, cfg *config.Config, logger *slog.Logger) (func() error, error) {
	om, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		return nil, err
	}
	if om != nil {
		snapshot := filepath.Join(om.Dir(), "config.yaml")
		if err := cfg.WriteYAML(snapshot); err != nil {
			om.Close()
			return nil, fmt.Errorf("writing config snapshot: %w", err)
		}
		logger.Info("writing telemetry", "dir", om.Dir())
	}
	var sink telemetry.Sink
	if om != nil {
		sink = om
	}
	collector := telemetry.NewCollector(cfg.Telemetry.Window, sink, logger)
	loop.Observe(collector)
	return func() error {
		return errors.Join(collector.Flush(), om.Close())
	}, nil
}
