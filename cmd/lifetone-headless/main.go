package main

import (
	"context"
	"flag"
	"image"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fandiandrian/Cellular-Automata/internal/app"
	"github.com/fandiandrian/Cellular-Automata/internal/config"
	"github.com/fandiandrian/Cellular-Automata/internal/core"
	"github.com/fandiandrian/Cellular-Automata/internal/tone"
)

// discardSurface accepts frames and drops them.
type discardSurface struct{}

func (discardSurface) Present(*image.RGBA) error { return nil }

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	path := config.PathFromArgs(os.Args[1:])
	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	flag.String("config", path, "path to a YAML config file (empty = defaults)")
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(2)
	}

	initial, seed := app.InitialGeneration(cfg, cfg.Surface.Width, cfg.Surface.Height)
	loop := app.NewLoop(initial, cfg.CellSize, discardSurface{}, tone.Silent{})
	closeTelemetry, err := app.AttachTelemetry(loop, cfg, logger)
	if err != nil {
		slog.Error("failed to set up telemetry", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting headless simulation",
		"cols", initial.Cols(),
		"rows", initial.Rows(),
		"seed", seed,
		"seeding", cfg.Seeding.Mode,
		"tps", cfg.TPS,
		"generations", cfg.Headless.Generations,
	)

	runErr := loop.Run(ctx, core.NewFrameClock(cfg.TPS), int64(cfg.Headless.Generations))
	if err := closeTelemetry(); err != nil {
		slog.Error("failed to close telemetry", "error", err)
	}
	if runErr != nil {
		slog.Error("simulation failed", "generation", loop.Generation(), "error", runErr)
		os.Exit(1)
	}
	slog.Info("finished",
		"generation", loop.Generation(),
		"population", loop.Current().Population(),
		"frequency_hz", loop.Frequency(),
	)
}
