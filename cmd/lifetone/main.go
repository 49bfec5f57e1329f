//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/fandiandrian/Cellular-Automata/internal/app"
	"github.com/fandiandrian/Cellular-Automata/internal/config"
	"github.com/fandiandrian/Cellular-Automata/internal/render"
	"github.com/fandiandrian/Cellular-Automata/internal/tone"
	"github.com/fandiandrian/Cellular-Automata/internal/ui"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
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

	w, h := cfg.Surface.Width, cfg.Surface.Height
	if cfg.Surface.Fullscreen {
		w, h = ebiten.ScreenSizeInFullscreen()
	}
	initial, seed := app.InitialGeneration(cfg, w, h)
	size := initial.Size()
	if initial.Empty() {
		slog.Error("surface is smaller than one cell", "width", w, "height", h, "cell_size", cfg.CellSize)
		os.Exit(1)
	}

	surface := render.NewSurface(size.W*cfg.CellSize, size.H*cfg.CellSize)
	var device app.ToneDevice = tone.Silent{}
	if cfg.Audio.Enabled {
		device = tone.NewDevice(cfg.Audio.SampleRate, cfg.Audio.Volume)
	}
	loop := app.NewLoop(initial, cfg.CellSize, surface, device)
	closeTelemetry, err := app.AttachTelemetry(loop, cfg, logger)
	if err != nil {
		slog.Error("failed to set up telemetry", "error", err)
		os.Exit(1)
	}

	var hud *ui.HUD
	if cfg.HUD.Enabled {
		hud = ui.NewHUD(loop)
	}

	slog.Info("starting",
		"cols", size.W,
		"rows", size.H,
		"cell_size", cfg.CellSize,
		"seed", seed,
		"seeding", cfg.Seeding.Mode,
		"audio", cfg.Audio.Enabled,
	)

	ebiten.SetWindowTitle("Cellular Automata")
	tps := cfg.TPS
	if tps == 0 {
		tps = ebiten.SyncWithFPS
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(size.W*cfg.CellSize, size.H*cfg.CellSize)
	ebiten.SetFullscreen(cfg.Surface.Fullscreen)

	game := app.NewGame(loop, surface, hud)
	runErr := ebiten.RunGame(game)
	if err := closeTelemetry(); err != nil {
		slog.Error("failed to close telemetry", "error", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		slog.Error("game loop failed", "generation", loop.Generation(), "error", runErr)
		os.Exit(1)
	}
	slog.Info("stopped", "generation", loop.Generation())
}
