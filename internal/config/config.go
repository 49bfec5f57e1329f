// Package config provides configuration loading for the simulation.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Config holds all runtime configuration.
type Config struct {
	Surface   SurfaceConfig   `yaml:"surface"`
	CellSize  int             `yaml:"cell_size"`
	TPS       int             `yaml:"tps"`
	Seed      int64           `yaml:"seed"`
	Seeding   SeedingConfig   `yaml:"seeding"`
	Audio     AudioConfig     `yaml:"audio"`
	HUD       HUDConfig       `yaml:"hud"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Headless  HeadlessConfig  `yaml:"headless"`
}

// SurfaceConfig holds the drawing surface size, read once at startup.
type SurfaceConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"` // use the monitor size instead of width/height
}

// SeedingConfig selects how the first generation is populated.
type SeedingConfig struct {
	Mode       string  `yaml:"mode"`
	NoiseScale float64 `yaml:"noise_scale"`
}

// AudioConfig holds tone output settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

// HUDConfig toggles the statistics panel.
type HUDConfig struct {
	Enabled bool `yaml:"enabled"`
}

// TelemetryConfig holds population logging settings.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"`
	Window    int    `yaml:"window"` // generations per aggregated record
}

// HeadlessConfig holds settings for runs without a window.
type HeadlessConfig struct {
	Generations int `yaml:"generations"` // 0 = run until interrupted
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("parsing embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path, if any.
// Only fields present in the file are overwritten.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, c.CellSize)
	case c.Surface.Width < 0 || c.Surface.Height < 0:
		return fmt.Errorf("%w: negative surface size %dx%d", ErrInvalid, c.Surface.Width, c.Surface.Height)
	case c.TPS < 0:
		return fmt.Errorf("%w: tps must not be negative, got %d", ErrInvalid, c.TPS)
	case c.Seeding.Mode != "uniform" && c.Seeding.Mode != "noise":
		return fmt.Errorf("%w: unknown seeding mode %q", ErrInvalid, c.Seeding.Mode)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume must be in [0,1], got %v", ErrInvalid, c.Audio.Volume)
	case c.Telemetry.Window <= 0:
		return fmt.Errorf("%w: telemetry window must be positive, got %d", ErrInvalid, c.Telemetry.Window)
	case c.Headless.Generations < 0:
		return fmt.Errorf("%w: generations must not be negative, got %d", ErrInvalid, c.Headless.Generations)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet so that flags
// override loaded values. Call it after Load and before fs.Parse.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Surface.Width, "width", c.Surface.Width, "surface width in pixels")
	fs.IntVar(&c.Surface.Height, "height", c.Surface.Height, "surface height in pixels")
	fs.BoolVar(&c.Surface.Fullscreen, "fullscreen", c.Surface.Fullscreen, "size the surface to the monitor")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second (0 = display refresh rate, unthrottled headless)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial generation (0 = time based)")
	fs.StringVar(&c.Seeding.Mode, "seeding", c.Seeding.Mode, "initial state: uniform or noise")
	fs.BoolVar(&c.Audio.Enabled, "audio", c.Audio.Enabled, "play the population tone")
	fs.Float64Var(&c.Audio.Volume, "volume", c.Audio.Volume, "tone volume in [0,1]")
	fs.BoolVar(&c.HUD.Enabled, "hud", c.HUD.Enabled, "show the statistics panel")
	fs.StringVar(&c.Telemetry.OutputDir, "output-dir", c.Telemetry.OutputDir, "directory for population CSV and config snapshot")
	fs.IntVar(&c.Headless.Generations, "generations", c.Headless.Generations, "stop after N generations in headless mode (0 = unlimited)")
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// PathFromArgs returns the value of a -config flag in args so that the file can
// be loaded before the remaining flags are bound and parsed.
func PathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		for _, name := range []string{"-config", "--config"} {
			if a == name && i+1 < len(args) {
				return args[i+1]
			}
			if len(a) > len(name) && a[:len(name)+1] == name+"=" {
				return a[len(name)+1:]
			}
		}
	}
	return ""
}
