package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CellSize != 10 {
		t.Errorf("cell_size = %d, want 10", cfg.CellSize)
	}
	if cfg.Surface.Width != 800 || cfg.Surface.Height != 600 {
		t.Errorf("surface = %dx%d, want 800x600", cfg.Surface.Width, cfg.Surface.Height)
	}
	if cfg.TPS != 0 {
		t.Errorf("tps = %d, want 0 (refresh synchronized)", cfg.TPS)
	}
	if cfg.Seeding.Mode != "uniform" {
		t.Errorf("seeding mode = %q, want uniform", cfg.Seeding.Mode)
	}
	if !cfg.Audio.Enabled {
		t.Error("audio should be enabled by default")
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("cell_size: 4\nsurface:\n  width: 320\nseeding:\n  mode: noise\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CellSize != 4 || cfg.Surface.Width != 320 || cfg.Seeding.Mode != "noise" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Surface.Height != 600 {
		t.Fatalf("height = %d, defaults should survive a partial file", cfg.Surface.Height)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"negative width", func(c *Config) { c.Surface.Width = -1 }},
		{"negative tps", func(c *Config) { c.TPS = -5 }},
		{"bad seeding", func(c *Config) { c.Seeding.Mode = "glider-gun" }},
		{"bad sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"loud volume", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"zero window", func(c *Config) { c.Telemetry.Window = 0 }},
		{"negative generations", func(c *Config) { c.Headless.Generations = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}

	cfg := Default()
	cfg.Audio.Enabled = false
	cfg.Audio.SampleRate = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample rate is irrelevant with audio off: %v", err)
	}
}

func TestBindOverridesLoadedValues(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-cell", "5", "-seed", "42", "-audio=false", "-seeding", "noise"}); err != nil {
		t.Fatal(err)
	}
	if cfg.CellSize != 5 || cfg.Seed != 42 || cfg.Audio.Enabled || cfg.Seeding.Mode != "noise" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Surface.Width != 800 {
		t.Fatalf("unset flag changed width to %d", cfg.Surface.Width)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seed = 1234
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestPathFromArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"-cell", "4"}, ""},
		{[]string{"-config", "a.yaml"}, "a.yaml"},
		{[]string{"-tps", "30", "--config=b.yaml"}, "b.yaml"},
		{[]string{"-config=c.yaml", "-cell", "2"}, "c.yaml"},
		{[]string{"--", "-config", "d.yaml"}, ""},
		{[]string{"-config"}, ""},
	}
	for _, tt := range tests {
		if got := PathFromArgs(tt.args); got != tt.want {
			t.Errorf("PathFromArgs(%q) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
