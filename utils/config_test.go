package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"height": 35, "width": 66, "overpopulation": 5, "show_dead_cells": true, "max_generations": 12, "init_mode": "file"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Height != 35 || config.Width != 66 {
		t.Errorf("dimensions = %dx%d, want 35x66", config.Height, config.Width)
	}
	if config.Overpopulation != 5 || config.Underpopulation != 1 || config.Reproduction != 3 {
		t.Errorf("rules = %+v", config.Rules)
	}
	if !config.ShowDeadCells || !config.DisplayStats {
		t.Error("flags not merged with defaults")
	}
	if config.MaxGenerations != 12 || config.InitMode != InitFile || config.StartFile != "start.txt" {
		t.Errorf("unexpected config %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfig(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err = os.WriteFile(bad, []byte("{height:"), 0o644); err != nil {
		t.Fatal(err)
	}
	config, err := LoadConfig(bad)
	if err == nil {
		t.Error("malformed JSON accepted")
	}
	if config.Height != DefaultConfig().Height {
		t.Error("defaults not returned alongside the error")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"negative width", func(c *Config) { c.Width = -3 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
		{"zero speed", func(c *Config) { c.SpeedModifier = 0 }},
		{"NaN speed", func(c *Config) { c.SpeedModifier = math.NaN() }},
		{"delay overflows", func(c *Config) { c.FrameRate, c.SpeedModifier = time.Hour, 1e-10 }},
		{"step limit below unlimited", func(c *Config) { c.MaxGenerations = -2 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"unknown init mode", func(c *Config) { c.InitMode = "soup" }},
		{"unknown renderer", func(c *Config) { c.Renderer = "gui" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestStepDelay(t *testing.T) {
	config := DefaultConfig()
	config.FrameRate = 100 * time.Millisecond
	config.SpeedModifier = 2
	if d := config.StepDelay(); d != 50*time.Millisecond {
		t.Errorf("StepDelay = %v, want 50ms", d)
	}

	config.FrameRate, config.SpeedModifier = time.Hour, 1e-5
	if err := config.Validate(); err != nil {
		t.Fatalf("slow but representable delay rejected: %v", err)
	}
	if d := config.StepDelay(); d <= 0 {
		t.Errorf("StepDelay = %v, want a positive delay", d)
	}

	if config.StepLimited() {
		t.Error("default config should run without a step limit")
	}
	config.MaxGenerations = 0
	if !config.StepLimited() {
		t.Error("max_generations 0 should be a limit")
	}
}
