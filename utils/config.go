package utils

import (
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/rules"
)

// Sources of the first generation
const (
	InitRandom = "random"
	InitFile   = "file"
	InitGlider = "glider"
)

// Output surfaces
const (
	RendererText   = "text"
	RendererScreen = "screen"
)

const (
	// Unlimited disables the step limit
	Unlimited = -1
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Height int `json:"height"`
	Width  int `json:"width"`
	rules.Rules
	FrameRate      time.Duration `json:"frame_rate"`
	SpeedModifier  float64       `json:"speed_modifier"`
	ShowDeadCells  bool          `json:"show_dead_cells"`
	DisplayStats   bool          `json:"display_stats"`
	MaxGenerations int           `json:"max_generations"`
	InitMode       string        `json:"init_mode"`
	StartFile      string        `json:"start_file"`
	RandomDensity  float64       `json:"random_density"`
	Seed           int64         `json:"seed"`
	Renderer       string        `json:"renderer"`
	ClearScreen    bool          `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Height:         10,
		Width:          10,
		Rules:          rules.Default(),
		FrameRate:      100 * time.Millisecond,
		SpeedModifier:  1.0,
		ShowDeadCells:  false,
		DisplayStats:   true,
		MaxGenerations: Unlimited,
		InitMode:       InitRandom,
		StartFile:      "start.txt",
		RandomDensity:  0.5,
		Seed:           0, // 0 means seed from the current time
		Renderer:       RendererText,
		ClearScreen:    true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that every value can drive a simulation
func (c Config) Validate() error {
	switch {
	case c.Height <= 0 || c.Width <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board must be at least 1x1, got %dx%d", c.Height, c.Width)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame_rate %v", c.FrameRate)
	case c.SpeedModifier <= 0 || math.IsNaN(c.SpeedModifier):
		return errors.Wrapf(ErrInvalidConfig, "[Validate] speed_modifier must be positive, got %v", c.SpeedModifier)
	case float64(c.FrameRate)/c.SpeedModifier >= math.MaxInt64:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate %v / speed_modifier %v overflows the step delay",
			c.FrameRate, c.SpeedModifier)
	case c.MaxGenerations < Unlimited:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must be >= %d, got %d", Unlimited, c.MaxGenerations)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be within [0,1], got %v", c.RandomDensity)
	}

	switch c.InitMode {
	case InitRandom, InitFile, InitGlider:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown init_mode %q", c.InitMode)
	}
	switch c.Renderer {
	case RendererText, RendererScreen:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown renderer %q", c.Renderer)
	}
	return nil
}

// StepDelay is the pause between two rendered generations
func (c Config) StepDelay() time.Duration {
	return time.Duration(float64(c.FrameRate) / c.SpeedModifier)
}

// StepLimited reports whether the simulation stops after MaxGenerations
func (c Config) StepLimited() bool {
	return c.MaxGenerations != Unlimited
}
