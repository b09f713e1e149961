// Package config provides configuration loading and access for the editor.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all editor configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Surface    SurfaceConfig    `yaml:"surface"`
	Alerts     AlertsConfig     `yaml:"alerts"`
	Efficiency EfficiencyConfig `yaml:"efficiency"`
	Layout     LayoutConfig     `yaml:"layout"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SurfaceConfig holds the placeable surface dimensions in surface units.
// The camera handles the mapping to screen pixels.
type SurfaceConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	GridStep float64 `yaml:"grid_step"` // Placement snap step (0 = free placement)
}

// AlertsConfig holds safety-alert policy thresholds.
type AlertsConfig struct {
	LowPowerReserve  float64 `yaml:"low_power_reserve"`  // Warning below this power surplus
	LowOxygenReserve float64 `yaml:"low_oxygen_reserve"` // Warning below this oxygen surplus
	MinCrewCapacity  int     `yaml:"min_crew_capacity"`  // Warning below this many berths
	AirlockType      string  `yaml:"airlock_type"`       // Type id checked for EVA capability
	PowerType        string  `yaml:"power_type"`         // Type id checked for power generation
}

// EfficiencyConfig holds layout scoring parameters.
type EfficiencyConfig struct {
	MaxSurfaceArea float64 `yaml:"max_surface_area"` // Area budget for the space score
	LowScore       float64 `yaml:"low_score"`        // Scores below this produce recommendations
}

// LayoutConfig holds persisted-layout settings.
type LayoutConfig struct {
	Version string `yaml:"version"` // Document format version written on save
	SaveDir string `yaml:"save_dir"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	HistorySize int `yaml:"history_size"` // In-memory mutation history ring size
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SurfaceW32 float32 // Surface.Width as float32
	SurfaceH32 float32 // Surface.Height as float32
	ScreenW32  float32 // Screen.Width as float32
	ScreenH32  float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.SurfaceW32 = float32(c.Surface.Width)
	c.Derived.SurfaceH32 = float32(c.Surface.Height)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
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
