// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/hatch/evolution"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Transition TransitionConfig `yaml:"transition"`
	Audio      AudioConfig      `yaml:"audio"`
	Assets     AssetsConfig     `yaml:"assets"`
	Buttons    []ButtonConfig   `yaml:"buttons"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// WorldConfig holds the art canvas size in world units.
type WorldConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// TransitionConfig holds the per-kind durations.
type TransitionConfig struct {
	RegularSeconds  float32 `yaml:"regular_seconds"`
	CrackingSeconds float32 `yaml:"cracking_seconds"`
}

// AudioConfig holds cue volumes.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	CrackVolume float32 `yaml:"crack_volume"` // both crack cues
	ScaleVolume float32 `yaml:"scale_volume"` // both hatching scale cues
}

// AssetsConfig holds asset locations relative to Dir.
type AssetsConfig struct {
	Dir     string       `yaml:"dir"`
	ArtDir  string       `yaml:"art_dir"`  // one <state>.png per evolutionary form
	IconDir string       `yaml:"icon_dir"` // one <input>.png per button
	Sounds  SoundsConfig `yaml:"sounds"`
}

// SoundsConfig names the four cue files.
type SoundsConfig struct {
	Crack1 string `yaml:"crack_1"`
	Crack2 string `yaml:"crack_2"`
	Scale1 string `yaml:"scale_1"`
	Scale2 string `yaml:"scale_2"`
}

// ButtonConfig places one input button in world coordinates.
type ButtonConfig struct {
	Input string  `yaml:"input"`
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`
	W     float32 `yaml:"w"`
	H     float32 `yaml:"h"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow int `yaml:"perf_window"` // frames per perf.csv row
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32                          // Screen.Width as float32
	ScreenH32 float32                          // Screen.Height as float32
	Inputs    map[evolution.Input]ButtonConfig // parsed button layout
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
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Parse(cfg, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// Parse overlays YAML data onto cfg; only fields present in data change.
// A buttons list in data replaces the whole default layout.
func Parse(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate checks the values the game cannot run without.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Transition.RegularSeconds <= 0 || c.Transition.CrackingSeconds <= 0 {
		return fmt.Errorf("transition durations must be positive, got regular %v cracking %v",
			c.Transition.RegularSeconds, c.Transition.CrackingSeconds)
	}
	for name, v := range map[string]float32{"crack_volume": c.Audio.CrackVolume, "scale_volume": c.Audio.ScaleVolume} {
		if v < 0 || v > 1 {
			return fmt.Errorf("audio.%s must be within [0, 1], got %v", name, v)
		}
	}

	seen := make(map[evolution.Input]bool)
	for i, b := range c.Buttons {
		in, err := evolution.ParseInput(b.Input)
		if err != nil {
			return fmt.Errorf("buttons[%d]: %w", i, err)
		}
		if seen[in] {
			return fmt.Errorf("buttons[%d]: duplicate button for %s", i, in)
		}
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("buttons[%d]: %s has empty size %vx%v", i, in, b.W, b.H)
		}
		seen[in] = true
	}
	for _, in := range evolution.AllInputs() {
		if !seen[in] {
			return fmt.Errorf("no button configured for %s", in)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
// Validate must have passed.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	c.Derived.Inputs = make(map[evolution.Input]ButtonConfig, len(c.Buttons))
	for _, b := range c.Buttons {
		in, _ := evolution.ParseInput(b.Input)
		c.Derived.Inputs[in] = b
	}

	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 120
	}
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
