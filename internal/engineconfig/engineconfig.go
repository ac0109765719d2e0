package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the default config file, relative to the process working directory.
const EngineConfigPath = "config/engine.yaml"

// Vec3 is a YAML-friendly vector, written as a three-element flow sequence.
type Vec3 [3]float32

// Physics configures the solver.
type Physics struct {
	Gravity    Vec3 `yaml:"gravity,flow"`
	UseGravity bool `yaml:"use_gravity"`
	// Damping is the fraction of linear velocity kept per second (1 = none lost).
	Damping    float32 `yaml:"damping"`
	Iterations int     `yaml:"iterations"`
	// Slop is the penetration depth tolerated before positional correction kicks in.
	Slop float32 `yaml:"slop"`
}

// Simulation configures the fixed-step driver.
type Simulation struct {
	TickRate int    `yaml:"tick_rate"`
	Ticks    int    `yaml:"ticks"`
	Level    string `yaml:"level,omitempty"`
	Seed     uint64 `yaml:"seed"`
	Shuffle  bool   `yaml:"shuffle"`
}

// Logging configures the line logger.
type Logging struct {
	FilePath string `yaml:"file_path"`
	Level    string `yaml:"level"`
}

// Render configures the optional window.
type Render struct {
	Width      int32 `yaml:"width"`
	Height     int32 `yaml:"height"`
	ShowBounds bool  `yaml:"show_bounds"`
}

// Config is the whole engine configuration. Persisted across runs.
type Config struct {
	Physics    Physics    `yaml:"physics"`
	Simulation Simulation `yaml:"simulation"`
	Logging    Logging    `yaml:"logging"`
	Render     Render     `yaml:"render"`
}

// Default returns the configuration used when no file exists: gravity on, 60 Hz, ten seconds.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:    Vec3{0, -9.8, 0},
			UseGravity: true,
			Damping:    0.95,
			Iterations: 4,
			Slop:       0.01,
		},
		Simulation: Simulation{
			TickRate: 60,
			Ticks:    600,
		},
		Logging: Logging{
			FilePath: "logs/sim.txt",
			Level:    "info",
		},
		Render: Render{
			Width:  1280,
			Height: 720,
		},
	}
}

// Load reads the config at path over the defaults, so a partial file only overrides what it
// names. A missing file yields Default() and no error; a malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.normalise(), nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// normalise replaces values the solver cannot run with by their defaults.
func (c Config) normalise() Config {
	d := Default()
	if c.Physics.Iterations <= 0 {
		c.Physics.Iterations = d.Physics.Iterations
	}
	if c.Physics.Damping <= 0 || c.Physics.Damping > 1 {
		c.Physics.Damping = d.Physics.Damping
	}
	if c.Physics.Slop < 0 {
		c.Physics.Slop = 0
	}
	if c.Simulation.TickRate <= 0 {
		c.Simulation.TickRate = d.Simulation.TickRate
	}
	if c.Simulation.Ticks < 0 {
		c.Simulation.Ticks = 0
	}
	return c
}

// TickDuration returns the fixed step in seconds.
func (s Simulation) TickDuration() float32 {
	return 1 / float32(s.TickRate)
}
