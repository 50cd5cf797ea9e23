package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the optional config file looked up next to the executable.
const FileName = "blockbuilder.yaml"

type Config struct {
	Window   WindowConfig      `yaml:"window"`
	Player   PlayerConfig      `yaml:"player"`
	Movement MovementConfig    `yaml:"movement"`
	Build    BuildConfig       `yaml:"build"`
	Bindings map[string]string `yaml:"bindings"`
	Logging  LoggingConfig     `yaml:"logging"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type PlayerConfig struct {
	Spawn      [3]float32 `yaml:"spawn"`
	Radius     float32    `yaml:"radius"`
	Height     float32    `yaml:"height"`
	StepHeight float32    `yaml:"step_height"`
	JumpSpeed  float32    `yaml:"jump_speed"`
	FallSpeed  float32    `yaml:"fall_speed"`
	Gravity    float32    `yaml:"gravity"`
}

type MovementConfig struct {
	ForwardWeight float32 `yaml:"forward_weight"`
	SideWeight    float32 `yaml:"side_weight"`
	LookSpeed     float32 `yaml:"look_speed"`
}

type BuildConfig struct {
	BoxSize   float32 `yaml:"box_size"`
	MaxReach  float32 `yaml:"max_reach"`
	FloorSize float32 `yaml:"floor_size"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // "console" or "json"
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Block Builder",
			TargetFPS: 60,
		},
		Player: PlayerConfig{
			Spawn:      [3]float32{0, 10, 0},
			Radius:     1.5,
			Height:     6,
			StepHeight: 0.5,
			JumpSpeed:  20,
			FallSpeed:  30,
			Gravity:    60,
		},
		Movement: MovementConfig{
			ForwardWeight: 0.6,
			SideWeight:    0.4,
			LookSpeed:     0.1,
		},
		Build: BuildConfig{
			BoxSize:   2,
			MaxReach:  100,
			FloorSize: 4000,
		},
		Bindings: map[string]string{},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except a missing file yields the defaults.
func LoadOptional(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Player.Radius <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player radius and height must be positive")
	}
	if c.Build.BoxSize <= 0 {
		return fmt.Errorf("build.box_size must be positive, got %v", c.Build.BoxSize)
	}
	if c.Build.MaxReach <= 0 {
		return fmt.Errorf("build.max_reach must be positive, got %v", c.Build.MaxReach)
	}
	return nil
}
