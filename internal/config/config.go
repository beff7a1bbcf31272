package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// PickUpConfig tunes the pick-up controller
type PickUpConfig struct {
	PickUpRange       float32    `yaml:"pick_up_range"`
	MinThrowForce     float32    `yaml:"min_throw_force"`
	MaxThrowForce     float32    `yaml:"max_throw_force"`
	ChargeDuration    float32    `yaml:"charge_duration"` // seconds held before charging starts
	RotationSpeed     float32    `yaml:"rotation_speed"`  // degrees per second per axis unit
	HoldDamping       float32    `yaml:"hold_damping"`
	DefaultDamping    float32    `yaml:"default_damping"`
	HighlightColor    [3]float32 `yaml:"highlight_color"`
	DefaultPromptText string     `yaml:"default_prompt_text"`
	PickUpTags        []string   `yaml:"pick_up_tags"`
	ActionKey         string     `yaml:"action_key"`
}

// DefaultPickUpConfig returns the stock tuning
func DefaultPickUpConfig() PickUpConfig {
	return PickUpConfig{
		PickUpRange:       5,
		MinThrowForce:     1,
		MaxThrowForce:     100,
		ChargeDuration:    1,
		RotationSpeed:     100,
		HoldDamping:       10,
		DefaultDamping:    1,
		HighlightColor:    [3]float32{1, 0.92, 0.016},
		DefaultPromptText: "Press E to Pick Up",
		PickUpTags:        []string{"PickUp", "Box"},
		ActionKey:         "E",
	}
}

func (c PickUpConfig) Validate() error {
	if c.PickUpRange <= 0 {
		return fmt.Errorf("%w: pick_up_range must be positive, got %v", ErrInvalidConfig, c.PickUpRange)
	}
	if c.MinThrowForce < 0 {
		return fmt.Errorf("%w: min_throw_force must not be negative, got %v", ErrInvalidConfig, c.MinThrowForce)
	}
	if c.MaxThrowForce <= c.MinThrowForce {
		return fmt.Errorf("%w: max_throw_force (%v) must exceed min_throw_force (%v)",
			ErrInvalidConfig, c.MaxThrowForce, c.MinThrowForce)
	}
	if c.ChargeDuration < 0 {
		return fmt.Errorf("%w: charge_duration must not be negative, got %v", ErrInvalidConfig, c.ChargeDuration)
	}
	if c.HoldDamping < 0 || c.DefaultDamping < 0 {
		return fmt.Errorf("%w: damping must not be negative", ErrInvalidConfig)
	}
	if len(c.PickUpTags) == 0 {
		return fmt.Errorf("%w: pick_up_tags must not be empty", ErrInvalidConfig)
	}
	return nil
}

// File is the on-disk layout: controller tuning plus an optional scene path
type File struct {
	Controller PickUpConfig `yaml:"controller"`
	Scene      string       `yaml:"scene,omitempty"`
	FrameRate  int          `yaml:"frame_rate,omitempty"`
}

// Parse decodes YAML on top of the defaults and validates the result
func Parse(data []byte) (File, error) {
	f := File{Controller: DefaultPickUpConfig(), FrameRate: 60}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Controller.Validate(); err != nil {
		return File{}, err
	}
	if f.FrameRate <= 0 {
		return File{}, fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalidConfig, f.FrameRate)
	}
	return f, nil
}

// Load reads and parses the config file at path
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return f, nil
}
