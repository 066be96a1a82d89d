// Package config loads the runtime settings for the maze walker.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrCameraDistances reports a camera whose fill-screen and horizon
	// distances violate 0 < fill < horizon.
	ErrCameraDistances = errors.New("camera distances must satisfy 0 < fill_screen_distance < horizon_distance")
	// ErrFOVNotPositive reports a zero or negative field of view.
	ErrFOVNotPositive = errors.New("fov_angle must be positive")
	// ErrFPSNotPositive reports a zero or negative frame rate.
	ErrFPSNotPositive = errors.New("fps must be positive")
)

// Config holds all settings for one session.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Camera CameraConfig `yaml:"camera"`
	Maze   MazeConfig   `yaml:"maze"`
}

// RenderConfig paces the frame loop.
type RenderConfig struct {
	FPS int `yaml:"fps"`
}

// CameraConfig holds the view parameters; position and facing come from the
// maze start cell, not from configuration.
type CameraConfig struct {
	FOVAngle           float64 `yaml:"fov_angle"` // radians
	FillScreenDistance float64 `yaml:"fill_screen_distance"`
	HorizonDistance    float64 `yaml:"horizon_distance"`
}

// MazeConfig sizes the generated maze.
type MazeConfig struct {
	Rows          int `yaml:"rows"`
	Cols          int `yaml:"cols"`
	PortalSpacing int `yaml:"portal_spacing"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			FPS: 30,
		},
		Camera: CameraConfig{
			FOVAngle:           math.Pi / 2,
			FillScreenDistance: 1,
			HorizonDistance:    60,
		},
		Maze: MazeConfig{
			Rows:          8,
			Cols:          8,
			PortalSpacing: 6,
		},
	}
}

// Load reads config from a YAML file. A missing file is not an error; the
// defaults are used instead.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the cross-field invariants the renderer depends on.
func (c Config) Validate() error {
	if c.Render.FPS <= 0 {
		return ErrFPSNotPositive
	}
	if c.Camera.FOVAngle <= 0 {
		return ErrFOVNotPositive
	}
	if c.Camera.FillScreenDistance <= 0 || c.Camera.FillScreenDistance >= c.Camera.HorizonDistance {
		return ErrCameraDistances
	}
	return nil
}
