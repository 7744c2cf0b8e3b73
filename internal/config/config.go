// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all demo settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scene   SceneConfig   `yaml:"scene"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"` // MSAA samples, 0 disables
	// ScreenshotDir receives F12 captures.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SceneConfig selects the demo and tunes the camera and animation clock.
type SceneConfig struct {
	Demo       string        `yaml:"demo"`
	FovY       float32       `yaml:"fov_y"` // degrees
	Near       float32       `yaml:"near"`
	Far        float32       `yaml:"far"`
	LightSlots int           `yaml:"light_slots"`
	Step       time.Duration `yaml:"step"`
	MaxDelta   time.Duration `yaml:"max_delta"`
	ShowFPS    bool          `yaml:"show_fps"`
}

// MeshConfig holds generator detail levels.
type MeshConfig struct {
	SphereLevel       int `yaml:"sphere_level"`
	MorphLevel        int `yaml:"morph_level"`
	CylinderSegments  int `yaml:"cylinder_segments"`
	CylinderZSegments int `yaml:"cylinder_z_segments"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "deepv",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Samples:    4,

			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			Demo:       "pd00",
			FovY:       90,
			Near:       0.1,
			Far:        50,
			LightSlots: 4,
			Step:       12 * time.Millisecond,
			MaxDelta:   100 * time.Millisecond,
			ShowFPS:    false,
		},
		Mesh: MeshConfig{
			SphereLevel:       5,
			MorphLevel:        5,
			CylinderSegments:  32,
			CylinderZSegments: 3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first out of range setting.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	case c.Window.Samples < 0:
		return fmt.Errorf("window samples %d: %w", c.Window.Samples, ErrInvalid)
	case c.Scene.FovY <= 0 || c.Scene.FovY >= 180:
		return fmt.Errorf("scene fov_y %v: %w", c.Scene.FovY, ErrInvalid)
	case c.Scene.Near <= 0 || c.Scene.Far <= c.Scene.Near:
		return fmt.Errorf("scene near %v far %v: %w", c.Scene.Near, c.Scene.Far, ErrInvalid)
	case c.Scene.LightSlots <= 0:
		return fmt.Errorf("scene light_slots %d: %w", c.Scene.LightSlots, ErrInvalid)
	case c.Scene.Step < 0 || c.Scene.MaxDelta < 0:
		return fmt.Errorf("scene step %v max_delta %v: %w", c.Scene.Step, c.Scene.MaxDelta, ErrInvalid)
	case c.Mesh.SphereLevel < 0 || c.Mesh.MorphLevel < 0:
		return fmt.Errorf("mesh levels %d/%d: %w", c.Mesh.SphereLevel, c.Mesh.MorphLevel, ErrInvalid)
	case c.Mesh.CylinderSegments < 3 || c.Mesh.CylinderZSegments < 1:
		return fmt.Errorf("mesh cylinder %dx%d: %w", c.Mesh.CylinderSegments, c.Mesh.CylinderZSegments, ErrInvalid)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging level %q: %w", c.Logging.Level, ErrInvalid)
	}
	return nil
}
