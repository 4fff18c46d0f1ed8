// Package config handles renderer configuration loading and management.
package config

import (
	"github.com/Faultbox/softrender/internal/engine/camera"
	"github.com/Faultbox/softrender/internal/engine/input"
)

// Config holds all settings shared by the hosts.
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Camera   CameraConfig   `yaml:"camera"`
	Input    InputConfig    `yaml:"input"`
	Scene    SceneConfig    `yaml:"scene"`
	Window   WindowConfig   `yaml:"window"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// RenderConfig holds the projection and viewport settings.
type RenderConfig struct {
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
	FOV      float64 `yaml:"fov"` // degrees
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	SpinRate float64 `yaml:"spin_rate"` // radians per second, 0 keeps the world still
	Outline  bool    `yaml:"outline"`
}

// CameraConfig holds the starting position and speeds.
type CameraConfig struct {
	Start     [3]float64 `yaml:"start"`
	MoveSpeed float64    `yaml:"move_speed"`
	TurnSpeed float64    `yaml:"turn_speed"`
}

// InputConfig holds key bindings. Bindings from a file are merged over the
// defaults.
type InputConfig struct {
	ClearOnRelease bool              `yaml:"clear_on_release"`
	Bindings       map[string]string `yaml:"bindings"`
}

// SceneConfig lists the OBJ models to load. Empty means the built-in cube.
// Relative model paths are looked up in SearchPaths, last entry first.
type SceneConfig struct {
	Models      []string `yaml:"models"`
	SearchPaths []string `yaml:"search_paths"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title    string `yaml:"title"`
	VSync    bool   `yaml:"vsync"`
	FPSLimit int    `yaml:"fps_limit"`

	// ScreenshotKey saves the current frame as a PNG under
	// snapshot.output_dir. Empty disables it.
	ScreenshotKey string `yaml:"screenshot_key"`
}

// SnapshotConfig drives the headless renderer.
type SnapshotConfig struct {
	OutputDir string  `yaml:"output_dir"`
	Frames    int     `yaml:"frames"`
	FrameTime float64 `yaml:"frame_time"` // seconds per frame
	Movement  string  `yaml:"movement"`   // camera command held for every frame
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Near:   0.1,
			Far:    1000,
			FOV:    90,
			Width:  800,
			Height: 600,
		},
		Camera: CameraConfig{
			Start:     [3]float64{0.5, 0.5, -3},
			MoveSpeed: camera.DefaultMoveSpeed,
			TurnSpeed: camera.DefaultTurnSpeed,
		},
		Input: InputConfig{
			ClearOnRelease: true,
			Bindings:       input.DefaultBindings(),
		},
		Window: WindowConfig{
			Title:         "softrender",
			VSync:         true,
			ScreenshotKey: "f12",
		},
		Snapshot: SnapshotConfig{
			OutputDir: "frames",
			Frames:    1,
			FrameTime: 1.0 / 30,
			Movement:  "none",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
