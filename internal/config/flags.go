package config

import (
	"flag"
	"strings"
)

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagWidth   = flag.Int("width", 0, "Screen width")
	flagHeight  = flag.Int("height", 0, "Screen height")
	flagFOV     = flag.Float64("fov", 0, "Field of view in degrees")
	flagModels  = flag.String("models", "", "Comma-separated OBJ model paths")
	flagOutline = flag.Bool("outline", false, "Outline every triangle")
	flagSpin    = flag.Float64("spin", 0, "World spin rate in radians per second")
	flagFrames  = flag.Int("frames", 0, "Number of frames to render (snapshot)")
	flagOut     = flag.String("out", "", "Output directory for frames (snapshot)")
	flagMove    = flag.String("move", "", "Camera command held every frame (snapshot)")
	flagSave    = flag.Bool("save-config", false, "Write the effective config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagFOV > 0 {
		cfg.Render.FOV = *flagFOV
	}
	if *flagModels != "" {
		cfg.Scene.Models = splitList(*flagModels)
	}
	if *flagOutline {
		cfg.Render.Outline = true
	}
	if *flagSpin != 0 {
		cfg.Render.SpinRate = *flagSpin
	}
	if *flagFrames > 0 {
		cfg.Snapshot.Frames = *flagFrames
	}
	if *flagOut != "" {
		cfg.Snapshot.OutputDir = *flagOut
	}
	if *flagMove != "" {
		cfg.Snapshot.Movement = *flagMove
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
