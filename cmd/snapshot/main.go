// Package main renders frames headlessly and writes them as PNG files.
package main

import (
	"fmt"
	"image/color"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/softrender/internal/app"
	"github.com/Faultbox/softrender/internal/config"
	"github.com/Faultbox/softrender/internal/engine/camera"
	"github.com/Faultbox/softrender/internal/engine/debug"
	"github.com/Faultbox/softrender/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	p, err := app.Build(cfg, log)
	if err != nil {
		return err
	}

	// Validated by config.Load.
	move, _ := camera.ParseMovement(cfg.Snapshot.Movement)

	raster := debug.NewFrameRasterizer(cfg.Render.Width, cfg.Render.Height)
	if cfg.Render.Outline {
		raster.SetOutline(&color.RGBA{R: 0xff, A: 0xff})
	}
	capture := debug.NewScreenshotCapture(cfg.Snapshot.OutputDir, "frame")

	log.Info("rendering snapshots",
		zap.Int("frames", cfg.Snapshot.Frames),
		zap.Float64("frame_time", cfg.Snapshot.FrameTime),
		zap.Stringer("movement", move),
		zap.String("output_dir", cfg.Snapshot.OutputDir),
	)

	for i := 0; i < cfg.Snapshot.Frames; i++ {
		elapsed := cfg.Snapshot.FrameTime
		if i == 0 {
			elapsed = 0
		}
		p.Camera.Pending = move
		frame := p.Renderer.RenderFrame(elapsed)

		path, err := capture.CaptureFrame(raster.Render(frame), i)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		log.Debug("frame written", zap.String("path", path), zap.Int("triangles", len(frame)))
	}

	log.Info("snapshots complete", zap.Int("frames", cfg.Snapshot.Frames))
	return nil
}
