package main

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/softrender/internal/app"
	"github.com/Faultbox/softrender/internal/config"
	"github.com/Faultbox/softrender/internal/engine/debug"
	"github.com/Faultbox/softrender/internal/engine/renderer"
	"github.com/Faultbox/softrender/internal/engine/window"
)

// Viewer is the interactive SDL2 host.
type Viewer struct {
	config   *config.Config
	running  bool
	window   *window.Window
	pipeline *app.Pipeline
	log      *zap.Logger

	raster  *debug.FrameRasterizer
	capture *debug.ScreenshotCapture
}

// NewViewer opens the window and builds the pipeline.
func NewViewer(cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Render.Width),
		zap.Int("height", cfg.Render.Height),
	)

	v := &Viewer{
		config: cfg,
		log:    log,
	}

	var err error
	v.pipeline, err = app.Build(cfg, log)
	if err != nil {
		return nil, err
	}

	v.raster = debug.NewFrameRasterizer(cfg.Render.Width, cfg.Render.Height)
	if cfg.Render.Outline {
		v.raster.SetOutline(&color.RGBA{R: 0xff, A: 0xff})
	}
	v.capture = debug.NewScreenshotCapture(cfg.Snapshot.OutputDir, "softrender")

	v.window, err = window.New(window.Config{
		Title:         cfg.Window.Title,
		Width:         cfg.Render.Width,
		Height:        cfg.Render.Height,
		VSync:         cfg.Window.VSync,
		Outline:       cfg.Render.Outline,
		ScreenshotKey: strings.ToLower(strings.TrimSpace(cfg.Window.ScreenshotKey)),
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	log.Info("viewer initialized successfully")
	return v, nil
}

// Run pumps frames until the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	var minFrame time.Duration
	if v.config.Window.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(v.config.Window.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		events := v.window.PollEvents(v.pipeline.Translator)
		if events.Quit {
			v.running = false
			break
		}

		frame := v.pipeline.Frame(dt)
		if err := v.window.Draw(frame); err != nil {
			return fmt.Errorf("draw error: %w", err)
		}
		if events.Screenshot {
			v.screenshot(frame)
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := v.pipeline.Renderer.Stats()
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("triangles", stats.Emitted),
			)
			v.window.SetTitle(fmt.Sprintf("%s - %d fps", v.config.Window.Title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if spent := time.Since(now); minFrame > spent {
			time.Sleep(minFrame - spent)
		}
	}

	return nil
}

// screenshot rasterizes frame and saves it. Failures are logged, not fatal.
func (v *Viewer) screenshot(frame []renderer.DrawTriangle) {
	path, err := v.capture.CaptureFromImage(v.raster.Render(frame))
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path), zap.Int("triangles", len(frame)))
}

// Close releases the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.window != nil {
		v.window.Close()
	}
}
