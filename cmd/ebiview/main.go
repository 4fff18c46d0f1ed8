// Package main is the Ebiten viewer, an alternative to the SDL2 host.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/Faultbox/softrender/internal/app"
	"github.com/Faultbox/softrender/internal/config"
	"github.com/Faultbox/softrender/internal/engine/debug"
	"github.com/Faultbox/softrender/internal/engine/renderer"
	"github.com/Faultbox/softrender/internal/engine/shade"
	"github.com/Faultbox/softrender/internal/logger"
)

// Triangles per DrawTriangles call, keeping indices within uint16.
const batchTriangles = 0xffff / 3

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	outlineColor  = color.RGBA{R: 0xff, A: 0xff}
)

func init() {
	whiteImage.Fill(color.White)
}

type viewer struct {
	cfg      *config.Config
	pipeline *app.Pipeline
	log      *zap.Logger

	shotKey string
	raster  *debug.FrameRasterizer
	capture *debug.ScreenshotCapture

	frame    []renderer.DrawTriangle
	keys     []ebiten.Key
	vertices []ebiten.Vertex
	indices  []uint16
	last     time.Time
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	shot := false
	v.keys = inpututil.AppendJustPressedKeys(v.keys[:0])
	for _, k := range v.keys {
		if name := keyName(k); name == v.shotKey {
			shot = true
		} else {
			v.pipeline.Translator.Press(name)
		}
	}
	v.keys = inpututil.AppendJustReleasedKeys(v.keys[:0])
	for _, k := range v.keys {
		if name := keyName(k); name != v.shotKey {
			v.pipeline.Translator.Release(name)
		}
	}

	now := time.Now()
	dt := now.Sub(v.last).Seconds()
	v.last = now

	v.frame = v.pipeline.Frame(dt)
	if shot {
		v.screenshot()
	}
	return nil
}

func (v *viewer) screenshot() {
	path, err := v.capture.CaptureFromImage(v.raster.Render(v.frame))
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for start := 0; start < len(v.frame); start += batchTriangles {
		end := min(start+batchTriangles, len(v.frame))
		v.drawBatch(screen, v.frame[start:end])
	}

	if v.cfg.Render.Outline {
		for _, tri := range v.frame {
			for i := range tri.P {
				a, b := tri.P[i], tri.P[(i+1)%3]
				vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, outlineColor, false)
			}
		}
	}
}

func (v *viewer) drawBatch(screen *ebiten.Image, batch []renderer.DrawTriangle) {
	v.vertices = v.vertices[:0]
	v.indices = v.indices[:0]
	for _, tri := range batch {
		c := shade.Gray(tri.Shade).RGBA()
		cr, cg, cb := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255
		for _, p := range tri.P {
			v.indices = append(v.indices, uint16(len(v.vertices)))
			v.vertices = append(v.vertices, ebiten.Vertex{
				DstX:   float32(p.X),
				DstY:   float32(p.Y),
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: 1,
			})
		}
	}
	screen.DrawTriangles(v.vertices, v.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Render.Width, v.cfg.Render.Height
}

// keyName maps Ebiten key names onto the translator's names, so arrow keys
// read "up" rather than "arrowup".
func keyName(k ebiten.Key) string {
	return strings.ToLower(strings.TrimPrefix(k.String(), "Arrow"))
}

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

	p, err := app.Build(cfg, log)
	if err != nil {
		log.Error("failed to build pipeline", zap.Error(err))
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Render.Width, cfg.Render.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	if cfg.Window.FPSLimit > 0 {
		ebiten.SetTPS(cfg.Window.FPSLimit)
	}

	v := &viewer{
		cfg:      cfg,
		pipeline: p,
		log:      log,
		shotKey:  strings.ToLower(strings.TrimSpace(cfg.Window.ScreenshotKey)),
		raster:   debug.NewFrameRasterizer(cfg.Render.Width, cfg.Render.Height),
		capture:  debug.NewScreenshotCapture(cfg.Snapshot.OutputDir, "softrender"),
		last:     time.Now(),
	}
	if cfg.Render.Outline {
		v.raster.SetOutline(&outlineColor)
	}
	log.Info("starting ebiten viewer")
	if err := ebiten.RunGame(v); err != nil {
		log.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("viewer closed normally")
}
