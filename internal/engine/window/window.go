// Package window is the SDL2 draw sink: it owns the window, fills draw
// lists with the SDL renderer and forwards key events to the input
// translator.
package window

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/softrender/internal/engine/input"
	"github.com/Faultbox/softrender/internal/engine/renderer"
	"github.com/Faultbox/softrender/internal/engine/shade"
)

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// OutlineColor is used when Config.Outline is set.
var OutlineColor = sdl.Color{R: 0xff, A: 0xff}

// Config holds window configuration.
type Config struct {
	Title   string
	Width   int
	Height  int
	VSync   bool
	Outline bool

	// ScreenshotKey is reported through Events instead of reaching the
	// translator. Lower-case key name; empty disables it.
	ScreenshotKey string
}

// Events summarizes one PollEvents call.
type Events struct {
	Quit       bool
	Screenshot bool
}

// Window wraps an SDL2 window and its 2D renderer.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	canvas    *sdl.Renderer
	vertices  []sdl.Vertex
	log       *zap.Logger
}

// New creates a window with an accelerated 2D renderer.
func New(cfg Config, log *zap.Logger) (*Window, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w := &Window{
		config: cfg,
		log:    log,
	}

	log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.canvas, err = sdl.CreateRenderer(w.sdlWindow, -1, flags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
		zap.Bool("outline", cfg.Outline),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.canvas != nil {
		w.canvas.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// Draw clears the window, fills the draw list in order and presents it.
func (w *Window) Draw(list []renderer.DrawTriangle) error {
	if err := w.canvas.SetDrawColor(0, 0, 0, 0xff); err != nil {
		return fmt.Errorf("set draw color: %w", err)
	}
	if err := w.canvas.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	w.vertices = w.vertices[:0]
	for _, tri := range list {
		c := shade.Gray(tri.Shade).RGBA()
		col := sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
		for _, p := range tri.P {
			w.vertices = append(w.vertices, sdl.Vertex{
				Position: sdl.FPoint{X: float32(p.X), Y: float32(p.Y)},
				Color:    col,
			})
		}
	}
	if len(w.vertices) > 0 {
		if err := w.canvas.RenderGeometry(nil, w.vertices, nil); err != nil {
			return fmt.Errorf("render geometry: %w", err)
		}
	}

	if w.config.Outline {
		if err := w.drawOutlines(list); err != nil {
			return err
		}
	}

	w.canvas.Present()
	return nil
}

func (w *Window) drawOutlines(list []renderer.DrawTriangle) error {
	if err := w.canvas.SetDrawColor(OutlineColor.R, OutlineColor.G, OutlineColor.B, OutlineColor.A); err != nil {
		return fmt.Errorf("set outline color: %w", err)
	}
	points := make([]sdl.FPoint, 4)
	for _, tri := range list {
		for i, p := range tri.P {
			points[i] = sdl.FPoint{X: float32(p.X), Y: float32(p.Y)}
		}
		points[3] = points[0]
		if err := w.canvas.DrawLinesF(points); err != nil {
			return fmt.Errorf("draw outline: %w", err)
		}
	}
	return nil
}

// PollEvents drains the SDL queue, forwarding key events to tr.
func (w *Window) PollEvents(tr *input.Translator) Events {
	var ev Events
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			ev.Quit = true
			return ev

		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_ESCAPE {
				ev.Quit = true
				return ev
			}
			key := strings.ToLower(sdl.GetKeyName(e.Keysym.Sym))
			if key == w.config.ScreenshotKey {
				if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
					ev.Screenshot = true
				}
				continue
			}
			if e.Type == sdl.KEYDOWN {
				tr.Press(key)
			} else if e.Type == sdl.KEYUP {
				tr.Release(key)
			}
		}
	}
	return ev
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
