// Package app wires configuration into a ready renderer.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/softrender/internal/assets"
	"github.com/Faultbox/softrender/internal/config"
	"github.com/Faultbox/softrender/internal/engine/camera"
	"github.com/Faultbox/softrender/internal/engine/input"
	"github.com/Faultbox/softrender/internal/engine/renderer"
	"github.com/Faultbox/softrender/internal/engine/scene"
)

// Pipeline is everything a host needs to produce frames.
type Pipeline struct {
	Renderer   *renderer.Renderer
	Camera     *camera.Camera
	Translator *input.Translator
}

// Build loads the scene and creates the camera, renderer and input
// translator described by cfg.
func Build(cfg *config.Config, log *zap.Logger) (*Pipeline, error) {
	sc, err := scene.Load(assets.NewManager(cfg.Scene.SearchPaths...), cfg.Scene.Models, log)
	if err != nil {
		return nil, err
	}

	cam := cfg.NewCamera()

	r, err := renderer.New(cfg.RendererConfig(), sc, cam, log.Named("renderer"))
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	tr, err := input.NewTranslator(cam, cfg.Input.Bindings, cfg.Input.ClearOnRelease, log.Named("input"))
	if err != nil {
		return nil, fmt.Errorf("creating input translator: %w", err)
	}

	return &Pipeline{Renderer: r, Camera: cam, Translator: tr}, nil
}

// Frame re-arms held keys and renders one frame.
func (p *Pipeline) Frame(elapsed float64) []renderer.DrawTriangle {
	p.Translator.Tick()
	return p.Renderer.RenderFrame(elapsed)
}
