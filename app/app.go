// Package app wires the explorer together: it fetches startup resources,
// builds the renderer, camera and accumulation driver, and hands hosts a
// step function that runs one frame per display refresh.
package app

import (
	"context"
	"fmt"

	"lumen/accum"
	"lumen/camera"
	"lumen/geom"
	"lumen/hal"
	"lumen/resource"
	"lumen/scene"
)

// New returns a hal.App that starts a session with cfg.
func New(ctx context.Context, cfg Config) hal.App {
	return func(h hal.HAL) (func() error, error) {
		s, err := Start(ctx, h, cfg)
		if err != nil {
			return nil, err
		}
		return NewStep(s, h), nil
	}
}

// Start fetches the shader and scene, then builds the renderer and the
// session. Any failure aborts before the render loop exists; a failed fetch
// aborts before a renderer is constructed.
func Start(ctx context.Context, h hal.HAL, cfg Config) (*Session, error) {
	log := h.Logger()
	log.WriteLineString(fmt.Sprintf("lumen: fetching %s, %s", cfg.Shader, cfg.Scene))

	fetched, err := resource.FetchAll(ctx, cfg.fetcher(), cfg.Shader, cfg.Scene)
	if err != nil {
		return nil, err
	}
	src, sceneData := fetched[0], fetched[1]

	scn, err := scene.Parse(sceneData)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", cfg.Scene, err)
	}
	if cfg.Bounces > 0 {
		scn.MaxBounce = cfg.Bounces
		if err := scn.Validate(); err != nil {
			return nil, err
		}
	}
	if cfg.Speed > 0 {
		scn.Camera.Speed = cfg.Speed
	}

	newRenderer := cfg.NewRenderer
	if newRenderer == nil {
		if newRenderer, err = RendererFor(cfg.Renderer); err != nil {
			return nil, err
		}
	}
	r, err := newRenderer(src, scn.Config(), scn)
	if err != nil {
		return nil, err
	}

	sw, sh := h.Display().ScreenSize()
	div := max(cfg.Resolution, 1)
	w, ht := max(sw/div, 1), max(sh/div, 1)
	d, err := accum.NewDriver(r, w, ht)
	if err != nil {
		return nil, err
	}

	c := scn.Camera
	cam := camera.New(geom.P3(c.Position[0], c.Position[1], c.Position[2]), c.Yaw, c.Pitch, c.Speed)
	log.WriteLineString(fmt.Sprintf("lumen: %s renderer, %d spheres, %d lights, target %dx%d (screen %dx%d / %d)",
		rendererName(cfg), len(scn.Spheres), len(scn.Lights), w, ht, sw, sh, div))

	return NewSession(d, cam, h.Input().Queue(), log, h.Clock().Now(), float64(max(sw, sh))), nil
}

// NewStep adapts s to the host's per-frame step function and presents the
// driver's output after every tick.
func NewStep(s *Session, h hal.HAL) func() error {
	return guardStep(h, func() error {
		if err := s.Tick(h.Clock().Now()); err != nil {
			return err
		}
		return h.Display().Show(s.driver.Output().Image(), s.Status())
	})
}

func rendererName(cfg Config) string {
	switch {
	case cfg.NewRenderer != nil:
		return "custom"
	case cfg.Renderer == "":
		return "cpu"
	default:
		return cfg.Renderer
	}
}
