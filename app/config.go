package app

import (
	"errors"
	"fmt"

	"lumen/accum"
	"lumen/assets"
	"lumen/gpu"
	"lumen/resource"
	"lumen/scene"
	"lumen/tracer"
)

var ErrUnknownRenderer = errors.New("unknown renderer")

// RendererFunc builds a renderer from the fetched shader source and the
// parsed scene.
type RendererFunc func(src []byte, cfg scene.Config, scn *scene.Scene) (accum.Renderer, error)

type Config struct {
	// Shader and Scene name the startup resources: a file path, an
	// http(s) URL or an embed: name.
	Shader string
	Scene  string

	// Width and Height size the host surface.
	Width  int
	Height int
	// Resolution divides the screen size to get the render target.
	Resolution int

	// Bounces and Speed override the scene when > 0.
	Bounces int
	Speed   float64

	// Renderer is "cpu" or "gpu".
	Renderer string
	HUD      bool

	// Fetcher and NewRenderer override the defaults chosen from the
	// fields above.
	Fetcher     resource.Fetcher
	NewRenderer RendererFunc
}

func DefaultConfig() Config {
	return Config{
		Shader:     resource.EmbedScheme + assets.ShaderName,
		Scene:      resource.EmbedScheme + assets.SceneName,
		Width:      960,
		Height:     540,
		Resolution: 4,
		Renderer:   "cpu",
		HUD:        true,
	}
}

// RendererFor returns the constructor for a renderer name.
func RendererFor(name string) (RendererFunc, error) {
	switch name {
	case "", "cpu":
		return func(_ []byte, cfg scene.Config, scn *scene.Scene) (accum.Renderer, error) {
			r, err := tracer.New(cfg, scn)
			if err != nil {
				return nil, err
			}
			return r, nil
		}, nil
	case "gpu":
		return func(src []byte, cfg scene.Config, scn *scene.Scene) (accum.Renderer, error) {
			r, err := gpu.New(src, cfg, scn)
			if err != nil {
				return nil, err
			}
			return r, nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
}

func (c Config) fetcher() resource.Fetcher {
	if c.Fetcher != nil {
		return c.Fetcher
	}
	return resource.Auto{Embed: resource.FSFetcher{FS: assets.FS}}
}
