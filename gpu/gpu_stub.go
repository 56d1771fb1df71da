//go:build !cgo

package gpu

import (
	"lumen/accum"
	"lumen/scene"
)

type Renderer struct{ accum.Renderer }

func New(_ []byte, _ scene.Config, _ *scene.Scene) (*Renderer, error) {
	return nil, ErrUnsupported
}
