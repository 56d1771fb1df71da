//go:build cgo

package gpu

import (
	"errors"
	"fmt"
	"image"
	"maps"

	"github.com/hajimehoshi/ebiten/v2"

	"lumen/accum"
	"lumen/scene"
)

var ErrBufferType = errors.New("gpu: buffer was not created by this renderer")

// Image is a GPU-resident accumulation buffer.
type Image struct {
	img *ebiten.Image
	w   int
	h   int
}

func (m *Image) Size() (int, int) { return m.w, m.h }
func (m *Image) Clear()           { m.img.Clear() }

// Image returns the backing *ebiten.Image; hosts that run ebiten draw it
// directly instead of reading pixels back.
func (m *Image) Image() image.Image { return m.img }

type Renderer struct {
	shader   *ebiten.Shader
	uniforms map[string]any
}

var _ accum.Renderer = (*Renderer)(nil)

// New compiles src. A compile failure carries the compiler log.
func New(src []byte, cfg scene.Config, scn *scene.Scene) (*Renderer, error) {
	u, err := SceneUniforms(cfg, scn)
	if err != nil {
		return nil, err
	}
	sh, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("error compiling fragment shader:\n\n%w", err)
	}
	return &Renderer{shader: sh, uniforms: u}, nil
}

func (r *Renderer) NewBuffer(w, h int) (accum.Buffer, error) {
	return &Image{
		img: ebiten.NewImageWithOptions(image.Rect(0, 0, w, h), &ebiten.NewImageOptions{Unmanaged: true}),
		w:   w,
		h:   h,
	}, nil
}

func (r *Renderer) Render(p accum.Params, history, dst accum.Buffer) error {
	hist, ok := history.(*Image)
	if !ok {
		return ErrBufferType
	}
	out, ok := dst.(*Image)
	if !ok {
		return ErrBufferType
	}
	if hist.w != out.w || hist.h != out.h {
		return fmt.Errorf("gpu: history %dx%d does not match target %dx%d", hist.w, hist.h, out.w, out.h)
	}

	u := maps.Clone(r.uniforms)
	SetFrameUniforms(u, p, out.w, out.h)

	op := &ebiten.DrawRectShaderOptions{
		Uniforms: u,
		Blend:    ebiten.BlendCopy,
	}
	op.Images[0] = hist.img
	out.img.DrawRectShader(out.w, out.h, r.shader, op)
	return nil
}
