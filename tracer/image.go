package tracer

import (
	"image"
)

// Image is an RGBA8 accumulation buffer backed by *image.RGBA.
type Image struct {
	rgba *image.RGBA
}

func NewImage(w, h int) *Image {
	return &Image{rgba: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (m *Image) Size() (int, int) {
	b := m.rgba.Bounds()
	return b.Dx(), b.Dy()
}

func (m *Image) Clear() { clear(m.rgba.Pix) }

func (m *Image) Image() image.Image { return m.rgba }

// RGBA exposes the backing image.
func (m *Image) RGBA() *image.RGBA { return m.rgba }
