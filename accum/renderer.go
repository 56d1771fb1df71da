package accum

import (
	"image"

	"lumen/geom"
)

// Buffer is a render-target-sized RGBA8 colour buffer.
type Buffer interface {
	Size() (w, h int)
	// Clear resets every sample to zero.
	Clear()
	// Image exposes the buffer for presentation. Callers must not keep it
	// across frames.
	Image() image.Image
}

// Params is the per-frame state handed to a Renderer.
type Params struct {
	// Time is seconds since process start; used for noise seeding only.
	Time float64
	// Frame counts renders since the session (re)started.
	Frame uint32
	// Moving is set once the user has engaged the explorer.
	Moving bool

	Position    geom.Point3
	Orientation geom.Point2 // yaw, pitch
}

// Renderer turns a camera pose and the previous frame's accumulated image
// into a new colour buffer.
//
// Render must write every pixel of dst and must not retain history or dst
// after it returns. history and dst are always distinct buffers created by
// the same Renderer's NewBuffer.
type Renderer interface {
	NewBuffer(w, h int) (Buffer, error)
	Render(p Params, history, dst Buffer) error
}
