package hal

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
)

// hostFramebuffer keeps a copy of the last presented frame at screen size.
// Hosts that cannot draw the renderer's image directly (terminal,
// headless) present through it.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	img    *image.RGBA
	status string
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	f := &hostFramebuffer{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	f.ClearRGB(0xff, 0xff, 0xff)
	return f
}

func (f *hostFramebuffer) ScreenSize() (int, int) { return f.width, f.height }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(color.RGBA{r, g, b, 0xff}), image.Point{}, draw.Src)
}

// Show copies frame, scaling to the screen with nearest-neighbour when the
// render target is smaller.
func (f *hostFramebuffer) Show(frame image.Image, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if frame != nil {
		if frame.Bounds().Size() == f.img.Bounds().Size() {
			draw.Draw(f.img, f.img.Bounds(), frame, frame.Bounds().Min, draw.Src)
		} else {
			draw.NearestNeighbor.Scale(f.img, f.img.Bounds(), frame, frame.Bounds(), draw.Src, nil)
		}
	}
	f.status = status
	return nil
}

// snapshot returns a copy of the current frame and status.
func (f *hostFramebuffer) snapshot() (*image.RGBA, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	img := image.NewRGBA(f.img.Bounds())
	copy(img.Pix, f.img.Pix)
	return img, f.status
}

// view calls fn with the current frame under the lock; fn must not keep img.
func (f *hostFramebuffer) view(fn func(img *image.RGBA, status string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.img, f.status)
}
