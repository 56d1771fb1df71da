// Package snapshot writes presented frames to PNG files.
package snapshot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"lumen/hud"
)

// Options controls how a frame is written.
type Options struct {
	// Scale upsamples the frame by an integer factor with nearest-neighbour
	// filtering; values below 2 keep the native size.
	Scale int
	// Status, when non-empty, is stamped in the top-left corner.
	Status string
}

// Compose returns the image that Write would encode. src is not modified.
func Compose(src image.Image, opt Options) *image.RGBA {
	b := src.Bounds()
	s := max(opt.Scale, 1)
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*s, b.Dy()*s))
	if s == 1 {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}
	if opt.Status != "" {
		hud.Stamp(dst, strings.Split(opt.Status, "\n"))
	}
	return dst
}

// Write encodes src as PNG at path. The file is written to a temporary
// name in the same directory and renamed into place.
func Write(path string, src image.Image, opt Options) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Compose(src, opt)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snap-*.png")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}
