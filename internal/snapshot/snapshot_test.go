package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestComposeScales(t *testing.T) {
	src := solid(4, 3, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	got := Compose(src, Options{Scale: 3})
	if b := got.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Fatalf("Compose() size = %v, want 12x9", b)
	}
	if c := got.RGBAAt(11, 8); c != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("corner = %v, want source colour", c)
	}
	if src.Bounds().Dx() != 4 {
		t.Fatalf("source was modified")
	}
}

func TestComposeStampsStatus(t *testing.T) {
	src := solid(200, 40, color.RGBA{A: 255})
	plain := Compose(src, Options{})
	stamped := Compose(src, Options{Status: "60fps idle #3"})

	changed := false
	for i := range plain.Pix {
		if plain.Pix[i] != stamped.Pix[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Fatalf("Compose() with status left the image unchanged")
	}
	if c := stamped.RGBAAt(199, 39); c != (color.RGBA{A: 255}) {
		t.Fatalf("far corner = %v, want untouched", c)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	src := solid(5, 2, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	if err := Write(path, src, Options{Scale: 2}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 4 {
		t.Fatalf("decoded size = %v, want 10x4", b)
	}
	r, g, b, _ := img.At(9, 3).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Fatalf("decoded pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("directory has %d entries, want only the png", len(entries))
	}
}
