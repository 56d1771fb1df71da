// Package hud draws the diagnostic status text (frame rate, mode, pose)
// onto presented frames and snapshots. It never touches the history
// buffer.
package hud

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	ColorFG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	ColorBG = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xa0}
)

// Font is the overlay font.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

const pad = 3

// Canvas adapts an *image.RGBA to drivers.Displayer so tinyfont can draw
// on it.
type Canvas struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*Canvas)(nil)

func NewCanvas(img *image.RGBA) *Canvas { return &Canvas{img: img} }

func (c *Canvas) Size() (x, y int16) {
	if c.img == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if c.img == nil {
		return
	}
	b := c.img.Bounds()
	p := image.Pt(b.Min.X+int(x), b.Min.Y+int(y))
	if !p.In(b) {
		return
	}
	c.img.SetRGBA(p.X, p.Y, blend(c.img.RGBAAt(p.X, p.Y), col))
}

func (c *Canvas) Display() error { return nil }

func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	if c.img == nil {
		return nil
	}
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).
		Add(c.img.Bounds().Min).
		Intersect(c.img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c.img.SetRGBA(px, py, blend(c.img.RGBAAt(px, py), col))
		}
	}
	return nil
}

func (c *Canvas) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// Draw writes one line of text with its baseline at y.
func Draw(img *image.RGBA, x, y int16, text string, col color.RGBA) {
	tinyfont.WriteLine(NewCanvas(img), Font, x, y, text, col)
}

// Measure returns the panel size needed for lines.
func Measure(lines []string) (w, h int) {
	for _, l := range lines {
		_, ow := tinyfont.LineWidth(Font, l)
		w = max(w, int(ow))
	}
	if len(lines) == 0 {
		return 0, 0
	}
	return w + 2*pad, len(lines)*int(Font.GetYAdvance()) + 2*pad
}

// Stamp draws lines on a translucent panel in the top-left corner of dst.
func Stamp(dst *image.RGBA, lines []string) {
	w, h := Measure(lines)
	if w == 0 {
		return
	}
	c := NewCanvas(dst)
	_ = c.FillRectangle(0, 0, int16(w), int16(h), ColorBG)

	adv := int16(Font.GetYAdvance())
	for i, l := range lines {
		// tinyfont y is the baseline; step one advance per line.
		y := int16(pad) + adv*int16(i+1) - 2
		tinyfont.WriteLine(c, Font, pad, y, l, ColorFG)
	}
}

// Panel renders lines onto a fresh image sized to fit them.
func Panel(lines []string) *image.RGBA {
	w, h := Measure(lines)
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	Stamp(img, lines)
	return img
}

// blend composites src over dst with straight alpha.
func blend(dst, src color.RGBA) color.RGBA {
	if src.A == 0xff {
		return src
	}
	a := uint32(src.A)
	ia := 255 - a
	return color.RGBA{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*ia) / 255),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*ia) / 255),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*ia) / 255),
		A: uint8(min(255, uint32(dst.A)+a)),
	}
}
