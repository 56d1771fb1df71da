package tracer

import (
	"bytes"
	"errors"
	"testing"

	"lumen/accum"
	"lumen/geom"
	"lumen/scene"
)

// glowScene encloses the camera in a uniformly emitting sphere, so every
// primary ray returns the same radiance.
func glowScene() *scene.Scene {
	return &scene.Scene{
		Spheres: []scene.Sphere{
			// Behind the camera, never seen by a +X-facing view.
			{Center: [3]float64{-50, 0, 0}, Radius: 0.1, Albedo: [3]float64{1, 1, 1}},
		},
		Lights: []scene.Sphere{
			{Center: [3]float64{0, 0, 0}, Radius: 100, Emission: [3]float64{0.25, 0.25, 0.25}},
		},
		MaxBounce: 2,
		Epsilon:   1e-4,
	}
}

func newGlow(t *testing.T) *Renderer {
	t.Helper()
	scn := glowScene()
	r, err := New(scn.Config(), scn)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	r.Workers = 3
	return r
}

func fill(m *Image, v uint8) {
	for i := range m.rgba.Pix {
		m.rgba.Pix[i] = v
	}
}

func TestNewRejectsInvalidScene(t *testing.T) {
	scn := &scene.Scene{MaxBounce: 1}
	if _, err := New(scn.Config(), scn); !errors.Is(err, scene.ErrNoSpheres) {
		t.Fatalf("New() error = %v, want ErrNoSpheres", err)
	}
	good := glowScene()
	cfg := good.Config()
	cfg.SphereCount++
	if _, err := New(cfg, good); err == nil {
		t.Fatalf("New() with mismatched config error = nil")
	}
}

func TestRenderFirstFrameIsSample(t *testing.T) {
	r := newGlow(t)
	hist, dst := NewImage(8, 5), NewImage(8, 5)
	fill(hist, 200)

	if err := r.Render(accum.Params{Frame: 0}, hist, dst); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// sqrt(0.25) = 0.5 -> 127
	for i := 0; i < len(dst.rgba.Pix); i += 4 {
		px := dst.rgba.Pix[i : i+4]
		if px[0] != 127 || px[1] != 127 || px[2] != 127 || px[3] != 255 {
			t.Fatalf("pixel %d = %v, want [127 127 127 255]", i/4, px)
		}
	}
}

func TestRenderBlendsWithHistoryWhenSettled(t *testing.T) {
	r := newGlow(t)
	hist, dst := NewImage(4, 4), NewImage(4, 4)
	fill(hist, 255)

	if err := r.Render(accum.Params{Frame: 1}, hist, dst); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := dst.rgba.Pix[0]; got != 191 {
		t.Fatalf("blended sample = %d, want 191", got)
	}
	for _, v := range hist.rgba.Pix {
		if v != 255 {
			t.Fatalf("Render() modified history")
		}
	}
}

func TestRenderIgnoresHistoryWhileMoving(t *testing.T) {
	r := newGlow(t)
	hist, dst := NewImage(4, 4), NewImage(4, 4)
	fill(hist, 255)

	if err := r.Render(accum.Params{Frame: 7, Moving: true}, hist, dst); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := dst.rgba.Pix[0]; got != 127 {
		t.Fatalf("moving sample = %d, want 127", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	scn := scene.Default()
	p := accum.Params{
		Time:     1.5,
		Frame:    3,
		Position: geom.P3(-2, 0.5, 0),
	}
	render := func(workers int) []uint8 {
		r, err := New(scn.Config(), scn)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		r.Workers = workers
		hist, dst := NewImage(16, 12), NewImage(16, 12)
		if err := r.Render(p, hist, dst); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		return dst.rgba.Pix
	}
	a, b := render(1), render(4)
	if !bytes.Equal(a, b) {
		t.Fatalf("Render() output depends on worker count")
	}
}

func TestRenderRejectsForeignBuffers(t *testing.T) {
	r := newGlow(t)
	if err := r.Render(accum.Params{}, fakeBuf{}, NewImage(1, 1)); !errors.Is(err, ErrBufferType) {
		t.Fatalf("Render() error = %v, want ErrBufferType", err)
	}
	if err := r.Render(accum.Params{}, NewImage(2, 2), NewImage(1, 1)); err == nil {
		t.Fatalf("Render() with mismatched sizes error = nil")
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		h, s  uint8
		frame uint32
		want  uint8
	}{
		{0, 200, 0, 200},
		{100, 200, 1, 150},
		{90, 30, 2, 70},
		{255, 255, 100, 255},
	}
	for _, tt := range tests {
		if got := blend(tt.h, tt.s, tt.frame); got != tt.want {
			t.Fatalf("blend(%d, %d, %d) = %d, want %d", tt.h, tt.s, tt.frame, got, tt.want)
		}
	}
}

func TestEncode(t *testing.T) {
	if got := encode(-1); got != 0 {
		t.Fatalf("encode(-1) = %d, want 0", got)
	}
	if got := encode(4); got != 255 {
		t.Fatalf("encode(4) = %d, want 255", got)
	}
	if got := encode(1); got != 255 {
		t.Fatalf("encode(1) = %d, want 255", got)
	}
}

type fakeBuf struct{ accum.Buffer }
