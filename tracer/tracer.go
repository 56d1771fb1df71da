// Package tracer is the CPU reference renderer. It traces one jittered
// sample per pixel per frame and, while the view is settled, folds it into
// the running average held in the history buffer.
package tracer

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sync"

	"lumen/accum"
	"lumen/camera"
	"lumen/geom"
	"lumen/scene"
)

// DefaultFOV is the vertical field of view in radians.
const DefaultFOV = math.Pi / 3

var ErrBufferType = errors.New("tracer: buffer was not created by this renderer")

type Renderer struct {
	// Workers is the number of goroutines sharing rows; <= 0 means NumCPU.
	Workers int
	FOV     float64

	maxBounce int
	eps       float64
	objs      []object
	sky       scene.Sky
}

var _ accum.Renderer = (*Renderer)(nil)

func New(cfg scene.Config, scn *scene.Scene) (*Renderer, error) {
	if scn == nil {
		return nil, errors.New("tracer: nil scene")
	}
	if err := scn.Validate(); err != nil {
		return nil, err
	}
	if cfg.SphereCount != len(scn.Spheres) || cfg.LightCount != len(scn.Lights) {
		return nil, fmt.Errorf("tracer: config expects %d spheres/%d lights, scene has %d/%d",
			cfg.SphereCount, cfg.LightCount, len(scn.Spheres), len(scn.Lights))
	}
	r := &Renderer{
		Workers:   runtime.NumCPU(),
		FOV:       DefaultFOV,
		maxBounce: cfg.MaxBounce,
		eps:       cfg.Epsilon,
		sky:       scn.Sky,
	}
	if r.maxBounce <= 0 {
		r.maxBounce = scene.DefaultMaxBounce
	}
	if r.eps <= 0 {
		r.eps = scene.DefaultEpsilon
	}
	for _, s := range scn.Spheres {
		r.objs = append(r.objs, newSphere(s, false))
	}
	for _, s := range scn.Lights {
		r.objs = append(r.objs, newSphere(s, true))
	}
	if g := scn.Ground; g != nil {
		cell := g.Cell
		if cell <= 0 {
			cell = 1
		}
		r.objs = append(r.objs, &checker{height: g.Height, cell: cell, a: vec(g.A), b: vec(g.B)})
	}
	return r, nil
}

func (r *Renderer) NewBuffer(w, h int) (accum.Buffer, error) {
	return NewImage(w, h), nil
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
	w, h := out.Size()
	if hw, hh := hist.Size(); hw != w || hh != h {
		return fmt.Errorf("tracer: history %dx%d does not match target %dx%d", hw, hh, w, h)
	}
	if w == 0 || h == 0 {
		return nil
	}

	fwd, right, up := camera.Basis(p.Orientation.X, p.Orientation.Y)
	fov := r.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	f := frame{
		p:      p,
		origin: p.Position,
		fwd:    fwd,
		right:  right,
		up:     up,
		tanH:   math.Tan(fov / 2),
		aspect: float64(w) / float64(h),
		w:      w,
		h:      h,
		seed:   uint64(p.Frame)<<32 ^ math.Float64bits(p.Time),
		hist:   hist.rgba.Pix,
		out:    out.rgba.Pix,
		stride: out.rgba.Stride,
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, h)

	rows := make(chan int, h)
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(&f, y)
			}
		}()
	}
	wg.Wait()
	return nil
}

// frame holds the per-Render constants shared by all workers.
type frame struct {
	p              accum.Params
	origin         geom.Point3
	fwd, right, up geom.Point3
	tanH, aspect   float64
	w, h           int
	seed           uint64
	hist, out      []uint8
	stride         int
}

func (r *Renderer) renderRow(f *frame, y int) {
	// One stream per row keeps output independent of scheduling.
	rng := rand.New(rand.NewPCG(f.seed, uint64(y)+1))
	row := y * f.stride
	for x := 0; x < f.w; x++ {
		u := (2*(float64(x)+rng.Float64())/float64(f.w) - 1) * f.aspect * f.tanH
		v := (1 - 2*(float64(y)+rng.Float64())/float64(f.h)) * f.tanH
		d := f.fwd.Add(f.right.Scale(u)).Add(f.up.Scale(v)).Normalized()
		c := r.radiance(ray{o: f.origin, d: d}, rng)

		i := row + x*4
		s := [3]uint8{encode(c.X), encode(c.Y), encode(c.Z)}
		for k := 0; k < 3; k++ {
			if f.p.Moving {
				f.out[i+k] = s[k]
			} else {
				f.out[i+k] = blend(f.hist[i+k], s[k], f.p.Frame)
			}
		}
		f.out[i+3] = 255
	}
}

func (r *Renderer) radiance(rr ray, rng *rand.Rand) geom.Point3 {
	var (
		col        geom.Point3
		throughput = geom.P3(1, 1, 1)
		h          hit
	)
	for bounce := 0; bounce <= r.maxBounce; bounce++ {
		if !r.trace(rr, &h) {
			col = col.Add(throughput.Mul(r.skyColor(rr.d)))
			break
		}
		col = col.Add(throughput.Mul(h.emission))
		if h.light {
			break
		}
		throughput = throughput.Mul(h.albedo)
		rr = ray{o: h.p.Add(h.n.Scale(r.eps)), d: cosineHemisphere(h.n, rng)}
	}
	return col
}

func (r *Renderer) trace(rr ray, h *hit) bool {
	found := false
	tMax := math.Inf(1)
	var tmp hit
	for _, o := range r.objs {
		if o.intersect(rr, r.eps, tMax, &tmp) {
			found = true
			tMax = tmp.t
			*h = tmp
		}
	}
	return found
}

func (r *Renderer) skyColor(d geom.Point3) geom.Point3 {
	t := 0.5 * (d.Y + 1)
	return vec(r.sky.Horizon).Scale(1 - t).Add(vec(r.sky.Zenith).Scale(t))
}

func cosineHemisphere(n geom.Point3, rng *rand.Rand) geom.Point3 {
	u1, u2 := rng.Float64(), rng.Float64()
	rad := math.Sqrt(u1)
	sin, cos := math.Sincos(2 * math.Pi * u2)

	// Orthonormal basis around n.
	a := geom.P3(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		a = geom.P3(0, 1, 0)
	}
	t := n.Cross(a).Normalized()
	b := n.Cross(t)
	return t.Scale(rad * cos).Add(b.Scale(rad * sin)).Add(n.Scale(math.Sqrt(1 - u1))).Normalized()
}

// encode maps linear radiance to an 8-bit gamma-2 value.
func encode(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	v = math.Sqrt(v) * 255.999
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// blend folds sample s into the running average h over frame+1 samples.
func blend(h, s uint8, frame uint32) uint8 {
	v := float64(h) + (float64(s)-float64(h))/float64(frame+1)
	return uint8(math.Round(v))
}
