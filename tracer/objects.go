package tracer

import (
	"math"

	"lumen/geom"
	"lumen/scene"
)

type ray struct {
	o geom.Point3
	d geom.Point3
}

func (r ray) at(t float64) geom.Point3 { return r.o.Add(r.d.Scale(t)) }

type hit struct {
	t        float64
	p        geom.Point3
	n        geom.Point3
	albedo   geom.Point3
	emission geom.Point3
	light    bool
}

type object interface {
	// intersect reports the nearest hit in (tMin, tMax).
	intersect(r ray, tMin, tMax float64, h *hit) bool
}

type sphere struct {
	c        geom.Point3
	r        float64
	albedo   geom.Point3
	emission geom.Point3
	light    bool
}

func newSphere(s scene.Sphere, light bool) *sphere {
	return &sphere{
		c:        vec(s.Center),
		r:        s.Radius,
		albedo:   vec(s.Albedo),
		emission: vec(s.Emission),
		light:    light,
	}
}

func (s *sphere) intersect(r ray, tMin, tMax float64, h *hit) bool {
	oc := r.o.Sub(s.c)
	b := oc.Dot(r.d)
	c := oc.Dot(oc) - s.r*s.r
	disc := b*b - c
	if disc < 0 {
		return false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t <= tMin || t >= tMax {
		t = -b + sq
		if t <= tMin || t >= tMax {
			return false
		}
	}
	h.t = t
	h.p = r.at(t)
	h.n = h.p.Sub(s.c).Scale(1 / s.r)
	if h.n.Dot(r.d) > 0 {
		h.n = h.n.Scale(-1)
	}
	h.albedo = s.albedo
	h.emission = s.emission
	h.light = s.light
	return true
}

// checker is the ground plane y = height.
type checker struct {
	height float64
	cell   float64
	a, b   geom.Point3
}

func (g *checker) intersect(r ray, tMin, tMax float64, h *hit) bool {
	if r.d.Y == 0 {
		return false
	}
	t := (g.height - r.o.Y) / r.d.Y
	if t <= tMin || t >= tMax {
		return false
	}
	h.t = t
	h.p = r.at(t)
	h.n = geom.P3(0, 1, 0)
	if r.d.Y > 0 {
		h.n.Y = -1
	}
	ix := int(math.Floor(h.p.X / g.cell))
	iz := int(math.Floor(h.p.Z / g.cell))
	if (ix+iz)&1 == 0 {
		h.albedo = g.a
	} else {
		h.albedo = g.b
	}
	h.emission = geom.Point3{}
	h.light = false
	return true
}

func vec(a [3]float64) geom.Point3 { return geom.P3(a[0], a[1], a[2]) }
