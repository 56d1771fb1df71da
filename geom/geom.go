// Package geom provides the small vector value types shared by the camera,
// the input state and the renderers.
//
// Both types are plain values: assignment copies, nothing is shared.
package geom

import "math"

// Point3 is a 3D vector.
type Point3 struct {
	X, Y, Z float64
}

// P3 is shorthand for Point3{x, y, z}.
func P3(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

// Magnitude returns the Euclidean norm. It is 0 for the zero vector.
func (p Point3) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Normalize scales p to unit length in place.
//
// A zero vector is left unchanged, so callers must not assume a unit result.
func (p *Point3) Normalize() {
	m := p.Magnitude()
	if m == 0 {
		return
	}
	p.X /= m
	p.Y /= m
	p.Z /= m
}

// Normalized returns a unit-length copy of p, or p itself when it is zero.
func (p Point3) Normalized() Point3 {
	p.Normalize()
	return p
}

// AngleFromAxes returns the angle between p and each coordinate axis.
//
// The components are NaN when p is the zero vector; check Magnitude first.
func (p Point3) AngleFromAxes() Point3 {
	m := p.Magnitude()
	return Point3{
		X: math.Acos(p.X / m),
		Y: math.Acos(p.Y / m),
		Z: math.Acos(p.Z / m),
	}
}

// Copy returns an independent copy of p.
func (p Point3) Copy() Point3 { return p }

func (p Point3) Add(o Point3) Point3 { return Point3{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Point3) Sub(o Point3) Point3 { return Point3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Point3) Mul(o Point3) Point3 { return Point3{p.X * o.X, p.Y * o.Y, p.Z * o.Z} }

func (p Point3) Scale(s float64) Point3 { return Point3{p.X * s, p.Y * s, p.Z * s} }

func (p Point3) Dot(o Point3) float64 { return p.X*o.X + p.Y*o.Y + p.Z*o.Z }

func (p Point3) Cross(o Point3) Point3 {
	return Point3{
		X: p.Y*o.Z - p.Z*o.Y,
		Y: p.Z*o.X - p.X*o.Z,
		Z: p.X*o.Y - p.Y*o.X,
	}
}

// Point2 is a 2D vector.
type Point2 struct {
	X, Y float64
}

// P2 is shorthand for Point2{x, y}.
func P2(x, y float64) Point2 { return Point2{X: x, Y: y} }

// PointFromAngle returns the unit vector (cos theta, sin theta).
func PointFromAngle(theta float64) Point2 {
	var p Point2
	p.FromAngle(theta)
	return p
}

// Magnitude returns the Euclidean norm. It is 0 for the zero vector.
func (p Point2) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize scales p to unit length in place. A zero vector is left unchanged.
func (p *Point2) Normalize() {
	m := p.Magnitude()
	if m == 0 {
		return
	}
	p.X /= m
	p.Y /= m
}

// Normalized returns a unit-length copy of p, or p itself when it is zero.
func (p Point2) Normalized() Point2 {
	p.Normalize()
	return p
}

// Angle returns atan2(y, x). The origin maps to 0.
func (p Point2) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// FromAngle sets p to the unit vector at angle theta.
func (p *Point2) FromAngle(theta float64) {
	p.Y, p.X = math.Sincos(theta)
}

// Copy returns an independent copy of p.
func (p Point2) Copy() Point2 { return p }

func (p Point2) Add(o Point2) Point2    { return Point2{p.X + o.X, p.Y + o.Y} }
func (p Point2) Sub(o Point2) Point2    { return Point2{p.X - o.X, p.Y - o.Y} }
func (p Point2) Scale(s float64) Point2 { return Point2{p.X * s, p.Y * s} }
func (p Point2) Dot(o Point2) float64   { return p.X*o.X + p.Y*o.Y }
func (p Point2) IsZero() bool           { return p.X == 0 && p.Y == 0 }
