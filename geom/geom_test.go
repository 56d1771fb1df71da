package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeZeroIsNoop(t *testing.T) {
	var p3 Point3
	p3.Normalize()
	if p3 != (Point3{}) {
		t.Fatalf("Point3{}.Normalize() = %v, want zero", p3)
	}

	var p2 Point2
	p2.Normalize()
	if p2 != (Point2{}) {
		t.Fatalf("Point2{}.Normalize() = %v, want zero", p2)
	}
	if got := (Point3{}).Normalized(); got != (Point3{}) {
		t.Fatalf("Point3{}.Normalized() = %v, want zero", got)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	p := P3(3, -4, 12)
	p.Normalize()
	if m := p.Magnitude(); math.Abs(m-1) > eps {
		t.Fatalf("Magnitude() after Normalize = %v, want 1", m)
	}

	q := P2(-6, 8)
	q.Normalize()
	if q.X != -0.6 || math.Abs(q.Y-0.8) > eps {
		t.Fatalf("Normalize() = %v, want (-0.6, 0.8)", q)
	}
}

func TestMagnitude(t *testing.T) {
	if m := P3(2, 3, 6).Magnitude(); m != 7 {
		t.Fatalf("Magnitude() = %v, want 7", m)
	}
	if m := (Point3{}).Magnitude(); m != 0 {
		t.Fatalf("zero Magnitude() = %v, want 0", m)
	}
	if m := P2(3, 4).Magnitude(); m != 5 {
		t.Fatalf("Magnitude() = %v, want 5", m)
	}
}

func TestAngleFromAxes(t *testing.T) {
	a := P3(0, 0, 5).AngleFromAxes()
	if math.Abs(a.X-math.Pi/2) > eps || math.Abs(a.Y-math.Pi/2) > eps || math.Abs(a.Z) > eps {
		t.Fatalf("AngleFromAxes() = %v, want (pi/2, pi/2, 0)", a)
	}

	z := (Point3{}).AngleFromAxes()
	if !math.IsNaN(z.X) || !math.IsNaN(z.Y) || !math.IsNaN(z.Z) {
		t.Fatalf("zero AngleFromAxes() = %v, want NaN components", z)
	}
}

func TestAngleOrigin(t *testing.T) {
	if a := (Point2{}).Angle(); a != 0 {
		t.Fatalf("origin Angle() = %v, want 0", a)
	}
}

func TestFromAngleRoundTrip(t *testing.T) {
	const steps = 360
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / steps
		got := PointFromAngle(theta).Angle()
		d := math.Mod(got-theta, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		if d > math.Pi {
			d = 2*math.Pi - d
		}
		if d > 1e-12 {
			t.Fatalf("PointFromAngle(%v).Angle() = %v, want %v mod 2pi", theta, got, theta)
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	a := P3(1, 2, 3)
	b := a.Copy()
	b.X = 9
	if a.X != 1 {
		t.Fatalf("mutating copy changed source: %v", a)
	}

	c := P2(1, 2)
	d := c.Copy()
	d.Normalize()
	if c != P2(1, 2) {
		t.Fatalf("normalizing copy changed source: %v", c)
	}
}

func TestCross(t *testing.T) {
	got := P3(1, 0, 0).Cross(P3(0, 1, 0))
	if got != P3(0, 0, 1) {
		t.Fatalf("x cross y = %v, want z", got)
	}
}
