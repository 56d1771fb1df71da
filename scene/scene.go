// Package scene describes what the explorer renders: spheres, emissive
// lights, the sky, an optional checker ground plane and the initial camera.
//
// Scenes are JSON documents. Renderers never see the document itself; they
// are built from the typed Config plus the validated Scene.
package scene

import (
	"errors"
	"fmt"
)

const (
	// SphereSize is the number of packed floats per sphere: centre and radius.
	SphereSize = 4

	MaxSpheres     = 16
	MaxLights      = 4
	MaxBounceLimit = 8

	DefaultMaxBounce = 4
	DefaultEpsilon   = 1e-4
	DefaultSpeed     = 0.05
)

var (
	ErrNoSpheres      = errors.New("scene: no spheres")
	ErrBadRadius      = errors.New("scene: radius must be positive")
	ErrTooManySpheres = errors.New("scene: too many spheres")
	ErrTooManyLights  = errors.New("scene: too many lights")
	ErrBadBounce      = errors.New("scene: bounce count out of range")
)

type Sphere struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Albedo   [3]float64 `json:"albedo,omitempty"`
	Emission [3]float64 `json:"emission,omitempty"`
}

// ToArray packs the sphere as SphereSize floats.
func (s Sphere) ToArray() [SphereSize]float32 {
	return [SphereSize]float32{
		float32(s.Center[0]),
		float32(s.Center[1]),
		float32(s.Center[2]),
		float32(s.Radius),
	}
}

// Sky is a vertical gradient from Horizon to Zenith.
type Sky struct {
	Horizon [3]float64 `json:"horizon"`
	Zenith  [3]float64 `json:"zenith"`
}

// Ground is an infinite y=Height plane with a two-colour checker of the
// given cell size.
type Ground struct {
	Height float64    `json:"height"`
	Cell   float64    `json:"cell"`
	A      [3]float64 `json:"a"`
	B      [3]float64 `json:"b"`
}

type CameraPose struct {
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Pitch    float64    `json:"pitch"`
	Speed    float64    `json:"speed,omitempty"`
}

type Scene struct {
	Spheres   []Sphere   `json:"spheres"`
	Lights    []Sphere   `json:"lights,omitempty"`
	Sky       Sky        `json:"sky"`
	Ground    *Ground    `json:"ground,omitempty"`
	MaxBounce int        `json:"max_bounce,omitempty"`
	Epsilon   float64    `json:"epsilon,omitempty"`
	Camera    CameraPose `json:"camera"`
}

// Config is the typed renderer configuration derived from a scene. It
// replaces textual substitution of constants into shader source.
type Config struct {
	SphereCount int
	LightCount  int
	MaxBounce   int
	Epsilon     float64
}

func (s *Scene) Config() Config {
	return Config{
		SphereCount: len(s.Spheres),
		LightCount:  len(s.Lights),
		MaxBounce:   s.MaxBounce,
		Epsilon:     s.Epsilon,
	}
}

// Packed returns every sphere (lights last) as a flat SphereSize-stride
// array, the layout shaders index into.
func (s *Scene) Packed() []float32 {
	out := make([]float32, 0, (len(s.Spheres)+len(s.Lights))*SphereSize)
	for _, sp := range s.Spheres {
		a := sp.ToArray()
		out = append(out, a[:]...)
	}
	for _, sp := range s.Lights {
		a := sp.ToArray()
		out = append(out, a[:]...)
	}
	return out
}

// applyDefaults fills zero-valued tunables.
func (s *Scene) applyDefaults() {
	if s.MaxBounce == 0 {
		s.MaxBounce = DefaultMaxBounce
	}
	if s.Epsilon == 0 {
		s.Epsilon = DefaultEpsilon
	}
	if s.Camera.Speed == 0 {
		s.Camera.Speed = DefaultSpeed
	}
	if s.Ground != nil && s.Ground.Cell == 0 {
		s.Ground.Cell = 1
	}
}

// Validate checks the limits renderers are compiled against.
func (s *Scene) Validate() error {
	if len(s.Spheres) == 0 {
		return ErrNoSpheres
	}
	if len(s.Spheres) > MaxSpheres {
		return fmt.Errorf("%w: %d > %d", ErrTooManySpheres, len(s.Spheres), MaxSpheres)
	}
	if len(s.Lights) > MaxLights {
		return fmt.Errorf("%w: %d > %d", ErrTooManyLights, len(s.Lights), MaxLights)
	}
	for i, sp := range s.Spheres {
		if !(sp.Radius > 0) {
			return fmt.Errorf("%w: sphere %d radius %g", ErrBadRadius, i, sp.Radius)
		}
	}
	for i, sp := range s.Lights {
		if !(sp.Radius > 0) {
			return fmt.Errorf("%w: light %d radius %g", ErrBadRadius, i, sp.Radius)
		}
	}
	if s.MaxBounce < 1 || s.MaxBounce > MaxBounceLimit {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrBadBounce, s.MaxBounce, MaxBounceLimit)
	}
	return nil
}

// Default is the built-in scene: three diffuse spheres on a checker floor
// lit by one emissive sphere.
func Default() *Scene {
	s := &Scene{
		Spheres: []Sphere{
			{Center: [3]float64{3, 0, 0}, Radius: 1, Albedo: [3]float64{0.8, 0.3, 0.3}},
			{Center: [3]float64{4, 0, -2.2}, Radius: 1, Albedo: [3]float64{0.3, 0.8, 0.3}},
			{Center: [3]float64{4, 0, 2.2}, Radius: 1, Albedo: [3]float64{0.3, 0.3, 0.8}},
		},
		Lights: []Sphere{
			{Center: [3]float64{2, 4, 0}, Radius: 0.75, Emission: [3]float64{6, 5.5, 5}},
		},
		Sky: Sky{
			Horizon: [3]float64{1, 1, 1},
			Zenith:  [3]float64{0.5, 0.7, 1},
		},
		Ground: &Ground{
			Height: -1,
			Cell:   1,
			A:      [3]float64{0.8, 0.8, 0.8},
			B:      [3]float64{0.2, 0.2, 0.2},
		},
		Camera: CameraPose{Position: [3]float64{-2, 0.5, 0}},
	}
	s.applyDefaults()
	return s
}
