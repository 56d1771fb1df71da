// Package gpu renders frames with a Kage fragment shader on the GPU.
//
// The shader receives the history image as its first source image and the
// scene as fixed-size uniform arrays; counts are uniforms too, so a scene
// change never needs the shader source rewritten.
package gpu

import (
	"errors"
	"fmt"

	"lumen/accum"
	"lumen/scene"
)

// DefaultFOV is the vertical field of view in radians.
const DefaultFOV = 1.0471975511965976 // π/3

var ErrUnsupported = errors.New("gpu: this build does not support the GPU renderer (requires cgo)")

// SceneUniforms packs the constant part of the uniform set. Arrays are
// padded to the sizes the shader declares.
func SceneUniforms(cfg scene.Config, scn *scene.Scene) (map[string]any, error) {
	if scn == nil {
		return nil, errors.New("gpu: nil scene")
	}
	if cfg.SphereCount > scene.MaxSpheres || cfg.LightCount > scene.MaxLights {
		return nil, fmt.Errorf("%w: %d spheres, %d lights", scene.ErrTooManySpheres, cfg.SphereCount, cfg.LightCount)
	}
	if cfg.SphereCount != len(scn.Spheres) || cfg.LightCount != len(scn.Lights) {
		return nil, fmt.Errorf("gpu: config expects %d spheres/%d lights, scene has %d/%d",
			cfg.SphereCount, cfg.LightCount, len(scn.Spheres), len(scn.Lights))
	}

	// Packed lists lights after the spheres; the shader keeps them apart.
	packed := scn.Packed()
	split := len(scn.Spheres) * scene.SphereSize
	spheres := make([]float32, scene.MaxSpheres*scene.SphereSize)
	copy(spheres, packed[:split])
	lights := make([]float32, scene.MaxLights*scene.SphereSize)
	copy(lights, packed[split:])

	albedo := make([]float32, scene.MaxSpheres*3)
	for i, s := range scn.Spheres {
		copy(albedo[i*3:], vec3(s.Albedo))
	}
	lightColor := make([]float32, scene.MaxLights*3)
	for i, s := range scn.Lights {
		copy(lightColor[i*3:], vec3(s.Emission))
	}

	sky := append(vec3(scn.Sky.Horizon), vec3(scn.Sky.Zenith)...)
	ground := []float32{0, 1, 0, 0}
	groundColor := make([]float32, 6)
	if g := scn.Ground; g != nil {
		cell := g.Cell
		if cell <= 0 {
			cell = 1
		}
		ground = []float32{float32(g.Height), float32(cell), 1, 0}
		copy(groundColor, vec3(g.A))
		copy(groundColor[3:], vec3(g.B))
	}

	eps := cfg.Epsilon
	if eps <= 0 {
		eps = scene.DefaultEpsilon
	}
	return map[string]any{
		"FOV":         float32(DefaultFOV),
		"SphereCount": cfg.SphereCount,
		"LightCount":  cfg.LightCount,
		"MaxBounce":   cfg.MaxBounce,
		"Epsilon":     float32(eps),
		"Spheres":     spheres,
		"Albedo":      albedo,
		"Lights":      lights,
		"LightColor":  lightColor,
		"Sky":         sky,
		"Ground":      ground,
		"GroundColor": groundColor,
	}, nil
}

// SetFrameUniforms writes the per-frame values into u.
func SetFrameUniforms(u map[string]any, p accum.Params, w, h int) {
	moving := float32(0)
	if p.Moving {
		moving = 1
	}
	u["Time"] = float32(p.Time)
	u["Frame"] = float32(p.Frame)
	u["Moving"] = moving
	u["Size"] = []float32{float32(w), float32(h)}
	u["CamPos"] = []float32{float32(p.Position.X), float32(p.Position.Y), float32(p.Position.Z)}
	u["CamDir"] = []float32{float32(p.Orientation.X), float32(p.Orientation.Y)}
}

func vec3(a [3]float64) []float32 {
	return []float32{float32(a[0]), float32(a[1]), float32(a[2])}
}
