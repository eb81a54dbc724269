package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Color // Metal color
	Fuzz   float32    // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Color, fuzz float32) *Metal {
	return &Metal{Albedo: albedo, Fuzz: max(0, min(1, fuzz))}
}

// Scatter reflects the ray about the normal and perturbs it by Fuzz.
// Rays perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAt(hit.Point, reflected, rayIn.Time)
	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scattered.Direction.Dot(hit.Normal) > 0
}
