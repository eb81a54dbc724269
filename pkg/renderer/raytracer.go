package renderer

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer/pkg/core"
)

var (
	skyTop    = core.NewColor(0.5, 0.7, 1.0)
	skyBottom = core.NewColor(1.0, 1.0, 1.0)
)

// Background returns the sky gradient seen by rays that escape the scene
func Background(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyBottom.Lerp(skyTop, t)
}

// RayColor traces ray through world and returns the gathered light. Every
// bounce costs one unit of depth; at zero depth no more light is gathered.
func RayColor(ray core.Ray, world core.Hittable, depth int, sampler core.Sampler, tMin float32) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, tMin, math32.Inf(1))
	if !isHit {
		return Background(ray)
	}
	if hit.Material == nil {
		return core.Color{}
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return core.Color{}
	}

	return scatter.Attenuation.MultiplyVec(RayColor(scatter.Scattered, world, depth-1, sampler, tMin))
}

// PostProcess clamps a linear color to [0, 0.999] and applies gamma 2.
// NaN channels become black.
func PostProcess(c core.Color) core.Color {
	for _, ch := range []*float32{&c.X, &c.Y, &c.Z} {
		if math32.IsNaN(*ch) {
			*ch = 0
		}
	}
	return c.Clamp(0, 0.999).GammaCorrect(2)
}
