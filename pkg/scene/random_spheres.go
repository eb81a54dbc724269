package scene

import (
	"math/rand"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

// RandomSpheres scatters n spheres in the box [-5, 5]³ above the ground at
// y = -5. Roughly half are diffuse, a third metal and the rest glass; one in
// five diffuse spheres moves upwards during the exposure.
func RandomSpheres(n int, random *rand.Rand) []core.Hittable {
	palette := Palette()
	spheres := make([]core.Hittable, 0, n)

	for i := 0; i < n; i++ {
		radius := 0.3 + random.Float32()*0.9
		center := core.NewVec3(
			random.Float32()*10-5,
			-5+radius+random.Float32()*(9-radius),
			random.Float32()*10-5,
		)
		albedo := palette[random.Intn(len(palette))]

		choice := random.Float32()
		switch {
		case choice < 0.5:
			mat := material.NewLambertian(albedo)
			if random.Intn(5) == 0 {
				end := center.Add(core.NewVec3(0, random.Float32()*0.5, 0))
				spheres = append(spheres, geometry.NewMovingSphere(center, end, 0, 1, radius, mat))
				continue
			}
			spheres = append(spheres, geometry.NewSphere(center, radius, mat))
		case choice < 0.85:
			spheres = append(spheres, geometry.NewSphere(center, radius, material.NewMetal(albedo, random.Float32()*0.5)))
		default:
			spheres = append(spheres, geometry.NewSphere(center, radius, material.NewDielectric(1.5)))
		}
	}
	return spheres
}
