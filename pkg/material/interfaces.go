package material

import "github.com/df07/go-raytracer/pkg/core"

var (
	_ core.Material = (*Lambertian)(nil)
	_ core.Material = (*Metal)(nil)
	_ core.Material = (*Dielectric)(nil)

	_ core.Texture = (*SolidColor)(nil)
	_ core.Texture = (*Checker)(nil)
	_ core.Texture = (*ImageTexture)(nil)
	_ core.Texture = (*NoiseTexture)(nil)
)
