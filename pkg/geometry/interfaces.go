package geometry

import "github.com/df07/go-raytracer/pkg/core"

var (
	_ core.Hittable = (*Sphere)(nil)
	_ core.Hittable = (*MovingSphere)(nil)
	_ core.Hittable = (*Plane)(nil)
	_ core.Hittable = (*Triangle)(nil)
	_ core.Hittable = (*Box)(nil)
	_ core.Hittable = (*HittableList)(nil)
	_ core.Hittable = (*BVHNode)(nil)
)
