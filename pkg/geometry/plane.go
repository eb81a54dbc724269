package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Point3   // A point on the plane
	Normal   core.Vec3     // Unit normal vector
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point core.Point3, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float32) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never meet the plane
	if math32.Abs(denominator) < 1e-8 {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitRecord := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: p.Material,
		UV: core.NewVec2(
			(hitPoint.X-p.Point.X)/2,
			(hitPoint.Z-p.Point.Z)/2,
		),
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// BoundingBox reports that an infinite plane cannot be bounded
func (p *Plane) BoundingBox(time0, time1 float32) (core.AABB, bool) {
	return core.AABB{}, false
}
