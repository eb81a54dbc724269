package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point3
	Radius   float32
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float32, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float32) (*core.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float32) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// hitSphere solves |O + tD - C|² = r² and keeps the closest root inside (tMin, tMax)
func hitSphere(center core.Point3, radius float32, mat core.Material, ray core.Ray, tMin, tMax float32) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return nil, false
	}
	sqrtD := math32.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = SphereUV(outwardNormal)

	return hitRecord, true
}

// SphereUV maps a point on the unit sphere to texture coordinates:
// u = (atan2(-z, x) + π) / 2π, v = acos(-y) / π
func SphereUV(p core.Point3) core.Vec2 {
	theta := math32.Acos(max(-1, min(1, -p.Y)))
	phi := math32.Atan2(-p.Z, p.X) + math32.Pi
	return core.NewVec2(phi/(2*math32.Pi), theta/math32.Pi)
}

func sphereBox(center core.Point3, radius float32) core.AABB {
	r := math32.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(center.Subtract(extent), center.Add(extent))
}
