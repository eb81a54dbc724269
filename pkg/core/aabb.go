package core

import "github.com/chewxy/math32"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Point3 // Minimum corner
	Max Point3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Point3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the box that contains nothing: Min = +Inf, Max = -Inf.
// It is the identity element for SurroundingBox.
func EmptyAABB() AABB {
	inf := math32.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Point3) AABB {
	box := EmptyAABB()
	for _, p := range points {
		box = box.Union(NewAABB(p, p))
	}
	return box
}

// SurroundingBox returns the smallest box containing both boxes
func SurroundingBox(box0, box1 AABB) AABB {
	return box0.Union(box1)
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math32.Min(aabb.Min.X, other.Min.X),
			Y: math32.Min(aabb.Min.Y, other.Min.Y),
			Z: math32.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math32.Max(aabb.Max.X, other.Max.X),
			Y: math32.Max(aabb.Max.Y, other.Max.Y),
			Z: math32.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Interval clips [tMin, tMax] against the three slabs of the box and returns the
// surviving parametric interval. ok is false when the ray misses the box.
func (aabb AABB) Interval(ray Ray, tMin, tMax float32) (t0, t1 float32, ok bool) {
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)
		lo := aabb.Min.Axis(axis)
		hi := aabb.Max.Axis(axis)

		// Parallel to this slab: inside or out for every t
		if direction == 0 {
			if origin < lo || origin > hi {
				return 0, 0, false
			}
			continue
		}

		invD := 1.0 / direction
		near := (lo - origin) * invD
		far := (hi - origin) * invD
		if invD < 0 {
			near, far = far, near
		}

		if near > tMin {
			tMin = near
		}
		if far < tMax {
			tMax = far
		}
		if tMax <= tMin {
			return 0, 0, false
		}
	}
	return tMin, tMax, true
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax float32) bool {
	_, _, ok := aabb.Interval(ray, tMin, tMax)
	return ok
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Point3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsEmpty reports whether the box contains no points
func (aabb AABB) IsEmpty() bool {
	return !aabb.IsValid()
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}
