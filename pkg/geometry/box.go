package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer/pkg/core"
)

// Box is a solid axis-aligned box. It also serves to draw bounding volumes.
type Box struct {
	Bounds   core.AABB
	Material core.Material
}

// NewBox creates a box spanning min to max
func NewBox(min, max core.Point3, material core.Material) *Box {
	return &Box{Bounds: core.NewAABBFromPoints(min, max), Material: material}
}

// NewBoundingBoxProxy creates a drawable box matching a hittable's bounds.
// ok is false if the object cannot be bounded.
func NewBoundingBoxProxy(object core.Hittable, time0, time1 float32, material core.Material) (*Box, bool) {
	bounds, ok := object.BoundingBox(time0, time1)
	if !ok {
		return nil, false
	}
	return &Box{Bounds: bounds, Material: material}, true
}

// Hit uses the slab test; rays starting inside the box hit its far side
func (b *Box) Hit(ray core.Ray, tMin, tMax float32) (*core.HitRecord, bool) {
	t0, t1, ok := b.Bounds.Interval(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	t := t0
	if t0 <= tMin {
		if t1 >= tMax {
			return nil, false
		}
		t = t1
	}

	point := ray.At(t)
	axis, sign := b.face(point)

	var outward core.Vec3
	switch axis {
	case 0:
		outward = core.NewVec3(sign, 0, 0)
	case 1:
		outward = core.NewVec3(0, sign, 0)
	default:
		outward = core.NewVec3(0, 0, sign)
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    point,
		Material: b.Material,
		UV:       b.faceUV(point, axis),
	}
	hitRecord.SetFaceNormal(ray, outward)
	return hitRecord, true
}

// face finds the side of the box the point lies on
func (b *Box) face(p core.Point3) (axis int, sign float32) {
	best := float32(-1)
	for a := 0; a < 3; a++ {
		lo := p.Axis(a) - b.Bounds.Min.Axis(a)
		hi := b.Bounds.Max.Axis(a) - p.Axis(a)
		if d := math32.Abs(lo); best < 0 || d < best {
			best, axis, sign = d, a, -1
		}
		if d := math32.Abs(hi); d < best {
			best, axis, sign = d, a, 1
		}
	}
	return axis, sign
}

// faceUV maps the point to [0,1]² across the two axes spanning the face
func (b *Box) faceUV(p core.Point3, axis int) core.Vec2 {
	ua, va := (axis+1)%3, (axis+2)%3
	size := b.Bounds.Size()
	var u, v float32
	if s := size.Axis(ua); s > 0 {
		u = (p.Axis(ua) - b.Bounds.Min.Axis(ua)) / s
	}
	if s := size.Axis(va); s > 0 {
		v = (p.Axis(va) - b.Bounds.Min.Axis(va)) / s
	}
	return core.NewVec2(u, v)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox(time0, time1 float32) (core.AABB, bool) {
	return b.Bounds, true
}
