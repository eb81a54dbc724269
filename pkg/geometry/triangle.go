package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer/pkg/core"
)

// boxPadding keeps flat primitives from producing zero-width boxes, which the
// slab test would otherwise never report as hit.
const boxPadding = 1e-4

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	A, B, C  core.Point3   // The three vertices, counter-clockwise seen from the front
	Material core.Material // Material of the triangle
	normal   core.Vec3     // Unnormalised face normal (B-A)×(C-A)
	shading  core.Vec3     // Outward normal reported in hit records
	bbox     core.AABB     // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(a, b, c core.Point3, material core.Material) *Triangle {
	t := &Triangle{A: a, B: b, C: c, Material: material}
	t.normal = b.Subtract(a).Cross(c.Subtract(a))
	t.shading = t.normal.Normalize()
	t.computeBoundingBox()
	return t
}

// NewTriangleWithNormal creates a new triangle whose hit records report the given normal
func NewTriangleWithNormal(a, b, c core.Point3, normal core.Vec3, material core.Material) *Triangle {
	t := NewTriangle(a, b, c, material)
	t.shading = normal.Normalize()
	return t
}

func (t *Triangle) computeBoundingBox() {
	box := core.NewAABBFromPoints(t.A, t.B, t.C)
	pad := func(lo, hi *float32) {
		if *hi-*lo < boxPadding {
			*lo -= boxPadding / 2
			*hi += boxPadding / 2
		}
	}
	pad(&box.Min.X, &box.Max.X)
	pad(&box.Min.Y, &box.Max.Y)
	pad(&box.Min.Z, &box.Max.Z)
	t.bbox = box
}

// Hit intersects the ray with the triangle's plane, then checks that the point
// lies on the inner side of all three edges. Points on an edge count as inside.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float32) (*core.HitRecord, bool) {
	nDotDir := t.normal.Dot(ray.Direction)
	if math32.Abs(nDotDir) < 1e-8 {
		return nil, false
	}

	d := -t.normal.Dot(t.A)
	tHit := -(t.normal.Dot(ray.Origin) + d) / nDotDir
	if tHit <= tMin || tHit >= tMax {
		return nil, false
	}

	point := ray.At(tHit)
	if !t.insideEdge(t.A, t.B, point) || !t.insideEdge(t.B, t.C, point) || !t.insideEdge(t.C, t.A, point) {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        tHit,
		Point:    point,
		Material: t.Material,
		UV:       t.barycentric(point),
	}
	hitRecord.SetFaceNormal(ray, t.shading)

	return hitRecord, true
}

// insideEdge reports whether p lies left of (or on) the directed edge from→to
func (t *Triangle) insideEdge(from, to, p core.Point3) bool {
	c := to.Subtract(from).Cross(p.Subtract(from))
	return t.normal.Dot(c) >= 0
}

// barycentric returns the weights of B and C for point p
func (t *Triangle) barycentric(p core.Point3) core.Vec2 {
	e0 := t.B.Subtract(t.A)
	e1 := t.C.Subtract(t.A)
	ep := p.Subtract(t.A)

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := ep.Dot(e0)
	d21 := ep.Dot(e1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return core.Vec2{}
	}
	u := (d11*d20 - d01*d21) / denom
	v := (d00*d21 - d01*d20) / denom
	return core.NewVec2(u, v)
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox(time0, time1 float32) (core.AABB, bool) {
	return t.bbox, true
}

// Normal returns the triangle's unit shading normal
func (t *Triangle) Normal() core.Vec3 {
	return t.shading
}
