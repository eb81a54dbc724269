package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// HittableList is an aggregate that intersects its children by linear scan
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes all objects
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Len returns the number of direct children
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all children
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float32) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox is the union of every child's box. An empty list, or one holding
// any unbounded child, cannot be bounded.
func (l *HittableList) BoundingBox(time0, time1 float32) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	box := core.EmptyAABB()
	for _, object := range l.Objects {
		childBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		box = box.Union(childBox)
	}
	return box, true
}
