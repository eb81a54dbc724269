package core

// Hittable is anything a ray can be intersected with
type Hittable interface {
	// Hit returns the closest intersection with t strictly inside (tMin, tMax)
	Hit(ray Ray, tMin, tMax float32) (*HitRecord, bool)
	// BoundingBox returns a box enclosing the object over [time0, time1].
	// ok is false for objects that cannot be bounded, such as infinite planes.
	BoundingBox(time0, time1 float32) (box AABB, ok bool)
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns false when the ray is absorbed
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at texture coordinates uv and world position point
	Value(uv Vec2, point Point3) Color
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray   // The scattered ray, starting at the hit point
	Attenuation Color // Per-channel color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Point3   // Point of intersection
	Normal    Vec3     // Surface normal, always facing the incoming ray
	T         float32  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object, nil for bare geometry
	UV        Vec2     // Texture coordinates
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
