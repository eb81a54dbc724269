package renderer

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer/pkg/core"
)

// CameraConfig places the camera in the scene
type CameraConfig struct {
	LookFrom    core.Point3 // Eye position
	LookAt      core.Point3 // Point the camera faces
	VUp         core.Vec3   // World-space up direction
	VFov        float32     // Vertical field of view in degrees
	AspectRatio float32     // Width / height
}

// DefaultCameraConfig looks at the origin from above and to the left
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(-5, 5, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 16.0 / 9.0,
	}
}

// Camera generates rays for rendering. It is immutable and safe to share
// between workers.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a pinhole camera with a viewport one unit in front of the eye
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math32.Pi / 180
	viewportHeight := 2 * math32.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray through viewport coordinates (s, t), where (0, 0) is
// the bottom left corner and (1, 1) the top right. The ray's time is drawn
// uniformly from [0, 1) with the sampler.
func (c *Camera) GetRay(s, t float32, sampler core.Sampler) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRayAt(c.origin, direction, sampler.Get1D())
}
