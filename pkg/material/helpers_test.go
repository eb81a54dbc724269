package material

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer/pkg/core"
)

const tolerance = 1e-5

// fixedSampler always returns the same samples
type fixedSampler struct {
	one float32
	two core.Vec2
}

func (s fixedSampler) Get1D() float32   { return s.one }
func (s fixedSampler) Get2D() core.Vec2 { return s.two }

func vecClose(a, b core.Vec3) bool {
	return a.Subtract(b).Length() <= tolerance
}

func closeTo(a, b float32) bool {
	return math32.Abs(a-b) <= tolerance
}

// upHit is a front-facing hit at the origin on a surface facing +Z
func upHit() *core.HitRecord {
	return &core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		T:         1,
		FrontFace: true,
		UV:        core.NewVec2(0.5, 0.5),
	}
}
