package renderer

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer/pkg/core"
)

// sequenceSampler replays fixed samples, repeating the last one when exhausted
type sequenceSampler struct {
	ones []float32
	twos []core.Vec2
	i, j int
}

func (s *sequenceSampler) Get1D() float32 {
	if len(s.ones) == 0 {
		return 0.5
	}
	v := s.ones[min(s.i, len(s.ones)-1)]
	s.i++
	return v
}

func (s *sequenceSampler) Get2D() core.Vec2 {
	if len(s.twos) == 0 {
		return core.NewVec2(0.5, 0.5)
	}
	v := s.twos[min(s.j, len(s.twos)-1)]
	s.j++
	return v
}

// panicMaterial fails every scatter
type panicMaterial struct{}

func (panicMaterial) Scatter(core.Ray, *core.HitRecord, core.Sampler) (core.ScatterResult, bool) {
	panic("scatter failed")
}

// absorbMaterial never scatters
type absorbMaterial struct{}

func (absorbMaterial) Scatter(core.Ray, *core.HitRecord, core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func colorClose(a, b core.Color, tol float32) bool {
	return math32.Abs(a.X-b.X) <= tol && math32.Abs(a.Y-b.Y) <= tol && math32.Abs(a.Z-b.Z) <= tol
}
