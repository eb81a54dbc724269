package material

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer/pkg/core"
)

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(uv core.Vec2, point core.Point3) core.Color {
	return s.Color
}

// DefaultCheckerScale is the spatial frequency used by NewChecker
const DefaultCheckerScale = 10

// Checker alternates between two textures in a 3D pattern driven by world position
type Checker struct {
	Odd   core.Texture
	Even  core.Texture
	Scale float32
}

// NewChecker creates a checker pattern with the default scale
func NewChecker(odd, even core.Texture) *Checker {
	return &Checker{Odd: odd, Even: even, Scale: DefaultCheckerScale}
}

// NewColorChecker creates a checker alternating between two solid colors
func NewColorChecker(odd, even core.Color) *Checker {
	return NewChecker(NewSolidColor(odd), NewSolidColor(even))
}

// Value picks Odd where sin(sx)·sin(sy)·sin(sz) is negative, Even elsewhere
func (c *Checker) Value(uv core.Vec2, point core.Point3) core.Color {
	sines := math32.Sin(c.Scale*point.X) * math32.Sin(c.Scale*point.Y) * math32.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Value(uv, point)
	}
	return c.Even.Value(uv, point)
}
