package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer/pkg/core"
)

const tolerance = 1e-5

func closeTo(a, b float32) bool {
	return math32.Abs(a-b) <= tolerance
}

func vecClose(a, b core.Vec3) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float32
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if !closeTo(hit.T, tt.expectedT) {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecClose(hit.Normal, tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_RespectsRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := sphere.Hit(ray, 0.001, 3.5); isHit {
		t.Error("Expected no hit when tMax is before the sphere")
	}

	// Starting past the near root selects the far root
	hit, isHit := sphere.Hit(ray, 4.5, 100)
	if !isHit || !closeTo(hit.T, 6) {
		t.Fatalf("Expected far root at t=6, got %+v", hit)
	}
	if hit.FrontFace {
		t.Error("Expected far root to be a back face hit")
	}

	// The range is exclusive at both ends
	if _, isHit := sphere.Hit(ray, 4, 6); isHit {
		t.Error("Expected roots equal to tMin or tMax to be rejected")
	}
}

func TestSphere_UVBoundaryValues(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec3
		u, v  float32 // u < 0 skips the check at the poles, where u is arbitrary
	}{
		{"+x", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"+y", core.NewVec3(0, 1, 0), -1, 1.0},
		{"-y", core.NewVec3(0, -1, 0), -1, 0.0},
		{"+z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"-z", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := SphereUV(tt.point)
			if (tt.u >= 0 && !closeTo(uv.X, tt.u)) || !closeTo(uv.Y, tt.v) {
				t.Errorf("Expected uv (%f, %f), got (%f, %f)", tt.u, tt.v, uv.X, uv.Y)
			}
		})
	}
}

func TestSphere_HitPopulatesUV(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, nil)
	ray := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 100)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if !closeTo(hit.UV.X, 0.5) || !closeTo(hit.UV.Y, 0.5) {
		t.Errorf("Expected uv (0.5, 0.5) at +x, got %v", hit.UV)
	}
	if hit.Material != nil {
		t.Error("Expected nil material to be carried through")
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, nil)
	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected sphere to be bounded")
	}
	if box.Min != core.NewVec3(0.5, 1.5, 2.5) || box.Max != core.NewVec3(1.5, 2.5, 3.5) {
		t.Errorf("Unexpected box %v", box)
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -5), core.NewVec3(4, 0, -5), 0, 1, 1, nil)

	if c := sphere.Center(0.5); !vecClose(c, core.NewVec3(2, 0, -5)) {
		t.Errorf("Expected center (2,0,-5) at t=0.5, got %v", c)
	}

	// A ray aimed at the start position only hits early in the interval
	early := core.NewRayAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	late := core.NewRayAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 1)
	if _, isHit := sphere.Hit(early, 0.001, 100); !isHit {
		t.Error("Expected hit at time 0")
	}
	if _, isHit := sphere.Hit(late, 0.001, 100); isHit {
		t.Error("Expected miss at time 1")
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected moving sphere to be bounded")
	}
	if box.Min != core.NewVec3(-1, -1, -6) || box.Max != core.NewVec3(5, 1, -4) {
		t.Errorf("Expected box to span the whole motion, got %v", box)
	}
}
