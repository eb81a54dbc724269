package material

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer/pkg/core"
)

func TestDielectric_Reflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float32
		ratio    float32
		expected float32
	}{
		{"normal incidence glass", 1, 1 / 1.5, 0.04},
		{"grazing incidence", 0, 1 / 1.5, 1},
		{"matched media", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflectance(tt.cosine, tt.ratio); !closeTo(got, tt.expected) {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestDielectric_RefractsAtNormalIncidence(t *testing.T) {
	glass := NewDielectric(1.5)
	// Above the 4% reflectance, so the ray refracts
	sampler := fixedSampler{one: 0.99}
	ray := core.NewRayAt(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -2), 0.25)

	scatter, didScatter := glass.Scatter(ray, upHit(), sampler)
	if !didScatter {
		t.Fatal("Dielectric should always scatter")
	}
	if scatter.Attenuation != core.NewColor(1, 1, 1) {
		t.Errorf("Expected white attenuation, got %v", scatter.Attenuation)
	}
	if !vecClose(scatter.Scattered.Direction, core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected straight-through refraction, got %v", scatter.Scattered.Direction)
	}
	if scatter.Scattered.Time != ray.Time {
		t.Errorf("Expected scattered ray to keep time %f, got %f", ray.Time, scatter.Scattered.Time)
	}
}

func TestDielectric_ReflectsWhenSampleBelowReflectance(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := fixedSampler{one: 0.01}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, _ := glass.Scatter(ray, upHit(), sampler)
	if !vecClose(scatter.Scattered.Direction, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected reflection back along the normal, got %v", scatter.Scattered.Direction)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	// Even a sample that would always refract cannot escape past the critical angle
	sampler := fixedSampler{one: 1}

	// Leaving the glass at 60 degrees from the normal: 1.5 * sin(60°) > 1
	hit := upHit()
	hit.FrontFace = false
	direction := core.NewVec3(math32.Sin(math32.Pi/3), 0, -math32.Cos(math32.Pi/3))
	ray := core.NewRay(core.NewVec3(0, 0, 1), direction)

	scatter, didScatter := glass.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Dielectric should always scatter")
	}
	expected := direction.Reflect(hit.Normal)
	if !vecClose(scatter.Scattered.Direction, expected) {
		t.Errorf("Expected total internal reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
}
