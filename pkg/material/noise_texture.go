package material

import (
	"github.com/aquilax/go-perlin"

	"github.com/df07/go-raytracer/pkg/core"
)

// NoiseConfig parameterises fractal Perlin noise
type NoiseConfig struct {
	Scale       float32 // Brightness multiplier
	Octaves     int32   // Number of noise layers summed
	Frequency   float32 // Spatial frequency of the first octave
	Persistence float32 // Amplitude ratio between successive octaves
	Lacunarity  float32 // Frequency ratio between successive octaves
	Seed        int64
}

// DefaultNoiseConfig returns the standard fBm parameters
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		Scale:       1,
		Octaves:     4,
		Frequency:   1,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// NoiseTexture is a grey texture driven by fractal Brownian motion over Perlin noise
type NoiseTexture struct {
	config NoiseConfig
	perlin *perlin.Perlin
	norm   float64 // Sum of octave amplitudes, normalises the sum to [-1, 1]
}

// NewNoiseTexture creates a noise texture. Out-of-range parameters fall back to
// their defaults.
func NewNoiseTexture(config NoiseConfig) *NoiseTexture {
	defaults := DefaultNoiseConfig()
	if config.Octaves <= 0 {
		config.Octaves = defaults.Octaves
	}
	if config.Persistence <= 0 {
		config.Persistence = defaults.Persistence
	}
	if config.Lacunarity <= 0 {
		config.Lacunarity = defaults.Lacunarity
	}
	if config.Frequency <= 0 {
		config.Frequency = defaults.Frequency
	}

	// go-perlin divides octave i by alpha^i and multiplies coordinates by beta
	persistence := float64(config.Persistence)
	alpha := 1 / persistence
	beta := float64(config.Lacunarity)

	norm, amplitude := 0.0, 1.0
	for i := int32(0); i < config.Octaves; i++ {
		norm += amplitude
		amplitude *= persistence
	}

	return &NoiseTexture{
		config: config,
		perlin: perlin.NewPerlin(alpha, beta, config.Octaves, config.Seed),
		norm:   norm,
	}
}

// Noise returns the normalised fBm value at point, in [-1, 1]
func (n *NoiseTexture) Noise(point core.Point3) float32 {
	f := float64(n.config.Frequency)
	value := n.perlin.Noise3D(float64(point.X)*f, float64(point.Y)*f, float64(point.Z)*f)
	return float32(value / n.norm)
}

// Value returns Scale·noise as a grey level. Negative noise maps to black.
func (n *NoiseTexture) Value(uv core.Vec2, point core.Point3) core.Color {
	grey := max(0, n.config.Scale*n.Noise(point))
	return core.NewColor(grey, grey, grey)
}
