package core

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float32
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; every goroutine owns its own sampler.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded by seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get2D returns two random float32 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float32(), r.random.Float32())
}

// SampleRange maps a uniform sample in [0, 1) to [lo, hi)
func SampleRange(sample, lo, hi float32) float32 {
	return lo + (hi-lo)*sample
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math32.Sqrt(math32.Max(0, 1.0-z*z))
	phi := 2.0 * math32.Pi * sample.Y
	return NewVec3(r*math32.Cos(phi), r*math32.Sin(phi), z)
}

// RandomUnitVector returns a unit-length vector uniformly distributed over directions.
// Normalising a point drawn uniformly inside the unit sphere gives the same distribution.
func RandomUnitVector(sampler Sampler) Vec3 {
	return SampleOnUnitSphere(sampler.Get2D())
}
