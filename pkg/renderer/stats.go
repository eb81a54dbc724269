package renderer

import (
	"time"

	"github.com/df07/go-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of samples taken
	Chunks       int           // Number of jobs the rows were split into
	Workers      int           // Number of worker goroutines
	Duration     time.Duration // Wall time from first submission to last result
}

// AveragePixelTime returns the wall time spent per pixel
func (s RenderStats) AveragePixelTime() time.Duration {
	if s.TotalPixels == 0 {
		return 0
	}
	return s.Duration / time.Duration(s.TotalPixels)
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB accumulator for final result
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Color{}
	}
	return ps.ColorAccum.Multiply(1.0 / float32(ps.SampleCount))
}
