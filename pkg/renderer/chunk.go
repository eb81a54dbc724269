package renderer

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// ChunkResult holds the rendered rows of one chunk. Rows[i] is image row StartRow+i.
type ChunkResult struct {
	StartRow int
	Rows     [][]core.Color
}

// SplitEvenly divides rows into at most parts consecutive chunks whose sizes
// differ by at most one, larger chunks first. It returns the chunks and their sizes.
func SplitEvenly(rows []int, parts int) ([][]int, []int) {
	if len(rows) == 0 {
		return nil, nil
	}
	parts = max(1, min(parts, len(rows)))

	base, extra := len(rows)/parts, len(rows)%parts
	chunks := make([][]int, 0, parts)
	sizes := make([]int, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		size := base
		if i < extra {
			size++
		}
		chunks = append(chunks, rows[start:start+size])
		sizes = append(sizes, size)
		start += size
	}
	return chunks, sizes
}

// rowSeed derives an independent generator seed for every image row, so a
// row renders the same no matter which chunk or worker computes it
func rowSeed(seed int64, row int) int64 {
	z := uint64(seed) + uint64(row+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// renderRow traces every pixel of one image row, row 0 being the top
func (r *Renderer) renderRow(row int) []core.Color {
	sampler := r.newSampler(row)
	width, height := r.config.Width, r.config.Height
	// The camera's viewport coordinate t grows upwards
	j := height - 1 - row

	pixels := make([]core.Color, width)
	for i := 0; i < width; i++ {
		var stats PixelStats
		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			jitter := sampler.Get2D()
			s := (float32(i) + jitter.X) / float32(width)
			t := (float32(j) + jitter.Y) / float32(height)

			ray := r.camera.GetRay(s, t, sampler)
			stats.AddSample(RayColor(ray, r.world, r.config.MaxDepth, sampler, r.config.MinHitDistance))
		}
		pixels[i] = stats.GetColor()
	}
	return pixels
}

// renderChunk renders consecutive rows starting at startRow
func (r *Renderer) renderChunk(startRow, count int) ChunkResult {
	result := ChunkResult{StartRow: startRow, Rows: make([][]core.Color, count)}
	for i := range result.Rows {
		result.Rows[i] = r.renderRow(startRow + i)
	}
	return result
}
