package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/workerpool"
)

// ErrInvalidChunk is returned for chunks that are empty, out of range or not consecutive rows
var ErrInvalidChunk = errors.New("invalid row chunk")

// SamplerFactory creates the sampler used for one image row
type SamplerFactory func(row int) core.Sampler

// Option configures a Renderer
type Option func(*Renderer)

// WithSamplerFactory replaces the per-row seeded random samplers
func WithSamplerFactory(factory SamplerFactory) Option {
	return func(r *Renderer) { r.newSampler = factory }
}

// Renderer traces a read-only scene through a camera on a pool of workers.
// Rows are rendered in chunks; each chunk is one job.
type Renderer struct {
	world      core.Hittable
	camera     *Camera
	config     Config
	pool       *workerpool.Pool[ChunkResult]
	newSampler SamplerFactory
}

// New validates the configuration and starts the worker pool. Close must be
// called to stop the workers.
func New(world core.Hittable, camera *Camera, config Config, opts ...Option) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if world == nil || camera == nil {
		return nil, fmt.Errorf("%w: world and camera are required", ErrInvalidConfig)
	}

	r := &Renderer{
		world:  world,
		camera: camera,
		config: config,
	}
	r.newSampler = func(row int) core.Sampler {
		return core.NewSeededSampler(rowSeed(r.config.Seed, row))
	}
	for _, opt := range opts {
		opt(r)
	}

	r.pool = workerpool.New[ChunkResult](config.Workers, workerpool.WithMaxPending(config.MaxPending))
	return r, nil
}

// Config returns the renderer's configuration
func (r *Renderer) Config() Config {
	return r.config
}

// Workers returns the number of worker goroutines
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Close stops the workers once queued chunks have finished
func (r *Renderer) Close() {
	r.pool.Close()
}

// SubmitChunk schedules the given consecutive rows for rendering. The receipt
// yields the rendered rows tagged with the first row index.
func (r *Renderer) SubmitChunk(rows []int) (*workerpool.Receipt[ChunkResult], error) {
	if err := r.checkChunk(rows); err != nil {
		return nil, err
	}

	startRow, count := rows[0], len(rows)
	return r.pool.Submit(0, func() (ChunkResult, error) {
		result := r.renderChunk(startRow, count)
		core.Logger().Debug("chunk rendered", "start_row", startRow, "rows", count)
		return result, nil
	})
}

func (r *Renderer) checkChunk(rows []int) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no rows", ErrInvalidChunk)
	}
	for i, row := range rows {
		if row < 0 || row >= r.config.Height {
			return fmt.Errorf("%w: row %d outside image of height %d", ErrInvalidChunk, row, r.config.Height)
		}
		if i > 0 && row != rows[i-1]+1 {
			return fmt.Errorf("%w: row %d does not follow row %d", ErrInvalidChunk, row, rows[i-1])
		}
	}
	return nil
}

// Render splits the image into chunks, renders them on the pool and splices
// the results by starting row. A cancelled ctx stops the wait but lets
// already queued chunks run to completion.
func (r *Renderer) Render(ctx context.Context) (*Image, error) {
	start := time.Now()

	rows := make([]int, r.config.Height)
	for i := range rows {
		rows[i] = i
	}
	chunks, sizes := SplitEvenly(rows, r.config.Jobs)

	core.Logger().Info("rendering",
		"width", r.config.Width,
		"height", r.config.Height,
		"spp", r.config.SamplesPerPixel,
		"jobs", len(chunks),
		"workers", r.pool.Workers(),
		"rows_per_chunk", sizes[0])

	receipts := make([]*workerpool.Receipt[ChunkResult], 0, len(chunks))
	for _, chunk := range chunks {
		receipt, err := r.SubmitChunk(chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to submit chunk starting at row %d: %w", chunk[0], err)
		}
		receipts = append(receipts, receipt)
	}

	img := NewImage(r.config.Width, r.config.Height)
	for i, receipt := range receipts {
		result, err := receipt.Wait(ctx)
		if err != nil {
			return nil, fmt.Errorf("chunk starting at row %d failed: %w", chunks[i][0], err)
		}
		for j, pixels := range result.Rows {
			img.Pixels[result.StartRow+j] = pixels
		}
	}

	img.Stats = RenderStats{
		TotalPixels:  r.config.Width * r.config.Height,
		TotalSamples: r.config.Width * r.config.Height * r.config.SamplesPerPixel,
		Chunks:       len(chunks),
		Workers:      r.pool.Workers(),
		Duration:     time.Since(start),
	}
	core.Logger().Info("render finished",
		"duration", img.Stats.Duration,
		"per_pixel", img.Stats.AveragePixelTime())

	return img, nil
}
