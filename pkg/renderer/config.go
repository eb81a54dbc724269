package renderer

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for configurations that cannot be rendered
var ErrInvalidConfig = errors.New("invalid render configuration")

// Config contains rendering configuration
type Config struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Workers         int     // Worker goroutines, 0 = one per CPU
	Jobs            int     // Number of row chunks submitted to the workers
	MaxPending      int     // Cap on queued chunks, 0 = unbounded
	Seed            int64   // Base seed for per-row random generators
	MinHitDistance  float32 // Hits closer than this along a ray are ignored
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           2560,
		Height:          1440,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Workers:         0,
		Jobs:            100,
		Seed:            1,
		MinHitDistance:  1e-8,
	}
}

// Validate reports the first problem with the configuration
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	case c.Jobs <= 0:
		return fmt.Errorf("%w: jobs must be positive, got %d", ErrInvalidConfig, c.Jobs)
	case c.MaxPending < 0:
		return fmt.Errorf("%w: max pending must not be negative, got %d", ErrInvalidConfig, c.MaxPending)
	case c.MinHitDistance < 0:
		return fmt.Errorf("%w: min hit distance must not be negative, got %g", ErrInvalidConfig, c.MinHitDistance)
	}
	return nil
}
