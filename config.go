package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/cpu"

	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/output"
	"github.com/df07/go-raytracer/pkg/renderer"
)

const defaultAspectRatio = float32(16.0 / 9.0)

// cliConfig is everything the command line and environment decide
type cliConfig struct {
	Render      renderer.Config
	AspectRatio float32
	FOV         float32
	Output      string
	Scene       string
	Spheres     int
	Mesh        string
	Texture     string
	Split       geometry.SplitPolicy
	LogLevel    string
	S3          output.S3Config
}

// loadDotEnv merges an optional .env file into the process environment.
// Variables already set in the environment win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// defaultThreads counts logical CPUs, falling back to the runtime's view
func defaultThreads() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ParseAspectRatio parses "16/9", "1.5" or "4:3"
func ParseAspectRatio(s string) (float32, error) {
	s = strings.TrimSpace(s)
	sep := strings.IndexAny(s, "/:")
	if sep < 0 {
		ratio, err := strconv.ParseFloat(s, 32)
		if err != nil || ratio <= 0 {
			return 0, fmt.Errorf("invalid aspect ratio %q", s)
		}
		return float32(ratio), nil
	}

	w, errW := strconv.ParseFloat(strings.TrimSpace(s[:sep]), 32)
	h, errH := strconv.ParseFloat(strings.TrimSpace(s[sep+1:]), 32)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, fmt.Errorf("invalid aspect ratio %q", s)
	}
	return float32(w / h), nil
}

// resolveDimensions derives the aspect ratio and image height. A malformed
// aspect string falls back to width/height when a height is given, else 16/9.
func resolveDimensions(width, height int, aspect string) (int, float32) {
	ratio, err := ParseAspectRatio(aspect)
	if err != nil {
		ratio = defaultAspectRatio
		if width > 0 && height > 0 {
			ratio = float32(width) / float32(height)
		}
	}
	if height <= 0 {
		height = int(float32(width) / ratio)
	}
	return height, ratio
}

// envLookup reads configuration overrides, normally os.Getenv
type envLookup func(key string) string

func (env envLookup) strOr(key, fallback string) string {
	if v := env(key); v != "" {
		return v
	}
	return fallback
}

func (env envLookup) intOr(key string, fallback int) int {
	if v, err := strconv.Atoi(env(key)); err == nil {
		return v
	}
	return fallback
}

func (env envLookup) floatOr(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(env(key), 64); err == nil {
		return v
	}
	return fallback
}

// parseConfig reads flags whose defaults come from RT_* variables, plus the S3_* settings
func parseConfig(args []string, env envLookup, stderr io.Writer) (cliConfig, error) {
	defaults := renderer.DefaultConfig()
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	width := fs.Int("width", env.intOr("RT_WIDTH", defaults.Width), "Image width in pixels")
	height := fs.Int("height", env.intOr("RT_HEIGHT", 0), "Image height in pixels, 0 derives it from the aspect ratio")
	aspect := fs.String("aspect", env.strOr("RT_ASPECT", "16/9"), "Aspect ratio such as 16/9")
	samples := fs.Int("samples", env.intOr("RT_SAMPLES", defaults.SamplesPerPixel), "Samples per pixel")
	depth := fs.Int("depth", env.intOr("RT_DEPTH", defaults.MaxDepth), "Maximum ray bounce depth")
	threads := fs.Int("threads", env.intOr("RT_THREADS", defaultThreads()), "Worker goroutines")
	jobs := fs.Int("jobs", env.intOr("RT_JOBS", defaults.Jobs), "Number of row chunks")
	fov := fs.Float64("fov", env.floatOr("RT_FOV", 90), "Vertical field of view in degrees")
	out := fs.String("output", env.strOr("RT_OUTPUT", "output.ppm"), "Output file, .ppm or .png")
	seed := fs.Int64("seed", int64(env.intOr("RT_SEED", int(defaults.Seed))), "Random seed")
	sceneName := fs.String("scene", env.strOr("RT_SCENE", "default"), "Scene to render")
	spheres := fs.Int("spheres", env.intOr("RT_SPHERES", 0), "Random sphere count, 0 uses the scene default")
	mesh := fs.String("mesh", env.strOr("RT_MESH", ""), "Mesh file for the mesh scene")
	texture := fs.String("texture", env.strOr("RT_TEXTURE", ""), "Image file for the textures scene")
	split := fs.String("split", env.strOr("RT_SPLIT", "random"), "BVH split axis: random or longest")
	logLevel := fs.String("log", env.strOr("RT_LOG_LEVEL", "info"), "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	cfg := cliConfig{
		FOV:      float32(*fov),
		Output:   *out,
		Scene:    *sceneName,
		Spheres:  *spheres,
		Mesh:     *mesh,
		Texture:  *texture,
		LogLevel: *logLevel,
		S3: output.S3Config{
			AccessKey: env("S3_ACCESS_KEY"),
			SecretKey: env("S3_SECRET_KEY"),
			Endpoint:  env("S3_ENDPOINT"),
			Region:    env.strOr("S3_REGION", "us-east-1"),
			Bucket:    env("S3_BUCKET"),
			Prefix:    env("S3_PREFIX"),
		},
	}

	switch *split {
	case "random":
		cfg.Split = geometry.SplitRandomAxis
	case "longest":
		cfg.Split = geometry.SplitLongestAxis
	default:
		return cliConfig{}, fmt.Errorf("unknown split policy %q", *split)
	}

	cfg.Render = defaults
	cfg.Render.Width = *width
	cfg.Render.Height, cfg.AspectRatio = resolveDimensions(*width, *height, *aspect)
	cfg.Render.SamplesPerPixel = *samples
	cfg.Render.MaxDepth = *depth
	cfg.Render.Workers = *threads
	cfg.Render.Jobs = *jobs
	cfg.Render.Seed = *seed

	if err := cfg.Render.Validate(); err != nil {
		return cliConfig{}, err
	}
	if _, err := output.FormatFromPath(cfg.Output); err != nil {
		return cliConfig{}, err
	}
	return cfg, nil
}
