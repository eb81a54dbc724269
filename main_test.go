package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/output"
	"github.com/df07/go-raytracer/pkg/renderer"
)

func noEnv(string) string { return "" }

func mapEnv(values map[string]string) envLookup {
	return func(key string) string { return values[key] }
}

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		input    string
		expected float32
		wantErr  bool
	}{
		{"16/9", 16.0 / 9.0, false},
		{"4:3", 4.0 / 3.0, false},
		{" 1 / 1 ", 1, false},
		{"1.5", 1.5, false},
		{"16/0", 0, true},
		{"-1", 0, true},
		{"wide", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ratio, err := ParseAspectRatio(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, ratio)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if math.Abs(float64(ratio-tt.expected)) > 1e-6 {
				t.Errorf("Expected %v, got %v", tt.expected, ratio)
			}
		})
	}
}

func TestResolveDimensions(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		aspect         string
		expectedHeight int
		expectedRatio  float32
	}{
		{"derived height", 1600, 0, "16/9", 900, 16.0 / 9.0},
		{"explicit height keeps aspect", 1600, 100, "16/9", 100, 16.0 / 9.0},
		{"bad aspect uses width over height", 400, 200, "nope", 200, 2},
		{"bad aspect without height", 1600, 0, "nope", 900, 16.0 / 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			height, ratio := resolveDimensions(tt.width, tt.height, tt.aspect)
			if height != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, height)
			}
			if math.Abs(float64(ratio-tt.expectedRatio)) > 1e-6 {
				t.Errorf("Expected ratio %v, got %v", tt.expectedRatio, ratio)
			}
		})
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil, noEnv, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig failed: %v", err)
	}

	if cfg.Render.Width != 2560 || cfg.Render.Height != 1440 {
		t.Errorf("Expected 2560x1440, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.SamplesPerPixel != 100 || cfg.Render.Jobs != 100 {
		t.Errorf("Expected 100 samples and 100 jobs, got %d and %d", cfg.Render.SamplesPerPixel, cfg.Render.Jobs)
	}
	if cfg.Render.Workers <= 0 {
		t.Errorf("Expected a positive default thread count, got %d", cfg.Render.Workers)
	}
	if cfg.FOV != 90 || cfg.Output != "output.ppm" || cfg.Scene != "default" {
		t.Errorf("Unexpected defaults: fov %v output %s scene %s", cfg.FOV, cfg.Output, cfg.Scene)
	}
	if cfg.Split != geometry.SplitRandomAxis {
		t.Errorf("Expected random split, got %v", cfg.Split)
	}
	if cfg.S3.Enabled() {
		t.Error("Expected S3 publishing to be off without a bucket")
	}
}

func TestParseConfig_EnvAndFlags(t *testing.T) {
	env := mapEnv(map[string]string{
		"RT_WIDTH":   "320",
		"RT_SAMPLES": "8",
		"RT_SPLIT":   "longest",
		"S3_BUCKET":  "renders",
		"S3_PREFIX":  "nightly",
	})

	cfg, err := parseConfig([]string{"-samples", "4", "-height", "100", "-output", "out.png"}, env, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig failed: %v", err)
	}

	if cfg.Render.Width != 320 {
		t.Errorf("Expected width from environment, got %d", cfg.Render.Width)
	}
	if cfg.Render.SamplesPerPixel != 4 {
		t.Errorf("Expected flag to override environment, got %d samples", cfg.Render.SamplesPerPixel)
	}
	if cfg.Render.Height != 100 {
		t.Errorf("Expected height 100, got %d", cfg.Render.Height)
	}
	if cfg.Split != geometry.SplitLongestAxis {
		t.Errorf("Expected longest split, got %v", cfg.Split)
	}
	if !cfg.S3.Enabled() || cfg.S3.Prefix != "nightly" || cfg.S3.Region != "us-east-1" {
		t.Errorf("Unexpected S3 config %+v", cfg.S3)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"zero samples", []string{"-samples", "0"}, renderer.ErrInvalidConfig},
		{"zero jobs", []string{"-jobs", "0"}, renderer.ErrInvalidConfig},
		{"bad output", []string{"-output", "render.jpg"}, output.ErrUnsupportedFormat},
		{"help", []string{"-help"}, flag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseConfig(tt.args, noEnv, io.Discard); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := parseConfig([]string{"-split", "median"}, noEnv, io.Discard); err == nil {
		t.Error("Expected error for unknown split policy")
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Expected a missing .env to be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("RT_TEST_DOTENV_WIDTH=123\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("RT_TEST_DOTENV_WIDTH") })

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv failed: %v", err)
	}
	if got := os.Getenv("RT_TEST_DOTENV_WIDTH"); got != "123" {
		t.Errorf("Expected RT_TEST_DOTENV_WIDTH=123, got %q", got)
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "render.ppm")
	cfg, err := parseConfig([]string{
		"-width", "32", "-height", "18", "-samples", "2", "-depth", "5",
		"-jobs", "4", "-threads", "2", "-output", out,
	}, noEnv, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig failed: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n32 18\n255\n") {
		t.Errorf("Unexpected PPM header: %q", string(data[:min(len(data), 20)]))
	}
	if lines := strings.Count(string(data), "\n"); lines != 3+32*18 {
		t.Errorf("Expected %d lines, got %d", 3+32*18, lines)
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("debug").String() != "DEBUG" || parseLevel("bogus").String() != "INFO" {
		t.Error("Unexpected log level parsing")
	}
}
