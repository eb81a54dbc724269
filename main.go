package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/mem"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/output"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printHelp()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printHelp follows the flag usage that parseConfig already printed
func printHelp() {
	fmt.Println()
	fmt.Println("Available scenes:", strings.Join(scene.Names(), ", "))
	fmt.Println()
	fmt.Println("Options default to RT_* variables from the environment or a .env file.")
	fmt.Println("Set S3_BUCKET (with S3_ENDPOINT, S3_REGION, S3_ACCESS_KEY, S3_SECRET_KEY) to upload the render.")
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// run builds the scene, renders it and delivers the image
func run(ctx context.Context, cfg cliConfig) error {
	logSystem()

	selected, err := scene.Build(cfg.Scene, scene.Options{
		Seed:        cfg.Render.Seed,
		Spheres:     cfg.Spheres,
		MeshPath:    cfg.Mesh,
		TexturePath: cfg.Texture,
		Split:       cfg.Split,
	})
	if err != nil {
		return err
	}

	cameraConfig := selected.CameraConfig
	cameraConfig.VFov = cfg.FOV
	cameraConfig.AspectRatio = cfg.AspectRatio
	camera := renderer.NewCamera(cameraConfig)

	r, err := renderer.New(selected.World, camera, cfg.Render)
	if err != nil {
		return err
	}
	defer r.Close()

	fmt.Printf("Rendering %s scene: %dx%d, %d samples, %d jobs on %d workers\n",
		selected.Name, cfg.Render.Width, cfg.Render.Height, cfg.Render.SamplesPerPixel, cfg.Render.Jobs, r.Workers())

	img, err := r.Render(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Render completed in %v (%v per pixel)\n", img.Stats.Duration, img.Stats.AveragePixelTime())

	if err := output.Save(cfg.Output, img); err != nil {
		return err
	}
	if info, err := os.Stat(cfg.Output); err == nil {
		fmt.Printf("Wrote %s (%d bytes)\n", cfg.Output, info.Size())
	}

	if !cfg.S3.Enabled() {
		return nil
	}
	publisher, err := output.NewS3Publisher(cfg.S3)
	if err != nil {
		return err
	}
	key, err := publisher.Publish(ctx, filepath.Base(cfg.Output), img)
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded to s3://%s/%s\n", cfg.S3.Bucket, key)
	return nil
}

// logSystem records the machine the render runs on
func logSystem() {
	vm, err := mem.VirtualMemory()
	if err != nil {
		core.Logger().Debug("memory info unavailable", "error", err)
		return
	}
	core.Logger().Info("system", "cpus", defaultThreads(), "memory_total", vm.Total, "memory_available", vm.Available)
}
