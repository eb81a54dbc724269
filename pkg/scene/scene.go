// Package scene builds ready-to-render worlds: a hittable aggregate plus the
// camera placement that frames it.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"golang.org/x/image/colornames"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by Build for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// Scene is a read-only world and the camera that views it
type Scene struct {
	Name         string
	World        core.Hittable
	CameraConfig renderer.CameraConfig
	Primitives   int // Number of primitives placed under the world
}

// Camera builds the scene's camera for the given aspect ratio
func (s *Scene) Camera(aspectRatio float32) *renderer.Camera {
	config := s.CameraConfig
	if aspectRatio > 0 {
		config.AspectRatio = aspectRatio
	}
	return renderer.NewCamera(config)
}

// Options parameterise scene construction
type Options struct {
	Seed        int64                // Seeds object placement and BVH construction
	Spheres     int                  // Number of random spheres, 0 means the scene's default
	MeshPath    string               // Mesh file for the mesh scene
	TexturePath string               // Image file for the texture scene, empty uses a checker
	Split       geometry.SplitPolicy // BVH split axis policy
}

// Builder creates a scene from options
type Builder func(opts Options) (*Scene, error)

var builders = map[string]Builder{
	"default":  NewDefaultScene,
	"mesh":     NewMeshScene,
	"textures": NewTextureScene,
}

// Names lists the registered scenes in alphabetical order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates the named scene
func Build(name string, opts Options) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	s, err := builder(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	core.Logger().Info("scene built", "scene", name, "primitives", s.Primitives)
	return s, nil
}

// paletteNames are the named colors random objects are painted with
var paletteNames = []string{
	"tomato", "gold", "seagreen", "steelblue", "orchid",
	"coral", "turquoise", "slateblue", "khaki", "firebrick",
}

// Palette returns the scene colors as linear RGB values
func Palette() []core.Color {
	palette := make([]core.Color, len(paletteNames))
	for i, name := range paletteNames {
		palette[i] = colorFromRGBA(colornames.Map[name])
	}
	return palette
}

func colorFromRGBA(c color.RGBA) core.Color {
	return core.NewColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
}
