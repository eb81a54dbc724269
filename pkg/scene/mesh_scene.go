package scene

import (
	"errors"
	"math/rand"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/renderer"
)

// ErrNoMesh is returned when the mesh scene is built without a mesh file
var ErrNoMesh = errors.New("mesh scene needs a mesh file")

// NewMeshScene loads a mesh, fits it into a cube of side 6 at the origin and
// places it on a checkered ground
func NewMeshScene(opts Options) (*Scene, error) {
	if opts.MeshPath == "" {
		return nil, ErrNoMesh
	}

	triangles, err := geometry.LoadMesh(opts.MeshPath, geometry.MeshOptions{
		FitUnitCube: true,
		Scale:       3,
		Material:    material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.2),
	})
	if err != nil {
		return nil, err
	}

	random := rand.New(rand.NewSource(opts.Seed))
	bvh, err := geometry.NewBVH(triangles, 0, 1, geometry.WithRandom(random), geometry.WithSplitPolicy(opts.Split))
	if err != nil {
		return nil, err
	}
	stats := bvh.Stats()
	core.Logger().Debug("mesh hierarchy", "triangles", len(triangles), "depth", stats.Depth, "nodes", stats.Nodes)

	ground := geometry.NewPlane(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0),
		material.NewTexturedLambertian(material.NewColorChecker(core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9))))

	camera := renderer.DefaultCameraConfig()
	camera.LookFrom = core.NewVec3(-6, 4, 8)
	camera.VFov = 50

	return &Scene{
		Name:         "mesh",
		World:        geometry.NewHittableList(ground, bvh),
		CameraConfig: camera,
		Primitives:   len(triangles) + 1,
	}, nil
}
