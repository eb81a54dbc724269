package scene

import (
	"math/rand"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/renderer"
)

const defaultSphereCount = 10

// NewDefaultScene places random spheres under a BVH above a grey mirror plane
func NewDefaultScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))

	count := opts.Spheres
	if count <= 0 {
		count = defaultSphereCount
	}
	spheres := RandomSpheres(count, random)

	bvh, err := geometry.NewBVH(spheres, 0, 1, geometry.WithRandom(random), geometry.WithSplitPolicy(opts.Split))
	if err != nil {
		return nil, err
	}

	// The plane is unbounded, so it sits beside the BVH
	ground := geometry.NewPlane(core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0),
		material.NewMetal(core.NewColor(0.5, 0.5, 0.5), 0))

	return &Scene{
		Name:         "default",
		World:        geometry.NewHittableList(ground, bvh),
		CameraConfig: renderer.DefaultCameraConfig(),
		Primitives:   len(spheres) + 1,
	}, nil
}
