package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/renderer"
)

// maxTextureDimension bounds the size of image textures loaded for scenes
const maxTextureDimension = 1024

// NewTextureScene shows one sphere per texture kind over a noise-textured ground
func NewTextureScene(opts Options) (*Scene, error) {
	palette := Palette()

	var mapped core.Texture = material.NewColorChecker(palette[0], palette[1])
	if opts.TexturePath != "" {
		img, err := material.LoadImageTexture(opts.TexturePath, maxTextureDimension)
		if err != nil {
			return nil, err
		}
		mapped = img
	}

	noise := material.DefaultNoiseConfig()
	noise.Seed = opts.Seed
	noise.Frequency = 2

	objects := []core.Hittable{
		geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0),
			material.NewTexturedLambertian(material.NewNoiseTexture(noise))),
		geometry.NewSphere(core.NewVec3(-2.5, 0, 0), 1.5, material.NewTexturedLambertian(mapped)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 1.5,
			material.NewTexturedLambertian(material.NewColorChecker(palette[2], palette[3]))),
		geometry.NewSphere(core.NewVec3(2, -1, 2), 1, material.NewDielectric(1.5)),
		geometry.NewBox(core.NewVec3(3, -2, -4), core.NewVec3(5, 0, -2), material.NewMetal(palette[4], 0.1)),
	}

	camera := renderer.DefaultCameraConfig()
	camera.LookFrom = core.NewVec3(0, 3, 9)
	camera.VFov = 60

	return &Scene{
		Name:         "textures",
		World:        geometry.NewHittableList(objects...),
		CameraConfig: camera,
		Primitives:   len(objects),
	}, nil
}
