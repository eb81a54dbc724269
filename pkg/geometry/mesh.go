package geometry

import (
	"fmt"

	"github.com/fogleman/fauxgl"

	"github.com/df07/go-raytracer/pkg/core"
)

// MeshOptions controls how a loaded mesh is placed in the scene
type MeshOptions struct {
	FitUnitCube bool      // Rescale the mesh into the [-1, 1]³ cube before placing it
	Scale       float32   // Uniform scale, 0 means 1
	Offset      core.Vec3 // Translation applied after scaling
	Material    core.Material
}

// LoadMesh reads an OBJ, STL, PLY or 3DS file and returns its triangles
func LoadMesh(path string, opts MeshOptions) ([]core.Hittable, error) {
	mesh, err := fauxgl.LoadMesh(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh %s: %w", path, err)
	}
	triangles := TrianglesFromMesh(mesh, opts)
	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh %s contains no usable triangles", path)
	}
	core.Logger().Debug("loaded mesh", "path", path, "triangles", len(triangles))
	return triangles, nil
}

// TrianglesFromMesh converts a fauxgl mesh into triangle primitives.
// Degenerate (zero-area) faces are dropped.
func TrianglesFromMesh(mesh *fauxgl.Mesh, opts MeshOptions) []core.Hittable {
	if opts.FitUnitCube {
		mesh = mesh.Copy()
		mesh.BiUnitCube()
	}

	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	place := func(v fauxgl.Vector) core.Point3 {
		return core.NewVec3(float32(v.X), float32(v.Y), float32(v.Z)).Multiply(scale).Add(opts.Offset)
	}

	triangles := make([]core.Hittable, 0, len(mesh.Triangles))
	for _, t := range mesh.Triangles {
		a := place(t.V1.Position)
		b := place(t.V2.Position)
		c := place(t.V3.Position)
		if b.Subtract(a).Cross(c.Subtract(a)).NearZero() {
			continue
		}
		triangles = append(triangles, NewTriangle(a, b, c, opts.Material))
	}
	return triangles
}
