package geometry

import (
	"testing"

	"github.com/fogleman/fauxgl"

	"github.com/df07/go-raytracer/pkg/core"
)

func TestTrianglesFromMesh(t *testing.T) {
	mesh := fauxgl.NewTriangleMesh([]*fauxgl.Triangle{
		fauxgl.NewTriangleForPoints(fauxgl.V(0, 0, 0), fauxgl.V(4, 0, 0), fauxgl.V(0, 4, 0)),
		// Degenerate: all three points on a line
		fauxgl.NewTriangleForPoints(fauxgl.V(0, 0, 0), fauxgl.V(1, 1, 1), fauxgl.V(2, 2, 2)),
	})

	tests := []struct {
		name     string
		opts     MeshOptions
		expected [3]core.Point3
	}{
		{
			name:     "as loaded",
			opts:     MeshOptions{},
			expected: [3]core.Point3{core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0)},
		},
		{
			name:     "scaled and offset",
			opts:     MeshOptions{Scale: 0.5, Offset: core.NewVec3(1, 0, -1)},
			expected: [3]core.Point3{core.NewVec3(1, 0, -1), core.NewVec3(3, 0, -1), core.NewVec3(1, 2, -1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triangles := TrianglesFromMesh(mesh, tt.opts)
			if len(triangles) != 1 {
				t.Fatalf("Expected 1 triangle after dropping degenerate faces, got %d", len(triangles))
			}
			tri := triangles[0].(*Triangle)
			got := [3]core.Point3{tri.A, tri.B, tri.C}
			for i := range got {
				if !vecClose(got[i], tt.expected[i]) {
					t.Errorf("Vertex %d: expected %v, got %v", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestTrianglesFromMesh_FitUnitCube(t *testing.T) {
	mesh := fauxgl.NewTriangleMesh([]*fauxgl.Triangle{
		fauxgl.NewTriangleForPoints(fauxgl.V(10, 10, 10), fauxgl.V(14, 10, 10), fauxgl.V(10, 14, 12)),
	})

	triangles := TrianglesFromMesh(mesh, MeshOptions{FitUnitCube: true})
	if len(triangles) != 1 {
		t.Fatalf("Expected 1 triangle, got %d", len(triangles))
	}
	box, _ := triangles[0].BoundingBox(0, 1)
	unit := core.NewAABB(core.NewVec3(-1.001, -1.001, -1.001), core.NewVec3(1.001, 1.001, 1.001))
	if !unit.Contains(box) {
		t.Errorf("Expected fitted triangle inside the unit cube, got %v", box)
	}

	// The source mesh is left untouched
	if mesh.Triangles[0].V1.Position != fauxgl.V(10, 10, 10) {
		t.Error("Expected FitUnitCube to work on a copy")
	}
}

func TestLoadMesh_MissingFile(t *testing.T) {
	if _, err := LoadMesh("testdata/does-not-exist.obj", MeshOptions{}); err == nil {
		t.Error("Expected error for missing mesh file")
	}
}
