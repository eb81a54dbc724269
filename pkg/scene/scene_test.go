package scene

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
)

func TestRandomSpheres(t *testing.T) {
	spheres := RandomSpheres(200, rand.New(rand.NewSource(1)))
	if len(spheres) != 200 {
		t.Fatalf("Expected 200 spheres, got %d", len(spheres))
	}

	bounds := core.NewAABB(core.NewVec3(-6.3, -5.001, -6.3), core.NewVec3(6.3, 6.3, 6.3))
	moving := 0
	for i, sphere := range spheres {
		box, ok := sphere.BoundingBox(0, 1)
		if !ok {
			t.Fatalf("Sphere %d is unbounded", i)
		}
		if !bounds.Contains(box) {
			t.Errorf("Sphere %d box %v outside the scene bounds", i, box)
		}
		if _, ok := sphere.(*geometry.MovingSphere); ok {
			moving++
		}
	}
	if moving == 0 {
		t.Error("Expected some moving spheres")
	}

	again := RandomSpheres(200, rand.New(rand.NewSource(1)))
	for i := range spheres {
		a, _ := spheres[i].BoundingBox(0, 1)
		b, _ := again[i].BoundingBox(0, 1)
		if a != b {
			t.Fatalf("Sphere %d differs between runs with the same seed", i)
		}
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		scene   string
		opts    Options
		wantErr error
	}{
		{"default", "default", Options{Seed: 3}, nil},
		{"default many spheres", "default", Options{Seed: 3, Spheres: 50, Split: geometry.SplitLongestAxis}, nil},
		{"textures", "textures", Options{Seed: 3}, nil},
		{"mesh without file", "mesh", Options{}, ErrNoMesh},
		{"unknown", "nonexistent", Options{}, ErrUnknownScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Build(tt.scene, tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if s.World == nil || s.Primitives == 0 {
				t.Fatalf("Expected a populated world, got %+v", s)
			}

			// Every scene is framed so the center ray sees something or the sky
			camera := s.Camera(16.0 / 9.0)
			ray := camera.GetRay(0.5, 0.5, core.NewSeededSampler(1))
			if hit, ok := s.World.Hit(ray, 1e-8, 1e9); ok && hit.Material == nil {
				t.Error("Expected scene objects to carry materials")
			}
		})
	}
}

func TestNewMeshScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.obj")
	obj := `v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 3 2
f 1 2 4
f 1 4 3
f 2 3 4
`
	if err := os.WriteFile(path, []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Build("mesh", Options{MeshPath: path, Seed: 1})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Primitives != 5 {
		t.Errorf("Expected 4 triangles and a ground plane, got %d primitives", s.Primitives)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	expected := []string{"default", "mesh", "textures"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, names)
		}
	}
}

func TestPalette(t *testing.T) {
	for i, c := range Palette() {
		if c == (core.Color{}) {
			t.Errorf("Palette entry %d (%s) is black, name probably unknown", i, paletteNames[i])
		}
		if c.X > 1 || c.Y > 1 || c.Z > 1 {
			t.Errorf("Palette entry %d out of range: %v", i, c)
		}
	}
}
