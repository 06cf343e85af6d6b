package objloader

import (
	"strings"
	"testing"

	"raytracer/internal/mathutil"
)

const triangleOBJ = `# a single triangle
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func TestParse_SingleTriangle(t *testing.T) {
	mesh, err := Parse(strings.NewReader(triangleOBJ))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(mesh.Positions) != 3 {
		t.Fatalf("positions = %d, want 3", len(mesh.Positions))
	}
	if len(mesh.Indices) != 3 || mesh.Indices[0] != 0 || mesh.Indices[1] != 1 || mesh.Indices[2] != 2 {
		t.Errorf("indices = %v, want [0 1 2] (1-based converted to 0-based)", mesh.Indices)
	}
	if len(mesh.Normals) != 1 {
		t.Fatalf("normals = %d, want 1", len(mesh.Normals))
	}
	if !mathutil.AreEqual(mesh.Normals[0].Magnitude(), 1, 1e-5) {
		t.Errorf("face normal not unit length: %v", mesh.Normals[0])
	}
	if mesh.Normals[0].Z <= 0 {
		t.Errorf("expected +Z face normal for CCW-in-XY winding, got %v", mesh.Normals[0])
	}
}

func TestParse_IgnoresUnknownDirectives(t *testing.T) {
	src := "vn 0 1 0\no MyObject\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	mesh, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(mesh.Positions) != 3 {
		t.Errorf("positions = %d, want 3", len(mesh.Positions))
	}
}

func TestParse_MalformedFaceLine(t *testing.T) {
	_, err := Parse(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2\n"))
	if err == nil {
		t.Errorf("expected an error for a malformed face line")
	}
}
