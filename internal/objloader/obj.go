// Package objloader parses the minimal Wavefront OBJ subset the renderer
// needs: vertex positions and triangular faces. Grounded on
// original_source/project/src/Utils.h's ParseOBJ, which reads tokens with
// istream::operator>>, treats "v" lines as vertices and "f" lines as
// 1-based triangle indices, and precomputes one face normal per triangle
// as normalize(cross(v1-v0, v2-v0)).
package objloader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/mmap"

	"raytracer/internal/mathutil"
)

// Mesh is the three parallel arrays the renderer's TriangleMesh is built
// from: positions, one face normal per triangle, and 0-based indices.
type Mesh struct {
	Positions []mathutil.Vector3
	Normals   []mathutil.Vector3
	Indices   []int
}

// Load memory-maps filename (reused from the teacher's bake.go, which
// mmap'd its baked binary scenes instead of os.ReadFile) and parses it as
// OBJ. Open and parse failures are returned as an error. The scene catalog
// passes that error on, so the scene that needs the mesh fails to load as
// a whole; it is not rendered without the mesh.
func Load(filename string) (Mesh, error) {
	reader, err := mmap.Open(filename)
	if err != nil {
		return Mesh{}, fmt.Errorf("objloader: open %s: %w", filename, err)
	}
	defer reader.Close()

	return Parse(io.NewSectionReader(reader, 0, int64(reader.Len())))
}

// Parse reads OBJ text from r. Lines beginning with "v" supply a vertex;
// lines beginning with "f" supply a triangle face (converted from 1-based
// to 0-based indices); "#" lines and anything else are ignored to end of
// line.
func Parse(r io.Reader) (Mesh, error) {
	var positions []mathutil.Vector3
	var indices []int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "#":
			// comment, ignore
		case "v":
			if len(fields) < 4 {
				return Mesh{}, fmt.Errorf("objloader: malformed vertex line %q", line)
			}
			x, err1 := strconv.ParseFloat(fields[1], 32)
			y, err2 := strconv.ParseFloat(fields[2], 32)
			z, err3 := strconv.ParseFloat(fields[3], 32)
			if err1 != nil || err2 != nil || err3 != nil {
				return Mesh{}, fmt.Errorf("objloader: malformed vertex line %q", line)
			}
			positions = append(positions, mathutil.Vector3{X: float32(x), Y: float32(y), Z: float32(z)})
		case "f":
			if len(fields) < 4 {
				return Mesh{}, fmt.Errorf("objloader: malformed face line %q", line)
			}
			i0, err1 := strconv.Atoi(fields[1])
			i1, err2 := strconv.Atoi(fields[2])
			i2, err3 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || err3 != nil {
				return Mesh{}, fmt.Errorf("objloader: malformed face line %q", line)
			}
			indices = append(indices, i0-1, i1-1, i2-1)
		default:
			// comments without a leading "#" token and any other directive
			// (vn, vt, o, g, s, mtllib...) are ignored to end of line.
		}
	}
	if err := scanner.Err(); err != nil {
		return Mesh{}, fmt.Errorf("objloader: scan: %w", err)
	}

	normals := make([]mathutil.Vector3, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= len(positions) || i1 >= len(positions) || i2 >= len(positions) {
			return Mesh{}, fmt.Errorf("objloader: face index out of range in triangle %d", i/3)
		}
		e1 := positions[i1].Sub(positions[i0])
		e2 := positions[i2].Sub(positions[i0])
		normals = append(normals, e1.Cross(e2).Normalized())
	}

	return Mesh{Positions: positions, Normals: normals, Indices: indices}, nil
}
