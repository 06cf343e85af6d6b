package geometry

import (
	"testing"

	"raytracer/internal/mathutil"
)

func cubeMesh() *TriangleMesh {
	positions := []mathutil.Vector3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	indices := []int{
		0, 1, 2, 0, 2, 3, // back
		5, 4, 7, 5, 7, 6, // front
		4, 0, 3, 4, 3, 7, // left
		1, 5, 6, 1, 6, 2, // right
		3, 2, 6, 3, 6, 7, // top
		4, 5, 1, 4, 1, 0, // bottom
	}
	normals := make([]mathutil.Vector3, len(indices)/3)
	for tri := range normals {
		i0, i1, i2 := indices[tri*3], indices[tri*3+1], indices[tri*3+2]
		v0, v1, v2 := positions[i0], positions[i1], positions[i2]
		normals[tri] = v1.Sub(v0).Cross(v2.Sub(v0)).Normalized()
	}
	return NewTriangleMesh(positions, normals, indices, NoCulling, 0)
}

func TestTriangleMesh_Hit(t *testing.T) {
	m := cubeMesh()
	ray := mathutil.NewRay(mathutil.Vector3{Z: -10}, mathutil.UnitZ)
	hit, ok := m.Hit(ray)
	if !ok || !hit.DidHit {
		t.Fatalf("expected a hit through the cube")
	}
	if !mathutil.AreEqual(hit.T, 9, 1e-4) {
		t.Errorf("t = %v, want 9", hit.T)
	}
}

// triangleHitsDirectly scans every triangle without the AABB pre-filter,
// so the soundness test below can tell a real hit from an AABB-culled one.
func triangleHitsDirectly(m *TriangleMesh, ray mathutil.Ray) bool {
	for tri := 0; tri*3 < len(m.Indices); tri++ {
		i0, i1, i2 := m.Indices[tri*3], m.Indices[tri*3+1], m.Indices[tri*3+2]
		v0, v1, v2 := m.TransformedPositions[i0], m.TransformedPositions[i1], m.TransformedPositions[i2]
		if _, ok := intersectTriangle(v0, v1, v2, m.TransformedNormals[tri], ray, m.Cull, false); ok {
			return true
		}
	}
	return false
}

func TestTriangleMesh_AABBSoundness(t *testing.T) {
	m := cubeMesh()
	rng := mathutil.NewXorShift32(42)

	for i := 0; i < 200; i++ {
		m.Translation = mathutil.Vector3{
			X: (rng.Float32() - 0.5) * 20,
			Y: (rng.Float32() - 0.5) * 20,
			Z: (rng.Float32() - 0.5) * 20,
		}
		m.Rotation = mathutil.CreateRotationY(rng.Float32() * 6.28)
		m.Scale = mathutil.Vector3{X: 1, Y: 1, Z: 1}
		m.UpdateTransforms()

		ray := mathutil.NewRay(
			mathutil.Vector3{X: (rng.Float32() - 0.5) * 40, Y: (rng.Float32() - 0.5) * 40, Z: -50},
			mathutil.UnitZ,
		)

		if !m.TransformedAABB.IntersectRay(ray) && triangleHitsDirectly(m, ray) {
			t.Fatalf("slab test rejected ray %v but a triangle reports a hit (translation=%v)", ray, m.Translation)
		}
	}
}
