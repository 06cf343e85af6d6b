package geometry

import "raytracer/internal/mathutil"

// TriangleMesh owns the local-space geometry emitted by the OBJ loader plus
// a transform (translation, rotation, scale) and the transformed caches
// UpdateTransforms/UpdateAABB derive from it.
//
// Treat TransformedPositions/TransformedNormals/TransformedAABB as derived
// state: callers must call UpdateTransforms (and UpdateAABB, which
// UpdateTransforms already does) after mutating Translation/Rotation/Scale
// directly, matching the source's explicit cache-invalidation discipline.
type TriangleMesh struct {
	Positions     []mathutil.Vector3
	Normals       []mathutil.Vector3 // one per triangle
	Indices       []int              // length divisible by 3
	Cull          CullMode
	MaterialIndex uint8

	Translation mathutil.Vector3
	Rotation    mathutil.Matrix
	Scale       mathutil.Vector3

	TransformedPositions []mathutil.Vector3
	TransformedNormals   []mathutil.Vector3
	LocalAABB            AABB
	TransformedAABB      AABB
}

// NewTriangleMesh builds a mesh at the identity transform from loader
// output and computes its initial transformed caches.
func NewTriangleMesh(positions, normals []mathutil.Vector3, indices []int, cull CullMode, materialIndex uint8) *TriangleMesh {
	m := &TriangleMesh{
		Positions:     positions,
		Normals:       normals,
		Indices:       indices,
		Cull:          cull,
		MaterialIndex: materialIndex,
		Rotation:      mathutil.Identity,
		Scale:         mathutil.Vector3{X: 1, Y: 1, Z: 1},
	}
	m.LocalAABB = computeAABB(positions)
	m.UpdateTransforms()
	return m
}

func computeAABB(positions []mathutil.Vector3) AABB {
	box := EmptyAABB()
	for _, p := range positions {
		box = box.Expand(p)
	}
	return box
}

// Translate offsets the mesh's translation by delta. Callers must call
// UpdateTransforms afterward.
func (m *TriangleMesh) Translate(delta mathutil.Vector3) {
	m.Translation = m.Translation.Add(delta)
}

// RotateY composes an additional yaw rotation of radians about the Y axis.
func (m *TriangleMesh) RotateY(radians float32) {
	m.Rotation = mathutil.CreateRotationY(radians).Multiply(m.Rotation)
}

// SetScale replaces the mesh's scale.
func (m *TriangleMesh) SetScale(s mathutil.Vector3) {
	m.Scale = s
}

// transform returns the combined T*R*S matrix for the mesh's current
// translation/rotation/scale.
func (m *TriangleMesh) transform() mathutil.Matrix {
	return mathutil.CreateTranslation(m.Translation).
		Multiply(m.Rotation).
		Multiply(mathutil.CreateScale(m.Scale))
}

// UpdateTransforms recomputes TransformedPositions and TransformedNormals
// from Positions/Normals and the current transform, then rebuilds the
// transformed AABB.
func (m *TriangleMesh) UpdateTransforms() {
	world := m.transform()

	if cap(m.TransformedPositions) < len(m.Positions) {
		m.TransformedPositions = make([]mathutil.Vector3, len(m.Positions))
	}
	m.TransformedPositions = m.TransformedPositions[:len(m.Positions)]
	for i, p := range m.Positions {
		m.TransformedPositions[i] = world.TransformPoint(p)
	}

	if cap(m.TransformedNormals) < len(m.Normals) {
		m.TransformedNormals = make([]mathutil.Vector3, len(m.Normals))
	}
	m.TransformedNormals = m.TransformedNormals[:len(m.Normals)]
	for i, n := range m.Normals {
		m.TransformedNormals[i] = world.TransformVector(n).Normalized()
	}

	m.UpdateAABB()
}

// UpdateAABB rebuilds TransformedAABB from TransformedPositions.
func (m *TriangleMesh) UpdateAABB() {
	m.TransformedAABB = computeAABB(m.TransformedPositions)
}

// Hit is the mesh closest-hit test: slab test against the transformed AABB
// first, then a linear scan of triangles, keeping the smallest t.
func (m *TriangleMesh) Hit(ray mathutil.Ray) (HitRecord, bool) {
	if !m.TransformedAABB.IntersectRay(ray) {
		return HitRecord{}, false
	}

	best := HitRecord{}
	found := false
	localRay := ray
	for tri := 0; tri*3 < len(m.Indices); tri++ {
		i0, i1, i2 := m.Indices[tri*3], m.Indices[tri*3+1], m.Indices[tri*3+2]
		v0, v1, v2 := m.TransformedPositions[i0], m.TransformedPositions[i1], m.TransformedPositions[i2]
		normal := m.TransformedNormals[tri]

		t, ok := intersectTriangle(v0, v1, v2, normal, localRay, m.Cull, false)
		if !ok {
			continue
		}
		if !found || t < best.T {
			found = true
			best = HitRecord{
				DidHit:        true,
				Origin:        ray.At(t),
				Normal:        normal,
				MaterialIndex: m.MaterialIndex,
				T:             t,
			}
			localRay.Max = t
		}
	}
	return best, found
}

// HitAny is the mesh any-hit (shadow) test.
func (m *TriangleMesh) HitAny(ray mathutil.Ray) bool {
	if !m.TransformedAABB.IntersectRay(ray) {
		return false
	}
	for tri := 0; tri*3 < len(m.Indices); tri++ {
		i0, i1, i2 := m.Indices[tri*3], m.Indices[tri*3+1], m.Indices[tri*3+2]
		v0, v1, v2 := m.TransformedPositions[i0], m.TransformedPositions[i1], m.TransformedPositions[i2]
		normal := m.TransformedNormals[tri]
		if _, ok := intersectTriangle(v0, v1, v2, normal, ray, m.Cull, true); ok {
			return true
		}
	}
	return false
}
