// Package scene owns a frame's primitives, materials, lights and camera,
// grounded on original_source/project/src/Scene.cpp's GetClosestHit/
// DoesHit/Add*/Initialize/Deinitialize/Update contract and on the
// teacher's pkg/loader/loader.go for the general "owns everything a
// frame needs" shape (loader.go builds this from JSON; catalog.go here
// builds it from Go constructor functions instead, matching Scene.cpp's
// Scene_W1::Initialize()-style hand-built scenes).
package scene

import (
	"raytracer/internal/camera"
	"raytracer/internal/geometry"
	"raytracer/internal/input"
	"raytracer/internal/mathutil"
	"raytracer/internal/shading"
)

// SphereHandle, PlaneHandle and MeshHandle are stable handles returned by
// the Add* factories. The source returns raw pointers into a std::vector,
// which is unsound under reallocation; small integer indices are used
// here instead (see DESIGN.md).
type (
	SphereHandle int
	PlaneHandle  int
	MeshHandle   int
)

// MaterialHandle indexes Scene.Materials; it is the 8-bit index every
// primitive stores, per spec.md's Scene ownership invariant.
type MaterialHandle = uint8

// Scene owns its primitives, materials, lights and active camera.
// Primitives are kept in three separate ordered slices and iterated in
// that fixed order (spheres, planes, meshes) by GetClosestHit/DoesHit.
type Scene struct {
	Name string

	Spheres []geometry.Sphere
	Planes  []geometry.Plane
	Meshes  []*geometry.TriangleMesh

	Materials []shading.Material
	Lights    []shading.Light

	Camera *camera.Camera

	// totalTime accumulates dt across Update calls; animated-mesh scenes
	// use it the way Scene_W4_TestScene/_ReferenceScene use pTimer->GetTotal().
	totalTime float32

	// onUpdate is the per-scene "per-frame mesh-transform hook" spec.md's
	// Non-goals explicitly keep in scope; nil for static scenes.
	onUpdate func(s *Scene, dt float32)
}

// AddSphere appends a sphere and returns a stable handle.
func (s *Scene) AddSphere(sphere geometry.Sphere) SphereHandle {
	s.Spheres = append(s.Spheres, sphere)
	return SphereHandle(len(s.Spheres) - 1)
}

// AddPlane appends a plane and returns a stable handle.
func (s *Scene) AddPlane(plane geometry.Plane) PlaneHandle {
	s.Planes = append(s.Planes, plane)
	return PlaneHandle(len(s.Planes) - 1)
}

// AddTriangleMesh appends a mesh and returns a stable handle.
func (s *Scene) AddTriangleMesh(mesh *geometry.TriangleMesh) MeshHandle {
	s.Meshes = append(s.Meshes, mesh)
	return MeshHandle(len(s.Meshes) - 1)
}

// AddMaterial appends a material and returns its dense, monotonically
// increasing index.
func (s *Scene) AddMaterial(m shading.Material) MaterialHandle {
	s.Materials = append(s.Materials, m)
	return MaterialHandle(len(s.Materials) - 1)
}

func (s *Scene) AddPointLight(origin mathutil.Vector3, intensity float32, color mathutil.ColorRGB) {
	s.Lights = append(s.Lights, shading.NewPointLight(origin, intensity, color))
}

func (s *Scene) AddDirectionalLight(direction mathutil.Vector3, intensity float32, color mathutil.ColorRGB) {
	s.Lights = append(s.Lights, shading.NewDirectionalLight(direction, intensity, color))
}

// GetClosestHit iterates spheres, planes, and meshes in that order and
// keeps the record with the smallest positive t.
func (s *Scene) GetClosestHit(ray mathutil.Ray) geometry.HitRecord {
	var best geometry.HitRecord
	search := ray

	for _, sph := range s.Spheres {
		if hit, ok := sph.Hit(search); ok {
			best = hit
			search.Max = hit.T
		}
	}
	for _, pl := range s.Planes {
		if hit, ok := pl.Hit(search); ok {
			best = hit
			search.Max = hit.T
		}
	}
	for _, mesh := range s.Meshes {
		if hit, ok := mesh.Hit(search); ok {
			best = hit
			search.Max = hit.T
		}
	}

	return best
}

// DoesHit is the any-hit shadow query across the same three collections.
func (s *Scene) DoesHit(ray mathutil.Ray) bool {
	for _, sph := range s.Spheres {
		if sph.HitAny(ray) {
			return true
		}
	}
	for _, pl := range s.Planes {
		if pl.HitAny(ray) {
			return true
		}
	}
	for _, mesh := range s.Meshes {
		if mesh.HitAny(ray) {
			return true
		}
	}
	return false
}

// Material resolves a material handle; h must be a valid index. Per
// spec.md §7, a missing index is not a runtime error: the renderer checks
// a hit's index against Materials first and leaves such a hit unshaded.
func (s *Scene) Material(h MaterialHandle) shading.Material {
	return s.Materials[h]
}

// Update is the per-frame hook: it always advances the camera, and, for
// scenes with animated meshes, rotates/translates them and calls
// UpdateTransforms via the scene's onUpdate hook.
func (s *Scene) Update(dt float32, in *input.State) {
	s.totalTime += dt
	s.Camera.Update(dt, in)
	if s.onUpdate != nil {
		s.onUpdate(s, dt)
	}
}
