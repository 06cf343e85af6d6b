package scene

import (
	"raytracer/internal/geometry"
	"raytracer/internal/mathutil"
)

// spinMeshY sets every mesh in meshes to a yaw of angle(totalTime) radians
// about Y each frame, replacing any earlier rotation, then rebuilds its
// transformed caches. This is the "per-frame mesh-transform hook"
// spec.md's Non-goals explicitly keep in scope; it is a deliberate trim of
// the teacher's pkg/motion/motion.go keyframe interpolator down to the
// single case Scene_W4_TestScene/_ReferenceScene actually use (neither
// animates by interpolating between keyframes — both compute one absolute
// angle from elapsed time).
func spinMeshY(meshes []*geometry.TriangleMesh, totalTime float32, angle func(totalTime float32) float32) {
	target := angle(totalTime)
	for _, m := range meshes {
		m.Rotation = mathutil.CreateRotationY(target)
		m.UpdateTransforms()
	}
}
