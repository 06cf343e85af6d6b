package scene

import (
	"fmt"
	"math"
	"path/filepath"

	"raytracer/internal/camera"
	"raytracer/internal/geometry"
	"raytracer/internal/mathutil"
	"raytracer/internal/objloader"
	"raytracer/internal/shading"
)

var (
	colorRed     = mathutil.ColorRGB{R: 1}
	colorBlue    = mathutil.ColorRGB{B: 1}
	colorYellow  = mathutil.ColorRGB{R: 1, G: 1}
	colorGreen   = mathutil.ColorRGB{G: 1}
	colorMagenta = mathutil.ColorRGB{R: 1, B: 1}
	colorWhite   = mathutil.ColorRGB{R: 1, G: 1, B: 1}
)

// Catalog is the ordered list of scene constructors spec.md §6 calls for;
// the main loop holds a current index into it and cycles with wraparound,
// in the manner of original_source/project/src/main.cpp's InitScenes/
// ShowFollowingScene. meshDir locates the OBJ assets W4-test and W4-bunny
// load (original_source's "Resources/" directory; testdata/ here).
func Catalog(meshDir string) []func() (*Scene, error) {
	return []func() (*Scene, error){
		func() (*Scene, error) { return newW1(), nil },
		func() (*Scene, error) { return newW2(), nil },
		func() (*Scene, error) { return newW3Test(), nil },
		func() (*Scene, error) { return newW3(), nil },
		func() (*Scene, error) { return newW4Test(meshDir) },
		func() (*Scene, error) { return newW4Reference(), nil },
		func() (*Scene, error) { return newW4Bunny(meshDir) },
	}
}

func newW1() *Scene {
	s := &Scene{Name: "W1", Camera: camera.New(mathutil.Vector3{Y: 1, Z: -18}, 45)}

	red := s.AddMaterial(shading.SolidColor{Color: colorRed})
	blue := s.AddMaterial(shading.SolidColor{Color: colorBlue})
	yellow := s.AddMaterial(shading.SolidColor{Color: colorYellow})
	green := s.AddMaterial(shading.SolidColor{Color: colorGreen})
	magenta := s.AddMaterial(shading.SolidColor{Color: colorMagenta})

	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: -2.5, Z: 1}, Radius: 5, MaterialIndex: red})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: 2.5, Z: 1}, Radius: 5, MaterialIndex: blue})

	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{X: -7.5}, Normal: mathutil.UnitX, MaterialIndex: green})
	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{X: 7.5}, Normal: mathutil.Vector3{X: -1}, MaterialIndex: green})
	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{Y: -7.5}, Normal: mathutil.UnitY, MaterialIndex: yellow})
	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{Y: 7.5}, Normal: mathutil.Vector3{Y: -1}, MaterialIndex: yellow})
	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{Z: 12.5}, Normal: mathutil.Vector3{Z: -1}, MaterialIndex: magenta})

	s.AddPointLight(mathutil.Vector3{Y: 5, Z: -5}, 70, colorWhite)
	return s
}

func newW2() *Scene {
	s := &Scene{Name: "W2", Camera: camera.New(mathutil.Vector3{Y: 3, Z: -9}, 45)}

	red := s.AddMaterial(shading.SolidColor{Color: colorRed})
	blue := s.AddMaterial(shading.SolidColor{Color: colorBlue})
	yellow := s.AddMaterial(shading.SolidColor{Color: colorYellow})
	green := s.AddMaterial(shading.SolidColor{Color: colorGreen})
	magenta := s.AddMaterial(shading.SolidColor{Color: colorMagenta})

	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{X: -5}, Normal: mathutil.UnitX, MaterialIndex: green})
	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{X: 5}, Normal: mathutil.Vector3{X: -1}, MaterialIndex: green})
	s.AddPlane(geometry.Plane{Normal: mathutil.UnitY, MaterialIndex: yellow})
	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{Y: 10}, Normal: mathutil.Vector3{Y: -1}, MaterialIndex: yellow})
	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{Z: 10}, Normal: mathutil.Vector3{Z: -1}, MaterialIndex: magenta})

	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: -1.75, Y: 1}, Radius: 0.75, MaterialIndex: red})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{Y: 1}, Radius: 0.75, MaterialIndex: blue})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: 1.75, Y: 1}, Radius: 0.75, MaterialIndex: red})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: -1.75, Y: 3}, Radius: 0.75, MaterialIndex: blue})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{Y: 3}, Radius: 0.75, MaterialIndex: red})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: 1.75, Y: 3}, Radius: 0.75, MaterialIndex: blue})

	s.AddPointLight(mathutil.Vector3{Y: 5, Z: -5}, 70, colorWhite)
	return s
}

func newW3Test() *Scene {
	s := &Scene{Name: "W3-test", Camera: camera.New(mathutil.Vector3{Y: 1, Z: -5}, 45)}

	red := s.AddMaterial(shading.Lambert{Albedo: colorRed, Kd: 1})
	yellow := s.AddMaterial(shading.Lambert{Albedo: colorYellow, Kd: 1})
	blue := s.AddMaterial(shading.LambertPhong{Albedo: colorBlue, Kd: 1, Ks: 1, PhongExp: 60})

	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: -0.75, Y: 1}, Radius: 1, MaterialIndex: red})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: 0.75, Y: 1}, Radius: 1, MaterialIndex: blue})
	s.AddPlane(geometry.Plane{Normal: mathutil.UnitY, MaterialIndex: yellow})

	s.AddPointLight(mathutil.Vector3{Y: 2.5, Z: 5}, 25, colorWhite)
	s.AddPointLight(mathutil.Vector3{Y: 2.5, Z: -5}, 25, colorWhite)
	return s
}

// ctSphereGrid adds the 3x2 Cook-Torrance sphere grid common to W3 and
// W4-reference, returning nothing: both scenes wire it in the same way.
func ctSphereGrid(s *Scene) {
	metal := mathutil.ColorRGB{R: 0.972, G: 0.960, B: 0.915}
	plastic := mathutil.ColorRGB{R: 0.75, G: 0.75, B: 0.75}

	roughMetal := s.AddMaterial(shading.CookTorrance{Albedo: metal, Metalness: 1, Roughness: 1})
	mediumMetal := s.AddMaterial(shading.CookTorrance{Albedo: metal, Metalness: 1, Roughness: 0.6})
	smoothMetal := s.AddMaterial(shading.CookTorrance{Albedo: metal, Metalness: 1, Roughness: 0.1})
	roughPlastic := s.AddMaterial(shading.CookTorrance{Albedo: plastic, Metalness: 0, Roughness: 1})
	mediumPlastic := s.AddMaterial(shading.CookTorrance{Albedo: plastic, Metalness: 0, Roughness: 0.6})
	smoothPlastic := s.AddMaterial(shading.CookTorrance{Albedo: plastic, Metalness: 0, Roughness: 0.1})

	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: -1.75, Y: 1}, Radius: 0.75, MaterialIndex: roughMetal})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{Y: 1}, Radius: 0.75, MaterialIndex: mediumMetal})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: 1.75, Y: 1}, Radius: 0.75, MaterialIndex: smoothMetal})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: -1.75, Y: 3}, Radius: 0.75, MaterialIndex: roughPlastic})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{Y: 3}, Radius: 0.75, MaterialIndex: mediumPlastic})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{X: 1.75, Y: 3}, Radius: 0.75, MaterialIndex: smoothPlastic})
}

func addStudioPlanes(s *Scene, materialIndex uint8) {
	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{Z: 10}, Normal: mathutil.Vector3{Z: -1}, MaterialIndex: materialIndex})
	s.AddPlane(geometry.Plane{Normal: mathutil.UnitY, MaterialIndex: materialIndex})
	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{Y: 10}, Normal: mathutil.Vector3{Y: -1}, MaterialIndex: materialIndex})
	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{X: 5}, Normal: mathutil.Vector3{X: -1}, MaterialIndex: materialIndex})
	s.AddPlane(geometry.Plane{Origin: mathutil.Vector3{X: -5}, Normal: mathutil.UnitX, MaterialIndex: materialIndex})
}

func studioLights(s *Scene) {
	s.AddPointLight(mathutil.Vector3{Y: 5, Z: 5}, 50, mathutil.ColorRGB{R: 1, G: 0.61, B: 0.45})
	s.AddPointLight(mathutil.Vector3{X: -2.5, Y: 5, Z: -5}, 70, mathutil.ColorRGB{R: 1, G: 0.8, B: 0.45})
	s.AddPointLight(mathutil.Vector3{X: 2.5, Y: 2.5, Z: -5}, 50, mathutil.ColorRGB{R: 0.34, G: 0.47, B: 0.68})
}

func newW3() *Scene {
	s := &Scene{Name: "W3", Camera: camera.New(mathutil.Vector3{Y: 3, Z: -9}, 45)}
	grayBlue := s.AddMaterial(shading.Lambert{Albedo: mathutil.ColorRGB{R: 0.49, G: 0.57, B: 0.57}, Kd: 1})
	addStudioPlanes(s, grayBlue)
	ctSphereGrid(s)
	studioLights(s)
	return s
}

func loadMesh(meshDir, filename string, cull geometry.CullMode, materialIndex uint8) (*geometry.TriangleMesh, error) {
	m, err := objloader.Load(filepath.Join(meshDir, filename))
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return geometry.NewTriangleMesh(m.Positions, m.Normals, m.Indices, cull, materialIndex), nil
}

func newW4Test(meshDir string) (*Scene, error) {
	s := &Scene{Name: "W4-test", Camera: camera.New(mathutil.Vector3{Y: 1, Z: -5}, 45)}
	grayBlue := s.AddMaterial(shading.Lambert{Albedo: mathutil.ColorRGB{R: 0.49, G: 0.57, B: 0.57}, Kd: 1})
	white := s.AddMaterial(shading.Lambert{Albedo: colorWhite, Kd: 1})
	addStudioPlanes(s, grayBlue)

	mesh, err := loadMesh(meshDir, "cube.obj", geometry.BackFaceCulling, white)
	if err != nil {
		return nil, err
	}
	mesh.SetScale(mathutil.Vector3{X: 0.7, Y: 0.7, Z: 0.7})
	mesh.Translate(mathutil.Vector3{Y: 1})
	mesh.UpdateTransforms()
	s.AddTriangleMesh(mesh)

	studioLights(s)

	s.onUpdate = func(scene *Scene, dt float32) {
		spinMeshY(scene.Meshes, scene.totalTime, func(totalTime float32) float32 {
			return float32(math.Pi) / 2 * totalTime
		})
	}
	return s, nil
}

// singleTriangleMesh builds a one-triangle mesh directly, grounded on
// Scene_W4_ReferenceScene's AppendTriangle(baseTriangle, true) calls: no
// OBJ file is involved, the three vertices are hand-authored.
func singleTriangleMesh(v0, v1, v2 mathutil.Vector3, cull geometry.CullMode, materialIndex uint8) *geometry.TriangleMesh {
	normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalized()
	return geometry.NewTriangleMesh(
		[]mathutil.Vector3{v0, v1, v2},
		[]mathutil.Vector3{normal},
		[]int{0, 1, 2},
		cull, materialIndex,
	)
}

func newW4Reference() *Scene {
	s := &Scene{Name: "W4-reference", Camera: camera.New(mathutil.Vector3{Y: 3, Z: -9}, 45)}
	ctSphereGrid(s)
	grayBlue := s.AddMaterial(shading.Lambert{Albedo: mathutil.ColorRGB{R: 0.49, G: 0.57, B: 0.57}, Kd: 1})
	white := s.AddMaterial(shading.Lambert{Albedo: colorWhite, Kd: 1})
	addStudioPlanes(s, grayBlue)

	v0 := mathutil.Vector3{X: -0.75, Y: 1.5}
	v1 := mathutil.Vector3{X: 0.75}
	v2 := mathutil.Vector3{X: -0.75}

	left := singleTriangleMesh(v0, v1, v2, geometry.BackFaceCulling, white)
	left.Translate(mathutil.Vector3{X: -1.75, Y: 4.5})
	left.UpdateTransforms()
	s.AddTriangleMesh(left)

	middle := singleTriangleMesh(v0, v1, v2, geometry.FrontFaceCulling, white)
	middle.Translate(mathutil.Vector3{Y: 4.5})
	middle.UpdateTransforms()
	s.AddTriangleMesh(middle)

	right := singleTriangleMesh(v0, v1, v2, geometry.NoCulling, white)
	right.Translate(mathutil.Vector3{X: 1.75, Y: 4.5})
	right.UpdateTransforms()
	s.AddTriangleMesh(right)

	studioLights(s)

	s.onUpdate = func(scene *Scene, dt float32) {
		spinMeshY(scene.Meshes, scene.totalTime, func(totalTime float32) float32 {
			return (float32(math.Cos(float64(totalTime))) + 1) / 2 * 2 * float32(math.Pi)
		})
	}
	return s
}

func newW4Bunny(meshDir string) (*Scene, error) {
	s := &Scene{Name: "W4-bunny", Camera: camera.New(mathutil.Vector3{Y: 3, Z: -9}, 45)}
	grayBlue := s.AddMaterial(shading.Lambert{Albedo: mathutil.ColorRGB{R: 0.49, G: 0.57, B: 0.57}, Kd: 1})
	white := s.AddMaterial(shading.Lambert{Albedo: colorWhite, Kd: 1})

	mesh, err := loadMesh(meshDir, "bunny.obj", geometry.BackFaceCulling, white)
	if err != nil {
		return nil, err
	}
	mesh.RotateY(float32(math.Pi))
	mesh.SetScale(mathutil.Vector3{X: 2, Y: 2, Z: 2})
	mesh.UpdateTransforms()
	s.AddTriangleMesh(mesh)

	addStudioPlanes(s, grayBlue)
	studioLights(s)
	return s, nil
}
