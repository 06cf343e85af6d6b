package mathutil

import "testing"

func TestVector3_Add(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 4, Y: 5, Z: 6}
	result := a.Add(b)
	expected := Vector3{X: 5, Y: 7, Z: 9}
	if result != expected {
		t.Errorf("Add failed: got %v, want %v", result, expected)
	}
}

func TestVector3_Sub(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 4, Y: 5, Z: 6}
	result := a.Sub(b)
	expected := Vector3{X: -3, Y: -3, Z: -3}
	if result != expected {
		t.Errorf("Sub failed: got %v, want %v", result, expected)
	}
}

func TestVector3_Dot(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 4, Y: 5, Z: 6}
	result := a.Dot(b)
	if result != 32 {
		t.Errorf("Dot failed: got %v, want 32", result)
	}
}

func TestVector3_Cross(t *testing.T) {
	result := UnitX.Cross(UnitY)
	if result != UnitZ {
		t.Errorf("Cross failed: got %v, want %v", result, UnitZ)
	}
}

func TestVector3_Normalized(t *testing.T) {
	v := Vector3{X: 3, Y: 4, Z: 0}
	result := v.Normalized()
	expected := Vector3{X: 0.6, Y: 0.8, Z: 0}
	if !AreEqual(result.X, expected.X, 1e-6) || !AreEqual(result.Y, expected.Y, 1e-6) || !AreEqual(result.Z, expected.Z, 1e-6) {
		t.Errorf("Normalized failed: got %v, want %v", result, expected)
	}
}

func TestVector3_Magnitude(t *testing.T) {
	v := Vector3{X: 3, Y: 4, Z: 0}
	if v.Magnitude() != 5 {
		t.Errorf("Magnitude failed: got %v, want 5", v.Magnitude())
	}
}

func TestColorRGB_MaxToOne(t *testing.T) {
	c := ColorRGB{R: 2, G: 1, B: 0.5}
	result := c.MaxToOne()
	if result.R != 1 {
		t.Errorf("MaxToOne failed: R got %v, want 1", result.R)
	}
	if !AreEqual(result.G, 0.5, 1e-6) {
		t.Errorf("MaxToOne failed: G got %v, want 0.5", result.G)
	}

	// Idempotence: applying MaxToOne again must not change the result.
	twice := result.MaxToOne()
	if twice != result {
		t.Errorf("MaxToOne not idempotent: got %v, want %v", twice, result)
	}
}

func TestMatrix_FromBasisOrthonormal(t *testing.T) {
	m := FromBasis(UnitX, UnitY, UnitZ, Zero)
	p := m.TransformPoint(Vector3{X: 1, Y: 2, Z: 3})
	expected := Vector3{X: 1, Y: 2, Z: 3}
	if p != expected {
		t.Errorf("TransformPoint with identity basis failed: got %v, want %v", p, expected)
	}
}

func TestMatrix_TransformVectorIgnoresTranslation(t *testing.T) {
	m := CreateTranslation(Vector3{X: 10, Y: 10, Z: 10})
	v := m.TransformVector(Vector3{X: 1, Y: 0, Z: 0})
	if v != (Vector3{X: 1}) {
		t.Errorf("TransformVector should ignore translation: got %v", v)
	}
}
