package math

import (
	"errors"
	"math"
	"testing"
)

func nearly(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func assertVec4Near(t *testing.T, got, want Vec4, tol float32) {
	t.Helper()
	for i := range got {
		if !nearly(got[i], want[i], tol) {
			t.Errorf("got %v, want %v", got, want)
			return
		}
	}
}

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 || m[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translation(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslationColumn(t *testing.T) {
	m := Translation(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translation: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestMulVec4PointAndVector(t *testing.T) {
	m := Translation(10, 20, 30)

	if got := m.MulVec4(Point(1, 2, 3)); got != Point(11, 22, 33) {
		t.Errorf("translate point: got %v, want (11, 22, 33, 1)", got)
	}
	if got := m.MulVec4(Vector(1, 2, 3)); got != Vector(1, 2, 3) {
		t.Errorf("translate vector: got %v, want (1, 2, 3, 0)", got)
	}
}

func TestRotationAxis(t *testing.T) {
	tests := []struct {
		name string
		axis Vec4
		in   Vec4
		want Vec4
	}{
		{"z maps x to y", AxisZ(), AxisX(), AxisY()},
		{"x maps y to z", AxisX(), AxisY(), AxisZ()},
		{"y maps z to x", AxisY(), AxisZ(), AxisX()},
		{"unnormalized axis", Vector(0, 0, 7), AxisX(), AxisY()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotationAxis(tt.axis, 90).MulVec4(tt.in)
			assertVec4Near(t, got, tt.want, 1e-6)
		})
	}
}

func TestRotationZeroAxis(t *testing.T) {
	if got := RotationAxis(Vector(0, 0, 0), 45); got != Identity() {
		t.Errorf("zero axis rotation = %v, want identity", got)
	}
}

func TestBuilderPostMultiplies(t *testing.T) {
	var m Mat4
	m.SetIdentity().Translate(1, 0, 0).Scale(2, 2, 2)

	// scale is applied first, then translation
	got := m.MulVec4(Point(1, 0, 0))
	if got != Point(3, 0, 0) {
		t.Errorf("translate * scale * p = %v, want (3, 0, 0, 1)", got)
	}
}

func TestMultiplySelf(t *testing.T) {
	m := Translation(1, 2, 3)
	m.Multiply(&m)
	if got := m.MulVec4(Origin()); got != Point(2, 4, 6) {
		t.Errorf("m * m origin = %v, want (2, 4, 6, 1)", got)
	}
}

func TestTranspose(t *testing.T) {
	m := Translation(1, 2, 3)
	tr := m.Transpose()
	if tr[3] != 1 || tr[7] != 2 || tr[11] != 3 {
		t.Errorf("transpose bottom row: got (%f, %f, %f), want (1, 2, 3)", tr[3], tr[7], tr[11])
	}
	if tr.Transpose() != m {
		t.Error("transpose twice should be the original")
	}
}

func TestInverse(t *testing.T) {
	m := Translation(1, 2, 3).Mul(Scaling(2, 4, 8)).Mul(RotationAxis(AxisY(), 30))
	got := m.Mul(m.Inverse())
	id := Identity()
	for i := range got {
		if !nearly(got[i], id[i], 1e-5) {
			t.Fatalf("M * inverse(M) element %d = %f, want %f", i, got[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	if got := zero.Inverse(); got != Identity() {
		t.Errorf("inverse of singular matrix = %v, want identity", got)
	}
}

func TestLookAt(t *testing.T) {
	view, err := LookAt(Point(0, 0, 5), Origin(), AxisY())
	if err != nil {
		t.Fatalf("LookAt() error = %v", err)
	}
	assertVec4Near(t, view.MulVec4(Origin()), Point(0, 0, -5), 1e-6)
	assertVec4Near(t, view.MulVec4(Point(1, 0, 0)), Point(1, 0, -5), 1e-6)
}

func TestLookAtDegenerate(t *testing.T) {
	tests := []struct {
		name            string
		eye, center, up Vec4
	}{
		{"eye equals center", Point(1, 1, 1), Point(1, 1, 1), AxisY()},
		{"up parallel", Point(0, 0, 5), Origin(), AxisZ()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Translation(1, 2, 3)
			err := m.SetLookAt(tt.eye, tt.center, tt.up)
			if !errors.Is(err, ErrDegenerateBasis) {
				t.Errorf("SetLookAt() error = %v, want %v", err, ErrDegenerateBasis)
			}
			if m != Translation(1, 2, 3) {
				t.Error("SetLookAt() should leave the matrix unchanged on error")
			}
		})
	}
}

func TestPerspectiveNearPlane(t *testing.T) {
	proj, err := Perspective(90, 1, 0.1, 50)
	if err != nil {
		t.Fatalf("Perspective() error = %v", err)
	}
	near := proj.MulVec4(Point(0, 0, -0.1)).MustPointWDivide()
	if !nearly(near.Z(), -1, 1e-4) {
		t.Errorf("near plane ndc z = %f, want -1", near.Z())
	}
	far := proj.MulVec4(Point(0, 0, -50)).MustPointWDivide()
	if !nearly(far.Z(), 1, 1e-4) {
		t.Errorf("far plane ndc z = %f, want 1", far.Z())
	}
}

func TestPerspectiveInvalid(t *testing.T) {
	tests := []struct {
		name                   string
		fov, aspect, near, far float32
	}{
		{"zero aspect", 90, 0, 0.1, 50},
		{"negative near", 90, 1, -1, 50},
		{"far before near", 90, 1, 10, 5},
		{"zero fov", 0, 1, 0.1, 50},
		{"fov 180", 180, 1, 0.1, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Identity()
			err := m.SetPerspective(tt.fov, tt.aspect, tt.near, tt.far)
			if !errors.Is(err, ErrInvalidProjection) {
				t.Errorf("SetPerspective() error = %v, want %v", err, ErrInvalidProjection)
			}
			if m != Identity() {
				t.Error("SetPerspective() should leave the matrix unchanged on error")
			}
		})
	}
}

func TestFrustumInvalid(t *testing.T) {
	if _, err := Frustum(1, 1, -1, 1, 0.1, 10); !errors.Is(err, ErrInvalidProjection) {
		t.Errorf("Frustum(left == right) error = %v, want %v", err, ErrInvalidProjection)
	}
}
