package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// The value constructors return fresh matrices. The pointer methods
// (SetIdentity, Scale, Translate, Rotate, Multiply, ...) modify the
// receiver in place and return it for chaining, post-multiplying so that
// the last applied operation is the first one a column vector sees.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a translation matrix.
func Translation(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scaling returns a scale matrix.
func Scaling(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationAxis returns a rotation of angle degrees around axis.
// Only the xyz part of axis is used and it need not be normalized.
// Returns identity if the axis has no length.
func RotationAxis(axis Vec4, degrees float32) Mat4 {
	l := math32.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if IsZero(l) {
		return Identity()
	}
	x, y, z := axis[0]/l, axis[1]/l, axis[2]/l

	rad := degrees * math32.Pi / 180
	s := math32.Sin(rad)
	c := math32.Cos(rad)
	t := 1 - c

	return Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// Frustum returns a perspective projection for the given clip planes.
func Frustum(left, right, bottom, top, near, far float32) (Mat4, error) {
	if IsEqual(left, right) || IsEqual(bottom, top) || near <= 0 || far <= near {
		return Identity(), fmt.Errorf("frustum l=%g r=%g b=%g t=%g n=%g f=%g: %w",
			left, right, bottom, top, near, far, ErrInvalidProjection)
	}
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return Mat4{
		2 * near * rl, 0, 0, 0,
		0, 2 * near * tb, 0, 0,
		(right + left) * rl, (top + bottom) * tb, -(far + near) * fn, -1,
		0, 0, -2 * far * near * fn, 0,
	}, nil
}

// Perspective returns a symmetric perspective projection.
// fovY is the vertical field of view in degrees, aspect is width/height.
func Perspective(fovYDegrees, aspect, near, far float32) (Mat4, error) {
	if fovYDegrees <= 0 || fovYDegrees >= Arc180 || aspect <= 0 {
		return Identity(), fmt.Errorf("perspective fov=%g aspect=%g: %w", fovYDegrees, aspect, ErrInvalidProjection)
	}
	top := math32.Tan(fovYDegrees*math32.Pi/360) * near
	bottom := -top
	return Frustum(aspect*bottom, aspect*top, bottom, top, near, far)
}

// LookAt returns a view matrix looking from eye to center with up direction.
// Only the xyz parts of the arguments are used.
func LookAt(eye, center, up Vec4) (Mat4, error) {
	f := center.Sub(eye).AsVector()
	fl := f.Length()
	if IsZero(fl) {
		return Identity(), fmt.Errorf("look-at eye equals center: %w", ErrDegenerateBasis)
	}
	f = f.Scale(1 / fl)

	s := f.Cross(up.AsVector())
	sl := s.Length()
	if IsZero(sl) {
		return Identity(), fmt.Errorf("look-at up is parallel to view direction: %w", ErrDegenerateBasis)
	}
	s = s.Scale(1 / sl)
	u := s.Cross(f)

	return Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}, nil
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// MulVec4 multiplies the matrix by a Vec4.
// Points pick up translation, vectors do not.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			t[row*4+col] = m[col*4+row]
		}
	}
	return t
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func (m Mat4) Inverse() Mat4 {
	c00 := m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	c01 := -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	c02 := m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	c03 := -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]

	c10 := -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	c11 := m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	c12 := -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	c13 := m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]

	c20 := m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	c21 := -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	c22 := m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	c23 := -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]

	c30 := -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	c31 := m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	c32 := -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	c33 := m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*c00 + m[4]*c01 + m[8]*c02 + m[12]*c03
	if det == 0 {
		return Identity()
	}
	invDet := 1 / det

	return Mat4{
		c00 * invDet, c01 * invDet, c02 * invDet, c03 * invDet,
		c10 * invDet, c11 * invDet, c12 * invDet, c13 * invDet,
		c20 * invDet, c21 * invDet, c22 * invDet, c23 * invDet,
		c30 * invDet, c31 * invDet, c32 * invDet, c33 * invDet,
	}
}

// NearlyEqual reports whether all elements of m and other are epsilon-equal.
func (m Mat4) NearlyEqual(other Mat4) bool {
	for i := range m {
		if !IsEqual(m[i], other[i]) {
			return false
		}
	}
	return true
}

// SetIdentity resets m to identity.
func (m *Mat4) SetIdentity() *Mat4 {
	*m = Identity()
	return m
}

// Set copies other into m.
func (m *Mat4) Set(other Mat4) *Mat4 {
	*m = other
	return m
}

// Multiply sets m = m * other. other may be m itself.
func (m *Mat4) Multiply(other *Mat4) *Mat4 {
	*m = m.Mul(*other)
	return m
}

// Scale sets m = m * Scaling(x, y, z).
func (m *Mat4) Scale(x, y, z float32) *Mat4 {
	*m = m.Mul(Scaling(x, y, z))
	return m
}

// Translate sets m = m * Translation(dx, dy, dz).
func (m *Mat4) Translate(dx, dy, dz float32) *Mat4 {
	*m = m.Mul(Translation(dx, dy, dz))
	return m
}

// Rotate sets m = m * RotationAxis(axis, degrees).
func (m *Mat4) Rotate(axis Vec4, degrees float32) *Mat4 {
	*m = m.Mul(RotationAxis(axis, degrees))
	return m
}

// SetLookAt replaces m with a view matrix. On error m is left unchanged.
func (m *Mat4) SetLookAt(eye, center, up Vec4) error {
	view, err := LookAt(eye, center, up)
	if err != nil {
		return err
	}
	*m = view
	return nil
}

// SetPerspective replaces m with a symmetric perspective projection.
// On error m is left unchanged.
func (m *Mat4) SetPerspective(fovYDegrees, aspect, near, far float32) error {
	proj, err := Perspective(fovYDegrees, aspect, near, far)
	if err != nil {
		return err
	}
	*m = proj
	return nil
}

// SetFrustum replaces m with a frustum projection. On error m is left unchanged.
func (m *Mat4) SetFrustum(left, right, bottom, top, near, far float32) error {
	proj, err := Frustum(left, right, bottom, top, near, far)
	if err != nil {
		return err
	}
	*m = proj
	return nil
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
