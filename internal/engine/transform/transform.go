// Package transform holds an object's scale, rotation and world position.
package transform

import (
	"github.com/Faultbox/deepv/pkg/dirty"
	"github.com/Faultbox/deepv/pkg/math"
)

// Transform composes model = translation * rotation * scale.
// Mutators accumulate onto the current state; the model and normals
// matrices are rebuilt lazily on the next read.
type Transform struct {
	scale       math.Mat4
	rotation    math.Mat4
	translation math.Mat4

	model   *dirty.Value[math.Mat4]
	normals *dirty.Value[math.Mat4]
}

// New returns an identity transform.
func New() *Transform {
	t := &Transform{
		scale:       math.Identity(),
		rotation:    math.Identity(),
		translation: math.Identity(),
	}
	t.model = dirty.New(t.buildModel)
	t.normals = dirty.New(t.buildNormals)
	return t
}

func (t *Transform) buildModel() math.Mat4 {
	return t.translation.Mul(t.rotation).Mul(t.scale)
}

func (t *Transform) buildNormals() math.Mat4 {
	return t.model.Get().Inverse().Transpose()
}

func (t *Transform) invalidate() {
	t.model.Invalidate()
	t.normals.Invalidate()
}

// SelfScale multiplies the current scale by (x, y, z) of v.
func (t *Transform) SelfScale(v math.Vec4) *Transform {
	t.scale.Scale(v.X(), v.Y(), v.Z())
	t.invalidate()
	return t
}

// SelfRotate appends a rotation of degrees around axis in object space.
func (t *Transform) SelfRotate(axis math.Vec4, degrees float32) *Transform {
	t.rotation.Rotate(axis, degrees)
	t.invalidate()
	return t
}

// WorldTranslate moves the object by d in world space.
func (t *Transform) WorldTranslate(d math.Vec4) *Transform {
	t.translation.Translate(d.X(), d.Y(), d.Z())
	t.invalidate()
	return t
}

// Reset returns the transform to identity.
func (t *Transform) Reset() *Transform {
	t.scale.SetIdentity()
	t.rotation.SetIdentity()
	t.translation.SetIdentity()
	t.invalidate()
	return t
}

// ModelMatrix returns translation * rotation * scale.
func (t *Transform) ModelMatrix() math.Mat4 {
	return t.model.Get()
}

// NormalsMatrix returns the inverse transpose of the model matrix.
func (t *Transform) NormalsMatrix() math.Mat4 {
	return t.normals.Get()
}

// Position returns the world position of the object origin.
func (t *Transform) Position() math.Vec4 {
	return t.translation.MulVec4(math.Origin())
}
