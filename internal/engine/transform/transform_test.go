package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/deepv/pkg/math"
)

func TestNewIsIdentity(t *testing.T) {
	tr := New()
	assert.Equal(t, math.Identity(), tr.ModelMatrix())
	assert.Equal(t, math.Identity(), tr.NormalsMatrix())
}

func TestConsecutiveReadsAreIdentical(t *testing.T) {
	tr := New()
	tr.SelfRotate(math.Vector(1, 1, 1), 33).WorldTranslate(math.Vector(1, 2, 3))

	first := tr.ModelMatrix()
	second := tr.ModelMatrix()
	if first != second {
		t.Errorf("consecutive ModelMatrix() reads differ: %v vs %v", first, second)
	}
}

func TestModelOrder(t *testing.T) {
	tr := New()
	tr.SelfScale(math.Vector(2, 2, 2)).
		SelfRotate(math.AxisZ(), 90).
		WorldTranslate(math.Vector(10, 0, 0))

	// scale, then rotate, then translate
	got := tr.ModelMatrix().MulVec4(math.Point(1, 0, 0))
	want := math.Point(10, 2, 0)
	for i := range got {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d", i)
	}
}

func TestMutationIsReflected(t *testing.T) {
	tr := New()
	before := tr.ModelMatrix()

	tr.SelfRotate(math.AxisY(), 45)
	after := tr.ModelMatrix()
	assert.NotEqual(t, before, after)

	want := math.RotationAxis(math.AxisY(), 45)
	assert.True(t, after.NearlyEqual(want), "got %v, want %v", after, want)
}

func TestWorldTranslateAccumulates(t *testing.T) {
	tr := New()
	tr.WorldTranslate(math.Vector(1, 0, 0))
	tr.WorldTranslate(math.Vector(0, 2, 0))
	assert.Equal(t, math.Point(1, 2, 0), tr.Position())
}

func TestNormalsMatrixUndoesNonUniformScale(t *testing.T) {
	tr := New()
	tr.SelfScale(math.Vector(2, 1, 1))

	n := tr.NormalsMatrix().MulVec4(math.Vector(1, 0, 0))
	assert.InDelta(t, 0.5, n.X(), 1e-6)

	// translation does not change the xyz part of a normal
	tr.WorldTranslate(math.Vector(5, 5, 5))
	n = tr.NormalsMatrix().MulVec4(math.Vector(0, 1, 0))
	assert.InDelta(t, 0, n.X(), 1e-6)
	assert.InDelta(t, 1, n.Y(), 1e-6)
	assert.InDelta(t, 0, n.Z(), 1e-6)
}

func TestReset(t *testing.T) {
	tr := New()
	tr.SelfScale(math.Vector(3, 3, 3)).WorldTranslate(math.Vector(1, 1, 1))
	tr.ModelMatrix()
	tr.Reset()
	assert.Equal(t, math.Identity(), tr.ModelMatrix())
}
