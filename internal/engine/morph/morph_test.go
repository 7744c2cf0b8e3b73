package morph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/deepv/internal/engine/mesh"
)

func bakedFrame(t *testing.T, vertices int) *mesh.BakedAttributes {
	t.Helper()
	attrs := mesh.NewVertexAttributes(vertices)
	baked, err := attrs.Bake(mesh.RecipeXYZ)
	require.NoError(t, err)
	return baked
}

// threeFrames keys frames at 0, 3s and 6s.
func threeFrames(t *testing.T) *Mesh {
	t.Helper()
	m, err := NewMesh(bakedFrame(t, 3), []uint16{0, 1, 2})
	require.NoError(t, err)
	require.NoError(t, m.AddFrame(bakedFrame(t, 3), 3*time.Second))
	require.NoError(t, m.AddFrame(bakedFrame(t, 3), 3*time.Second))
	return m
}

func TestMeshKeyTimes(t *testing.T) {
	m := threeFrames(t)
	assert.Equal(t, 6*time.Second, m.Length())

	frames := m.Frames()
	require.Len(t, frames, 3)
	assert.Equal(t, time.Duration(0), frames[0].KeyTime)
	assert.Equal(t, 3*time.Second, frames[1].KeyTime)
	assert.Equal(t, 6*time.Second, frames[2].KeyTime)
}

func TestMeshFind(t *testing.T) {
	m := threeFrames(t)
	tests := []struct {
		at          time.Duration
		first, last time.Duration
	}{
		{0, 0, 3 * time.Second},
		{3 * time.Second, 0, 3 * time.Second},
		{4500 * time.Millisecond, 3 * time.Second, 6 * time.Second},
		{6 * time.Second, 3 * time.Second, 6 * time.Second},
		{time.Hour, 3 * time.Second, 6 * time.Second},
	}
	for _, tt := range tests {
		s := m.Find(tt.at)
		assert.Equal(t, tt.first, s.First.KeyTime, "find(%v) first", tt.at)
		assert.Equal(t, tt.last, s.Second.KeyTime, "find(%v) second", tt.at)
	}
}

func TestAddFrameRejects(t *testing.T) {
	m, err := NewMesh(bakedFrame(t, 3), nil)
	require.NoError(t, err)

	assert.ErrorIs(t, m.AddFrame(bakedFrame(t, 3), 0), ErrInvalidDuration)
	assert.ErrorIs(t, m.AddFrame(bakedFrame(t, 3), -time.Second), ErrInvalidDuration)
	assert.ErrorIs(t, m.AddFrame(bakedFrame(t, 4), time.Second), ErrVertexMismatch)
	assert.Len(t, m.Frames(), 1)
	assert.Equal(t, time.Duration(0), m.Length())
}

func TestNewMeshNeedsZeroFrame(t *testing.T) {
	_, err := NewMesh(nil, nil)
	assert.ErrorIs(t, err, mesh.ErrInvalidParameter)
}

func TestStepFraction(t *testing.T) {
	s := Step{First: Frame{KeyTime: time.Second}, Second: Frame{KeyTime: 3 * time.Second}}
	assert.InDelta(t, 0, s.Fraction(time.Second), 1e-6)
	assert.InDelta(t, 0.5, s.Fraction(2*time.Second), 1e-6)
	assert.InDelta(t, 1, s.Fraction(3*time.Second), 1e-6)
	assert.True(t, s.Contains(3*time.Second))
	assert.False(t, s.Contains(3*time.Second+1))
}
