package morph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorphingSphereTimeline(t *testing.T) {
	m, err := MorphingSphere(2, SphereTimeline)
	require.NoError(t, err)

	frames := m.Frames()
	require.Len(t, frames, 5)
	assert.Equal(t, 15*time.Second, m.Length())

	want := []time.Duration{0, 6 * time.Second, 9 * time.Second, 12 * time.Second, 15 * time.Second}
	for i, f := range frames {
		assert.Equal(t, want[i], f.KeyTime, "frame %d", i)
	}

	flat, round := frames[0].Attributes, frames[1].Attributes
	assert.Same(t, flat, frames[4].Attributes)
	assert.Same(t, round, frames[2].Attributes)
	assert.Equal(t, flat.VertexCount(), round.VertexCount())
	assert.Len(t, m.Indices(), 32*3)
}

func TestMorphingSphereRoundFrameOnSphere(t *testing.T) {
	m, err := MorphingSphere(3, SphereTimeline)
	require.NoError(t, err)

	round := m.Frames()[1].Attributes
	for i := 0; i < round.VertexCount(); i++ {
		assert.InDelta(t, 1, round.Position(i).Length(), 1e-5, "vertex %d", i)
	}
}

func TestMorphingSphereInvalid(t *testing.T) {
	_, err := MorphingSphere(0, SphereTimeline)
	assert.Error(t, err)

	_, err = MorphingSphere(2, nil)
	assert.ErrorIs(t, err, ErrEmptyMorph)

	_, err = MorphingSphere(2, []Keyframe{{Shape: Round, AnimateIn: 0}})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
