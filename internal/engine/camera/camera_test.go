package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/deepv/pkg/math"
)

func TestNewCameraIsIdentity(t *testing.T) {
	c := New()
	assert.Equal(t, math.Identity(), c.ViewProjectionMatrix())
	assert.Equal(t, math.Origin(), c.EyePosition())
}

func TestViewProjectionIsProjectionTimesView(t *testing.T) {
	c := New()
	require.NoError(t, c.SetLookAt(math.Point(1.6, 0, 0.7), math.Origin(), math.AxisZ()))
	require.NoError(t, c.SetViewport(800, 600))

	want := c.ProjectionMatrix().Mul(c.ViewMatrix())
	assert.Equal(t, want, c.ViewProjectionMatrix())
	assert.Equal(t, math.Point(1.6, 0, 0.7), c.EyePosition())
}

func TestViewProjectionRefreshesAfterMutation(t *testing.T) {
	c := New()
	require.NoError(t, c.SetViewport(640, 480))
	first := c.ViewProjectionMatrix()

	require.NoError(t, c.SetLookAt(math.Point(0, 0, 5), math.Origin(), math.AxisY()))
	second := c.ViewProjectionMatrix()
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, c.ViewProjectionMatrix())
}

func TestSetViewportRejectsEmpty(t *testing.T) {
	c := New()
	for _, size := range [][2]int{{0, 600}, {800, 0}, {-1, -1}} {
		err := c.SetViewport(size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidViewport, "size %v", size)
	}
	assert.Equal(t, math.Identity(), c.ProjectionMatrix())
}

func TestSetLookAtDegenerateKeepsState(t *testing.T) {
	c := New()
	require.NoError(t, c.SetLookAt(math.Point(0, 0, 5), math.Origin(), math.AxisY()))
	view := c.ViewMatrix()

	err := c.SetLookAt(math.Origin(), math.Origin(), math.AxisY())
	assert.ErrorIs(t, err, math.ErrDegenerateBasis)
	assert.Equal(t, view, c.ViewMatrix())
	assert.Equal(t, math.Point(0, 0, 5), c.EyePosition())
}

func TestSetLens(t *testing.T) {
	c := New()
	require.NoError(t, c.SetViewport(100, 100))
	wide := c.ProjectionMatrix()

	require.NoError(t, c.SetLens(45, 0.1, 50))
	narrow := c.ProjectionMatrix()
	// narrower fov means a larger x scale
	assert.Greater(t, narrow[0], wide[0])

	assert.ErrorIs(t, c.SetLens(45, 1, 0.5), math.ErrInvalidProjection)
	assert.Equal(t, narrow, c.ProjectionMatrix())
}
