package demos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/deepv/internal/config"
	"github.com/Faultbox/deepv/internal/engine/scene"
	"github.com/Faultbox/deepv/pkg/math"
)

type counter struct {
	meshes, morphs int
	twoSided       int
}

func (c *counter) DrawMesh(d scene.MeshDraw) error {
	c.meshes++
	if d.Material.TwoSided {
		c.twoSided++
	}
	return nil
}

func (c *counter) DrawMorph(scene.MorphDraw) error {
	c.morphs++
	return nil
}

// smallConfig keeps generated meshes cheap.
func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Mesh.SphereLevel = 2
	cfg.Mesh.MorphLevel = 2
	return cfg
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"pd00", "pd01"}, Names())
}

func TestBuildUnknown(t *testing.T) {
	_, err := Build("pd99", smallConfig())
	assert.ErrorIs(t, err, ErrUnknownDemo)
}

func TestPd00(t *testing.T) {
	s, err := Build("pd00", smallConfig())
	require.NoError(t, err)

	assert.Len(t, s.Pawns(), 3)
	assert.Len(t, s.Lights.Directs, 1)
	assert.Len(t, s.Lights.Points, 1)
	assert.Equal(t, math.Point(1.6, 0, 0.7), s.Camera.EyePosition())

	sun := s.Lights.Directs[0].Direction
	want := math.Vector(-1, 0, 1).MustVectorNormalize()
	for i := range want {
		assert.InDelta(t, want[i], sun[i], 1e-6)
	}

	require.NoError(t, s.Resize(640, 480))
	require.NoError(t, s.UpdateAnimations(16*time.Millisecond))

	c := &counter{}
	require.NoError(t, s.Draw(c))
	assert.Equal(t, 3, c.meshes)
	assert.Equal(t, 0, c.morphs)
}

func TestPd00CubeSpins(t *testing.T) {
	s, err := Build("pd00", smallConfig())
	require.NoError(t, err)

	scube := s.Pawns()[0]
	before := scube.Transform.ModelMatrix()
	require.NoError(t, s.UpdateAnimations(100*time.Millisecond))
	assert.NotEqual(t, before, scube.Transform.ModelMatrix())
	assert.Equal(t, math.Point(-0.5, 0.7, 0), scube.Transform.Position())
}

func TestPd01(t *testing.T) {
	s, err := Build("pd01", smallConfig())
	require.NoError(t, err)

	assert.Len(t, s.Pawns(), 2)
	assert.Empty(t, s.Lights.Directs)
	assert.Len(t, s.Lights.Points, 1)

	// run past a full morph loop
	for i := 0; i < 200; i++ {
		require.NoError(t, s.UpdateAnimations(100*time.Millisecond))
	}

	c := &counter{}
	require.NoError(t, s.Draw(c))
	assert.Equal(t, 1, c.meshes)
	assert.Equal(t, 1, c.twoSided)
	assert.Equal(t, 1, c.morphs)
}

func TestBuildHonorsLens(t *testing.T) {
	cfg := smallConfig()
	cfg.Scene.Near = -1
	_, err := Build("pd00", cfg)
	assert.ErrorIs(t, err, math.ErrInvalidProjection)
}
