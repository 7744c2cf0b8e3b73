package screenshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipRGBA(t *testing.T) {
	// 1x2: bottom row red, top row blue
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRGBA(pixels, 1, 2)
	require.NoError(t, err)

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, b)
	r, _, _, _ = img.At(0, 1).RGBA()
	assert.NotZero(t, r)
}

func TestFlipRGBASizeMismatch(t *testing.T) {
	_, err := FlipRGBA(make([]byte, 7), 1, 2)
	assert.ErrorIs(t, err, ErrSize)
	_, err = FlipRGBA(nil, 0, 0)
	assert.ErrorIs(t, err, ErrSize)
}

func TestSaveRGBA(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := New(dir, "pd00")
	c.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	path, err := c.SaveRGBA(make([]byte, 2*2*4), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pd00_2026-01-02_03-04-05.000.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Width)
	assert.Equal(t, 2, cfg.Height)
}
