// Package camera provides the scene camera and an orbit controller for it.
package camera

import (
	"errors"
	"fmt"

	"github.com/Faultbox/deepv/pkg/dirty"
	"github.com/Faultbox/deepv/pkg/math"
)

// Default lens settings.
const (
	DefaultFovY float32 = 90
	DefaultNear float32 = 0.1
	DefaultFar  float32 = 50
)

// ErrInvalidViewport is returned for a non-positive viewport size.
var ErrInvalidViewport = errors.New("camera: invalid viewport size")

// Camera holds a view and a projection matrix and caches their product.
type Camera struct {
	fovY, near, far float32
	aspect          float32

	view       math.Mat4
	projection math.Mat4
	eye        math.Vec4

	viewProjection *dirty.Value[math.Mat4]
}

// New returns a camera at the origin with identity view and projection.
func New() *Camera {
	c := &Camera{
		fovY:       DefaultFovY,
		near:       DefaultNear,
		far:        DefaultFar,
		aspect:     1,
		view:       math.Identity(),
		projection: math.Identity(),
		eye:        math.Origin(),
	}
	c.viewProjection = dirty.New(func() math.Mat4 {
		return c.projection.Mul(c.view)
	})
	return c
}

// SetLookAt points the camera from eye at center. On error the camera is unchanged.
func (c *Camera) SetLookAt(eye, center, up math.Vec4) error {
	if err := c.view.SetLookAt(eye, center, up); err != nil {
		return fmt.Errorf("camera look-at: %w", err)
	}
	c.eye = eye.AsPoint()
	c.viewProjection.Invalidate()
	return nil
}

// SetViewport rebuilds the projection for a width x height viewport.
func (c *Camera) SetViewport(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("viewport %dx%d: %w", width, height, ErrInvalidViewport)
	}
	aspect := float32(width) / float32(height)
	if err := c.projection.SetPerspective(c.fovY, aspect, c.near, c.far); err != nil {
		return fmt.Errorf("camera viewport: %w", err)
	}
	c.aspect = aspect
	c.viewProjection.Invalidate()
	return nil
}

// SetLens changes the vertical field of view (degrees) and clip planes,
// rebuilding the projection for the last viewport aspect.
func (c *Camera) SetLens(fovY, near, far float32) error {
	if err := c.projection.SetPerspective(fovY, c.aspect, near, far); err != nil {
		return fmt.Errorf("camera lens: %w", err)
	}
	c.fovY, c.near, c.far = fovY, near, far
	c.viewProjection.Invalidate()
	return nil
}

// EyePosition returns the eye point of the last successful SetLookAt.
func (c *Camera) EyePosition() math.Vec4 {
	return c.eye
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math.Mat4 {
	return c.view
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return c.projection
}

// ViewProjectionMatrix returns projection * view.
func (c *Camera) ViewProjectionMatrix() math.Mat4 {
	return c.viewProjection.Get()
}
