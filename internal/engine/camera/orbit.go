package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/deepv/pkg/math"
)

// OrbitCamera orbits around a center point with Z up.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec4

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Elevation above the XY plane (radians)
	Yaw      float32 // Angle around Z from +X (radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera sized for unit scenes.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Center:          math.Origin(),
		Distance:        1.75,
		Pitch:           0.41,
		Yaw:             0,
		MinDistance:     0.5,
		MaxDistance:     DefaultFar / 2,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec4 {
	cp := math32.Cos(c.Pitch)
	return c.Center.Translate(
		c.Distance*cp*math32.Cos(c.Yaw),
		c.Distance*cp*math32.Sin(c.Yaw),
		c.Distance*math32.Sin(c.Pitch),
	).AsPoint()
}

// Apply points cam from Position at Center.
func (c *OrbitCamera) Apply(cam *Camera) error {
	return cam.SetLookAt(c.Position(), c.Center.AsPoint(), math.AxisZ())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// HandleMovement pans the center point in the XY plane relative to the view.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	// forward points from the eye toward the center
	dirX, dirY := -math32.Cos(c.Yaw), -math32.Sin(c.Yaw)
	rightX, rightY := -dirY, dirX

	c.Center = c.Center.Translate(
		(dirX*forward+rightX*right)*speed,
		(dirY*forward+rightY*right)*speed,
		up*speed,
	)
}

// LookFrom sets the orbit so that Position equals eye, keeping Center.
func (c *OrbitCamera) LookFrom(eye math.Vec4) {
	d := eye.Sub(c.Center).AsVector()
	c.Distance = d.Length()
	if math.IsZero(c.Distance) {
		return
	}
	c.Pitch = math32.Asin(d.Z() / c.Distance)
	c.Yaw = math32.Atan2(d.Y(), d.X())
}

// FitToBounds centers the orbit on a bounding box and backs off to see it whole.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec4) {
	c.Center = lo.Add(hi).Scale(0.5).AsPoint()

	size := hi.Sub(lo).AsVector().Length()
	c.Distance = size
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
