package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/deepv/internal/engine/camera"
)

// Orbit drives an OrbitCamera: left drag rotates, the wheel zooms and
// WASD/QE fly the center.
type Orbit struct {
	Camera *camera.OrbitCamera
	// MoveStep scales a key press; movement also scales with distance.
	MoveStep float32

	dragging bool
}

// NewOrbit binds controls to c.
func NewOrbit(c *camera.OrbitCamera) *Orbit {
	return &Orbit{Camera: c, MoveStep: 5}
}

// Dragging reports whether the left button is held.
func (o *Orbit) Dragging() bool {
	return o.dragging
}

// Handle applies e and reports whether the camera moved.
func (o *Orbit) Handle(e Event) bool {
	switch e.Type {
	case EventMouseDown:
		if e.Button == ButtonLeft {
			o.dragging = true
		}
	case EventMouseUp:
		if e.Button == ButtonLeft {
			o.dragging = false
		}
	case EventMouseMove:
		if o.dragging {
			o.Camera.HandleDrag(e.DeltaX, e.DeltaY)
			return true
		}
	case EventMouseWheel:
		if e.DeltaY != 0 {
			o.Camera.HandleZoom(e.DeltaY)
			return true
		}
	case EventKeyDown:
		return o.move(e.Key)
	}
	return false
}

func (o *Orbit) move(key sdl.Scancode) bool {
	s := o.MoveStep
	switch key {
	case sdl.SCANCODE_W:
		o.Camera.HandleMovement(s, 0, 0)
	case sdl.SCANCODE_S:
		o.Camera.HandleMovement(-s, 0, 0)
	case sdl.SCANCODE_D:
		o.Camera.HandleMovement(0, s, 0)
	case sdl.SCANCODE_A:
		o.Camera.HandleMovement(0, -s, 0)
	case sdl.SCANCODE_E:
		o.Camera.HandleMovement(0, 0, s)
	case sdl.SCANCODE_Q:
		o.Camera.HandleMovement(0, 0, -s)
	default:
		return false
	}
	return true
}
