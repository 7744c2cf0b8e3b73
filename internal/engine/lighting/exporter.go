package lighting

import (
	"errors"
	"fmt"

	"github.com/Faultbox/deepv/pkg/math"
)

// Spec w values. The shader branches on the sign of w.
const (
	SpecDirect float32 = -1
	SpecOff    float32 = 0
	SpecPoint  float32 = 1
)

var (
	// ErrTooManyLights is returned when lights exceed the exporter slots.
	ErrTooManyLights = errors.New("lighting: more lights than slots")
	// ErrNoSlots is returned for an exporter with no slots.
	ErrNoSlots = errors.New("lighting: slot count must be positive")
)

// Exporter packs lights into fixed-size spec and color arrays.
// Each spec holds xyz plus the light kind in w. Unused slots are off.
type Exporter struct {
	specs  *math.Vec4Array
	colors *math.Vec4Array
}

// NewExporter creates an exporter with slots lights, all off.
func NewExporter(slots int) (*Exporter, error) {
	if slots <= 0 {
		return nil, fmt.Errorf("%d slots: %w", slots, ErrNoSlots)
	}
	e := &Exporter{
		specs:  math.NewVec4Array(slots),
		colors: math.NewVec4Array(slots),
	}
	e.fillOff()
	return e, nil
}

// Slots returns the number of light slots.
func (e *Exporter) Slots() int {
	return e.specs.Len()
}

// Rebuild refills the slots: directional lights first, then point lights.
// On error the previous contents are kept.
func (e *Exporter) Rebuild(l *Lights) error {
	if n := l.Count(); n > e.Slots() {
		return fmt.Errorf("%d lights, %d slots: %w", n, e.Slots(), ErrTooManyLights)
	}
	e.specs.Rewind()
	e.colors.Rewind()
	for _, d := range l.Directs {
		e.specs.PutVector(d.Direction.X(), d.Direction.Y(), d.Direction.Z(), SpecDirect)
		e.colors.Put(d.Color)
	}
	for _, p := range l.Points {
		e.specs.PutVector(p.Origin.X(), p.Origin.Y(), p.Origin.Z(), SpecPoint)
		e.colors.Put(p.Color)
	}
	e.fillOff()
	return nil
}

func (e *Exporter) fillOff() {
	for e.specs.HasRemaining() {
		e.specs.PutVector(0, 0, 0, SpecOff)
		e.colors.PutVector(0, 0, 0, 0)
	}
}

// Specs returns the packed light specs.
func (e *Exporter) Specs() *math.Vec4Array {
	return e.specs
}

// Colors returns the packed light colors.
func (e *Exporter) Colors() *math.Vec4Array {
	return e.colors
}
