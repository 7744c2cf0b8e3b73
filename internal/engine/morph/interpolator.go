package morph

import (
	"fmt"
	"time"
)

// Interpolator tracks looping time over a Mesh and the frames to blend.
type Interpolator struct {
	mesh     *Mesh
	elapsed  time.Duration
	current  Step
	fraction float32
}

// NewInterpolator starts at time 0.
func NewInterpolator(m *Mesh) (*Interpolator, error) {
	if m == nil || len(m.frames) < 2 {
		return nil, ErrEmptyMorph
	}
	return &Interpolator{
		mesh:    m,
		current: m.Find(0),
	}, nil
}

// Update advances time by delta, wrapping at the loop length.
func (i *Interpolator) Update(delta time.Duration) error {
	if delta < 0 {
		return fmt.Errorf("update by %v: %w", delta, ErrNegativeDelta)
	}
	i.elapsed = (i.elapsed + delta) % i.mesh.length
	if !i.current.Contains(i.elapsed) {
		i.current = i.mesh.Find(i.elapsed)
		if !i.current.Contains(i.elapsed) {
			return fmt.Errorf("at %v of %v: %w", i.elapsed, i.mesh.length, ErrBrokenMorph)
		}
	}
	i.fraction = i.current.Fraction(i.elapsed)
	return nil
}

// Elapsed returns the wrapped time.
func (i *Interpolator) Elapsed() time.Duration {
	return i.elapsed
}

// Current returns the frames being blended.
func (i *Interpolator) Current() Step {
	return i.current
}

// Fraction returns the blend weight of Current().Second.
func (i *Interpolator) Fraction() float32 {
	return i.fraction
}

// Mesh returns the morph being played.
func (i *Interpolator) Mesh() *Mesh {
	return i.mesh
}
