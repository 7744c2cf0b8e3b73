// Package morph blends between baked mesh frames keyed by time.
package morph

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/deepv/internal/engine/mesh"
)

var (
	// ErrEmptyMorph is returned when a morph has fewer than two frames.
	ErrEmptyMorph = errors.New("morph: need at least two frames")
	// ErrInvalidDuration is returned for a non-positive frame duration.
	ErrInvalidDuration = errors.New("morph: frame duration must be positive")
	// ErrVertexMismatch is returned when a frame differs in vertex count.
	ErrVertexMismatch = errors.New("morph: frame vertex count mismatch")
	// ErrNegativeDelta is returned when time is stepped backwards.
	ErrNegativeDelta = errors.New("morph: negative time delta")
	// ErrBrokenMorph is returned when no frame pair brackets the current
	// time. It means the frame list is corrupt and is not recoverable.
	ErrBrokenMorph = errors.New("morph: broken morphing mesh")
)

// Frame is one keyed pose. KeyTime is measured from the start of the loop.
type Frame struct {
	Attributes *mesh.BakedAttributes
	KeyTime    time.Duration
}

// Step is a pair of consecutive frames.
type Step struct {
	First  Frame
	Second Frame
}

// Contains reports whether t lies within [First.KeyTime, Second.KeyTime].
func (s Step) Contains(t time.Duration) bool {
	return s.First.KeyTime <= t && t <= s.Second.KeyTime
}

// Fraction returns how far t is from First toward Second, 0 at First and 1 at Second.
func (s Step) Fraction(t time.Duration) float32 {
	span := s.Second.KeyTime - s.First.KeyTime
	if span <= 0 {
		return 0
	}
	return float32(t-s.First.KeyTime) / float32(span)
}

// Mesh is a sequence of frames that share one index buffer.
type Mesh struct {
	frames  []Frame
	indices []uint16
	length  time.Duration
}

// NewMesh starts a morph with zero as the frame at time 0.
func NewMesh(zero *mesh.BakedAttributes, indices []uint16) (*Mesh, error) {
	if zero == nil {
		return nil, fmt.Errorf("zero frame: %w", mesh.ErrInvalidParameter)
	}
	return &Mesh{
		frames:  []Frame{{Attributes: zero}},
		indices: indices,
	}, nil
}

// AddFrame appends attrs, reached animateIn after the previous frame.
func (m *Mesh) AddFrame(attrs *mesh.BakedAttributes, animateIn time.Duration) error {
	if animateIn <= 0 {
		return fmt.Errorf("frame %d after %v: %w", len(m.frames), animateIn, ErrInvalidDuration)
	}
	if attrs == nil || attrs.VertexCount() != m.frames[0].Attributes.VertexCount() {
		return fmt.Errorf("frame %d: %w", len(m.frames), ErrVertexMismatch)
	}
	m.length += animateIn
	m.frames = append(m.frames, Frame{Attributes: attrs, KeyTime: m.length})
	return nil
}

// Length returns the loop length, the key time of the last frame.
func (m *Mesh) Length() time.Duration {
	return m.length
}

// Frames returns a copy of the frame list.
func (m *Mesh) Frames() []Frame {
	out := make([]Frame, len(m.frames))
	copy(out, m.frames)
	return out
}

// Indices returns the shared index buffer.
func (m *Mesh) Indices() []uint16 {
	return m.indices
}

// Find returns the first step whose second frame is at or after t.
// Times past the end yield the last step.
func (m *Mesh) Find(t time.Duration) Step {
	prev := m.frames[0]
	next := prev
	for _, f := range m.frames[1:] {
		prev = next
		next = f
		if t <= next.KeyTime {
			break
		}
	}
	return Step{First: prev, Second: next}
}
