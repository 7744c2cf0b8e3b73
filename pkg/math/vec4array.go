package math

import "fmt"

// Vec4Size is the number of floats in one Vec4 slot.
const Vec4Size = 4

// BoundsError reports a write past capacity or an out of range slice/index.
// It is raised as a panic value: these are generator logic bugs, not input errors.
type BoundsError struct {
	Op     string
	Offset int
	Count  int
	Len    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("vec4 array %s: range [%d, %d) out of bounds for length %d",
		e.Op, e.Offset, e.Offset+e.Count, e.Len)
}

// Vec4Array is a fixed-capacity run of Vec4 slots with a write cursor.
// Arrays returned by Slice are views over the same backing floats:
// writes through a slice are visible through its parent and vice versa.
// Not safe for concurrent use.
type Vec4Array struct {
	data   []float32
	cursor int
}

// NewVec4Array allocates an array of count zeroed slots.
func NewVec4Array(count int) *Vec4Array {
	if count < 0 {
		panic(&BoundsError{Op: "new", Count: count})
	}
	return &Vec4Array{data: make([]float32, count*Vec4Size)}
}

// WrapVec4Array returns a view of count slots over backing, starting at
// floatOffset floats. No copy is made.
func WrapVec4Array(backing []float32, floatOffset, count int) (*Vec4Array, error) {
	end := floatOffset + count*Vec4Size
	if floatOffset < 0 || count < 0 || end > len(backing) {
		return nil, &BoundsError{Op: "wrap", Offset: floatOffset, Count: count * Vec4Size, Len: len(backing)}
	}
	return &Vec4Array{data: backing[floatOffset:end:end]}, nil
}

// Len returns the number of Vec4 slots.
func (a *Vec4Array) Len() int {
	return len(a.data) / Vec4Size
}

// Position returns the cursor index.
func (a *Vec4Array) Position() int {
	return a.cursor
}

// Remaining returns the number of slots between the cursor and the end.
func (a *Vec4Array) Remaining() int {
	return a.Len() - a.cursor
}

// HasRemaining reports whether the cursor is before the end.
func (a *Vec4Array) HasRemaining() bool {
	return a.Remaining() > 0
}

// Rewind moves the cursor back to the start of this view.
func (a *Vec4Array) Rewind() *Vec4Array {
	a.cursor = 0
	return a
}

func (a *Vec4Array) check(op string, offset, count int) {
	if offset < 0 || count < 0 || offset+count > a.Len() {
		panic(&BoundsError{Op: op, Offset: offset, Count: count, Len: a.Len()})
	}
}

// Ref returns a pointer to slot i. The pointer aliases the backing storage.
func (a *Vec4Array) Ref(i int) *Vec4 {
	a.check("ref", i, 1)
	o := i * Vec4Size
	return (*Vec4)(a.data[o : o+Vec4Size])
}

// At returns a copy of slot i.
func (a *Vec4Array) At(i int) Vec4 {
	return *a.Ref(i)
}

// Set overwrites slot i. The cursor is not moved.
func (a *Vec4Array) Set(i int, v Vec4) {
	*a.Ref(i) = v
}

// Next returns a pointer to the slot at the cursor and advances the cursor.
func (a *Vec4Array) Next() *Vec4 {
	a.check("next", a.cursor, 1)
	v := a.Ref(a.cursor)
	a.cursor++
	return v
}

// Put writes v at the cursor and advances the cursor.
// It returns a pointer to the written slot.
func (a *Vec4Array) Put(v Vec4) *Vec4 {
	slot := a.Next()
	*slot = v
	return slot
}

// PutPoint writes the point (x, y, z, 1) at the cursor.
func (a *Vec4Array) PutPoint(x, y, z float32) *Vec4 {
	return a.Put(Point(x, y, z))
}

// PutVector writes the raw value (x, y, z, w) at the cursor.
func (a *Vec4Array) PutVector(x, y, z, w float32) *Vec4 {
	return a.Put(Vec4{x, y, z, w})
}

// PutAll copies every remaining slot of src into a, advancing both cursors.
func (a *Vec4Array) PutAll(src *Vec4Array) {
	n := src.Remaining()
	a.check("put", a.cursor, n)
	copy(a.data[a.cursor*Vec4Size:], src.data[src.cursor*Vec4Size:])
	a.cursor += n
	src.cursor += n
}

// Slice returns a view of count slots starting at offset, relative to a.
// The view has its own cursor at its own start.
func (a *Vec4Array) Slice(offset, count int) *Vec4Array {
	a.check("slice", offset, count)
	start := offset * Vec4Size
	end := start + count*Vec4Size
	return &Vec4Array{data: a.data[start:end:end]}
}

// SliceOne returns a one-slot view at index i.
func (a *Vec4Array) SliceOne(i int) *Vec4Array {
	return a.Slice(i, 1)
}

// ForEachRemaining calls fn with a pointer to each slot from the cursor to
// the end, leaving the cursor at the end.
func (a *Vec4Array) ForEachRemaining(fn func(v *Vec4)) {
	for a.HasRemaining() {
		fn(a.Next())
	}
}

// WriteRemainingTo copies each remaining slot of a into dst, passing the
// destination slot to fn (if not nil) after the copy. Both cursors advance.
func (a *Vec4Array) WriteRemainingTo(dst *Vec4Array, fn func(v *Vec4)) {
	for a.HasRemaining() {
		out := dst.Put(*a.Next())
		if fn != nil {
			fn(out)
		}
	}
}

// MultiplyAll replaces every slot v with m * v.
func (a *Vec4Array) MultiplyAll(m *Mat4) {
	a.Rewind()
	a.ForEachRemaining(func(v *Vec4) {
		*v = m.MulVec4(*v)
	})
}

// NormalizeAll normalizes every slot as a vector.
// Stops at the first slot that is not a vector or has zero length.
func (a *Vec4Array) NormalizeAll() error {
	a.Rewind()
	for a.HasRemaining() {
		i := a.cursor
		v := a.Next()
		n, err := v.VectorNormalize()
		if err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
		*v = n
	}
	return nil
}

// PerspectiveDivideAll w-divides every slot as a point.
// Stops at the first slot with a near-zero w.
func (a *Vec4Array) PerspectiveDivideAll() error {
	a.Rewind()
	for a.HasRemaining() {
		i := a.cursor
		v := a.Next()
		p, err := v.PointWDivide()
		if err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
		*v = p
	}
	return nil
}

// Export flattens every slot to c components per value into a new slice.
func (a *Vec4Array) Export(c Components) []float32 {
	n := c.Count()
	out := make([]float32, a.Len()*n)
	for i := 0; i < a.Len(); i++ {
		a.At(i).WriteTo(out[i*n:], c)
	}
	return out
}

// Floats returns the backing floats of this view. The slice aliases storage.
func (a *Vec4Array) Floats() []float32 {
	return a.data
}

// Copy returns an independent array with the same contents and a rewound cursor.
func (a *Vec4Array) Copy() *Vec4Array {
	data := make([]float32, len(a.data))
	copy(data, a.data)
	return &Vec4Array{data: data}
}
