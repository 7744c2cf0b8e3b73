// Package dirty provides a lazily rebuilt cached value.
package dirty

// Value caches the result of build until Invalidate is called.
// The zero Value is not usable; create one with New.
// Not safe for concurrent use.
type Value[T any] struct {
	value T
	dirty bool
	build func() T
}

// New returns a Value that calls build on the first Get.
func New[T any](build func() T) *Value[T] {
	return &Value[T]{dirty: true, build: build}
}

// Get returns the cached value, rebuilding it first if it is dirty.
func (v *Value[T]) Get() T {
	if v.dirty {
		v.value = v.build()
		v.dirty = false
	}
	return v.value
}

// Invalidate marks the value for rebuild on the next Get.
func (v *Value[T]) Invalidate() {
	v.dirty = true
}

// Dirty reports whether the next Get will rebuild.
func (v *Value[T]) Dirty() bool {
	return v.dirty
}
