package math

import "fmt"

// Components is the number of leading Vec4 components kept on export.
type Components int

const (
	ComponentsZero Components = iota
	ComponentsOne
	ComponentsTwo
	ComponentsThree
	ComponentsFour
)

// Count returns the number of floats per exported value.
func (c Components) Count() int {
	return int(c)
}

// Valid reports whether c is within Zero..Four.
func (c Components) Valid() bool {
	return c >= ComponentsZero && c <= ComponentsFour
}

func (c Components) String() string {
	switch c {
	case ComponentsZero:
		return "zero"
	case ComponentsOne:
		return "x"
	case ComponentsTwo:
		return "xy"
	case ComponentsThree:
		return "xyz"
	case ComponentsFour:
		return "xyzw"
	default:
		return fmt.Sprintf("Components(%d)", int(c))
	}
}
