package conv

import "golang.org/x/exp/constraints"

// Signed is an alias for all signed integers: int, int8, int16, int32, and int64 types.
type Signed = constraints.Signed

// Unsigned is an alias for all unsigned integers: uint, uint8, uint16, uint32, uint64 and uintptr types.
type Unsigned = constraints.Unsigned

// Integer is an alias for the all unsigned and signed integers
type Integer = constraints.Integer

// Float is an alias for the float32 and float64 types.
type Float = constraints.Float

// Number is an alias for all integers and floats
type Number interface {
	Integer | Float
}
