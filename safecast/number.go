package safecast

import "github.com/ARM-software/golang-numconv/conv"

// ISignedInteger is an alias for all signed integers: int, int8, int16, int32, and int64 types.
type ISignedInteger = conv.Signed

// IUnsignedInteger is an alias for all unsigned integers: uint, uint8, uint16, uint32, uint64 and uintptr types.
type IUnsignedInteger = conv.Unsigned

// IInteger is an alias for the all unsigned and signed integers
type IInteger = conv.Integer

// IFloat is an alias for the float32 and float64 types.
type IFloat = conv.Float

// IConvertable is an alias for everything that can be converted
type IConvertable = conv.Number
