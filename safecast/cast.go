package safecast

import (
	"math"

	"github.com/ARM-software/golang-numconv/conv"
)

// To converts any [IConvertable] value into T.
// If the value is outside the range of T, the closest boundary value is returned. Floats converted into integers
// are truncated towards zero and NaN converts to zero.
func To[T IConvertable, C IConvertable](i C) T {
	if !conv.KindOf[C]().IsFloat() || !conv.KindOf[T]().IsInteger() {
		return conv.UnwrapOrSaturate(conv.Approx[T](i))
	}
	if math.IsNaN(float64(i)) {
		return 0
	}
	return conv.UnwrapOrSaturate(conv.ApproxFrom[T](i, conv.RoundToZero))
}

// ToInt attempts to convert any [IConvertable] value to an int.
// If the conversion results in a value outside the range of an int,
// the closest boundary value will be returned.
func ToInt[C IConvertable](i C) int {
	return To[int](i)
}

// ToUint attempts to convert any [IConvertable] value to an uint.
// If the conversion results in a value outside the range of an uint,
// the closest boundary value will be returned.
func ToUint[C IConvertable](i C) uint {
	return To[uint](i)
}

// ToInt8 attempts to convert any [IConvertable] value to an int8.
// If the conversion results in a value outside the range of an int8,
// the closest boundary value will be returned.
func ToInt8[C IConvertable](i C) int8 {
	return To[int8](i)
}

// ToUint8 attempts to convert any [IConvertable] value to an uint8.
// If the conversion results in a value outside the range of an uint8,
// the closest boundary value will be returned.
func ToUint8[C IConvertable](i C) uint8 {
	return To[uint8](i)
}

// ToInt16 attempts to convert any [IConvertable] value to an int16.
// If the conversion results in a value outside the range of an int16,
// the closest boundary value will be returned.
func ToInt16[C IConvertable](i C) int16 {
	return To[int16](i)
}

// ToUint16 attempts to convert any [IConvertable] value to an uint16.
// If the conversion results in a value outside the range of an uint16,
// the closest boundary value will be returned.
func ToUint16[C IConvertable](i C) uint16 {
	return To[uint16](i)
}

// ToInt32 attempts to convert any [IConvertable] value to an int32.
// If the conversion results in a value outside the range of an int32,
// the closest boundary value will be returned.
func ToInt32[C IConvertable](i C) int32 {
	return To[int32](i)
}

// ToUint32 attempts to convert any [IConvertable] value to an uint32.
// If the conversion results in a value outside the range of an uint32,
// the closest boundary value will be returned.
func ToUint32[C IConvertable](i C) uint32 {
	return To[uint32](i)
}

// ToInt64 attempts to convert any [IConvertable] value to an int64.
// If the conversion results in a value outside the range of an int64,
// the closest boundary value will be returned.
func ToInt64[C IConvertable](i C) int64 {
	return To[int64](i)
}

// ToUint64 attempts to convert any [IConvertable] value to an uint64.
// If the conversion results in a value outside the range of an uint64,
// the closest boundary value will be returned.
func ToUint64[C IConvertable](i C) uint64 {
	return To[uint64](i)
}

// ToFloat32 attempts to convert any [IConvertable] value to a float32.
// Integers are rounded to the nearest float32 and float64 values beyond the float32 range saturate at ±MaxFloat32.
func ToFloat32[C IConvertable](i C) float32 {
	return To[float32](i)
}

// ToFloat64 attempts to convert any [IConvertable] value to an float64.
func ToFloat64[C IConvertable](i C) float64 {
	return To[float64](i)
}
