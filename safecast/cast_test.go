package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type millis int64

func TestCastingIntegers(t *testing.T) {
	tests := []struct {
		name     string
		actual   any
		expected any
	}{
		{"int8/zero", ToInt8(int64(0)), int8(0)},
		{"int8/-1", ToInt8(int64(-1)), int8(-1)},
		{"int8/max", ToInt8(int64(math.MaxInt8 + 1)), int8(math.MaxInt8)},
		{"int8/min", ToInt8(int64(math.MinInt8 - 1)), int8(math.MinInt8)},
		{"uint8/-1", ToUint8(int64(-1)), uint8(0)},
		{"uint8/max", ToUint8(int64(math.MaxUint8 + 1)), uint8(math.MaxUint8)},
		{"uint8/from uint64", ToUint8(uint64(math.MaxUint64)), uint8(math.MaxUint8)},
		{"int16/max", ToInt16(int64(math.MaxInt16 + 1)), int16(math.MaxInt16)},
		{"int16/min", ToInt16(int64(math.MinInt16 - 1)), int16(math.MinInt16)},
		{"uint16/min", ToUint16(int64(math.MinInt16 - 1)), uint16(0)},
		{"uint16/max", ToUint16(int64(math.MaxUint16 + 1)), uint16(math.MaxUint16)},
		{"int32/max", ToInt32(int64(math.MaxInt32 + 1)), int32(math.MaxInt32)},
		{"int32/min", ToInt32(int64(math.MinInt32 - 1)), int32(math.MinInt32)},
		{"uint32/in range", ToUint32(int64(math.MaxInt32 + 1)), uint32(math.MaxInt32 + 1)},
		{"uint32/max", ToUint32(int64(math.MaxUint32 + 1)), uint32(math.MaxUint32)},
		{"uint32/min", ToUint32(int64(math.MinInt32 - 1)), uint32(0)},
		{"int64/from uint64", ToInt64(uint64(math.MaxUint64)), int64(math.MaxInt64)},
		{"int64/from int8", ToInt64(int8(math.MinInt8)), int64(math.MinInt8)},
		{"uint64/-1", ToUint64(int64(-1)), uint64(0)},
		{"uint64/from int", ToUint64(math.MaxInt), uint64(math.MaxInt)},
		{"int/from uint64", ToInt(uint64(math.MaxUint64)), int(math.MaxInt)},
		{"uint/-1", ToUint(-1), uint(0)},
		{"named/from uint64", To[millis](uint64(math.MaxUint64)), millis(math.MaxInt64)},
		{"named/source", ToInt8(millis(-1000)), int8(math.MinInt8)},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.actual)
		})
	}
}

func TestCastingFloats(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		assert.Equal(t, int8(-4), ToInt8(-4.6))
		assert.Equal(t, int8(4), ToInt8(4.6))
		assert.Equal(t, uint8(0), ToUint8(-4.6))
		assert.Equal(t, uint8(4), ToUint8(4.6))
		assert.Equal(t, int8(math.MaxInt8), ToInt8(256.4))
		assert.Equal(t, uint8(math.MaxUint8), ToUint8(256.4))
	})
	t.Run("int16", func(t *testing.T) {
		assert.Equal(t, int16(math.MaxInt16), ToInt16(40000.4))
		assert.Equal(t, int16(math.MaxInt16), ToInt16(float32(40000.4)))
		assert.Equal(t, int16(math.MinInt16), ToInt16(-32768.4))
		assert.Equal(t, uint16(math.MaxUint16), ToUint16(70000.4))
	})
	t.Run("int32", func(t *testing.T) {
		assert.Equal(t, int32(math.MaxInt32), ToInt32(2147483647.4))
		assert.Equal(t, int32(math.MaxInt32), ToInt32(float32(2147483647.4)))
		assert.Equal(t, int32(math.MinInt32), ToInt32(float32(-2147483648.4)))
		assert.Equal(t, uint32(math.MaxUint32), ToUint32(4294967295.4))
	})
	t.Run("int64", func(t *testing.T) {
		assert.Equal(t, int64(math.MaxInt64), ToInt64(9223372036854775807.4))
		assert.Equal(t, uint64(math.MaxUint64), ToUint64(18446744073709551616.4))
		assert.Equal(t, int64(math.MinInt64), ToInt64(-9223372036854775808.4))
		assert.Equal(t, uint64(0), ToUint64(-18446744073709551616.4))
	})
	t.Run("special values", func(t *testing.T) {
		assert.Equal(t, int32(0), ToInt32(math.NaN()))
		assert.Equal(t, uint8(0), ToUint8(float32(math.NaN())))
		assert.Equal(t, int64(math.MaxInt64), ToInt64(math.Inf(1)))
		assert.Equal(t, uint16(0), ToUint16(math.Inf(-1)))
	})
	t.Run("float32", func(t *testing.T) {
		assert.Equal(t, float32(math.MaxFloat32), ToFloat32(1e300))
		assert.Equal(t, float32(-math.MaxFloat32), ToFloat32(-1e300))
		assert.Equal(t, float32(16_777_216), ToFloat32(int64(16_777_217)))
		assert.True(t, math.IsInf(float64(ToFloat32(math.Inf(-1))), -1))
		assert.True(t, math.IsNaN(float64(ToFloat32(math.NaN()))))
	})
	t.Run("float64", func(t *testing.T) {
		assert.Equal(t, 2.5, ToFloat64(float32(2.5)))
		assert.Equal(t, float64(math.MaxUint64), ToFloat64(uint64(math.MaxUint64)))
		assert.Equal(t, -3.0, ToFloat64(int8(-3)))
	})
}
