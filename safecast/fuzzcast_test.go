package safecast

import (
	"math"
	"testing"
)

func FuzzToInt8(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(math.MinInt64))
	f.Add(int64(math.MaxInt64))
	f.Fuzz(func(t *testing.T, from int64) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic: %v", r)
			}
		}()
		v := ToInt8(from)
		switch {
		case from < math.MinInt8:
			if v != math.MinInt8 {
				t.Fatalf("%v: expected saturation at the minimum, got %v", from, v)
			}
		case from > math.MaxInt8:
			if v != math.MaxInt8 {
				t.Fatalf("%v: expected saturation at the maximum, got %v", from, v)
			}
		case int64(v) != from:
			t.Fatalf("%v: value changed into %v", from, v)
		}
	})
}

func FuzzToUint32(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(-1))
	f.Add(int64(math.MaxUint32))
	f.Fuzz(func(t *testing.T, from int64) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic: %v", r)
			}
		}()
		v := ToUint32(from)
		switch {
		case from < 0:
			if v != 0 {
				t.Fatalf("%v: expected saturation at zero, got %v", from, v)
			}
		case from > math.MaxUint32:
			if v != math.MaxUint32 {
				t.Fatalf("%v: expected saturation at the maximum, got %v", from, v)
			}
		case int64(v) != from:
			t.Fatalf("%v: value changed into %v", from, v)
		}
	})
}

func FuzzToInt64(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(math.MaxUint64))
	f.Fuzz(func(t *testing.T, from uint64) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic: %v", r)
			}
		}()
		if v := ToInt64(from); from <= math.MaxInt64 && uint64(v) != from || from > math.MaxInt64 && v != math.MaxInt64 {
			t.Fatalf("%v: unexpected result %v", from, v)
		}
	})
}

func FuzzFloatToInt(f *testing.F) {
	f.Add(0.0)
	f.Add(-4.6)
	f.Add(9223372036854775807.4)
	f.Add(math.NaN())
	f.Add(math.Inf(-1))
	f.Fuzz(func(t *testing.T, from float64) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic: %v", r)
			}
		}()
		_ = ToInt(from)
		_ = ToUint(from)
		_ = ToInt16(from)
		_ = ToUint64(from)
		if v := ToInt32(from); from > -1<<31 && from < 1<<31 && float64(v) != math.Trunc(from) {
			t.Fatalf("%v: truncated into %v", from, v)
		}
		_ = ToFloat32(from)
	})
}
