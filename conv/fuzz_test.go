package conv

import (
	"math"
	"testing"
)

func FuzzValueFromInt64ToInt8(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(math.MinInt8))
	f.Add(int64(math.MaxInt8))
	f.Add(int64(math.MinInt64))
	f.Add(int64(math.MaxInt64))
	f.Fuzz(func(t *testing.T, from int64) {
		v, err := ValueFrom[int8](from)
		fits := from >= math.MinInt8 && from <= math.MaxInt8
		if fits != (err == nil) {
			t.Fatalf("%v: unexpected result %v, %v", from, v, err)
		}
		if err == nil && int64(v) != from {
			t.Fatalf("%v: value changed into %v", from, v)
		}
	})
}

func FuzzValueFromUint64ToInt64(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(math.MaxInt64))
	f.Add(uint64(math.MaxUint64))
	f.Fuzz(func(t *testing.T, from uint64) {
		v, err := ValueFrom[int64](from)
		if (from <= math.MaxInt64) != (err == nil) {
			t.Fatalf("%v: unexpected result %v, %v", from, v, err)
		}
		if err == nil && uint64(v) != from {
			t.Fatalf("%v: value changed into %v", from, v)
		}
	})
}

func FuzzApproxWrapping(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(-1))
	f.Add(int64(math.MinInt64))
	f.Add(int64(math.MaxInt64))
	f.Fuzz(func(t *testing.T, from int64) {
		if v := UnwrapOk(ApproxFrom[uint16](from, Wrapping)); v != uint16(from) {
			t.Fatalf("%v: wrapped into %v", from, v)
		}
		if v := UnwrapOk(ApproxFrom[int32](from, Wrapping)); v != int32(from) {
			t.Fatalf("%v: wrapped into %v", from, v)
		}
	})
}

func FuzzApproxFloat64ToInt64(f *testing.F) {
	f.Add(0.0)
	f.Add(-0.5)
	f.Add(9223372036854775807.0)
	f.Add(-9223372036854775808.0)
	f.Add(math.NaN())
	f.Add(math.Inf(1))
	f.Fuzz(func(t *testing.T, from float64) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic: %v", r)
			}
		}()
		for _, s := range Schemes() {
			v, err := ApproxFrom[int64](from, s)
			if err != nil {
				continue
			}
			if approx := s.approximate(from); float64(v) != math.Trunc(approx) {
				t.Fatalf("%v (%v): converted into %v", from, s, v)
			}
		}
		_ = UnwrapOrInvalid(Approx[float32](from))
	})
}

func FuzzCharFrom(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0xD800))
	f.Add(uint32(0x10FFFF))
	f.Add(uint32(0x110000))
	f.Fuzz(func(t *testing.T, from uint32) {
		c, err := CharFrom(from)
		if isScalarValue(uint64(from)) != (err == nil) {
			t.Fatalf("%#x: unexpected result %v", from, err)
		}
		if err == nil && UnwrapOk(CharTo[uint32](c)) != from {
			t.Fatalf("%#x: code point changed into %#x", from, c.Rune())
		}
	})
}
