package conv

import "reflect"

// operand is a numeric value lifted out of its static type, so that a single routine can check boundaries for
// every pair of kinds.
type operand struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
}

func load[T any](v T) operand {
	rv := reflect.ValueOf(v)
	k := kindOfType(rv.Type())
	switch {
	case k == KindChar:
		return operand{kind: k, i: int64(any(v).(Char).r)}
	case k.IsSigned():
		return operand{kind: k, i: rv.Int()}
	case k.IsUnsigned():
		return operand{kind: k, u: rv.Uint()}
	case k.IsFloat():
		return operand{kind: k, f: rv.Float()}
	default:
		return operand{}
	}
}

// store writes o into a value of type T whose kind is dst. Integer destinations keep the low order bits, which
// is what the wrapping scheme relies on.
func store[T any](o operand, dst Kind) (out T) {
	if dst == KindChar {
		return any(Char{r: rune(o.int64())}).(T)
	}
	rv := reflect.ValueOf(&out).Elem()
	switch {
	case dst.IsSigned():
		rv.SetInt(o.int64())
	case dst.IsUnsigned():
		rv.SetUint(o.uint64())
	case dst == KindFloat32:
		rv.SetFloat(float64(o.float32()))
	case dst == KindFloat64:
		rv.SetFloat(o.float64())
	}
	return
}

func (o operand) isSigned() bool {
	return o.kind.IsSigned() || o.kind == KindChar
}

func (o operand) int64() int64 {
	switch {
	case o.isSigned():
		return o.i
	case o.kind.IsUnsigned():
		return int64(o.u)
	default:
		return int64(o.f)
	}
}

func (o operand) uint64() uint64 {
	switch {
	case o.isSigned():
		return uint64(o.i)
	case o.kind.IsUnsigned():
		return o.u
	default:
		return uint64(o.f)
	}
}

func (o operand) float64() float64 {
	switch {
	case o.isSigned():
		return float64(o.i)
	case o.kind.IsUnsigned():
		return float64(o.u)
	default:
		return o.f
	}
}

// float32 rounds directly from the integer source, avoiding a double rounding through float64.
func (o operand) float32() float32 {
	switch {
	case o.isSigned():
		return float32(o.i)
	case o.kind.IsUnsigned():
		return float32(o.u)
	default:
		return float32(o.f)
	}
}
