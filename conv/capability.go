package conv

import (
	"math"
	"unicode/utf8"
)

// Saturated is implemented by types whose values can logically saturate. It is used by UnwrapOrSaturateWith.
type Saturated[T any] interface {
	// SaturatedMax returns the maximum value of the type.
	SaturatedMax() T
	// SaturatedMin returns the minimum value of the type.
	SaturatedMin() T
}

// InvalidSentinel is implemented by types having an "invalid" sentinel value. It is used by UnwrapOrInvalidWith.
type InvalidSentinel[T any] interface {
	InvalidSentinel() T
}

// SignedInfinity is implemented by types having positive and negative infinities. It is used by UnwrapOrInfWith.
type SignedInfinity[T any] interface {
	NegInfinity() T
	PosInfinity() T
}

// Limits provides the saturation bounds of the builtin numeric types.
type Limits[T Number] struct{}

func (Limits[T]) SaturatedMax() T {
	k := KindOf[T]()
	if k.IsFloat() {
		return store[T](operand{kind: k, f: k.maxFloat()}, k)
	}
	return store[T](operand{kind: KindUint64, u: k.maxUint()}, k)
}

func (Limits[T]) SaturatedMin() T {
	k := KindOf[T]()
	if k.IsFloat() {
		return store[T](operand{kind: k, f: -k.maxFloat()}, k)
	}
	return store[T](operand{kind: KindInt64, i: k.minInt()}, k)
}

// FloatLimits provides the saturation bounds, infinities and invalid sentinel (NaN) of float types.
type FloatLimits[T Float] struct {
	Limits[T]
}

func (FloatLimits[T]) PosInfinity() T {
	return T(math.Inf(1))
}

func (FloatLimits[T]) NegInfinity() T {
	return T(math.Inf(-1))
}

func (FloatLimits[T]) InvalidSentinel() T {
	return T(math.NaN())
}

// CharLimits provides the invalid sentinel of Char: the replacement character U+FFFD.
type CharLimits struct{}

func (CharLimits) InvalidSentinel() Char {
	return Char{r: utf8.RuneError}
}
