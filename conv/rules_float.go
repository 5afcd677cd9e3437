package conv

import "math"

// Boundary tests involving binary floating point kinds.

// classifyIntToFloat reports an exact widening when every value of the integer kind is below the float's
// exact integer bound.
func classifyIntToFloat(src, dst Kind) Category {
	switch {
	case src.valueBits() <= dst.Mantissa():
		return CategoryWiden
	case src.IsSigned():
		return CategoryIntToFloatSigned
	default:
		return CategoryIntToFloatUnsigned
	}
}

func checkSignedExactBound(dst Kind, _ Scheme, o operand) (operand, failure) {
	bound := int64(dst.exactBound())
	if o.i < -bound {
		return o, failUnderflow
	}
	if o.i > bound {
		return o, failOverflow
	}
	return o, failNone
}

func checkUnsignedExactBound(dst Kind, _ Scheme, o operand) (operand, failure) {
	if o.u > dst.exactBound() {
		return o, failOverflow
	}
	return o, failNone
}

// checkFloatNarrow lets infinities and NaN through, as the destination represents them.
func checkFloatNarrow(dst Kind, _ Scheme, o operand) (operand, failure) {
	if math.IsInf(o.f, 0) || math.IsNaN(o.f) {
		return o, failNone
	}
	if o.f < -dst.maxFloat() {
		return o, failUnderflow
	}
	if o.f > dst.maxFloat() {
		return o, failOverflow
	}
	return o, failNone
}

// checkFloatToInt approximates the source with the scheme, then checks the result against the integer range.
// The lower bound of an integer kind is a power of two, hence exact. The upper bound is compared both to its
// float image and to the next power of two, since MaxInt64 and friends round up to 2^N once converted.
func checkFloatToInt(dst Kind, s Scheme, o operand) (operand, failure) {
	if math.IsNaN(o.f) {
		return o, failNaN
	}
	approx := s.approximate(o.f)
	if approx < float64(dst.minInt()) {
		return o, failUnderflow
	}
	if approx > float64(dst.maxUint()) || approx >= dst.upperFloat() {
		return o, failOverflow
	}
	o.f = approx
	return o, failNone
}
