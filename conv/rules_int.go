package conv

// Integer boundary tests. The operand holds a signed source in o.i and an unsigned one in o.u.

func classifyInt(src, dst Kind) Category {
	srcBits, dstBits := src.valueBits(), dst.valueBits()
	switch {
	case dstBits < srcBits && src.IsSigned() && dst.IsSigned():
		return CategoryNarrow
	case dstBits < srcBits && src.IsSigned():
		return CategoryNarrowSignedToUnsigned
	case dstBits < srcBits:
		return CategoryNarrowToMax
	case src.IsSigned() && !dst.IsSigned():
		return CategoryWidenSignedToUnsigned
	case dstBits == srcBits && src.IsSigned() == dst.IsSigned():
		return CategoryExact
	default:
		return CategoryWiden
	}
}

func checkNonNegative(_ Kind, _ Scheme, o operand) (operand, failure) {
	if o.i < 0 {
		return o, failUnderflow
	}
	return o, failNone
}

func checkSignedRange(dst Kind, _ Scheme, o operand) (operand, failure) {
	if o.i < dst.minInt() {
		return o, failUnderflow
	}
	if o.i > int64(dst.maxUint()) {
		return o, failOverflow
	}
	return o, failNone
}

func checkSignedToUnsignedRange(dst Kind, _ Scheme, o operand) (operand, failure) {
	if o.i < 0 {
		return o, failUnderflow
	}
	if uint64(o.i) > dst.maxUint() {
		return o, failOverflow
	}
	return o, failNone
}

func checkUnsignedMax(dst Kind, _ Scheme, o operand) (operand, failure) {
	if o.u > dst.maxUint() {
		return o, failOverflow
	}
	return o, failNone
}
