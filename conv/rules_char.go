package conv

func classifyChar(src, dst Kind) Category {
	switch {
	case src == KindChar && dst.IsInteger():
		if dst.valueBits() >= KindChar.valueBits() {
			return CategoryCharToInt
		}
		return CategoryCharToIntNarrow
	case dst == KindChar && src == KindUint8:
		return CategoryByteToChar
	case dst == KindChar && src.IsInteger():
		return CategoryIntToChar
	default:
		return CategoryNone
	}
}

func checkCharMax(dst Kind, _ Scheme, o operand) (operand, failure) {
	if uint64(o.i) > dst.maxUint() {
		return o, failOverflow
	}
	return o, failNone
}

func checkScalarValue(_ Kind, _ Scheme, o operand) (operand, failure) {
	if o.isSigned() && o.i < 0 {
		return o, failUnrepresentable
	}
	if !isScalarValue(o.uint64()) {
		return o, failUnrepresentable
	}
	return o, failNone
}
