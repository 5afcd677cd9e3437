package conv

import "github.com/ARM-software/golang-numconv/commonerrors"

// UnwrapOk returns the result of a conversion which cannot fail. A non nil error is a programming defect and
// panics.
func UnwrapOk[T any](v T, err error) T {
	if err != nil {
		panic(commonerrors.WrapError(commonerrors.ErrUnexpected, err, "infallible conversion failed"))
	}
	return v
}

// UnwrapOrSaturate returns the converted value, or the maximum (respectively minimum) of T if the conversion
// overflowed (respectively underflowed).
//
//	UnwrapOrSaturate(ValueFrom[uint8](int16(256))) == 255
func UnwrapOrSaturate[T Number](v T, err error) T {
	return UnwrapOrSaturateWith[T](Limits[T]{}, v, err)
}

// UnwrapOrSaturateWith is similar to UnwrapOrSaturate for any type providing its saturation bounds.
// Only range failures can saturate: any other error (e.g. NotANumber) is a programming defect and panics.
func UnwrapOrSaturateWith[T any](bounds Saturated[T], v T, err error) T {
	if err == nil {
		return v
	}
	switch direction(err, "saturate") {
	case GeneralUnderflow:
		return bounds.SaturatedMin()
	default:
		return bounds.SaturatedMax()
	}
}

// UnwrapOrInf returns the converted value, or ±infinity in the direction of the failure.
func UnwrapOrInf[T Float](v T, err error) T {
	return UnwrapOrInfWith[T](FloatLimits[T]{}, v, err)
}

// UnwrapOrInfWith is similar to UnwrapOrInf for any type providing signed infinities.
// Only range failures can be mapped to an infinity: any other error is a programming defect and panics.
func UnwrapOrInfWith[T any](inf SignedInfinity[T], v T, err error) T {
	if err == nil {
		return v
	}
	switch direction(err, "map to an infinity") {
	case GeneralUnderflow:
		return inf.NegInfinity()
	default:
		return inf.PosInfinity()
	}
}

// UnwrapOrInvalid returns the converted value, or NaN on any failure.
func UnwrapOrInvalid[T Float](v T, err error) T {
	return UnwrapOrInvalidWith[T](FloatLimits[T]{}, v, err)
}

// UnwrapOrInvalidWith returns the converted value, or the sentinel of the type on any failure.
func UnwrapOrInvalidWith[T any](sentinel InvalidSentinel[T], v T, err error) T {
	if err != nil {
		return sentinel.InvalidSentinel()
	}
	return v
}

// direction returns whether err underflowed or overflowed, and panics for any other failure.
func direction(err error, action string) GeneralError {
	general, ok := Widen(err)
	if ok && (general == GeneralUnderflow || general == GeneralOverflow) {
		return general
	}
	panic(commonerrors.WrapErrorf(commonerrors.ErrUnsupported, err, "cannot %v a conversion failure with no direction", action))
}
