package conv

import "github.com/ARM-software/golang-numconv/commonerrors"

// ApproxFrom performs an approximate conversion of src into Dst following the given scheme.
//
// The conversion happens in two logical steps: the scheme first transforms src into an approximately equivalent
// value without taking the destination's range into account (rounding a float, wrapping an integer), then the
// result is checked to be exactly representable by Dst. If it is not, the conversion fails: approximation never
// saturates. NaN sources fail with FloatNotANumber for every integer destination.
func ApproxFrom[Dst, Src any](src Src, scheme Scheme) (dst Dst, err error) {
	if !scheme.IsValid() {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "unknown approximation scheme %v", scheme)
		return
	}
	if v, ok := reflexive[Dst](src); ok {
		return v, nil
	}
	if h, ok := any(&dst).(ApproxFromer[Src]); ok {
		err = h.ApproxFrom(src, scheme)
		return
	}
	return convert[Dst](src, ConversionApprox, scheme)
}

// Approx approximates src with the DefaultApprox scheme.
func Approx[Dst, Src any](src Src) (Dst, error) {
	return ApproxFrom[Dst](src, DefaultApprox)
}

// ApproxInto is the dual of ApproxFrom: it converts src and stores the result in dst.
func ApproxInto[Dst, Src any](src Src, dst *Dst, scheme Scheme) error {
	return into(dst, func() (Dst, error) { return ApproxFrom[Dst](src, scheme) })
}
