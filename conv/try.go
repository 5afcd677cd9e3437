package conv

import "github.com/ARM-software/golang-numconv/commonerrors"

// TryFrom performs a general conversion of src into Dst, for domains which only partially overlap for reasons
// other than magnitude: integers and Char, integers and enumerations (see TryFromer and EnumDomain).
// Between numeric kinds, it follows the exact conversion rules.
func TryFrom[Dst, Src any](src Src) (dst Dst, err error) {
	if v, ok := reflexive[Dst](src); ok {
		return v, nil
	}
	if h, ok := any(&dst).(TryFromer[Src]); ok {
		err = h.TryFrom(src)
		return
	}
	return convert[Dst](src, ConversionTry, DefaultApprox)
}

// TryInto is the dual of TryFrom: it converts src and stores the result in dst.
func TryInto[Dst, Src any](src Src, dst *Dst) error {
	return into(dst, func() (Dst, error) { return TryFrom[Dst](src) })
}

// into stores the result of a successful conversion in dst, leaving it untouched otherwise.
func into[Dst any](dst *Dst, conversion func() (Dst, error)) error {
	if dst == nil {
		return commonerrors.New(commonerrors.ErrInvalidDestination, "nil destination")
	}
	v, err := conversion()
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
