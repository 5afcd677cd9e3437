package conv

// ValueFrom performs an exact, value-preserving conversion of src into Dst.
//
// On success, the result represents exactly the same value as src. The error, if any, is the narrowest
// conversion error of the rule (see RuleFor): e.g. converting an int8 into a uint8 can only fail with Underflow,
// whereas converting an int16 into a uint8 fails with a RangeError. Conversions from a type into itself always
// succeed. Pairs with no exact rule (float to integer, float64 to float32) fail with commonerrors.ErrUnsupported.
// Values outside the domain of an enumeration destination fail with Unrepresentable (see EnumDomain).
func ValueFrom[Dst, Src any](src Src) (dst Dst, err error) {
	if v, ok := reflexive[Dst](src); ok {
		return v, nil
	}
	if h, ok := any(&dst).(ValueFromer[Src]); ok {
		err = h.ValueFrom(src)
		return
	}
	return convert[Dst](src, ConversionValue, DefaultApprox)
}

// ValueInto is the dual of ValueFrom: it converts src and stores the result in dst.
func ValueInto[Dst, Src any](src Src, dst *Dst) error {
	return into(dst, func() (Dst, error) { return ValueFrom[Dst](src) })
}
