package conv

import "reflect"

// ValueFromer is implemented by types defining their own exact conversion from Src. The method is called on a
// pointer to the zero destination and must fill it in.
type ValueFromer[Src any] interface {
	ValueFrom(src Src) error
}

// ApproxFromer is implemented by types defining their own approximate conversion from Src.
type ApproxFromer[Src any] interface {
	ApproxFrom(src Src, scheme Scheme) error
}

// TryFromer is implemented by types defining their own general conversion from Src, such as enumerations
// (see EnumDomain).
type TryFromer[Src any] interface {
	TryFrom(src Src) error
}

// reflexive converts a value into its own type. It reports false when the types differ.
func reflexive[Dst, Src any](src Src) (dst Dst, ok bool) {
	if reflect.TypeFor[Src]() != reflect.TypeFor[Dst]() {
		return
	}
	dst, ok = any(src).(Dst)
	return
}
