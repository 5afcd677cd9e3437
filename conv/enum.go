package conv

import (
	"reflect"
	"slices"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// enumDomains holds the domain of each enumeration type, keyed by its reflect.Type.
var enumDomains sync.Map

type domainChecker interface {
	containsValue(v any) bool
}

// EnumDomain is a closed, finite set of valid integer values, e.g. the values of an enumeration. It derives the
// try conversions into the enumeration type: only listed values convert successfully.
//
//	type Colour uint8
//	var colours = conv.NewEnumDomain[Colour](Red, Green, Blue)
//
//	func (c *Colour) TryFrom(v int) error {
//		return conv.EnumTryInto(colours, v, c)
//	}
//
// The first domain built for a defined type becomes the domain of that type: every conversion into it, from any
// source and whatever the capability, then only succeeds for values of the domain. Predeclared types such as
// int16 never get a domain.
//
// A domain is immutable once built and safe for concurrent use.
type EnumDomain[T Integer] struct {
	values mapset.Set[T]
}

// NewEnumDomain returns the domain made of the given values. Duplicates are ignored.
func NewEnumDomain[T Integer](values ...T) *EnumDomain[T] {
	d := &EnumDomain[T]{values: mapset.NewSet[T](values...)}
	if t := reflect.TypeFor[T](); t.PkgPath() != "" {
		enumDomains.LoadOrStore(t, d)
	}
	return d
}

// DomainOf returns the domain registered for T, if any.
func DomainOf[T Integer]() (*EnumDomain[T], bool) {
	d, found := enumDomains.Load(reflect.TypeFor[T]())
	if !found {
		return nil, false
	}
	domain, ok := d.(*EnumDomain[T])
	return domain, ok
}

func (d *EnumDomain[T]) containsValue(v any) bool {
	t, ok := v.(T)
	return ok && d.Contains(t)
}

// inDomain states whether v belongs to the domain registered for its type. Types with no domain accept any value.
func inDomain[T any](v T) bool {
	d, found := enumDomains.Load(reflect.TypeFor[T]())
	if !found {
		return true
	}
	return d.(domainChecker).containsValue(v)
}

// Contains states whether v belongs to the domain.
func (d *EnumDomain[T]) Contains(v T) bool {
	if d == nil {
		return false
	}
	return d.values.Contains(v)
}

// Len returns the number of distinct values in the domain.
func (d *EnumDomain[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.values.Cardinality()
}

// Values returns the values of the domain in ascending order.
func (d *EnumDomain[T]) Values() []T {
	if d == nil {
		return nil
	}
	values := d.values.ToSlice()
	slices.Sort(values)
	return values
}

// EnumTryFrom converts src into a value of the domain. Values which are out of the range of T or not part of the
// domain fail with Unrepresentable carrying src.
func EnumTryFrom[T, Src Integer](d *EnumDomain[T], src Src) (v T, err error) {
	converted, err := convertNumeric[T](src, ConversionValue, DefaultApprox)
	if err != nil || !d.Contains(converted) {
		err = Unrepresentable[Src]{Value: src}
		return
	}
	v = converted
	return
}

// EnumTryInto is the dual of EnumTryFrom: it stores the converted value in dst. It is meant to implement
// TryFromer hooks.
func EnumTryInto[T, Src Integer](d *EnumDomain[T], src Src, dst *T) error {
	return into(dst, func() (T, error) { return EnumTryFrom(d, src) })
}
