// Package validation provides ozzo-validation rules checking that values convert into numeric kinds without loss.
package validation

import (
	"reflect"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-numconv/commonerrors"
	"github.com/ARM-software/golang-numconv/conv"
)

// IsExactly returns a rule checking that a number, or a string holding one, converts exactly into the kind.
//
//	validation.Validate(int16(300), IsExactly(conv.KindUint8)) // invalid: overflow
func IsExactly(kind conv.Kind) validation.Rule {
	return isConvertible(kind, conv.ConversionValue, conv.DefaultApprox)
}

// IsApproximately returns a rule checking that a number, or a string holding one, can be approximated by a value of
// the kind with the given scheme.
func IsApproximately(kind conv.Kind, scheme conv.Scheme) validation.Rule {
	return isConvertible(kind, conv.ConversionApprox, scheme)
}

// IsConvertible returns a rule checking that a number, or a string holding one, converts into the kind through a
// try conversion. This is what validates code points with conv.KindChar.
func IsConvertible(kind conv.Kind) validation.Rule {
	return isConvertible(kind, conv.ConversionTry, conv.DefaultApprox)
}

// IsEnumMember returns a rule checking that an integer, or a string holding one, belongs to the domain.
func IsEnumMember[T conv.Integer](domain *conv.EnumDomain[T]) validation.Rule {
	return validation.By(func(vRaw any) (err error) {
		src, _, err := number(vRaw)
		if err != nil {
			return
		}
		switch v := src.(type) {
		case int64:
			_, err = conv.EnumTryFrom(domain, v)
		case uint64:
			_, err = conv.EnumTryFrom(domain, v)
		case conv.Char:
			_, err = conv.EnumTryFrom(domain, v.Rune())
		default:
			return commonerrors.Newf(commonerrors.ErrInvalid, "%v is not an integer", vRaw)
		}
		if err != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "%v is not a member of the enumeration", vRaw)
		}
		return
	})
}

func isConvertible(kind conv.Kind, c conv.Conversion, scheme conv.Scheme) validation.Rule {
	return validation.By(func(vRaw any) (err error) {
		src, srcKind, err := number(vRaw)
		if err != nil {
			return
		}
		if _, found := conv.RuleFor(srcKind, kind, c, scheme); !found {
			return commonerrors.Newf(commonerrors.ErrInvalid, "no %v conversion from %v to %v", c, srcKind, kind)
		}
		if srcKind == kind {
			return
		}
		err = converters[kind](src, c, scheme)
		if err != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "%v cannot be converted into %v", vRaw, kind)
		}
		return
	})
}

// number lifts a numeric value into an int64, a uint64 or a float64, and reports the kind it originally had.
// Characters are kept as they are. Strings are parsed as integers first, then as floats.
func number(vRaw any) (src any, kind conv.Kind, err error) {
	value, isNil := validation.Indirect(vRaw)
	if isNil {
		err = commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for numeric validation: %T", vRaw)
		return
	}
	if c, ok := value.(conv.Char); ok {
		return c, conv.KindChar, nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return val.Int(), conv.KindOfValue(value), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return val.Uint(), conv.KindOfValue(value), nil
	case reflect.Float32, reflect.Float64:
		return val.Float(), conv.KindOfValue(value), nil
	case reflect.String:
		return parse(val.String())
	case reflect.Slice:
		if b, ok := value.([]byte); ok {
			return parse(string(b))
		}
	}
	err = commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for numeric validation: %T", vRaw)
	return
}

func parse(s string) (src any, kind conv.Kind, err error) {
	s = strings.TrimSpace(s)
	if i, subErr := strconv.ParseInt(s, 10, 64); subErr == nil {
		return i, conv.KindInt64, nil
	}
	if u, subErr := strconv.ParseUint(s, 10, 64); subErr == nil {
		return u, conv.KindUint64, nil
	}
	f, subErr := strconv.ParseFloat(s, 64)
	if subErr != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, subErr, "%q is not a number", s)
		return
	}
	return f, conv.KindFloat64, nil
}

type converter func(src any, c conv.Conversion, scheme conv.Scheme) error

var converters = map[conv.Kind]converter{
	conv.KindInt8:    convertInto[int8],
	conv.KindInt16:   convertInto[int16],
	conv.KindInt32:   convertInto[int32],
	conv.KindInt64:   convertInto[int64],
	conv.KindInt:     convertInto[int],
	conv.KindUint8:   convertInto[uint8],
	conv.KindUint16:  convertInto[uint16],
	conv.KindUint32:  convertInto[uint32],
	conv.KindUint64:  convertInto[uint64],
	conv.KindUint:    convertInto[uint],
	conv.KindUintptr: convertInto[uintptr],
	conv.KindFloat32: convertInto[float32],
	conv.KindFloat64: convertInto[float64],
	conv.KindChar:    convertInto[conv.Char],
}

func convertInto[Dst any](src any, c conv.Conversion, scheme conv.Scheme) error {
	switch v := src.(type) {
	case int64:
		return convertFrom[Dst](v, c, scheme)
	case uint64:
		return convertFrom[Dst](v, c, scheme)
	case float64:
		return convertFrom[Dst](v, c, scheme)
	case conv.Char:
		return convertFrom[Dst](v, c, scheme)
	default:
		return commonerrors.Newf(commonerrors.ErrUnexpected, "unexpected numeric source %T", src)
	}
}

func convertFrom[Dst, Src any](src Src, c conv.Conversion, scheme conv.Scheme) (err error) {
	switch c {
	case conv.ConversionApprox:
		_, err = conv.ApproxFrom[Dst](src, scheme)
	case conv.ConversionTry:
		_, err = conv.TryFrom[Dst](src)
	default:
		_, err = conv.ValueFrom[Dst](src)
	}
	return
}
