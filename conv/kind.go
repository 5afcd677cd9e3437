package conv

import (
	"math"
	"reflect"
	"strconv"
)

// Kind identifies one of the numeric types known to the rule tables.
type Kind uint8

const (
	_ Kind = iota // zero value is KindInvalid

	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindUintptr
	KindFloat32
	KindFloat64
	KindChar // Unicode scalar value, see Char

	kindTotal
)

const KindInvalid Kind = 0

const (
	// exact integer magnitude limits of binary floating point types.
	float32ExactBound = 1 << 24
	float64ExactBound = 1 << 53
)

var (
	kindNames = [...]string{
		KindInvalid: "invalid",
		KindInt8:    "int8",
		KindInt16:   "int16",
		KindInt32:   "int32",
		KindInt64:   "int64",
		KindInt:     "int",
		KindUint8:   "uint8",
		KindUint16:  "uint16",
		KindUint32:  "uint32",
		KindUint64:  "uint64",
		KindUint:    "uint",
		KindUintptr: "uintptr",
		KindFloat32: "float32",
		KindFloat64: "float64",
		KindChar:    "char",
	}
	charType = reflect.TypeFor[Char]()
)

// Kinds returns every valid kind, numeric kinds first.
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(kindTotal)-1)
	for k := KindInt8; k < kindTotal; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// KindOf returns the kind of T. Named types resolve to the kind of their underlying numeric type.
func KindOf[T any]() Kind {
	return kindOfType(reflect.TypeFor[T]())
}

// KindOfValue returns the kind of the dynamic type of v.
func KindOfValue(v any) Kind {
	return kindOfType(reflect.TypeOf(v))
}

func kindOfType(t reflect.Type) Kind {
	if t == nil {
		return KindInvalid
	}
	if t == charType {
		return KindChar
	}
	switch t.Kind() {
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Int:
		return KindInt
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Uint:
		return KindUint
	case reflect.Uintptr:
		return KindUintptr
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	default:
		return KindInvalid
	}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsValid states whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	return k > KindInvalid && k < kindTotal
}

// IsInteger states whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k >= KindInt8 && k <= KindUintptr
}

// IsSigned states whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= KindInt8 && k <= KindInt
}

// IsUnsigned states whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k >= KindUint8 && k <= KindUintptr
}

// IsFloat states whether k is a binary floating point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Bits returns the storage width of k. Pointer-sized kinds follow the platform.
func (k Kind) Bits() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32, KindChar:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	case KindInt:
		return reflect.TypeFor[int]().Bits()
	case KindUint:
		return reflect.TypeFor[uint]().Bits()
	case KindUintptr:
		return reflect.TypeFor[uintptr]().Bits()
	default:
		return 0
	}
}

// Mantissa returns the number of significand bits (implicit bit included) of a float kind, 0 otherwise.
func (k Kind) Mantissa() int {
	switch k {
	case KindFloat32:
		return 24
	case KindFloat64:
		return 53
	default:
		return 0
	}
}

// exactBound is the largest integer magnitude below which every integer is exactly representable by a float kind.
func (k Kind) exactBound() uint64 {
	switch k {
	case KindFloat32:
		return float32ExactBound
	case KindFloat64:
		return float64ExactBound
	default:
		return 0
	}
}

// valueBits is the number of bits carrying magnitude in an integer kind.
func (k Kind) valueBits() int {
	if k.IsSigned() {
		return k.Bits() - 1
	}
	if k == KindChar {
		return 21
	}
	return k.Bits()
}

// minInt returns the minimum of an integer kind.
func (k Kind) minInt() int64 {
	if !k.IsSigned() {
		return 0
	}
	return math.MinInt64 >> (64 - k.Bits())
}

// maxUint returns the maximum of an integer kind.
func (k Kind) maxUint() uint64 {
	if k == KindChar {
		return maxCodePoint
	}
	return math.MaxUint64 >> (64 - k.valueBits())
}

// upperFloat returns 2^valueBits, the first float that no longer fits an integer kind.
func (k Kind) upperFloat() float64 {
	return math.Ldexp(1, k.valueBits())
}

// maxFloat is the largest finite value of a float kind.
func (k Kind) maxFloat() float64 {
	if k == KindFloat32 {
		return math.MaxFloat32
	}
	return math.MaxFloat64
}
