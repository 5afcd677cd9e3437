package conv

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/ARM-software/golang-numconv/commonerrors"
)

// Conversion identifies one of the conversion capabilities.
type Conversion uint8

const (
	// ConversionValue is an exact, value-preserving conversion.
	ConversionValue Conversion = iota
	// ConversionApprox is a conversion allowed to approximate the value following a Scheme.
	ConversionApprox
	// ConversionTry is a general conversion between partially overlapping domains.
	ConversionTry

	conversionTotal
)

func (c Conversion) String() string {
	switch c {
	case ConversionValue:
		return "exact"
	case ConversionApprox:
		return "approximate"
	case ConversionTry:
		return "try"
	default:
		return fmt.Sprintf("Conversion(%d)", uint8(c))
	}
}

// Category is the family of boundary test a rule performs.
type Category uint8

const (
	CategoryNone Category = iota
	// CategoryExact converts between kinds sharing the same range.
	CategoryExact
	// CategoryWiden converts into a kind able to hold every source value.
	CategoryWiden
	// CategoryWidenSignedToUnsigned converts a signed integer into a wider unsigned one: only negatives fail.
	CategoryWidenSignedToUnsigned
	// CategoryNarrow converts a signed integer into a narrower signed one.
	CategoryNarrow
	// CategoryNarrowSignedToUnsigned converts a signed integer into a narrower unsigned one.
	CategoryNarrowSignedToUnsigned
	// CategoryNarrowToMax converts an unsigned integer into a kind whose maximum is representable by the source.
	CategoryNarrowToMax
	// CategoryIntToFloatSigned converts a signed integer into a float, exact within ±2^mantissa.
	CategoryIntToFloatSigned
	// CategoryIntToFloatUnsigned converts an unsigned integer into a float, exact up to 2^mantissa.
	CategoryIntToFloatUnsigned
	// CategoryIntToFloatRounding converts an integer into a float, rounding to nearest.
	CategoryIntToFloatRounding
	// CategoryFloatWiden converts float32 into float64.
	CategoryFloatWiden
	// CategoryFloatNarrow converts float64 into float32. Non-finite values pass through.
	CategoryFloatNarrow
	// CategoryFloatToInt approximates a float with the scheme, then checks the integer range.
	CategoryFloatToInt
	// CategoryWrap reduces an integer modulo the destination width.
	CategoryWrap
	// CategoryCharToInt converts a Char into an integer able to hold 0x10FFFF.
	CategoryCharToInt
	// CategoryCharToIntNarrow converts a Char into a narrower integer.
	CategoryCharToIntNarrow
	// CategoryByteToChar converts a uint8 into a Char (Latin-1).
	CategoryByteToChar
	// CategoryIntToChar converts an integer into a Char, rejecting non scalar values.
	CategoryIntToChar

	categoryTotal
)

var categoryNames = [...]string{
	CategoryNone:                   "None",
	CategoryExact:                  "Exact",
	CategoryWiden:                  "Widen",
	CategoryWidenSignedToUnsigned:  "WidenSignedToUnsigned",
	CategoryNarrow:                 "Narrow",
	CategoryNarrowSignedToUnsigned: "NarrowSignedToUnsigned",
	CategoryNarrowToMax:            "NarrowToMax",
	CategoryIntToFloatSigned:       "IntToFloatSigned",
	CategoryIntToFloatUnsigned:     "IntToFloatUnsigned",
	CategoryIntToFloatRounding:     "IntToFloatRounding",
	CategoryFloatWiden:             "FloatWiden",
	CategoryFloatNarrow:            "FloatNarrow",
	CategoryFloatToInt:             "FloatToInt",
	CategoryWrap:                   "Wrap",
	CategoryCharToInt:              "CharToInt",
	CategoryCharToIntNarrow:        "CharToIntNarrow",
	CategoryByteToChar:             "ByteToChar",
	CategoryIntToChar:              "IntToChar",
}

func (c Category) String() string {
	if c < categoryTotal {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// ErrorKind names the narrowest conversion error a rule can return.
type ErrorKind uint8

const (
	ErrorKindNone ErrorKind = iota
	ErrorKindUnderflow
	ErrorKindOverflow
	ErrorKindRange
	ErrorKindFloat
	ErrorKindUnrepresentable
	ErrorKindGeneral
)

var errorKindNames = [...]string{
	ErrorKindNone:            "NoError",
	ErrorKindUnderflow:       "Underflow",
	ErrorKindOverflow:        "Overflow",
	ErrorKindRange:           "RangeError",
	ErrorKindFloat:           "FloatError",
	ErrorKindUnrepresentable: "Unrepresentable",
	ErrorKindGeneral:         "GeneralError",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// WidensInto states whether k precedes (or is) wider in the error lattice.
func (k ErrorKind) WidensInto(wider ErrorKind) bool {
	if k == wider || k == ErrorKindNone || wider == ErrorKindGeneral {
		return true
	}
	switch k {
	case ErrorKindUnderflow, ErrorKindOverflow:
		return wider == ErrorKindRange || wider == ErrorKindFloat
	case ErrorKindRange:
		return wider == ErrorKindFloat
	default:
		return false
	}
}

var categoryErrors = [...]ErrorKind{
	CategoryNone:                   ErrorKindNone,
	CategoryExact:                  ErrorKindNone,
	CategoryWiden:                  ErrorKindNone,
	CategoryWidenSignedToUnsigned:  ErrorKindUnderflow,
	CategoryNarrow:                 ErrorKindRange,
	CategoryNarrowSignedToUnsigned: ErrorKindRange,
	CategoryNarrowToMax:            ErrorKindOverflow,
	CategoryIntToFloatSigned:       ErrorKindRange,
	CategoryIntToFloatUnsigned:     ErrorKindOverflow,
	CategoryIntToFloatRounding:     ErrorKindNone,
	CategoryFloatWiden:             ErrorKindNone,
	CategoryFloatNarrow:            ErrorKindRange,
	CategoryFloatToInt:             ErrorKindFloat,
	CategoryWrap:                   ErrorKindNone,
	CategoryCharToInt:              ErrorKindNone,
	CategoryCharToIntNarrow:        ErrorKindOverflow,
	CategoryByteToChar:             ErrorKindNone,
	CategoryIntToChar:              ErrorKindUnrepresentable,
}

// Rule describes the conversion of a source kind into a destination kind for one capability and scheme.
type Rule struct {
	Src        Kind
	Dst        Kind
	Conversion Conversion
	// Scheme is always DefaultApprox for exact and try conversions.
	Scheme   Scheme
	Category Category
	Err      ErrorKind
}

func (r Rule) String() string {
	if r.Conversion == ConversionApprox {
		return fmt.Sprintf("%v -> %v [%v %v]: %v (%v)", r.Src, r.Dst, r.Conversion, r.Scheme, r.Category, r.Err)
	}
	return fmt.Sprintf("%v -> %v [%v]: %v (%v)", r.Src, r.Dst, r.Conversion, r.Category, r.Err)
}

// Fallible states whether the rule can fail at all.
func (r Rule) Fallible() bool {
	return r.Err != ErrorKindNone
}

type ruleKey struct {
	src, dst   Kind
	conversion Conversion
	scheme     Scheme
}

var ruleTable = buildRules()

func buildRules() map[ruleKey]Rule {
	table := make(map[ruleKey]Rule)
	for _, src := range Kinds() {
		for _, dst := range Kinds() {
			for c := ConversionValue; c < conversionTotal; c++ {
				for _, s := range Schemes() {
					if c != ConversionApprox && s != DefaultApprox {
						continue
					}
					category := classify(src, dst, c, s)
					if category == CategoryNone {
						continue
					}
					table[ruleKey{src, dst, c, s}] = Rule{
						Src:        src,
						Dst:        dst,
						Conversion: c,
						Scheme:     s,
						Category:   category,
						Err:        categoryErrors[category],
					}
				}
			}
		}
	}
	return table
}

// classify selects the most specific category applicable to a pair. CategoryNone means that no rule exists.
func classify(src, dst Kind, c Conversion, s Scheme) Category {
	if src == dst {
		return CategoryExact
	}
	if src == KindFloat32 && dst == KindFloat64 {
		return CategoryFloatWiden
	}
	if src == KindChar || dst == KindChar {
		if c != ConversionTry {
			return CategoryNone
		}
		return classifyChar(src, dst)
	}
	if c == ConversionApprox {
		switch {
		case s == Wrapping:
			if src.IsInteger() && dst.IsInteger() {
				return CategoryWrap
			}
			return CategoryNone
		case s.isRounding():
			if src.IsFloat() && dst.IsInteger() {
				return CategoryFloatToInt
			}
			return CategoryNone
		}
	}
	switch {
	case src.IsInteger() && dst.IsInteger():
		return classifyInt(src, dst)
	case src.IsInteger() && dst.IsFloat():
		category := classifyIntToFloat(src, dst)
		if c == ConversionApprox && category != CategoryWiden {
			return CategoryIntToFloatRounding
		}
		return category
	case src.IsFloat() && dst.IsFloat(), src.IsFloat() && dst.IsInteger():
		if c != ConversionApprox {
			return CategoryNone
		}
		if dst.IsFloat() {
			return CategoryFloatNarrow
		}
		return CategoryFloatToInt
	default:
		return CategoryNone
	}
}

// lookup returns the rule for a pair, normalising the scheme of non approximate conversions.
func lookup(src, dst Kind, c Conversion, s Scheme) (rule Rule, found bool) {
	if c != ConversionApprox {
		s = DefaultApprox
	}
	rule, found = ruleTable[ruleKey{src, dst, c, s}]
	return
}

// RuleFor returns the rule converting src into dst with the given capability. The scheme is ignored for exact
// and try conversions.
func RuleFor(src, dst Kind, c Conversion, s Scheme) (Rule, bool) {
	return lookup(src, dst, c, s)
}

// RuleOf is similar to RuleFor but resolves the kinds from type parameters.
func RuleOf[Dst, Src any](c Conversion, s Scheme) (Rule, bool) {
	return lookup(KindOf[Src](), KindOf[Dst](), c, s)
}

// Rules returns the whole rule table, ordered by source, destination, capability and scheme.
func Rules() []Rule {
	rules := make([]Rule, 0, len(ruleTable))
	for _, r := range ruleTable {
		rules = append(rules, r)
	}
	slices.SortFunc(rules, func(a, b Rule) int {
		return cmp.Or(
			cmp.Compare(a.Src, b.Src),
			cmp.Compare(a.Dst, b.Dst),
			cmp.Compare(a.Conversion, b.Conversion),
			cmp.Compare(a.Scheme, b.Scheme),
		)
	})
	return rules
}

// failure is the outcome of a boundary check, before it is turned into the error type of the rule.
type failure uint8

const (
	failNone failure = iota
	failUnderflow
	failOverflow
	failNaN
	failUnrepresentable
)

type boundaryCheck func(dst Kind, s Scheme, o operand) (operand, failure)

func unchecked(_ Kind, _ Scheme, o operand) (operand, failure) {
	return o, failNone
}

var boundaryChecks = [...]boundaryCheck{
	CategoryNone:                   unchecked,
	CategoryExact:                  unchecked,
	CategoryWiden:                  unchecked,
	CategoryWidenSignedToUnsigned:  checkNonNegative,
	CategoryNarrow:                 checkSignedRange,
	CategoryNarrowSignedToUnsigned: checkSignedToUnsignedRange,
	CategoryNarrowToMax:            checkUnsignedMax,
	CategoryIntToFloatSigned:       checkSignedExactBound,
	CategoryIntToFloatUnsigned:     checkUnsignedExactBound,
	CategoryIntToFloatRounding:     unchecked,
	CategoryFloatWiden:             unchecked,
	CategoryFloatNarrow:            checkFloatNarrow,
	CategoryFloatToInt:             checkFloatToInt,
	CategoryWrap:                   unchecked,
	CategoryCharToInt:              unchecked,
	CategoryCharToIntNarrow:        checkCharMax,
	CategoryByteToChar:             unchecked,
	CategoryIntToChar:              checkScalarValue,
}

// apply runs the boundary test of the rule and returns the value to store.
func (r Rule) apply(o operand) (operand, failure) {
	return boundaryChecks[r.Category](r.Dst, r.Scheme, o)
}

// newError builds the error value of the rule's kind for a failed boundary test.
func newError[Src any](kind ErrorKind, f failure, src Src) error {
	var general GeneralError
	switch f {
	case failUnderflow:
		general = GeneralUnderflow
	case failOverflow:
		general = GeneralOverflow
	case failNaN:
		general = GeneralNotANumber
	default:
		general = GeneralUnrepresentable
	}
	switch kind {
	case ErrorKindUnderflow:
		return Underflow{}
	case ErrorKindOverflow:
		return Overflow{}
	case ErrorKindRange:
		if general == GeneralUnderflow {
			return RangeUnderflow
		}
		return RangeOverflow
	case ErrorKindFloat:
		switch general {
		case GeneralUnderflow:
			return FloatUnderflow
		case GeneralOverflow:
			return FloatOverflow
		default:
			return FloatNotANumber
		}
	case ErrorKindUnrepresentable:
		return Unrepresentable[Src]{Value: src}
	default:
		return general
	}
}

// convert is the shared entry point of the numeric rule tables. Values converted into an enumeration type must
// also belong to its domain, otherwise the conversion fails with Unrepresentable carrying src.
func convert[Dst, Src any](src Src, c Conversion, s Scheme) (dst Dst, err error) {
	dst, err = convertNumeric[Dst](src, c, s)
	if err == nil && !inDomain(dst) {
		var zero Dst
		return zero, Unrepresentable[Src]{Value: src}
	}
	return
}

func convertNumeric[Dst, Src any](src Src, c Conversion, s Scheme) (dst Dst, err error) {
	dstKind := KindOf[Dst]()
	rule, found := lookup(KindOf[Src](), dstKind, c, s)
	if !found {
		err = unsupported[Dst, Src](c, s)
		return
	}
	result, f := rule.apply(load(src))
	if f != failNone {
		err = newError(rule.Err, f, src)
		return
	}
	dst = store[Dst](result, dstKind)
	return
}

func unsupported[Dst, Src any](c Conversion, s Scheme) error {
	if c == ConversionApprox {
		return commonerrors.Newf(commonerrors.ErrUnsupported, "no %v (%v) conversion from %v to %v", c, s, reflect.TypeFor[Src](), reflect.TypeFor[Dst]())
	}
	return commonerrors.Newf(commonerrors.ErrUnsupported, "no %v conversion from %v to %v", c, reflect.TypeFor[Src](), reflect.TypeFor[Dst]())
}
