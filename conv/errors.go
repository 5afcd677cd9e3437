package conv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ARM-software/golang-numconv/commonerrors"
)

// The conversion errors form a lattice ordered from the narrowest kind to the most general one:
//
//	NoError ⊏ Underflow, Overflow ⊏ RangeError ⊏ FloatError ⊏ GeneralError
//	Unrepresentable ⊏ GeneralError
//
// Each rule reports the narrowest kind describing the failures it can produce. Every narrow error can be
// widened along the lattice edges with the methods named after the wider kind (e.g. Underflow.Range()).

// NoError indicates that a conversion cannot fail. No rule ever returns it: infallible conversions return a nil
// error. Widening it is a programming defect and panics.
type NoError struct{}

func (NoError) Error() string {
	return "no error"
}

func (e NoError) Underflow() Underflow {
	panic(e.unreachable("Underflow"))
}

func (e NoError) Overflow() Overflow {
	panic(e.unreachable("Overflow"))
}

func (e NoError) Range() RangeError {
	panic(e.unreachable("RangeError"))
}

func (e NoError) Float() FloatError {
	panic(e.unreachable("FloatError"))
}

func (e NoError) General() GeneralError {
	panic(e.unreachable("GeneralError"))
}

func (NoError) unreachable(target string) error {
	return commonerrors.Newf(commonerrors.ErrUnexpected, "cannot convert NoError into %v", target)
}

// Underflow indicates that the conversion failed because the value was below the destination's minimum.
type Underflow struct{}

func (Underflow) Error() string {
	return "conversion underflowed"
}

func (Underflow) Range() RangeError {
	return RangeUnderflow
}

func (Underflow) Float() FloatError {
	return FloatUnderflow
}

func (Underflow) General() GeneralError {
	return GeneralUnderflow
}

func (e Underflow) Is(target error) bool {
	return latticeIs(e.General(), target)
}

// Overflow indicates that the conversion failed because the value was above the destination's maximum.
type Overflow struct{}

func (Overflow) Error() string {
	return "conversion overflowed"
}

func (Overflow) Range() RangeError {
	return RangeOverflow
}

func (Overflow) Float() FloatError {
	return FloatOverflow
}

func (Overflow) General() GeneralError {
	return GeneralOverflow
}

func (e Overflow) Is(target error) bool {
	return latticeIs(e.General(), target)
}

// RangeError indicates that the conversion failed because the value was outside the destination's range.
type RangeError uint8

const (
	RangeUnderflow RangeError = iota
	RangeOverflow
)

func (e RangeError) String() string {
	switch e {
	case RangeUnderflow:
		return "Underflow"
	case RangeOverflow:
		return "Overflow"
	default:
		return fmt.Sprintf("RangeError(%d)", uint8(e))
	}
}

func (e RangeError) Error() string {
	return e.General().Error()
}

func (e RangeError) Float() FloatError {
	if e == RangeUnderflow {
		return FloatUnderflow
	}
	return FloatOverflow
}

func (e RangeError) General() GeneralError {
	return e.Float().General()
}

func (e RangeError) Is(target error) bool {
	return latticeIs(e.General(), target)
}

// FloatError indicates that a conversion from a floating point value failed.
type FloatError uint8

const (
	FloatUnderflow FloatError = iota
	FloatOverflow
	// FloatNotANumber is reported when the source was NaN and the destination cannot represent it.
	FloatNotANumber
)

func (e FloatError) String() string {
	switch e {
	case FloatUnderflow:
		return "Underflow"
	case FloatOverflow:
		return "Overflow"
	case FloatNotANumber:
		return "NotANumber"
	default:
		return fmt.Sprintf("FloatError(%d)", uint8(e))
	}
}

func (e FloatError) Error() string {
	return e.General().Error()
}

func (e FloatError) General() GeneralError {
	switch e {
	case FloatUnderflow:
		return GeneralUnderflow
	case FloatOverflow:
		return GeneralOverflow
	default:
		return GeneralNotANumber
	}
}

func (e FloatError) Is(target error) bool {
	return latticeIs(e.General(), target)
}

// Unrepresentable indicates that the value has no image in the destination domain, independently of its magnitude
// (e.g. a surrogate code point converted to a Char). It carries the rejected value.
type Unrepresentable[T any] struct {
	Value T
}

func (e Unrepresentable[T]) Error() string {
	return fmt.Sprintf("could not convert unrepresentable value: %v", e.Value)
}

func (Unrepresentable[T]) General() GeneralError {
	return GeneralUnrepresentable
}

func (e Unrepresentable[T]) Is(target error) bool {
	return latticeIs(e.General(), target)
}

// GeneralError is the top of the lattice: every other conversion error widens into it.
type GeneralError uint8

const (
	GeneralUnderflow GeneralError = iota
	GeneralOverflow
	GeneralNotANumber
	GeneralUnrepresentable
)

var generalErrorNames = [...]string{
	GeneralUnderflow:       "Underflow",
	GeneralOverflow:        "Overflow",
	GeneralNotANumber:      "NotANumber",
	GeneralUnrepresentable: "Unrepresentable",
}

func (e GeneralError) String() string {
	if int(e) < len(generalErrorNames) {
		return generalErrorNames[e]
	}
	return fmt.Sprintf("GeneralError(%d)", uint8(e))
}

func (e GeneralError) Error() string {
	switch e {
	case GeneralUnderflow:
		return "conversion underflowed"
	case GeneralOverflow:
		return "conversion overflowed"
	case GeneralNotANumber:
		return "conversion of not-a-number"
	case GeneralUnrepresentable:
		return "could not convert unrepresentable value"
	default:
		return e.String()
	}
}

func (e GeneralError) General() GeneralError {
	return e
}

func (e GeneralError) Is(target error) bool {
	return latticeIs(e, target)
}

// sentinel returns the common error describing the failure direction.
func (e GeneralError) sentinel() error {
	switch e {
	case GeneralUnderflow:
		return commonerrors.ErrUnderflow
	case GeneralOverflow:
		return commonerrors.ErrOverflow
	case GeneralNotANumber:
		return commonerrors.ErrNotANumber
	default:
		return commonerrors.ErrUnrepresentable
	}
}

func (e GeneralError) MarshalText() ([]byte, error) {
	if int(e) >= len(generalErrorNames) {
		return nil, commonerrors.Newf(commonerrors.ErrMarshalling, "unknown conversion error %d", uint8(e))
	}
	return []byte(e.String()), nil
}

func (e *GeneralError) UnmarshalText(text []byte) error {
	str := strings.TrimSpace(string(text))
	for i := range generalErrorNames {
		if strings.EqualFold(generalErrorNames[i], str) {
			*e = GeneralError(i)
			return nil
		}
	}
	return commonerrors.Newf(commonerrors.ErrMarshalling, "unknown conversion error %q", str)
}

type widener interface {
	General() GeneralError
}

// Widen widens any conversion error found in the chain of err into a GeneralError. It reports false if err does
// not hold a conversion error. NoError carries no failure: chains holding it report false rather than panicking.
func Widen(err error) (GeneralError, bool) {
	if err == nil {
		return 0, false
	}
	var none NoError
	if errors.As(err, &none) {
		return 0, false
	}
	var w widener
	if !errors.As(err, &w) {
		return 0, false
	}
	return w.General(), true
}

// latticeIs matches conversion errors sharing the same general image, as well as the common sentinel errors of
// their direction.
func latticeIs(self GeneralError, target error) bool {
	switch target {
	case self.sentinel():
		return true
	case commonerrors.ErrOutOfRange:
		return self == GeneralUnderflow || self == GeneralOverflow
	}
	switch target.(type) {
	case NoError, *NoError:
		return false
	}
	if w, ok := target.(widener); ok {
		return w.General() == self
	}
	return false
}
