package commonerrors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

const TypeReasonErrorSeparator = ':'

var (
	ErrNotImplemented     = errors.New("not implemented")
	ErrUndefined          = errors.New("undefined")
	ErrInvalid            = errors.New("invalid")
	ErrUnsupported        = errors.New("unsupported")
	ErrUnknown            = errors.New("unknown")
	ErrMarshalling        = errors.New("unserialisable")
	ErrUnexpected         = errors.New("unexpected")
	ErrInvalidDestination = errors.New("invalid destination")
	// Conversion failures. The directions below are the images of the
	// narrow conversion errors once they are widened to the general kind.
	ErrOutOfRange      = errors.New("out of range")
	ErrUnderflow       = errors.New("underflow")
	ErrOverflow        = errors.New("overflow")
	ErrNotANumber      = errors.New("not a number")
	ErrUnrepresentable = errors.New("unrepresentable")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the description of `target` contains any of the descriptions provided (case insensitive).
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// IsEmpty states whether an error is empty or not.
func IsEmpty(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// New returns an error of type `targetErr` with a reason.
func New(targetErr error, msg string) error {
	if msg == "" {
		return targetErr
	}
	return fmt.Errorf("%w%v %v", targetErr, string(TypeReasonErrorSeparator), msg)
}

// Newf is similar to New but allows formatting of the reason.
func Newf(targetErr error, format string, args ...any) error {
	return New(targetErr, fmt.Sprintf(format, args...))
}

// WrapError wraps `originalError` into an error of type `targetError`. Both errors remain in the chain.
func WrapError(targetError, originalError error, msg string) error {
	if originalError == nil {
		return New(targetError, msg)
	}
	if targetError == nil {
		targetError = ErrUnknown
	}
	if msg == "" {
		return fmt.Errorf("%w%v %w", targetError, string(TypeReasonErrorSeparator), originalError)
	}
	return fmt.Errorf("%w%v %v%v %w", targetError, string(TypeReasonErrorSeparator), msg, string(TypeReasonErrorSeparator), originalError)
}

// WrapErrorf is similar to WrapError but allows formatting of the reason.
func WrapErrorf(targetError, originalError error, format string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(format, args...))
}
