package commonerrors

import (
	"encoding"
	"errors"
	"fmt"
	"strings"
)

const MultipleErrorSeparator = '\n'

var (
	commonErrors = []error{
		ErrNotImplemented,
		ErrUndefined,
		ErrInvalid,
		ErrUnsupported,
		ErrUnknown,
		ErrMarshalling,
		ErrUnexpected,
		ErrInvalidDestination,
		ErrOutOfRange,
		ErrUnderflow,
		ErrOverflow,
		ErrNotANumber,
		ErrUnrepresentable,
	}
	// Conversion failures describe what happened rather than naming their sentinel.
	conversionDescriptions = map[string]error{
		"conversion underflowed":                  ErrUnderflow,
		"conversion overflowed":                   ErrOverflow,
		"conversion of not-a-number":              ErrNotANumber,
		"could not convert unrepresentable value": ErrUnrepresentable,
	}
	reasonSeparator = fmt.Sprintf("%v ", string(TypeReasonErrorSeparator))
)

var (
	_ encoding.TextMarshaler   = &marshallingError{}
	_ encoding.TextUnmarshaler = &marshallingError{}
)

// marshallingError is the text form of an error following the `error type: reason: cause` convention.
type marshallingError struct {
	ErrorType error
	Reason    string
	Cause     error
}

func (e *marshallingError) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *marshallingError) UnmarshalText(text []byte) error {
	parsed := processErrorStrLine(string(text))
	if parsed == nil {
		return ErrMarshalling
	}
	*e = *parsed
	return nil
}

func (e *marshallingError) String() string {
	err := e.ConvertToError()
	if err == nil {
		return ""
	}
	return err.Error()
}

func (e *marshallingError) Error() string {
	return e.String()
}

// ConvertToError rebuilds an error chain in which the error type and the cause can be found with errors.Is.
func (e *marshallingError) ConvertToError() error {
	if e == nil || e.ErrorType == nil {
		return nil
	}
	if e.Cause != nil {
		return WrapError(e.ErrorType, e.Cause, e.Reason)
	}
	return New(e.ErrorType, e.Reason)
}

// deserialiseCommonError returns the sentinel error corresponding to a description.
func deserialiseCommonError(description string) (bool, error) {
	description = strings.ToLower(strings.TrimSpace(description))
	for _, commonErr := range commonErrors {
		if commonErr.Error() == description {
			return true, commonErr
		}
	}
	commonErr, found := conversionDescriptions[description]
	return found, commonErr
}

// processErrorStrLine parses one serialised error. The first element is the error type; the last element
// describing a known error is the cause, followed by its own reason. Unknown error types are reported as
// ErrUnknown with the whole line as reason.
func processErrorStrLine(line string) *marshallingError {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	elems := strings.Split(line, string(TypeReasonErrorSeparator))
	for i := range elems {
		elems[i] = strings.TrimSpace(elems[i])
	}
	found, errType := deserialiseCommonError(elems[0])
	if !found {
		return &marshallingError{ErrorType: ErrUnknown, Reason: strings.Join(elems, reasonSeparator)}
	}
	mErr := &marshallingError{ErrorType: errType}
	reason := elems[1:]
	for i := len(reason) - 1; i >= 0; i-- {
		if isCause, cause := deserialiseCommonError(reason[i]); isCause {
			mErr.Cause = New(cause, strings.Join(reason[i+1:], reasonSeparator))
			reason = reason[:i]
			break
		}
	}
	mErr.Reason = strings.Join(reason, reasonSeparator)
	return mErr
}

// SerialiseError marshals an error following the `error type: reason` convention. Errors joined with errors.Join
// are marshalled one per line.
func SerialiseError(err error) ([]byte, error) {
	if IsEmpty(err) {
		return nil, nil
	}
	var lines []string
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, subErr := range joined.Unwrap() {
			if !IsEmpty(subErr) {
				lines = append(lines, subErr.Error())
			}
		}
	} else {
		lines = append(lines, err.Error())
	}
	text := strings.TrimSpace(strings.Join(lines, string(MultipleErrorSeparator)))
	if text == "" {
		return nil, Newf(ErrMarshalling, "error `%T` with no description", err)
	}
	return []byte(text), nil
}

// DeserialiseError unmarshals text into an error. It tries to determine the error type and the failure it wraps,
// so that errors.Is keeps matching the sentinels of the original error.
func DeserialiseError(text []byte) (deserialisedError, err error) {
	if len(strings.TrimSpace(string(text))) == 0 {
		return
	}
	var errs []error
	for _, line := range strings.Split(string(text), string(MultipleErrorSeparator)) {
		mErr := processErrorStrLine(line)
		if mErr != nil {
			errs = append(errs, mErr.ConvertToError())
		}
	}
	if len(errs) == 1 {
		deserialisedError = errs[0]
		return
	}
	deserialisedError = errors.Join(errs...)
	return
}
