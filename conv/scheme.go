package conv

import (
	"fmt"
	"math"
)

// Scheme selects how an approximate conversion transforms its source before checking that the result is
// representable by the destination.
type Scheme uint8

const (
	// DefaultApprox does whatever a lossy conversion generally does: float to integer conversions truncate
	// towards zero, integer to float conversions round to nearest.
	DefaultApprox Scheme = iota
	// Wrapping keeps the least significant bits of an integer. It is only defined between integers.
	Wrapping
	// RoundToNearest rounds half away from zero. Float to integer only.
	RoundToNearest
	// RoundToNegInf rounds towards negative infinity. Float to integer only.
	RoundToNegInf
	// RoundToPosInf rounds towards positive infinity. Float to integer only.
	RoundToPosInf
	// RoundToZero truncates. Float to integer only.
	RoundToZero

	schemeTotal
)

var schemeNames = [...]string{
	DefaultApprox:  "DefaultApprox",
	Wrapping:       "Wrapping",
	RoundToNearest: "RoundToNearest",
	RoundToNegInf:  "RoundToNegInf",
	RoundToPosInf:  "RoundToPosInf",
	RoundToZero:    "RoundToZero",
}

// Schemes returns all the approximation schemes.
func Schemes() []Scheme {
	schemes := make([]Scheme, 0, int(schemeTotal))
	for s := DefaultApprox; s < schemeTotal; s++ {
		schemes = append(schemes, s)
	}
	return schemes
}

func (s Scheme) String() string {
	if s.IsValid() {
		return schemeNames[s]
	}
	return fmt.Sprintf("Scheme(%d)", uint8(s))
}

// IsValid states whether s is a known scheme.
func (s Scheme) IsValid() bool {
	return s < schemeTotal
}

// isRounding states whether s is one of the float rounding schemes.
func (s Scheme) isRounding() bool {
	return s >= RoundToNearest && s <= RoundToZero
}

// approximate applies the pre-transform of the scheme to a float source.
func (s Scheme) approximate(f float64) float64 {
	switch s {
	case RoundToNearest:
		return math.Round(f)
	case RoundToNegInf:
		return math.Floor(f)
	case RoundToPosInf:
		return math.Ceil(f)
	case RoundToZero:
		return math.Trunc(f)
	default:
		return f
	}
}
