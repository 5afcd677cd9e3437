// Package conv provides numeric conversions with stricter semantics than Go's conversion expressions, which
// silently wrap, truncate or round.
//
// Three capabilities are provided:
//
//   - ValueFrom / ValueInto: exact, value-preserving conversions.
//   - ApproxFrom / Approx / ApproxInto: approximate conversions, following a Scheme (DefaultApprox, Wrapping,
//     RoundToNearest, ...).
//   - TryFrom / TryInto: general conversions between partially overlapping domains (Char, enumerations).
//
// Every conversion of a type into itself succeeds. Between the builtin numeric types, the rules are fixed per
// pair of kinds (see RuleFor and Rules) and each rule fails with the narrowest error describing what can go wrong:
//
//	conv.ValueFrom[uint8](int8(-1))           // Underflow{}
//	conv.ValueFrom[uint8](int16(256))         // RangeOverflow
//	conv.ValueFrom[float32](int32(16_777_217)) // RangeOverflow
//	conv.Approx[uint8](float32(41.8))         // 41, nil
//	conv.ApproxFrom[uint8](uint16(400), conv.Wrapping) // 144, nil
//
// Errors widen along a lattice (NoError, Underflow, Overflow, RangeError, FloatError, Unrepresentable,
// GeneralError) and match each other, as well as commonerrors.ErrUnderflow and friends, through errors.Is.
//
// The unwrap helpers collapse a conversion result into a value: UnwrapOrSaturate, UnwrapOrInf, UnwrapOrInvalid
// and UnwrapOk.
package conv
