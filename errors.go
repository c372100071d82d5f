package fflonk

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// DecodeErrorKind classifies why a proof or key element failed to decode.
type DecodeErrorKind int

const (
	// NotMember means a scalar or coordinate is not a canonical residue of
	// its field (value >= modulus, a negative value, or a string that is not
	// a decimal integer).
	NotMember DecodeErrorKind = iota
	// NotOnCurve means a pair of field elements does not satisfy the curve
	// (or twist) equation.
	NotOnCurve
	// SizeMismatch means a raw byte buffer is not exactly the expected length.
	SizeMismatch
)

func (k DecodeErrorKind) String() string {
	switch k {
	case NotMember:
		return "NotMember"
	case NotOnCurve:
		return "NotOnCurve"
	case SizeMismatch:
		return "SizeMismatch"
	default:
		return "Unknown"
	}
}

// DecodeError reports which proof/key field failed to decode and why.
type DecodeError struct {
	Field string
	Kind  DecodeErrorKind
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Kind)
}

// InvalidInverseError is returned when the prover-supplied batched-inverse
// hint does not match the value the verifier independently computes.
type InvalidInverseError struct {
	Provided fr.Element
	Computed fr.Element
}

func (e *InvalidInverseError) Error() string {
	return fmt.Sprintf("invalid provided inverse %s: expected inverse of %s", e.Provided.String(), e.Computed.String())
}

// ErrNotPairing is returned when the final pairing product is not the
// identity element of Gt.
var ErrNotPairing = fmt.Errorf("pairing check failed")
