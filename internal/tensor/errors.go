package tensor

import "github.com/pkg/errors"

// Error kinds. Every failure returned by this package and the backends wraps
// exactly one of these, so callers match with errors.Is. The wrap message
// carries the operation name and the offending operand or shape.
var (
	// ErrShape reports incompatible shapes: reshape, append, broadcast,
	// matrix product, determinant or ragged sequence input.
	ErrShape = errors.New("tensor: shape mismatch")

	// ErrIndex reports an index or axis outside its valid range.
	ErrIndex = errors.New("tensor: index out of range")

	// ErrDomain reports a value outside the numeric domain of an operation:
	// zero step, non-positive count, integer division by zero, negative
	// integer exponent, reduction over an empty array.
	ErrDomain = errors.New("tensor: invalid numeric domain")

	// ErrDType reports a value whose Go type has no array element type.
	ErrDType = errors.New("tensor: unsupported element type")
)
