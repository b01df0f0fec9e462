package err

import (
	"fmt"
)

// ErrUnexpectedToken returns an error for a token that violates the expected
// grammar at its position.
//
// Parameters:
//
//	want string: Description of the expected token.
//	got string: Description of the token actually read.
//
// Returns:
//
//	error: The formatted error, wrapping ErrMalformedInput.
func ErrUnexpectedToken(want, got string) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrMalformedInput, want, got)
}

// ErrDepthExceeded returns an error for input nested beyond the configured
// recursion limit.
//
// Parameters:
//
//	limit int: The depth limit that was exceeded.
//
// Returns:
//
//	error: The formatted error, wrapping ErrMalformedInput.
func ErrDepthExceeded(limit int) error {
	return fmt.Errorf("%w: nesting depth exceeds limit %d", ErrMalformedInput, limit)
}

// ErrNilEncodeSource returns an error for encoding entry points that received
// a nil source.
//
// Parameters:
//
//	what string: Name of the missing source object.
//
// Returns:
//
//	error: The formatted error, wrapping ErrInvalidArgument.
func ErrNilEncodeSource(what string) error {
	return fmt.Errorf("%w: nil %s", ErrInvalidArgument, what)
}

// ErrDecodeUnsupported returns an error for shapes that are encode-only.
//
// Parameters:
//
//	shape string: Name of the one-way shape.
//
// Returns:
//
//	error: The formatted error, wrapping ErrUnsupportedOperation.
func ErrDecodeUnsupported(shape string) error {
	return fmt.Errorf("%w: %s cannot be decoded", ErrUnsupportedOperation, shape)
}
