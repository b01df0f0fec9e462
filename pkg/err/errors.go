// Package err defines common errors for the polstream project.
package err

import (
	"errors"
)

var (
	// ErrMalformedInput reports that the token stream does not match the
	// expected grammar at a point where structure is mandatory.
	ErrMalformedInput = errors.New("malformed input stream")

	// ErrInvalidArgument reports that a caller supplied an unusable argument,
	// such as a nil source object for encoding.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation reports a deliberately unimplemented direction
	// of a one-way converter. It signals design-time misuse, not bad data.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
