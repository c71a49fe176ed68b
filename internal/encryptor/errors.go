package encryptor

import (
	"errors"
	"fmt"
)

// Error definitions
var (
	// ErrUnknownKind is returned when a scheme name or Kind value is not supported
	ErrUnknownKind = errors.New("unknown encryption scheme")

	// ErrInvalidBaseDigits is returned when a base-N group contains characters
	// outside the alphabet of the selected base
	ErrInvalidBaseDigits = errors.New("invalid base digits")
)

// InvalidDigitsError describes the base-N group that failed to parse.
type InvalidDigitsError struct {
	Group  string // the offending group as it appeared in the input
	Offset int    // code point offset of the group within the input
	Base   int    // normalized base the group was parsed in
	Err    error  // underlying parse error
}

// Error implements the error interface
func (e *InvalidDigitsError) Error() string {
	return fmt.Sprintf("%s: group %q at offset %d is not a base-%d number", ErrInvalidBaseDigits, e.Group, e.Offset, e.Base)
}

// Is reports whether target is ErrInvalidBaseDigits
func (e *InvalidDigitsError) Is(target error) bool {
	return target == ErrInvalidBaseDigits
}

// Unwrap returns the underlying parse error
func (e *InvalidDigitsError) Unwrap() error {
	return e.Err
}
