package shell

import "errors"

// Validation errors, in the order a command line is checked. Their text is
// shown to the user with the first letter capitalised.
var (
	ErrInvalidCommand    = errors.New("invalid command")
	ErrMissingScheme     = errors.New("missing encryption scheme")
	ErrInvalidScheme     = errors.New("invalid scheme")
	ErrMissingParameter  = errors.New("missing parameter")
	ErrParameterNotInt   = errors.New("parameter must be an integer")
	ErrNegativeParameter = errors.New("parameter must be non-negative")
	ErrUnsupportedBase   = errors.New("base-n scheme only supports base 2 or base 16")
)
