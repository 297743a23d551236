package argparse

// NewError creates a new error with the given error code and underlying
// error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

// ErrorCode represents an error code for a specific failure class.
type ErrorCode int

const (
	// ErrInvalidOption is reported at registration time when an option
	// declares neither a short nor a long name.
	ErrInvalidOption ErrorCode = iota + 1

	// ErrUnrecognizedArgument is reported when a token resolves to no
	// registered option.
	ErrUnrecognizedArgument

	// ErrMissingValue is reported when a non-boolean option appears over the
	// command line without an explicit value.
	ErrMissingValue

	// ErrGroupConflict is reported when two options of the mutual-exclusion
	// group appear in a single invocation.
	ErrGroupConflict

	// ErrUnsupportedWrapStrategy is reported by the text wrapper when an
	// unrecognized special-character handling strategy is requested.
	ErrUnsupportedWrapStrategy
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrInvalidOption:
		return "invalid option"
	case ErrUnrecognizedArgument:
		return "unrecognized argument"
	case ErrMissingValue:
		return "missing value"
	case ErrGroupConflict:
		return "group conflict"
	case ErrUnsupportedWrapStrategy:
		return "unsupported wrap strategy"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code and an underlying error.
type Error struct {
	code ErrorCode
	err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return convertErrorCode(e.code) + ": <nil>"
	}
	return e.err.Error()
}

// Code returns the error code identifying the failure class.
func (e *Error) Code() ErrorCode {
	return e.code
}

func (e *Error) Unwrap() error {
	return e.err
}
