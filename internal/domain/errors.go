package domain

import (
	"errors"
	"fmt"
)

// Error classes. Every error that leaves a component wraps exactly one of these,
// so the command boundary can decide how to report it with errors.Is.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
	ErrProvider      = errors.New("DNS provider error")
	ErrResolution    = errors.New("IP resolution error")
)

var (
	ErrZoneNotFound       = fmt.Errorf("%w: hosted zone", ErrNotFound)
	ErrNothingToChange    = fmt.Errorf("%w: nothing to change, check your parameters", ErrValidation)
	ErrInvalidHost        = fmt.Errorf("%w: invalid host", ErrValidation)
	ErrInvalidIP          = fmt.Errorf("%w: invalid IP address", ErrValidation)
	ErrInvalidTTL         = fmt.Errorf("%w: invalid TTL", ErrValidation)
	ErrInvalidType        = fmt.Errorf("%w: invalid record type", ErrValidation)
	ErrRequired           = fmt.Errorf("%w: required field missing", ErrValidation)
	ErrMissingCredentials = fmt.Errorf("%w: unable to load AWS credentials", ErrConfiguration)
	ErrMissingEnv         = fmt.Errorf("%w: environment variable not set", ErrConfiguration)
	ErrConfigParseFailed  = fmt.Errorf("%w: config parse failed", ErrConfiguration)
	ErrConfigReadFailed   = fmt.Errorf("%w: config read failed", ErrConfiguration)
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// OpError is a failed remote call. Message holds the provider's own text and
// is surfaced verbatim.
type OpError struct {
	Op      string
	Code    string
	Message string
	Cause   error
}

func (e *OpError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *OpError) Unwrap() []error {
	return []error{ErrProvider, e.Cause}
}

func NewOpError(op string, cause error) error {
	return &OpError{Op: op, Cause: cause}
}

// Kind names the error class of err for log fields.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrResolution):
		return "resolution"
	case errors.Is(err, ErrProvider):
		return "provider"
	default:
		return "unknown"
	}
}
