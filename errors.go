package typenv

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds of a typed getter.
// Match them with errors.Is; inspect details with errors.As on the typed errors below.
var (
	ErrInvalidName         = errors.New("typenv: invalid name")
	ErrMissing             = errors.New("typenv: missing variable")
	ErrCast                = errors.New("typenv: cast failed")
	ErrValidation          = errors.New("typenv: validation failed")
	ErrInvalidDefault      = errors.New("typenv: invalid default")
	ErrUnsupportedEncoding = errors.New("typenv: unsupported encoding")
)

// Reasons reported by NameError.
const (
	ReasonEmpty        = "environment variable name can not be an empty string"
	ReasonInvalidChar  = "environment variable name contains invalid character(s)"
	ReasonLeadingDigit = "environment variable name can not start with a number"
)

// NameError reports a variable name rejected before any lookup.
type NameError struct {
	Name   string // Fully-qualified name (prefix and case applied)
	Reason string // One of the Reason* constants
}

func (e *NameError) Error() string {
	return fmt.Sprintf("typenv: invalid name %q: %s", e.Name, e.Reason)
}

func (e *NameError) Is(target error) bool { return target == ErrInvalidName }

// MissingError reports a mandatory variable absent from the source.
type MissingError struct {
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("typenv: mandatory environment variable %q is missing", e.Name)
}

func (e *MissingError) Is(target error) bool { return target == ErrMissing }

// CastError reports a raw value that could not be converted to its target type.
type CastError struct {
	Type  Tag    // Cast-type tag (e.g. "int")
	Name  string // Fully-qualified name
	Value string // Raw string read from the source
	Err   error  // Underlying parse failure
}

func (e *CastError) Error() string {
	msg := fmt.Sprintf("typenv: failed to cast %q (variable name %q) to %s", e.Value, e.Name, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CastError) Unwrap() error { return e.Err }

func (e *CastError) Is(target error) bool { return target == ErrCast }

// ValidationError reports a value rejected by a user validator.
type ValidationError struct {
	Name  string
	Index int   // Position of the failing validator
	Err   error // Error returned by the validator
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("typenv: invalid value for %q: value did not pass custom validator", e.Name)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DefaultError reports a JSON value (usually a caller default) that does not serialize.
type DefaultError struct {
	Name string
	Err  error
}

func (e *DefaultError) Error() string {
	return fmt.Sprintf("typenv: value for %q is not JSON serializable: %v", e.Name, e.Err)
}

func (e *DefaultError) Unwrap() error { return e.Err }

func (e *DefaultError) Is(target error) bool { return target == ErrInvalidDefault }
