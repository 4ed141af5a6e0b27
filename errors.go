package furl

import (
	"fmt"

	"github.com/dubizzle/furl/internal/errorutil"
)

// Error represents a furl error.
// See [errorutil.Error].
type Error = errorutil.Error

// Fatal errors abort the call, the URL remains unchanged.
const (
	// ErrInvalidArgument is returned on invalid arguments that are not URL input.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrMalformedInput is returned on unbalanced IPv6 literal brackets in URL, netloc or host.
	ErrMalformedInput = errorutil.ErrMalformedInput
	// ErrInvalidPort is returned on non-numeric ports, zero or ports greater than 65535.
	ErrInvalidPort Error = "invalid port"
	// ErrReadOnly is returned on attempt to change the absolute flag of a path that follows a netloc.
	ErrReadOnly Error = "read-only attribute"
)

// Advisory errors are never returned, they are reported to [Options.OnWarning] and logged.
// See [IsAdvisory].
const (
	// ErrImproperEncoding is reported in strict mode when an input string contains characters
	// that must be percent-encoded.
	ErrImproperEncoding Error = "improperly encoded input"
	// ErrParamOverlap is reported when [URL.Add] or [URL.Set] receives parameters that could conflict.
	// Later parameters win.
	ErrParamOverlap Error = "possible parameter overlap"
)

// IsAdvisory reports whether err is an advisory error.
func IsAdvisory(err error) bool { return errorutil.IsAdvisory(err) }

type advisoryError struct {
	err error
}

func newAdvisoryError(sentinel Error, format string, args ...any) error {
	return &advisoryError{errorutil.NewWrapperError(sentinel, fmt.Sprintf(format, args...))} //errtrace:skip
}

func (e *advisoryError) Error() string { return e.err.Error() }

func (e *advisoryError) Unwrap() error { return e.err }

func (*advisoryError) Advisory() bool { return true }

func newInvalidPortError(port any) error {
	return errorutil.NewWrapperError(ErrInvalidPort, "%q", fmt.Sprint(port)) //errtrace:skip
}

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

// NewReadOnlyError creates a new error with [ErrReadOnly] or
// wraps provided error with [ErrReadOnly].
func NewReadOnlyError(args ...any) error {
	return errorutil.NewWrapperError(ErrReadOnly, args...) //errtrace:skip
}

// NewMalformedInputError creates a new error with [ErrMalformedInput] or
// wraps provided error with [ErrMalformedInput].
func NewMalformedInputError(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}
