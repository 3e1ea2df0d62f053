package toolschema

import (
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrNotImplemented
	ErrInternalServerError
	ErrUnknownProvider
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// UnknownProviderError is returned when a provider identifier is not
// registered. It carries the offending identifier and the identifiers
// which are valid, in canonical order.
type UnknownProviderError struct {
	Provider  string
	Providers []string
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotImplemented:
		return "not implemented"
	case ErrInternalServerError:
		return "internal server error"
	case ErrUnknownProvider:
		return "unknown provider"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

// NewUnknownProviderError returns an error for the provider identifier,
// listing the valid identifiers
func NewUnknownProviderError(provider string, providers []string) *UnknownProviderError {
	return &UnknownProviderError{
		Provider:  provider,
		Providers: append([]string(nil), providers...),
	}
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("%v: %q (valid providers are %s)", ErrUnknownProvider, e.Provider, strings.Join(e.Providers, ", "))
}

// Is matches both ErrUnknownProvider and ErrNotFound
func (e *UnknownProviderError) Is(target error) bool {
	return target == ErrUnknownProvider || target == ErrNotFound
}
