package wpmcp

import (
	"errors"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrInternalServerError
	ErrUnknownTool
	ErrMissingArgument
	ErrProviderUnavailable
	ErrProviderRequestFailed
	ErrNormalization
	ErrRemoteRequestFailed
	ErrAuthenticationFailed
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

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
	case ErrInternalServerError:
		return "internal server error"
	case ErrUnknownTool:
		return "unknown tool"
	case ErrMissingArgument:
		return "missing argument"
	case ErrProviderUnavailable:
		return "generator unavailable"
	case ErrProviderRequestFailed:
		return "generator request failed"
	case ErrNormalization:
		return "generated content could not be normalized"
	case ErrRemoteRequestFailed:
		return "content service request failed"
	case ErrAuthenticationFailed:
		return "content service authentication failed"
	}
	return fmt.Sprintf("error code %d", int(e))
}

// Name returns a stable identifier for the error code, used in
// protocol error payloads
func (e Err) Name() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not_found"
	case ErrBadParameter:
		return "bad_parameter"
	case ErrInternalServerError:
		return "internal_error"
	case ErrUnknownTool:
		return "unknown_tool"
	case ErrMissingArgument:
		return "missing_argument"
	case ErrProviderUnavailable:
		return "provider_unavailable"
	case ErrProviderRequestFailed:
		return "provider_request_failed"
	case ErrNormalization:
		return "normalization_error"
	case ErrRemoteRequestFailed:
		return "remote_request_failed"
	case ErrAuthenticationFailed:
		return "authentication_failed"
	}
	return fmt.Sprintf("error_%d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

// Kind returns the first error code found in the chain of err, or
// ErrInternalServerError when err does not carry one
func Kind(err error) Err {
	var code Err
	if err == nil {
		return ErrSuccess
	} else if errors.As(err, &code) {
		return code
	}
	return ErrInternalServerError
}
