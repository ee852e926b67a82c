package model

import (
	"errors"
	"fmt"
)

// ErrorCode names a failure that crosses the channel boundary.
type ErrorCode string

// CodePlatformUnavailable is reported when the host exposes no usable version API.
const CodePlatformUnavailable ErrorCode = "PlatformUnavailable"

// ErrPlatformUnavailable matches every CallError carrying CodePlatformUnavailable.
var ErrPlatformUnavailable = errors.New("platform unavailable")

// CallError is the structured failure returned to a channel caller.
type CallError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// NewPlatformUnavailable builds a PlatformUnavailable error wrapping cause.
func NewPlatformUnavailable(cause error) *CallError {
	msg := ErrPlatformUnavailable.Error()
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}

	return &CallError{
		Code:    CodePlatformUnavailable,
		Message: msg,
		Err:     cause,
	}
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's code.
func (e *CallError) Is(target error) bool {
	return e.Code == CodePlatformUnavailable && target == ErrPlatformUnavailable
}
