// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// FailureCode classifies the errors the SDK raises itself.
type FailureCode string

const (
	// CodeNotFound is used when a chain id, endpoint or credentials could not
	// be resolved from any source.
	CodeNotFound FailureCode = "NOT_FOUND"

	// CodeParamError is used when a caller omits or malforms a required
	// request parameter.
	CodeParamError FailureCode = "PARAM_ERROR"
)

// Sentinels for errors.Is checks. They match any [FailureError] with the same
// code regardless of message.
var (
	ErrNotFound   = &FailureError{Code: CodeNotFound}
	ErrParamError = &FailureError{Code: CodeParamError}
)

// FailureError is the typed failure returned for resolution and parameter
// validation problems. Transport responses (4xx/5xx) are never reported
// through it.
type FailureError struct {
	Code    FailureCode
	Message string

	// Err is the underlying cause, if any. It is kept for logging and
	// errors.Unwrap; callers should branch on Code.
	Err error
}

// NewNotFound builds a NOT_FOUND failure with a formatted message.
func NewNotFound(format string, args ...any) *FailureError {
	return &FailureError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewParamError builds a PARAM_ERROR failure with a formatted message.
func NewParamError(format string, args ...any) *FailureError {
	return &FailureError{Code: CodeParamError, Message: fmt.Sprintf(format, args...)}
}

// WithCause returns a copy of e that wraps cause.
func (e *FailureError) WithCause(cause error) *FailureError {
	cp := *e
	cp.Err = cause
	return &cp
}

func (e *FailureError) Error() string {
	if e.Message == "" {
		return "dragonchain failure: " + string(e.Code)
	}
	return e.Message
}

func (e *FailureError) Unwrap() error {
	return e.Err
}

// Is matches another *FailureError with the same code. A target carrying a
// message must match it too.
func (e *FailureError) Is(target error) bool {
	t, ok := target.(*FailureError)
	if !ok {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}
