// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type carrying a message, an optional
//              cause, a Code and a details map. Compatible with errors.Is
//              and errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-18 v0.2.0: Trimmed to code/details/cause, code matching via errors.Is

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxErrorChainDepth limits how deep Wrap keeps nesting *Error values
const MaxErrorChainDepth = 15

// Error represents a structured error with a code and details
type Error struct {
	message string
	cause   error
	code    Code
	details map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message: message,
		code:    CodeUnknown,
		details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. The code and
// details of a wrapped *Error are inherited.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message: message,
		cause:   err,
		code:    CodeUnknown,
		details: make(map[string]interface{}),
	}

	var inner *Error
	if errors.As(err, &inner) {
		wrapped.code = inner.code
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
		if depth := chainDepth(err); depth >= MaxErrorChainDepth {
			wrapped.cause = errors.New(err.Error())
			wrapped.details["truncated"] = true
		}
	}

	return wrapped
}

func chainDepth(err error) int {
	depth := 0
	for err != nil && depth < MaxErrorChainDepth*2 {
		depth++
		err = errors.Unwrap(err)
	}
	return depth
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code. A target
// with CodeUnknown never matches so sentinel comparisons stay explicit.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.code == CodeUnknown {
		return false
	}
	return e.code == t.code
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// Message returns the message without the cause
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Detail returns a single detail value
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a detailed, multi-line representation of the error
func (e *Error) String() string {
	parts := []string{
		fmt.Sprintf("Error: %s", e.message),
		fmt.Sprintf("Code: %s", e.code),
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		detailStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message": e.message,
		"code":    e.code,
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	return json.Marshal(data)
}

// HasCode checks the code of the outermost *Error in the chain
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode returns the code of the outermost *Error in the chain, or
// CodeUnknown if there is none
func GetCode(err error) Code {
	var ccErr *Error
	if errors.As(err, &ccErr) {
		return ccErr.code
	}
	return CodeUnknown
}
