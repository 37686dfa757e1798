// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the tokenizer, conversion
//              layer, callable wrappers, registry and executor.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Replaced platform codes with dispatch codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidOperation Code = "INVALID_OPERATION"
	CodeNotFound         Code = "NOT_FOUND"
	CodeConfigError      Code = "CONFIG_ERROR"

	// Dispatch codes
	CodeUnterminatedQuote Code = "UNTERMINATED_QUOTE"
	CodeEmptyInput        Code = "EMPTY_INPUT"
	CodeArity             Code = "ARITY_MISMATCH"
	CodeConversion        Code = "CONVERSION_FAILED"
	CodeUnsupportedType   Code = "UNSUPPORTED_TYPE"
	CodeExecution         Code = "EXECUTION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeInvalidOperation, CodeNotFound, CodeConfigError,
		CodeUnterminatedQuote, CodeEmptyInput, CodeArity, CodeConversion, CodeUnsupportedType, CodeExecution:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnterminatedQuote, CodeEmptyInput:
		return "lexical"
	case CodeNotFound:
		return "lookup"
	case CodeArity, CodeConversion:
		return "dispatch"
	case CodeUnsupportedType:
		return "registration"
	case CodeExecution:
		return "execution"
	case CodeConfigError:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code onto a process exit status for the CLI.
// Input that could not be dispatched exits with 1, usage and setup
// problems with 2.
func (c Code) ExitCode() int {
	switch c {
	case CodeUnterminatedQuote, CodeEmptyInput, CodeNotFound, CodeArity, CodeConversion, CodeExecution:
		return 1
	case CodeInvalidInput, CodeInvalidOperation, CodeConfigError, CodeUnsupportedType:
		return 2
	default:
		return 1
	}
}
