// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for code validity, categories and exit status mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18

package error

import "testing"

func TestCode_IsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeInvalidInput, CodeInvalidOperation, CodeNotFound, CodeConfigError,
		CodeUnterminatedQuote, CodeEmptyInput, CodeArity, CodeConversion, CodeUnsupportedType, CodeExecution,
	}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", c)
		}
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnterminatedQuote, "lexical"},
		{CodeEmptyInput, "lexical"},
		{CodeNotFound, "lookup"},
		{CodeArity, "dispatch"},
		{CodeConversion, "dispatch"},
		{CodeUnsupportedType, "registration"},
		{CodeExecution, "execution"},
		{CodeConfigError, "configuration"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCode_ExitCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, 1},
		{CodeArity, 1},
		{CodeConversion, 1},
		{CodeConfigError, 2},
		{CodeInvalidInput, 2},
		{CodeUnknown, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
