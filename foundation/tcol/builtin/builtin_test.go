// File: builtin_test.go
// Title: Built-in Command Set Tests
// Description: End to end dispatch tests for every built-in command.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package builtin

import (
	"testing"

	"github.com/msto63/cmdcall/foundation/tcol/registry"
)

func TestRegister(t *testing.T) {
	r := registry.New(registry.Options{})
	Register(r)

	if r.Len() != len(Commands()) {
		t.Errorf("Len() = %d, want %d", r.Len(), len(Commands()))
	}

	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"echo hi", "hi", true},
		{"echo 'hi there'", "hi there", true},
		{"concat foo bar", "foobar", true},
		{"upper 'hello ä'", "HELLO Ä", true},
		{"len größe", "5", true},
		{"repeat ab 3", "ababab", true},
		{"repeat ab -1", "", true},
		{"repeat ab x", "", false},
		{"add 2 3", "5", true},
		{"add 9223372036854775807 0", "9223372036854775807", true},
		{"add 9223372036854775808 0", "", false},
		{"sub 2 5", "-3", true},
		{"mul -4 5", "-20", true},
		{"div 1 4", "0.25", true},
		{"div 1 0", "+Inf", true},
		{"div 1 3", "0.3333333333333333", true},
		{"neg 7", "-7", true},
		{"not true", "false", true},
		{"not maybe", "", false},
		{"id 42", "42", true},
		{"id abc", "", false},
		{"id +42", "", false},
		{"noop", "", true},
		{"noop extra", "", false},
		{"dur 90s", "1m30s", true},
		{"dur 1h0m0s", "1h0m0s", true},
		{"dur 90", "", false},
		{"max 3 9 4", "9", true},
		{"max 3 9", "", false},
		{"clamp 9 0 5 0.5", "2.5", true},
		{"clamp -1 0 5 2", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out, ok := r.Call(tt.line)
			if ok != tt.ok || out != tt.want {
				t.Errorf("Call(%q) = %q, %v; want %q, %v", tt.line, out, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCommands_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, cmd := range Commands() {
		if seen[cmd.Name] {
			t.Errorf("duplicate command %s", cmd.Name)
		}
		seen[cmd.Name] = true
		if cmd.Description == "" {
			t.Errorf("command %s has no description", cmd.Name)
		}
		if !cmd.Func.Valid() {
			t.Errorf("command %s has an invalid function", cmd.Name)
		}
	}
}
