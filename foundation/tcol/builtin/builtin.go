// File: builtin.go
// Title: Built-in Command Set
// Description: Registers the standard commands on a registry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package builtin

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/msto63/cmdcall/foundation/tcol/callable"
	"github.com/msto63/cmdcall/foundation/tcol/registry"
)

// Command describes one built-in command
type Command struct {
	Name        string
	Description string
	Func        callable.Func
}

// Commands returns the built-in command set
func Commands() []Command {
	return []Command{
		{"echo", "print the argument", callable.Of1(func(s string) string { return s })},
		{"concat", "join two arguments", callable.Of2(func(a, b string) string { return a + b })},
		{"upper", "convert to upper case", callable.Of1(strings.ToUpper)},
		{"len", "count characters", callable.Of1(utf8.RuneCountInString)},
		{"repeat", "repeat text n times", callable.Of2(repeat)},
		{"add", "integer sum", callable.Of2(func(a, b int64) int64 { return a + b })},
		{"sub", "integer difference", callable.Of2(func(a, b int64) int64 { return a - b })},
		{"mul", "integer product", callable.Of2(func(a, b int64) int64 { return a * b })},
		{"div", "floating point quotient", callable.Of2(func(a, b float64) float64 { return a / b })},
		{"neg", "negate an integer", callable.Of1(func(n int) int { return -n })},
		{"not", "negate a boolean", callable.Of1(func(b bool) bool { return !b })},
		{"id", "return the integer unchanged", callable.Of1(func(n int) int { return n })},
		{"noop", "do nothing", callable.Do0(func() {})},
		{"dur", "normalize a duration", callable.Of1(func(d time.Duration) time.Duration { return d })},
		{"max", "largest of three integers", callable.Of3(func(a, b, c int) int { return max(a, b, c) })},
		{"clamp", "clamp a value into [lo, hi] and scale it", callable.Of4(clamp)},
	}
}

// Register installs the built-in commands on r
func Register(r *registry.Registry) {
	for _, cmd := range Commands() {
		r.Register(cmd.Name, cmd.Func)
	}
}

// repeat rejects negative counts through an empty result
func repeat(s string, n int) string {
	if n < 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

func clamp(v, lo, hi, scale float64) float64 {
	return min(max(v, lo), hi) * scale
}
