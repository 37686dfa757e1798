// File: doc.go
// Title: Command Dispatcher Package Documentation
// Description: Top-level entry point combining tokenizer, registry and
//              executor into one engine.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial TCOL implementation with parser and AST
// - 2026-10-18 v0.2.0: String driven dispatch of typed Go functions

/*
Package tcol dispatches shell quoted command lines to typed Go functions.

The subpackages form a pipeline:

  • parser splits a line into tokens with single and double quote spans
  • conv converts tokens into typed values and results back into text
  • callable hides the signature of a wrapped function behind Func
  • registry maps command names to Funcs and dispatches lines
  • executor adds request ids, audit logging and script execution
  • builtin provides a standard command set

Engine wires them together for applications that want one handle:

	engine, err := tcol.New(tcol.Options{Builtins: true})
	if err != nil {
		return err
	}
	engine.Register("square", callable.Of1(func(n int) int { return n * n }))

	result, err := engine.Execute(ctx, "square 12", nil)
	// result.Output == "144"

A line that cannot be dispatched, because of an open quote, an unknown
command, a wrong argument count or an argument that does not convert, never
runs any function. The failure is reported through ExecutionResult.Error or,
with Call, as a plain false.
*/
package tcol
