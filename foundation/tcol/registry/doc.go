// File: doc.go
// Title: Command Registry Package Documentation
// Description: Maps command names to type-erased callables and dispatches
//              command lines to them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial registry implementation
// - 2026-10-18 v0.2.0: Function table with line and token dispatch

/*
Package registry provides command registration and dispatch.

A Registry maps case-sensitive command names to callable.Func values. A
command line is tokenized, its first token selects the function and the
remaining tokens become the arguments:

	reg := registry.New(registry.Options{})
	reg.Register("add", callable.Of2(func(a, b int) int { return a + b }))

	out, ok := reg.Call("add 2 3") // "5", true
	_, ok = reg.Call("add 2")      // "", false

Call and CallTokens collapse every failure into false. Dispatch and
DispatchTokens report the reason as an *error.Error:

  • CodeUnterminatedQuote when the line leaves a quote open
  • CodeEmptyInput when the line holds no tokens
  • CodeNotFound when no command has the name
  • CodeArity, CodeConversion or CodeExecution from the function itself

Registering a name twice replaces the earlier function. With EnableAliases
set, RegisterAlias binds a name to a command line prefix which is expanded
one level deep when no command of that name exists.

The registry does not lock. Register everything first and then dispatch, or
guard the registry externally when registering concurrently with dispatch.
*/
package registry
