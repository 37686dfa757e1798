// Package error provides the structured error type used across cmdcall.
//
// Package: error
// Title: cmdcall Error Handling
// Description: Implements a coded error type with a cause chain and a small
//              details map. Dispatch failures (lexical, lookup, arity,
//              conversion) are reported with distinct codes so that callers
//              wanting diagnostics can tell them apart, while the plain
//              Call APIs collapse them into a single "no result".
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Dispatch codes, errors.As based lookups, severity removed
//
// Usage:
//
//	import ccerror "github.com/msto63/cmdcall/foundation/core/error"
//
//	err := ccerror.New("wrong number of arguments").
//		WithCode(ccerror.CodeArity).
//		WithDetail("want", 2).
//		WithDetail("got", 3)
//
//	if ccerror.HasCode(err, ccerror.CodeArity) {
//		// handle arity mismatch
//	}
package error
