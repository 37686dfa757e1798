// File: interface.go
// Title: Command Registry Interface
// Description: Options and the dispatch interface consumed by the
//              execution engine.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Object and method definitions
// - 2026-10-18 v0.2.0: Reduced to options and Dispatcher

package registry

import (
	"github.com/charmbracelet/log"
)

// Options configures registry behavior
type Options struct {
	Logger        *log.Logger // nil discards log output
	EnableAliases bool
}

// Dispatcher runs command lines or pre-split commands
type Dispatcher interface {
	// Dispatch tokenizes line and runs the named command
	Dispatch(line string) (string, error)

	// DispatchTokens runs the named command with already split arguments
	DispatchTokens(name string, toks []string) (string, error)
}

var _ Dispatcher = (*Registry)(nil)
