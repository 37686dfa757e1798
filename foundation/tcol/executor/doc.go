// File: doc.go
// Title: Command Executor Package Documentation
// Description: Runs command lines and scripts against a dispatcher with
//              request ids, timing and audit logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-18 v0.2.0: Line and script execution over registry dispatch

/*
Package executor wraps a registry.Dispatcher with the bookkeeping a host
application needs around each command:

  • A request id per command, taken from the ExecutionContext or generated
  • Execution time measurement
  • Optional audit log entries for started, completed and failed commands
  • Script execution, one command per line, with comment and blank line
    skipping and optional stop on the first failure

Dispatch failures are not Go errors here. They are reported in
ExecutionResult.Error so that a batch can continue past a bad line. Execute
only returns an error when its context is done.
*/
package executor
