// File: executor.go
// Title: Command Execution Engine
// Description: Executes single command lines, batches and scripts through
//              a dispatcher with request tracking and audit logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-18 v0.2.0: Dispatcher based execution, scripts and batches

package executor

import (
	"bufio"
	"context"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	ccerror "github.com/msto63/cmdcall/foundation/core/error"
	"github.com/msto63/cmdcall/foundation/tcol/registry"
)

// Engine executes command lines through a dispatcher
type Engine struct {
	dispatcher registry.Dispatcher
	logger     *log.Logger
	options    Options
}

// Options configures executor behavior
type Options struct {
	Logger         *log.Logger
	EnableAuditLog bool
	StopOnError    bool          // stop a batch or script at the first failed line
	ScriptTimeout  time.Duration // zero means no limit
}

// ExecutionContext provides context for command execution. The engine
// works on a copy; fields left empty are filled in that copy only.
type ExecutionContext struct {
	RequestID string
	Source    string                 // script name or other origin, informational
	Line      int                    // 1-based script line, 0 when not from a script
	Timestamp time.Time              // start of execution, defaults to now
	Metadata  map[string]interface{} // added to every audit entry
}

// ExecutionResult represents the result of command execution
type ExecutionResult struct {
	Success       bool          `json:"success"`
	Output        string        `json:"output"`
	Error         error         `json:"-"`
	ExecutionTime time.Duration `json:"execution_time"`
	Command       string        `json:"command"`
	RequestID     string        `json:"request_id"`
	StartedAt     time.Time     `json:"started_at"`
	Line          int           `json:"line,omitempty"`
}

// New creates a new execution engine
func New(dispatcher registry.Dispatcher, opts Options) (*Engine, error) {
	if dispatcher == nil {
		return nil, ccerror.New("dispatcher is required").WithCode(ccerror.CodeInvalidInput)
	}
	if opts.ScriptTimeout < 0 {
		return nil, ccerror.New("script timeout cannot be negative").
			WithCode(ccerror.CodeInvalidInput).
			WithDetail("timeout", opts.ScriptTimeout.String())
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engine := &Engine{
		dispatcher: dispatcher,
		logger:     logger.With("component", "executor"),
		options:    opts,
	}

	engine.logger.Debug("executor initialized",
		"auditEnabled", opts.EnableAuditLog,
		"stopOnError", opts.StopOnError,
		"scriptTimeout", opts.ScriptTimeout)

	return engine, nil
}

// Execute runs one command line. The returned error is non-nil only when
// ctx is done; dispatch failures are reported in the result.
func (e *Engine) Execute(ctx context.Context, line string, execCtx *ExecutionContext) (*ExecutionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, ccerror.Wrap(err, "execution cancelled").WithCode(ccerror.CodeExecution)
	}

	execCtx = prepareContext(execCtx)
	result := &ExecutionResult{
		Command:   line,
		RequestID: execCtx.RequestID,
		StartedAt: execCtx.Timestamp,
		Line:      execCtx.Line,
	}

	if e.options.EnableAuditLog {
		e.audit("command started", execCtx, line, nil)
	}

	start := time.Now()
	out, err := e.dispatcher.Dispatch(line)
	result.ExecutionTime = time.Since(start)

	if err != nil {
		result.Error = err
		if e.options.EnableAuditLog {
			e.audit("command failed", execCtx, line, err)
		}
		e.logger.Debug("command failed",
			"requestID", execCtx.RequestID,
			"code", ccerror.GetCode(err),
			"error", err)
		return result, nil
	}

	result.Success = true
	result.Output = out
	if e.options.EnableAuditLog {
		e.audit("command completed", execCtx, line, nil)
	}
	return result, nil
}

// ExecuteBatch runs lines in order. With StopOnError the batch ends at the
// first failed line and the returned error wraps that failure.
func (e *Engine) ExecuteBatch(ctx context.Context, lines []string) ([]*ExecutionResult, error) {
	results := make([]*ExecutionResult, 0, len(lines))
	for i, line := range lines {
		result, err := e.executeLine(ctx, line, &ExecutionContext{Line: i + 1, Source: "batch"})
		if result != nil {
			results = append(results, result)
		}
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// ExecuteScript reads one command per line from r. Blank lines and lines
// starting with '#' after leading spaces are skipped.
func (e *Engine) ExecuteScript(ctx context.Context, r io.Reader, source string) ([]*ExecutionResult, error) {
	if e.options.ScriptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.options.ScriptTimeout)
		defer cancel()
	}

	var results []*ExecutionResult
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if isSkippable(line) {
			continue
		}

		result, err := e.executeLine(ctx, line, &ExecutionContext{Line: lineNo, Source: source})
		if result != nil {
			results = append(results, result)
		}
		if err != nil {
			return results, err
		}
	}

	if err := scanner.Err(); err != nil {
		return results, ccerror.Wrap(err, "reading script").
			WithCode(ccerror.CodeInternal).
			WithDetail("source", source).
			WithDetail("line", lineNo)
	}

	e.logger.Debug("script finished", "source", source, "commands", len(results))
	return results, nil
}

// executeLine runs one line. A non-nil error tells the caller to stop: the
// context is done, or the line failed and StopOnError is set.
func (e *Engine) executeLine(ctx context.Context, line string, execCtx *ExecutionContext) (*ExecutionResult, error) {
	result, err := e.Execute(ctx, line, execCtx)
	if err != nil {
		return nil, ccerror.Wrap(err, "script interrupted").
			WithDetail("source", execCtx.Source).
			WithDetail("line", execCtx.Line)
	}

	if !result.Success && e.options.StopOnError {
		return result, ccerror.Wrap(result.Error, "command failed").
			WithCode(ccerror.CodeExecution).
			WithDetail("source", execCtx.Source).
			WithDetail("line", execCtx.Line)
	}
	return result, nil
}

func (e *Engine) audit(event string, execCtx *ExecutionContext, line string, err error) {
	keyvals := []interface{}{
		"requestID", execCtx.RequestID,
		"command", line,
		"startedAt", execCtx.Timestamp.Format(time.RFC3339Nano),
	}
	if execCtx.Source != "" {
		keyvals = append(keyvals, "source", execCtx.Source, "line", execCtx.Line)
	}
	for _, key := range slices.Sorted(maps.Keys(execCtx.Metadata)) {
		keyvals = append(keyvals, key, execCtx.Metadata[key])
	}
	if err != nil {
		keyvals = append(keyvals, "code", ccerror.GetCode(err), "error", err)
	}
	e.logger.Info(event, keyvals...)
}

func prepareContext(execCtx *ExecutionContext) *ExecutionContext {
	var prepared ExecutionContext
	if execCtx != nil {
		prepared = *execCtx
	}
	if prepared.RequestID == "" {
		prepared.RequestID = uuid.NewString()
	}
	if prepared.Timestamp.IsZero() {
		prepared.Timestamp = time.Now()
	}
	return &prepared
}

func isSkippable(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
