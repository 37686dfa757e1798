// File: engine.go
// Title: Command Dispatcher Engine
// Description: High-level engine bundling the registry, built-in commands,
//              aliases and the executor behind one handle.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine implementation
// - 2026-10-18 v0.2.0: Function registry engine with command length limit

package tcol

import (
	"context"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	ccerror "github.com/msto63/cmdcall/foundation/core/error"
	"github.com/msto63/cmdcall/foundation/tcol/builtin"
	"github.com/msto63/cmdcall/foundation/tcol/callable"
	"github.com/msto63/cmdcall/foundation/tcol/executor"
	"github.com/msto63/cmdcall/foundation/tcol/registry"
)

// DefaultMaxCommandLength bounds a command line in bytes when Options
// leaves MaxCommandLength at zero
const DefaultMaxCommandLength = 4096

// ExecutionContext provides context for command execution
type ExecutionContext = executor.ExecutionContext

// ExecutionResult represents the result of command execution
type ExecutionResult = executor.ExecutionResult

// Options configures the engine
type Options struct {
	Logger           *log.Logger
	MaxCommandLength int // bytes, negative disables the limit
	Builtins         bool
	EnableAliases    bool
	Aliases          map[string]string
	EnableAuditLog   bool
	StopOnError      bool
	ScriptTimeout    time.Duration
}

// Engine dispatches command lines to registered functions
type Engine struct {
	registry *registry.Registry
	executor *executor.Engine
	logger   *log.Logger
	options  Options
}

// New creates an engine. Aliases are registered in name order; an alias
// that does not parse fails construction.
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.MaxCommandLength == 0 {
		opts.MaxCommandLength = DefaultMaxCommandLength
	}

	logger := opts.Logger.With("component", "engine")

	reg := registry.New(registry.Options{
		Logger:        opts.Logger,
		EnableAliases: opts.EnableAliases,
	})
	if opts.Builtins {
		builtin.Register(reg)
	}

	if len(opts.Aliases) > 0 && !opts.EnableAliases {
		logger.Warn("aliases configured but disabled", "count", len(opts.Aliases))
	} else {
		for _, alias := range slices.Sorted(maps.Keys(opts.Aliases)) {
			if err := reg.RegisterAlias(alias, opts.Aliases[alias]); err != nil {
				return nil, err
			}
		}
	}

	exec, err := executor.New(&limitedDispatcher{Dispatcher: reg, limit: opts.MaxCommandLength}, executor.Options{
		Logger:         opts.Logger,
		EnableAuditLog: opts.EnableAuditLog,
		StopOnError:    opts.StopOnError,
		ScriptTimeout:  opts.ScriptTimeout,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("engine initialized",
		"commands", reg.Len(),
		"aliases", len(opts.Aliases),
		"maxCommandLength", opts.MaxCommandLength)

	return &Engine{
		registry: reg,
		executor: exec,
		logger:   logger,
		options:  opts,
	}, nil
}

// Register stores fn under name, replacing any earlier entry
func (e *Engine) Register(name string, fn callable.Func) {
	e.registry.Register(name, fn)
}

// RegisterFunc wraps fn with callable.Reflect and registers it
func (e *Engine) RegisterFunc(name string, fn any) error {
	return e.registry.RegisterFunc(name, fn)
}

// Call runs a command line. Every failure yields ("", false).
func (e *Engine) Call(line string) (string, bool) {
	if err := e.checkLength(line); err != nil {
		return "", false
	}
	return e.registry.Call(line)
}

// Execute runs one command line with request tracking
func (e *Engine) Execute(ctx context.Context, line string, execCtx *ExecutionContext) (*ExecutionResult, error) {
	return e.executor.Execute(ctx, line, execCtx)
}

// ExecuteScript runs one command per line from r
func (e *Engine) ExecuteScript(ctx context.Context, r io.Reader, source string) ([]*ExecutionResult, error) {
	return e.executor.ExecuteScript(ctx, r, source)
}

// Registry returns the underlying registry
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Aliases returns the registered aliases with their command lines
func (e *Engine) Aliases() map[string]string {
	return e.registry.Aliases()
}

func (e *Engine) checkLength(line string) error {
	return checkLength(line, e.options.MaxCommandLength)
}

// limitedDispatcher rejects command lines above a byte limit before they
// reach the tokenizer
type limitedDispatcher struct {
	registry.Dispatcher
	limit int
}

func (d *limitedDispatcher) Dispatch(line string) (string, error) {
	if err := checkLength(line, d.limit); err != nil {
		return "", err
	}
	return d.Dispatcher.Dispatch(line)
}

func checkLength(line string, limit int) error {
	if limit < 0 || len(line) <= limit {
		return nil
	}
	return ccerror.Newf("command line too long: %d bytes, limit %d", len(line), limit).
		WithCode(ccerror.CodeInvalidInput).
		WithDetail("length", len(line)).
		WithDetail("limit", limit)
}
