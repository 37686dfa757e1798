// File: registry.go
// Title: Command Registry
// Description: Function table keyed by command name with line and token
//              dispatch plus one-level alias expansion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Object registry with abbreviations and aliases
// - 2026-10-18 v0.2.0: Rewritten around callable.Func entries

package registry

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	ccerror "github.com/msto63/cmdcall/foundation/core/error"
	"github.com/msto63/cmdcall/foundation/tcol/callable"
	"github.com/msto63/cmdcall/foundation/tcol/parser"
)

// Registry maps command names to functions
type Registry struct {
	funcs   map[string]callable.Func
	aliases map[string][]string
	logger  *log.Logger
	options Options
}

// New creates an empty registry
func New(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Registry{
		funcs:   make(map[string]callable.Func),
		aliases: make(map[string][]string),
		logger:  logger.With("component", "registry"),
		options: opts,
	}
}

// Register stores fn under name, replacing any earlier entry. A name made
// only of spaces can never be a token; it and an invalid Func panic.
func (r *Registry) Register(name string, fn callable.Func) {
	if strings.Trim(name, " ") == "" {
		panic(ccerror.New("command name cannot be empty").WithCode(ccerror.CodeInvalidInput))
	}
	if !fn.Valid() {
		panic(ccerror.Newf("command %s: invalid function", name).WithCode(ccerror.CodeInvalidInput))
	}

	_, replaced := r.funcs[name]
	r.funcs[name] = fn

	r.logger.Debug("command registered",
		"name", name,
		"arity", fn.Arity(),
		"signature", fn.Signature(),
		"replaced", replaced)
}

// RegisterFunc wraps fn with callable.Reflect and registers it
func (r *Registry) RegisterFunc(name string, fn any) error {
	f, err := callable.Reflect(fn)
	if err != nil {
		return ccerror.Wrap(err, "register "+name).WithDetail("command", name)
	}
	r.Register(name, f)
	return nil
}

// RegisterAlias binds alias to a command line prefix. Arguments given to
// the alias are appended to the tokens of line.
func (r *Registry) RegisterAlias(alias, line string) error {
	if !r.options.EnableAliases {
		return ccerror.New("aliases are disabled in this registry").
			WithCode(ccerror.CodeInvalidOperation)
	}
	if alias == "" || strings.ContainsAny(alias, " '\"") {
		return ccerror.Newf("invalid alias name %q", alias).
			WithCode(ccerror.CodeInvalidInput).
			WithDetail("alias", alias)
	}

	toks, err := parser.TokenizeInput(line)
	if err != nil {
		return ccerror.Wrap(err, "alias "+alias).WithDetail("alias", alias)
	}
	if len(toks) == 0 {
		return ccerror.Newf("alias %s: command cannot be empty", alias).
			WithCode(ccerror.CodeEmptyInput).
			WithDetail("alias", alias)
	}

	r.aliases[alias] = toks

	r.logger.Debug("alias registered", "alias", alias, "command", line)
	return nil
}

// Aliases returns the registered aliases with their command lines
func (r *Registry) Aliases() map[string]string {
	aliases := make(map[string]string, len(r.aliases))
	for alias, toks := range r.aliases {
		aliases[alias] = parser.Join(toks)
	}
	return aliases
}

// Lookup returns the function registered under name
func (r *Registry) Lookup(name string) (callable.Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered command names in sorted order
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.funcs))
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	return len(r.funcs)
}

// Call runs a command line. Every failure yields ("", false).
func (r *Registry) Call(line string) (string, bool) {
	out, err := r.Dispatch(line)
	if err != nil {
		return "", false
	}
	return out, true
}

// CallTokens runs the named command with pre-split arguments. Every
// failure yields ("", false).
func (r *Registry) CallTokens(name string, toks []string) (string, bool) {
	out, err := r.DispatchTokens(name, toks)
	if err != nil {
		return "", false
	}
	return out, true
}

// Dispatch tokenizes line and runs the command named by its first token
func (r *Registry) Dispatch(line string) (string, error) {
	toks, err := parser.TokenizeInput(line)
	if err != nil {
		r.logger.Debug("dispatch rejected", "reason", ccerror.GetCode(err), "line", line)
		return "", err
	}
	if len(toks) == 0 {
		return "", ccerror.New("empty command line").WithCode(ccerror.CodeEmptyInput)
	}
	return r.DispatchTokens(toks[0], toks[1:])
}

// DispatchTokens runs the named command with pre-split arguments
func (r *Registry) DispatchTokens(name string, toks []string) (string, error) {
	if name == "" {
		return "", ccerror.New("empty command name").WithCode(ccerror.CodeEmptyInput)
	}

	fn, ok := r.funcs[name]
	if !ok {
		target, args, expanded := r.expandAlias(name, toks)
		if !expanded {
			return "", notFound(name)
		}
		if fn, ok = r.funcs[target]; !ok {
			return "", notFound(target).WithDetail("alias", name)
		}
		name, toks = target, args
	}

	out, err := fn.Invoke(toks)
	if err != nil {
		r.logger.Debug("dispatch failed", "command", name, "reason", ccerror.GetCode(err))
		return "", ccerror.Wrap(err, name).WithDetail("command", name)
	}
	return out, nil
}

func (r *Registry) expandAlias(name string, toks []string) (string, []string, bool) {
	if !r.options.EnableAliases {
		return "", nil, false
	}
	aliasToks, ok := r.aliases[name]
	if !ok {
		return "", nil, false
	}

	args := make([]string, 0, len(aliasToks)-1+len(toks))
	args = append(args, aliasToks[1:]...)
	args = append(args, toks...)
	return aliasToks[0], args, true
}

func notFound(name string) *ccerror.Error {
	return ccerror.Newf("unknown command %s", name).
		WithCode(ccerror.CodeNotFound).
		WithDetail("command", name)
}
