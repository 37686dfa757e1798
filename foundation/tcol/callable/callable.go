// File: callable.go
// Title: Type-Erased Callable
// Description: The uniform Func handle together with argument conversion
//              and result formatting helpers shared by all constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package callable

import (
	"reflect"

	ccerror "github.com/msto63/cmdcall/foundation/core/error"
	"github.com/msto63/cmdcall/foundation/tcol/conv"
)

// Func is a wrapped function with a fixed arity. The zero value is invalid.
type Func struct {
	arity     int
	signature string
	invoke    func(toks []string) (string, error)
}

// Arity returns the number of tokens the function accepts
func (f Func) Arity() int {
	return f.arity
}

// Signature returns the Go signature of the wrapped function
func (f Func) Signature() string {
	return f.signature
}

// Valid reports whether f wraps a function
func (f Func) Valid() bool {
	return f.invoke != nil
}

// String implements fmt.Stringer
func (f Func) String() string {
	if !f.Valid() {
		return "<invalid>"
	}
	return f.signature
}

// Call invokes the function with toks. Any failure yields ("", false).
func (f Func) Call(toks []string) (string, bool) {
	out, err := f.Invoke(toks)
	if err != nil {
		return "", false
	}
	return out, true
}

// Invoke invokes the function with toks and reports why a call did not
// happen.
func (f Func) Invoke(toks []string) (string, error) {
	if f.invoke == nil {
		return "", ccerror.New("callable is not initialized").
			WithCode(ccerror.CodeInvalidOperation)
	}
	if len(toks) != f.arity {
		return "", ccerror.Newf("expected %d arguments, got %d", f.arity, len(toks)).
			WithCode(ccerror.CodeArity).
			WithDetail("want", f.arity).
			WithDetail("got", len(toks))
	}
	return f.invoke(toks)
}

// param is a resolved argument codec
type param[T any] struct {
	parse    conv.Parser[T]
	typeName string
}

func mustParam[T any]() param[T] {
	parse, err := conv.ParserFor[T]()
	if err != nil {
		panic(err)
	}
	return param[T]{parse: parse, typeName: conv.TypeOf[T]().String()}
}

func (p param[T]) at(toks []string, index int) (T, error) {
	v, ok := p.parse(toks[index])
	if !ok {
		return v, conversionError(index, toks[index], p.typeName)
	}
	return v, nil
}

// result is a resolved result codec
type result[R any] struct {
	format   conv.Formatter[R]
	typeName string
}

func mustResult[R any]() result[R] {
	format, err := conv.FormatterFor[R]()
	if err != nil {
		panic(err)
	}
	return result[R]{format: format, typeName: conv.TypeOf[R]().String()}
}

func (r result[R]) text(v R) (string, error) {
	out, ok := r.format(v)
	if !ok {
		return "", formatError(r.typeName)
	}
	return out, nil
}

func mustFunc(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		panic(ccerror.New("callable requires a non-nil function").
			WithCode(ccerror.CodeInvalidInput))
	}
	return v.Type().String()
}

func conversionError(index int, tok, typeName string) error {
	return ccerror.Newf("argument %d: cannot convert %q to %s", index+1, tok, typeName).
		WithCode(ccerror.CodeConversion).
		WithDetail("index", index).
		WithDetail("token", tok).
		WithDetail("type", typeName)
}

func formatError(typeName string) error {
	return ccerror.Newf("cannot format result of type %s", typeName).
		WithCode(ccerror.CodeConversion).
		WithDetail("type", typeName)
}
