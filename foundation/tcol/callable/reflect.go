// File: reflect.go
// Title: Reflection Based Callable Constructor
// Description: Wraps function values of any arity whose signature is only
//              known at run time, including functions returning an error.
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

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Reflect wraps fn, which must be a non-variadic function whose results are
// one of (), (R), (error) or (R, error). A non-nil error returned by fn
// fails the call with CodeExecution.
func Reflect(fn any) (Func, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return Func{}, ccerror.Newf("cannot wrap %T: not a function", fn).
			WithCode(ccerror.CodeUnsupportedType)
	}
	if v.IsNil() {
		return Func{}, ccerror.New("cannot wrap a nil function").
			WithCode(ccerror.CodeInvalidInput)
	}

	typ := v.Type()
	if typ.IsVariadic() {
		return Func{}, ccerror.Newf("cannot wrap variadic function %s", typ).
			WithCode(ccerror.CodeUnsupportedType)
	}

	parsers := make([]conv.ValueParser, typ.NumIn())
	typeNames := make([]string, typ.NumIn())
	for i := range parsers {
		parse, err := conv.ParserOf(typ.In(i))
		if err != nil {
			return Func{}, ccerror.Wrap(err, "argument "+typ.In(i).String()).
				WithDetail("index", i)
		}
		parsers[i] = parse
		typeNames[i] = typ.In(i).String()
	}

	var (
		format   conv.ValueFormatter
		hasValue bool
		hasError bool
	)
	switch typ.NumOut() {
	case 0:
	case 1:
		if typ.Out(0) == errorType {
			hasError = true
		} else {
			hasValue = true
		}
	case 2:
		if typ.Out(1) != errorType {
			return Func{}, ccerror.Newf("cannot wrap %s: second result must be error", typ).
				WithCode(ccerror.CodeUnsupportedType)
		}
		hasValue, hasError = true, true
	default:
		return Func{}, ccerror.Newf("cannot wrap %s: too many results", typ).
			WithCode(ccerror.CodeUnsupportedType)
	}
	if hasValue {
		f, err := conv.FormatterOf(typ.Out(0))
		if err != nil {
			return Func{}, ccerror.Wrap(err, "result "+typ.Out(0).String())
		}
		format = f
	}
	resultType := ""
	if hasValue {
		resultType = typ.Out(0).String()
	}

	invoke := func(toks []string) (string, error) {
		args := make([]reflect.Value, len(parsers))
		for i, parse := range parsers {
			arg, ok := parse(toks[i])
			if !ok {
				return "", conversionError(i, toks[i], typeNames[i])
			}
			args[i] = arg
		}

		out := v.Call(args)

		if hasError {
			if errv := out[len(out)-1]; !errv.IsNil() {
				return "", ccerror.Wrap(errv.Interface().(error), "command failed").
					WithCode(ccerror.CodeExecution)
			}
		}
		if !hasValue {
			return "", nil
		}
		text, ok := format(out[0])
		if !ok {
			return "", formatError(resultType)
		}
		return text, nil
	}

	return Func{arity: typ.NumIn(), signature: typ.String(), invoke: invoke}, nil
}

// MustReflect is like Reflect but panics on error
func MustReflect(fn any) Func {
	f, err := Reflect(fn)
	if err != nil {
		panic(err)
	}
	return f
}
