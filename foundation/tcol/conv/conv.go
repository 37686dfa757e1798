// File: conv.go
// Title: Token Conversion
// Description: Resolves per-type parse and format functions used by the
//              callable wrappers, for both generic and reflect based call
//              paths.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package conv

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	ccerror "github.com/msto63/cmdcall/foundation/core/error"
)

// Parser converts one token into a value of T
type Parser[T any] func(tok string) (T, bool)

// Formatter converts a value of T into its text form
type Formatter[T any] func(v T) (string, bool)

// ValueParser is the reflect form of Parser used for signatures only known
// at run time
type ValueParser func(tok string) (reflect.Value, bool)

// ValueFormatter is the reflect form of Formatter
type ValueFormatter func(v reflect.Value) (string, bool)

var (
	stringType          = reflect.TypeOf("")
	bytesType           = reflect.TypeOf([]byte(nil))
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	stringerType        = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// TypeOf returns the reflect.Type of T, including interface types
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ParserFor resolves the parser for T
func ParserFor[T any]() (Parser[T], error) {
	typ := TypeOf[T]()

	if typ == stringType {
		identity := Parser[string](func(tok string) (string, bool) { return tok, true })
		return any(identity).(Parser[T]), nil
	}

	parse, err := ParserOf(typ)
	if err != nil {
		return nil, err
	}

	return func(tok string) (T, bool) {
		v, ok := parse(tok)
		if !ok {
			var zero T
			return zero, false
		}
		return v.Interface().(T), true
	}, nil
}

// FormatterFor resolves the formatter for T
func FormatterFor[T any]() (Formatter[T], error) {
	typ := TypeOf[T]()

	if typ == stringType {
		identity := Formatter[string](func(v string) (string, bool) { return v, true })
		return any(identity).(Formatter[T]), nil
	}

	format, err := FormatterOf(typ)
	if err != nil {
		return nil, err
	}

	return func(v T) (string, bool) {
		return format(reflect.ValueOf(&v).Elem())
	}, nil
}

// Parse converts tok into a T in one step. Unsupported types report false.
func Parse[T any](tok string) (T, bool) {
	parse, err := ParserFor[T]()
	if err != nil {
		var zero T
		return zero, false
	}
	return parse(tok)
}

// Format converts v into text in one step. Unsupported types report false.
func Format[T any](v T) (string, bool) {
	format, err := FormatterFor[T]()
	if err != nil {
		return "", false
	}
	return format(v)
}

// ParserOf resolves the parser for typ
func ParserOf(typ reflect.Type) (ValueParser, error) {
	if typ == nil {
		return nil, unsupported(typ, "argument")
	}

	switch {
	case typ == durationType:
		return func(tok string) (reflect.Value, bool) {
			d, err := time.ParseDuration(tok)
			if err != nil {
				return reflect.Value{}, false
			}
			return reflect.ValueOf(d), true
		}, nil

	case typ.Kind() == reflect.Pointer && typ.Implements(textUnmarshalerType):
		return func(tok string) (reflect.Value, bool) {
			v := reflect.New(typ.Elem())
			if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(tok)); err != nil {
				return reflect.Value{}, false
			}
			return v, true
		}, nil

	case reflect.PointerTo(typ).Implements(textUnmarshalerType):
		return func(tok string) (reflect.Value, bool) {
			v := reflect.New(typ)
			if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(tok)); err != nil {
				return reflect.Value{}, false
			}
			return v.Elem(), true
		}, nil
	}

	switch typ.Kind() {
	case reflect.String:
		return func(tok string) (reflect.Value, bool) {
			return reflect.ValueOf(tok).Convert(typ), true
		}, nil

	case reflect.Bool:
		return func(tok string) (reflect.Value, bool) {
			b, err := strconv.ParseBool(tok)
			if err != nil {
				return reflect.Value{}, false
			}
			v := reflect.New(typ).Elem()
			v.SetBool(b)
			return v, true
		}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := typ.Bits()
		return func(tok string) (reflect.Value, bool) {
			if strings.HasPrefix(tok, "+") {
				return reflect.Value{}, false
			}
			n, err := strconv.ParseInt(tok, 10, bits)
			if err != nil {
				return reflect.Value{}, false
			}
			v := reflect.New(typ).Elem()
			v.SetInt(n)
			return v, true
		}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		bits := typ.Bits()
		return func(tok string) (reflect.Value, bool) {
			n, err := strconv.ParseUint(tok, 10, bits)
			if err != nil {
				return reflect.Value{}, false
			}
			v := reflect.New(typ).Elem()
			v.SetUint(n)
			return v, true
		}, nil

	case reflect.Float32, reflect.Float64:
		bits := typ.Bits()
		return func(tok string) (reflect.Value, bool) {
			if !isDecimalFloat(tok) {
				return reflect.Value{}, false
			}
			f, err := strconv.ParseFloat(tok, bits)
			if err != nil {
				return reflect.Value{}, false
			}
			v := reflect.New(typ).Elem()
			v.SetFloat(f)
			return v, true
		}, nil

	case reflect.Slice:
		if bytesType.ConvertibleTo(typ) {
			return func(tok string) (reflect.Value, bool) {
				return reflect.ValueOf([]byte(tok)).Convert(typ), true
			}, nil
		}
	}

	return nil, unsupported(typ, "argument")
}

// FormatterOf resolves the formatter for typ
func FormatterOf(typ reflect.Type) (ValueFormatter, error) {
	if typ == nil {
		return nil, unsupported(typ, "result")
	}

	switch {
	case typ.Implements(textMarshalerType):
		return func(v reflect.Value) (string, bool) {
			if isNilPointer(v) {
				return "", false
			}
			text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return "", false
			}
			return string(text), true
		}, nil

	case typ.Implements(stringerType):
		return func(v reflect.Value) (string, bool) {
			if isNilPointer(v) {
				return "", false
			}
			return v.Interface().(fmt.Stringer).String(), true
		}, nil
	}

	switch typ.Kind() {
	case reflect.String:
		return func(v reflect.Value) (string, bool) {
			return v.String(), true
		}, nil

	case reflect.Bool:
		return func(v reflect.Value) (string, bool) {
			return strconv.FormatBool(v.Bool()), true
		}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(v reflect.Value) (string, bool) {
			return strconv.FormatInt(v.Int(), 10), true
		}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(v reflect.Value) (string, bool) {
			return strconv.FormatUint(v.Uint(), 10), true
		}, nil

	case reflect.Float32, reflect.Float64:
		bits := typ.Bits()
		return func(v reflect.Value) (string, bool) {
			return strconv.FormatFloat(v.Float(), 'g', -1, bits), true
		}, nil

	case reflect.Slice:
		if typ.ConvertibleTo(bytesType) {
			return func(v reflect.Value) (string, bool) {
				return string(v.Bytes()), true
			}, nil
		}
	}

	return nil, unsupported(typ, "result")
}

// isDecimalFloat rejects the forms strconv.ParseFloat accepts beyond plain
// decimal notation: a leading plus sign, hex mantissas and digit
// separators.
func isDecimalFloat(tok string) bool {
	if tok == "" || tok[0] == '+' || strings.ContainsRune(tok, '_') {
		return false
	}
	unsigned := strings.TrimPrefix(tok, "-")
	if len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return false
	}
	return true
}

func isNilPointer(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func unsupported(typ reflect.Type, role string) error {
	name := "<nil>"
	if typ != nil {
		name = typ.String()
	}
	return ccerror.Newf("type %s cannot be used as %s: no text conversion", name, role).
		WithCode(ccerror.CodeUnsupportedType).
		WithDetail("type", name).
		WithDetail("role", role)
}
