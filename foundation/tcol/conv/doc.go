// File: doc.go
// Title: Token Conversion Package Documentation
// Description: Text <-> value codecs for command arguments and results.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

/*
Package conv converts command tokens into typed argument values and typed
results back into text.

Codecs are resolved once per type, when a function is registered, and then
reused for every call:

	parse, err := conv.ParserFor[int]()
	n, ok := parse("42") // 42, true
	_, ok = parse("4x2") // 0, false

Built-in codecs cover string and []byte (identity), bool, every integer kind
(base 10, no sign prefix "+", range checked), float32/float64 and
time.Duration. Named types reuse the codec of their underlying kind.

Other types plug in through the standard library text interfaces: a type
whose pointer implements encoding.TextUnmarshaler can be an argument, and a
type implementing encoding.TextMarshaler or fmt.Stringer can be a result.

Parsing never panics: malformed input, trailing characters, empty numeric
tokens and out-of-range values all report false.
*/
package conv
