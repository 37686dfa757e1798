// File: doc.go
// Title: Built-in Command Set Package Documentation
// Description: Standard commands covering every built-in conversion kind.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

/*
Package builtin registers a small standard command set on a registry:

	echo, concat, upper, len, repeat   text commands
	add, sub, mul, neg, id, max        integer arithmetic
	div, clamp                         floating point arithmetic
	not                                boolean negation
	dur                                duration normalization
	noop                               no value result

The CLI uses these commands, and they double as end to end fixtures for
the conversion layer.
*/
package builtin
