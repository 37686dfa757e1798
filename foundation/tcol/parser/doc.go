// File: doc.go
// Title: Command Line Tokenizer Package Documentation
// Description: Splits one line of input into word tokens using a subset of
//              shell quoting rules.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-18 v0.2.0: Replaced the TCOL grammar with shell-style word splitting

/*
Package parser splits a command line into word tokens.

The rules are a small subset of POSIX shell word splitting:

  - Only the ASCII space separates words; runs of spaces never produce empty words.
  - A single quote starts a span that runs to the next single quote. Everything
    inside, including spaces and double quotes, is literal.
  - A double quote works the same way with the roles swapped.
  - Quote characters never end a word, so adjacent spans merge:
    a'b c'"d" is the single word "ab cd".
  - There is no escape character.

Input ending inside a quoted span is reported through the Quote marker; the
tokens collected so far, including the partial word, are still returned.

	tokens, quote := parser.Tokenize(`a b'c d'e f'"g"'`)
	// tokens == []string{"a", "bc de", `f"g"`}, quote == parser.QuoteNone

QuoteToken and Join perform the inverse: they render tokens as text that
tokenizes back to the same words.
*/
package parser
