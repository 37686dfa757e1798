// File: lexer.go
// Title: Command Line Tokenizer
// Description: Implements shell-style word splitting for single command
//              lines: space separated words, single and double quoted spans,
//              no escapes. Also renders tokens back into quoted text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-18 v0.2.0: Word splitting with quote markers, QuoteToken/Join

package parser

import (
	"strings"

	ccerror "github.com/msto63/cmdcall/foundation/core/error"
)

// Quote identifies which kind of quoted span was left open at end of input
type Quote int

const (
	QuoteNone Quote = iota
	QuoteSingle
	QuoteDouble
)

// String returns a string representation of the quote marker
func (q Quote) String() string {
	switch q {
	case QuoteNone:
		return "none"
	case QuoteSingle:
		return "single-quote-open"
	case QuoteDouble:
		return "double-quote-open"
	default:
		return "unknown"
	}
}

// Char returns the quote character, or 0 for QuoteNone
func (q Quote) Char() byte {
	switch q {
	case QuoteSingle:
		return '\''
	case QuoteDouble:
		return '"'
	default:
		return 0
	}
}

// Lexer splits one line of input into word tokens
type Lexer struct {
	input      string          // Input line
	position   int             // Current byte position in input
	quote      Quote           // Currently open quoted span
	quoteStart int             // Byte position of the open quote character
	current    strings.Builder // Word under construction
	tokens     []string        // Completed words
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize splits the whole input. When the input ends inside a quoted
// span, the partial word is appended to the tokens and the open quote kind
// is returned; such a result must not be dispatched.
func (l *Lexer) Tokenize() ([]string, Quote) {
	l.reset()

	for ; l.position < len(l.input); l.position++ {
		ch := l.input[l.position]

		switch l.quote {
		case QuoteSingle:
			if ch == '\'' {
				l.quote = QuoteNone
			} else {
				l.current.WriteByte(ch)
			}
		case QuoteDouble:
			if ch == '"' {
				l.quote = QuoteNone
			} else {
				l.current.WriteByte(ch)
			}
		default:
			switch ch {
			case ' ':
				l.flush()
			case '\'':
				l.open(QuoteSingle)
			case '"':
				l.open(QuoteDouble)
			default:
				l.current.WriteByte(ch)
			}
		}
	}

	if l.quote != QuoteNone {
		// The partial word is kept even when empty
		l.tokens = append(l.tokens, l.current.String())
		l.current.Reset()
		return l.tokens, l.quote
	}

	l.flush()
	return l.tokens, QuoteNone
}

// QuoteStart returns the byte position of the quote left open by the last
// Tokenize call, or -1 when every quote was closed
func (l *Lexer) QuoteStart() int {
	if l.quote == QuoteNone {
		return -1
	}
	return l.quoteStart
}

func (l *Lexer) reset() {
	l.position = 0
	l.quote = QuoteNone
	l.quoteStart = 0
	l.current.Reset()
	l.tokens = []string{}
}

func (l *Lexer) open(q Quote) {
	l.quote = q
	l.quoteStart = l.position
}

// flush ends the current word if it is non-empty
func (l *Lexer) flush() {
	if l.current.Len() == 0 {
		return
	}
	l.tokens = append(l.tokens, l.current.String())
	l.current.Reset()
}

// Tokenize is a convenience function that tokenizes one line
func Tokenize(line string) ([]string, Quote) {
	return NewLexer(line).Tokenize()
}

// TokenizeInput tokenizes one line and reports an unterminated quote as an
// error with CodeUnterminatedQuote
func TokenizeInput(line string) ([]string, error) {
	lexer := NewLexer(line)
	tokens, quote := lexer.Tokenize()
	if quote != QuoteNone {
		return tokens, ccerror.Newf("unterminated %c quote at position %d", quote.Char(), lexer.QuoteStart()).
			WithCode(ccerror.CodeUnterminatedQuote).
			WithDetail("quote", quote.String()).
			WithDetail("position", lexer.QuoteStart())
	}
	return tokens, nil
}

// QuoteToken renders tok so that tokenizing the result yields tok again.
// Words without spaces or quotes are returned unchanged. Otherwise single
// quote characters are wrapped in double quotes and every other run in
// single quotes, e.g. it's -> 'it'"'"'s'.
func QuoteToken(tok string) string {
	if tok == "" {
		return "''"
	}
	if !strings.ContainsAny(tok, ` '"`) {
		return tok
	}

	var b strings.Builder
	for i := 0; i < len(tok); {
		j := i
		if tok[i] == '\'' {
			for j < len(tok) && tok[j] == '\'' {
				j++
			}
			b.WriteByte('"')
			b.WriteString(tok[i:j])
			b.WriteByte('"')
		} else {
			for j < len(tok) && tok[j] != '\'' {
				j++
			}
			b.WriteByte('\'')
			b.WriteString(tok[i:j])
			b.WriteByte('\'')
		}
		i = j
	}
	return b.String()
}

// Join renders tokens as a single line using QuoteToken for each word
func Join(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = QuoteToken(tok)
	}
	return strings.Join(quoted, " ")
}
