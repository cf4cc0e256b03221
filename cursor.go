// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"fmt"

	"go4.org/mem"
)

// A Cursor is a position within an immutable input buffer. A Cursor does not
// own the buffer; it is valid only as long as the buffer it was derived from
// is alive and unmodified.
//
// Reading at or past the end of the buffer yields a zero byte, so the scanner
// never indexes outside the input.
type Cursor struct {
	src mem.RO
	pos int
}

// Offset reports the byte offset of c in its input.
func (c Cursor) Offset() int { return c.pos }

// LineCol reports the line and column of c in its input.
func (c Cursor) LineCol() LineCol { return lineColAt(c.src, c.pos) }

func (c Cursor) atEOF() bool { return c.pos >= c.src.Len() }

func (c Cursor) peek() byte {
	if c.pos < c.src.Len() {
		return c.src.At(c.pos)
	}
	return 0
}

func (c Cursor) rest() mem.RO { return c.src.SliceFrom(min(c.pos, c.src.Len())) }

// describe returns a human-readable label for the byte under c.
func (c Cursor) describe() string {
	if c.atEOF() {
		return "end of input"
	}
	return fmt.Sprintf("%q", c.peek())
}

// syntaxError constructs a *SyntaxError at the position of c. The caller
// panics with the result; exported entry points recover it.
func (c Cursor) syntaxError(kind ErrorKind, want byte, msg string, args ...any) *SyntaxError {
	return &SyntaxError{
		Kind:     kind,
		Offset:   c.pos,
		Location: c.LineCol(),
		Want:     want,
		Got:      c.peek(),
		Message:  fmt.Sprintf(msg, args...),
	}
}

// advance moves c forward by one byte. If want != 0, the current byte must be
// want.
func (c Cursor) advance(want byte) Cursor {
	if c.atEOF() {
		if want != 0 {
			panic(c.syntaxError(UnexpectedCharacter, want, "expected %q, got end of input", want))
		}
		panic(c.syntaxError(UnexpectedCharacter, 0, "unexpected end of input"))
	}
	if want != 0 && c.peek() != want {
		panic(c.syntaxError(UnexpectedCharacter, want, "expected %q, got %s", want, c.describe()))
	}
	c.pos++
	return c
}

// expectWord advances c past each byte of word in turn.
func (c Cursor) expectWord(word string) Cursor {
	for i := 0; i < len(word); i++ {
		c = c.advance(word[i])
	}
	return c
}

// skipComment advances c past a line or block comment.
// Precondition: c.peek() == '/'.
func (c Cursor) skipComment() Cursor {
	start := c
	c = c.advance('/')
	switch c.peek() {
	case '/': // line comment to LF
		if i := mem.IndexByte(c.rest(), '\n'); i < 0 {
			c.pos = c.src.Len()
		} else {
			c.pos += i + 1
		}
		return c

	case '*': // block comment
		c.pos++
		for {
			i := mem.IndexByte(c.rest(), '*')
			if i < 0 {
				panic(start.syntaxError(UnterminatedLiteral, 0, "unterminated block comment"))
			}
			c.pos += i + 1
			if c.peek() == '/' {
				c.pos++
				return c
			}
			// We saw "*" but not "/", so keep scanning for the end of the block.
		}

	default:
		panic(c.syntaxError(MalformedInput, 0, "invalid %s in comment", c.describe()))
	}
}

// skipSeparators advances c past any mixture of whitespace, commas, and
// comments.
func (c Cursor) skipSeparators() Cursor {
	for !c.atEOF() {
		switch ch := c.peek(); {
		case ch == '/':
			c = c.skipComment()
		case isSpace(ch) || ch == ',':
			c.pos++
		default:
			return c
		}
	}
	return c
}

// skipString advances c past a quoted string literal. Escapes are not
// checked, only stepped over.
func (c Cursor) skipString() Cursor {
	start := c
	c = c.advance('"')
	for !c.atEOF() {
		switch c.peek() {
		case '"':
			c.pos++
			return c
		case '\\':
			c.pos += 2
		default:
			c.pos++
		}
	}
	panic(start.syntaxError(UnterminatedLiteral, '"', "unterminated string"))
}

// skipBlock advances c past a bracketed region delimited by open and close,
// which may be nested. Strings and comments inside the region are skipped
// whole, so that delimiters inside them do not affect the nesting.
func (c Cursor) skipBlock(open, close byte) Cursor {
	start := c
	c = c.advance(open)
	for depth := 1; depth > 0; {
		if c.atEOF() {
			panic(start.syntaxError(UnterminatedLiteral, close, "unterminated %s", blockLabel(open)))
		}
		switch c.peek() {
		case '"':
			c = c.skipString()
		case '/':
			c = c.skipComment()
		case open:
			depth++
			c.pos++
		case close:
			depth--
			c.pos++
		default:
			c.pos++
		}
	}
	return c
}

// skipValue advances c past the value beginning at c. Strings, arrays, and
// objects are skipped by their delimiters; anything else is a bare token that
// extends to the next structural delimiter or whitespace.
func (c Cursor) skipValue() Cursor {
	switch c.peek() {
	case '"':
		return c.skipString()
	case '[':
		return c.skipBlock('[', ']')
	case '{':
		return c.skipBlock('{', '}')
	}
	for !c.atEOF() && !isValueEnd(c.peek()) {
		c.pos++
	}
	return c
}

// expectValueEnd checks that c is at the end of a bare value, so that a
// literal is never accepted as a prefix of a longer token.
func (c Cursor) expectValueEnd(what string) Cursor {
	if !c.atEOF() && !isValueEnd(c.peek()) {
		panic(c.syntaxError(MalformedInput, 0, "invalid %s: unexpected %s", what, c.describe()))
	}
	return c
}

func blockLabel(open byte) string {
	if open == '{' {
		return "object"
	}
	return "array"
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isValueEnd(ch byte) bool {
	return ch == ',' || ch == '}' || ch == ']' || ch == '/' || isSpace(ch)
}

func isDigit(ch byte) bool  { return '0' <= ch && ch <= '9' }
func isLetter(ch byte) bool { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

func isKeyStart(ch byte) bool { return isLetter(ch) || ch == '_' }
func isKeyRune(ch byte) bool {
	return isKeyStart(ch) || isDigit(ch) || ch == '-'
}
