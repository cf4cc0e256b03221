// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"errors"

	"github.com/creachadair/rjson/internal/escape"
	"github.com/valyala/fastjson/fastfloat"
)

// kind classifies the value at c by its first byte.
func (c Cursor) kind() Kind {
	switch ch := c.peek(); {
	case ch == '"':
		return String
	case ch == '-' || isDigit(ch):
		return Number
	case ch == 'n':
		return Nil
	case ch == '[':
		return Array
	case ch == '{':
		return Object
	default:
		return Bool
	}
}

// parseString decodes the string literal at c.
func (c Cursor) parseString() (string, Cursor) {
	if c.peek() != '"' {
		panic(c.syntaxError(UnexpectedCharacter, '"', "expected string, got %s", c.describe()))
	}
	end := c.skipString()
	dec, err := escape.Unquote(c.src.Slice(c.pos+1, end.pos-1))
	if err != nil {
		var eerr *escape.Error
		if errors.As(err, &eerr) {
			at := c
			at.pos += 1 + eerr.Offset
			panic(at.syntaxError(MalformedInput, 0, "invalid escape sequence %s", at.advance('\\').describe()))
		}
		panic(c.syntaxError(MalformedInput, 0, "invalid string: %v", err))
	}
	return string(dec), end
}

// parseKey decodes the member key at c. A key is either a quoted string or a
// bare identifier.
func (c Cursor) parseKey() (string, Cursor) {
	ch := c.peek()
	if ch == '"' {
		return c.parseString()
	} else if !isKeyStart(ch) {
		panic(c.syntaxError(MalformedInput, 0, "invalid key: unexpected %s", c.describe()))
	}
	start := c.pos
	for !c.atEOF() && isKeyRune(c.peek()) {
		c.pos++
	}
	return c.src.Slice(start, c.pos).StringCopy(), c
}

// parseNumber decodes the numeric literal at c. All numbers are decoded as
// float64, so integers beyond 2^53 lose precision.
func (c Cursor) parseNumber() (float64, Cursor) {
	start := c
	if c.peek() == '-' {
		c.pos++
	}
	if !isDigit(c.peek()) {
		panic(c.syntaxError(MalformedInput, 0, "invalid number: want digit, got %s", c.describe()))
	}
	c = c.skipDigits()

	// If a decimal point follows, consume a fractional part.
	if c.peek() == '.' {
		c.pos++
		if !isDigit(c.peek()) {
			panic(c.syntaxError(MalformedInput, 0, "no digits after decimal point"))
		}
		c = c.skipDigits()
	}

	// If an exponent follows, consume it.
	if ch := c.peek(); ch == 'e' || ch == 'E' {
		c.pos++
		if ch := c.peek(); ch == '+' || ch == '-' {
			c.pos++
		}
		if !isDigit(c.peek()) {
			panic(c.syntaxError(MalformedInput, 0, "missing exponent digits"))
		}
		c = c.skipDigits()
	}
	c = c.expectValueEnd("number")

	text := c.src.Slice(start.pos, c.pos).StringCopy()
	v, err := fastfloat.Parse(text)
	if err != nil {
		panic(start.syntaxError(MalformedInput, 0, "invalid number %q: %v", text, err))
	}
	return v, c
}

func (c Cursor) skipDigits() Cursor {
	for isDigit(c.peek()) {
		c.pos++
	}
	return c
}

// parseBool decodes the literal true or false at c.
func (c Cursor) parseBool() (bool, Cursor) {
	switch c.peek() {
	case 't':
		return true, c.expectWord("true").expectValueEnd("boolean")
	case 'f':
		return false, c.expectWord("false").expectValueEnd("boolean")
	}
	panic(c.syntaxError(MalformedInput, 0, "invalid boolean: unexpected %s", c.describe()))
}

// parseMember parses a single key = value member at c and records the
// position of its value in m. It returns the cursor after the value and any
// trailing separators.
func (c Cursor) parseMember(m map[string]Cursor) Cursor {
	key, c := c.parseKey()
	c = c.skipSeparators().advance('=').skipSeparators()

	end := c.skipValue()
	if end.pos == c.pos {
		panic(c.syntaxError(MalformedInput, 0, "missing value for key %q: unexpected %s", key, c.describe()))
	}
	m[key] = c // last one wins
	return end.skipSeparators()
}

// parseObject parses the braced object at c, returning a mapping from each
// member key to the position of its value.
func (c Cursor) parseObject() (map[string]Cursor, Cursor) {
	start := c
	c = c.advance('{').skipSeparators()
	m := make(map[string]Cursor)
	for {
		if c.atEOF() {
			panic(start.syntaxError(UnterminatedLiteral, '}', "unterminated object"))
		} else if c.peek() == '}' {
			return m, c.advance('}')
		}
		c = c.parseMember(m)
	}
}

// parseRoot parses the members of a document, which are not enclosed in
// braces and run to the end of the input.
func (c Cursor) parseRoot() map[string]Cursor {
	c = c.skipSeparators()
	m := make(map[string]Cursor)
	for !c.atEOF() {
		c = c.parseMember(m)
	}
	return m
}

// parseArray parses the array at c, returning the position of each element
// in order.
func (c Cursor) parseArray() ([]Cursor, Cursor) {
	start := c
	c = c.advance('[').skipSeparators()
	var elts []Cursor
	for {
		if c.atEOF() {
			panic(start.syntaxError(UnterminatedLiteral, ']', "unterminated array"))
		} else if c.peek() == ']' {
			return elts, c.advance(']')
		}
		end := c.skipValue()
		if end.pos == c.pos {
			panic(c.syntaxError(MalformedInput, 0, "unexpected %s in array", c.describe()))
		}
		elts = append(elts, c)
		c = end.skipSeparators()
	}
}
