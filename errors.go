// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors reported by this package. Each value is
// itself an error, so callers can test for a kind with errors.Is:
//
//	if errors.Is(err, rjson.UnterminatedLiteral) { ... }
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedCharacter ErrorKind = iota + 1 // a specific byte was required
	MalformedInput                           // text matches no production
	UnterminatedLiteral                      // input ended inside a construct
	TypeMismatch                             // operation on the wrong kind of value
)

var errorKindStr = [...]string{
	0:                   "unknown error",
	UnexpectedCharacter: "unexpected character",
	MalformedInput:      "malformed input",
	UnterminatedLiteral: "unterminated literal",
	TypeMismatch:        "type mismatch",
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string {
	if int(k) >= len(errorKindStr) {
		return errorKindStr[0]
	}
	return errorKindStr[k]
}

// ErrNotFound is reported (wrapped) by strict lookups when the requested key
// or index does not exist in its container.
var ErrNotFound = errors.New("element not found")

// SyntaxError is the concrete type of errors reported by the scanner.
type SyntaxError struct {
	Kind     ErrorKind
	Offset   int     // byte offset of the error in the input
	Location LineCol // line and column of Offset
	Want     byte    // the byte expected, or 0 if no specific byte was
	Got      byte    // the byte found, or 0 at end of input
	Message  string
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s (offset %d)", s.Location, s.Message, s.Offset)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.Kind }

// TypeError reports an operation applied to a value of the wrong kind.
type TypeError struct {
	Op   string // the operation attempted, e.g. "ToInt"
	Kind Kind   // the kind of the value
}

// Error satisfies the error interface.
func (t *TypeError) Error() string {
	return fmt.Sprintf("%s called on %s value", t.Op, t.Kind)
}

// Unwrap supports error wrapping.
func (t *TypeError) Unwrap() error { return TypeMismatch }

// recoverSyntaxError converts a *SyntaxError panic from the scanner into an
// error result. Any other panic is propagated.
func recoverSyntaxError(errp *error) {
	if v := recover(); v != nil {
		serr, ok := v.(*SyntaxError)
		if !ok {
			panic(v)
		}
		*errp = serr
	}
}
