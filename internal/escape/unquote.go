// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of RJSON strings.
//
// RJSON recognizes a fixed set of escapes: \" \\ \/ \b \f \n \r \t.
// There are no Unicode (\u) escapes; non-ASCII text is written literally.
package escape

import (
	"fmt"

	"go4.org/mem"
)

// An Error reports an invalid or incomplete escape sequence. Offset is the
// position of the backslash relative to the start of the input.
type Error struct {
	Offset     int
	Char       byte // the byte following the backslash
	Incomplete bool // the input ended after the backslash
}

func (e *Error) Error() string {
	if e.Incomplete {
		return fmt.Sprintf("incomplete escape sequence at offset %d", e.Offset)
	}
	return fmt.Sprintf("invalid escape %q at offset %d", `\`+string(e.Char), e.Offset)
}

// Unquote decodes a byte slice containing the RJSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Any escape
// outside the fixed set is reported as an *Error.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	base := 0 // offset of src within the original input
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		pos := base + i

		src = src.SliceFrom(i + 1)
		base = pos + 1
		if src.Len() == 0 {
			return nil, &Error{Offset: pos, Incomplete: true}
		}
		switch b := src.At(0); b {
		case '"', '\\', '/':
			dec = append(dec, b)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		default:
			return nil, &Error{Offset: pos, Char: b}
		}
		src = src.SliceFrom(1)
		base++

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}
