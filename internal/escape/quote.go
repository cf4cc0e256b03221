// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

// Quote encodes a string to escape characters for inclusion in an RJSON
// string. Control characters without a short escape are copied verbatim,
// since RJSON has no numeric escapes.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case b == '\\' || b == '"':
			buf = append(buf, '\\', b)
		case b < ' ' && controlEsc[b] != 0:
			buf = append(buf, '\\', controlEsc[b])
		default:
			buf = append(buf, b)
		}
	}
	return buf
}
