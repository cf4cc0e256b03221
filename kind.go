// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rjson

// Kind is the type of an RJSON value, as determined by its first byte.
type Kind byte

// Constants defining the valid Kind values.
const (
	Nil    Kind = iota // null, or an absent value
	Bool               // true, false
	Number             // -1, 2.5, 6e23
	String             // quoted string
	Array              // [ ... ]
	Object             // { ... }
)

var kindStr = [...]string{
	Nil:    "nil",
	Bool:   "bool",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}
