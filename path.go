// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rjson

import "fmt"

// Path traverses a sequential path into the structure of e, where path
// elements are either strings (denoting object keys), integers (denoting
// offsets into arrays or objects), functions (see below), or nil. If the path
// is valid, the element reached is returned.
//
// If a path element is a string, the corresponding value must be an object,
// and the string resolves an object member with that name.
//
// If a path element is an integer, the corresponding value must be an array
// or object, and the integer resolves to an index as for At. Negative indices
// count backward from the end (-1 is last, -2 second last).
//
// If a path element is a function, the function is executed and its result
// becomes the next element in the sequence. The function must have the
// signature
//
//	func(rjson.Element) (rjson.Element, error)
//
// A nil path element is ignored.
//
// Each step re-scans its container, so the cost of Path is proportional to
// the total size of the containers it traverses.
func (e Element) Path(path ...any) (Element, error) {
	cur := e
	for _, elt := range path {
		var err error
		switch t := elt.(type) {
		case string:
			cur, err = cur.Field(t)

		case int:
			var vs []Element
			vs, err = cur.values("Path")
			if err == nil {
				i, ok := fixArrayBound(len(vs), t)
				if !ok {
					return Element{}, fmt.Errorf("index %d out of bounds (n=%d): %w", t, len(vs), ErrNotFound)
				}
				cur = vs[i]
			}

		case func(Element) (Element, error):
			cur, err = t(cur)

		case nil:
			// Do nothing.

		default:
			return Element{}, fmt.Errorf("invalid path element %T", elt)
		}
		if err != nil {
			return Element{}, err
		}
	}
	return cur, nil
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
