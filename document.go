// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"iter"
	"maps"
	"slices"

	"go4.org/mem"
)

// A Document is a parsed RJSON document: a mapping from each top-level key
// to the position of its value in the input. Values are not decoded until
// they are requested through an Element.
//
// A Document does not copy its input. The input must not be modified while
// the Document, or any Element derived from it, is in use.
type Document struct {
	src     mem.RO
	members map[string]Cursor
}

// Parse parses an RJSON document from data. The top-level members of the
// document are checked, and the extent of each value is found, but the
// values themselves are not decoded. In case of error, the concrete type of
// the error is *SyntaxError.
func Parse(data []byte) (*Document, error) { return parseDocument(mem.B(data)) }

// ParseString parses an RJSON document from s. See Parse.
func ParseString(s string) (*Document, error) { return parseDocument(mem.S(s)) }

// MustParse parses an RJSON document from s, and panics if parsing fails.
// It is intended for use with documents that are known to be valid, such as
// compiled-in defaults.
func MustParse(s string) *Document {
	doc, err := ParseString(s)
	if err != nil {
		panic("rjson: MustParse: " + err.Error())
	}
	return doc
}

func parseDocument(src mem.RO) (_ *Document, err error) {
	defer recoverSyntaxError(&err)
	return &Document{
		src:     src,
		members: Cursor{src: src}.parseRoot(),
	}, nil
}

// Len reports the number of distinct top-level keys in d.
func (d *Document) Len() int { return len(d.members) }

// Keys returns the top-level keys of d in sorted order.
func (d *Document) Keys() []string { return slices.Sorted(maps.Keys(d.members)) }

// Has reports whether d has a top-level member with the given key.
func (d *Document) Has(key string) bool { _, ok := d.members[key]; return ok }

// Cursor returns the position of the value for key, and reports whether the
// key is present in d.
func (d *Document) Cursor(key string) (Cursor, bool) {
	c, ok := d.members[key]
	return c, ok
}

// Get returns the value of the top-level member with the given key. If d has
// no such member, Get returns the nil element.
func (d *Document) Get(key string) Element {
	c, ok := d.members[key]
	if !ok {
		return Element{}
	}
	return newElement(c)
}

// All returns an iterator over the top-level members of d in key order.
func (d *Document) All() iter.Seq2[string, Element] {
	return func(yield func(string, Element) bool) {
		for _, key := range d.Keys() {
			if !yield(key, newElement(d.members[key])) {
				return
			}
		}
	}
}

// Path traverses a path into d, whose first element must be a top-level key.
// Subsequent elements are interpreted as for Element.Path.
func (d *Document) Path(key string, path ...any) (Element, error) {
	c, ok := d.members[key]
	if !ok {
		return Element{}, keyNotFound(key)
	}
	return newElement(c).Path(path...)
}
