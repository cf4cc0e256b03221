// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/creachadair/rjson"
	"github.com/go-kit/log/level"
)

// loadDocument reads and parses the RJSON document in the named file.
func (e *env) loadDocument(path string) (*rjson.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	doc, err := rjson.Parse(data)
	if err != nil {
		level.Debug(e.logger).Log("msg", "parse failed", "file", path, "err", err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	level.Debug(e.logger).Log("msg", "parsed document", "file", path, "bytes", len(data), "keys", doc.Len())
	return doc, nil
}

// parsePath splits a dotted path into components for Document.Path.
// Components that parse as integers are array indices, the rest are keys.
// The first component is always a key.
func parsePath(s string) (string, []any, error) {
	if s == "" {
		return "", nil, fmt.Errorf("empty path")
	}
	parts := strings.Split(s, ".")
	var rest []any
	for _, p := range parts[1:] {
		if p == "" {
			return "", nil, fmt.Errorf("empty path component in %q", s)
		}
		if n, err := strconv.Atoi(p); err == nil {
			rest = append(rest, n)
		} else {
			rest = append(rest, p)
		}
	}
	return parts[0], rest, nil
}

// lookup resolves a dotted path in doc. An empty path denotes the document.
func lookup(doc *rjson.Document, path string) (rjson.Element, error) {
	key, rest, err := parsePath(path)
	if err != nil {
		return rjson.Element{}, err
	}
	return doc.Path(key, rest...)
}

// materialize fully decodes e into plain Go values: nil, bool, float64,
// string, []any, and map[string]any. Every nested value is decoded, so this
// also reports syntax errors that parsing alone defers.
func materialize(e rjson.Element) (any, error) {
	switch e.Kind() {
	case rjson.Nil:
		if e.Present() {
			// Check that the literal really is null.
			raw, err := e.Raw()
			if err != nil {
				return nil, err
			} else if string(raw) != "null" {
				return nil, fmt.Errorf("invalid literal %q", raw)
			}
		}
		return nil, nil
	case rjson.Bool:
		return e.ToBool(false)
	case rjson.Number:
		return e.ToFloat64(0)
	case rjson.String:
		return e.ToString("")
	case rjson.Array:
		elts, err := e.Elements()
		if err != nil {
			return nil, err
		}
		out := make([]any, len(elts))
		for i, elt := range elts {
			v, err := materialize(elt)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case rjson.Object:
		m, err := e.Members()
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, len(m))
		for key, elt := range m {
			v, err := materialize(elt)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			out[key] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown kind %v", e.Kind())
	}
}

// materializeDocument decodes every top-level member of doc.
func materializeDocument(doc *rjson.Document) (map[string]any, error) {
	out := make(map[string]any, doc.Len())
	for key, elt := range doc.All() {
		v, err := materialize(elt)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		out[key] = v
	}
	return out, nil
}
