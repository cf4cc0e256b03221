// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package rjson implements a lazy parser for RJSON, a relaxed JSON dialect
// for configuration files.
//
// # Format
//
// RJSON differs from JSON in the following ways:
//
//   - Object members are written key = value, not "key": value.
//   - The top level of a document is a list of members without enclosing
//     braces, in the manner of an INI file.
//   - Keys may be bare identifiers (letters, digits, "_", "-"; not starting
//     with a digit or "-") or quoted strings.
//   - Commas and newlines are interchangeable separators, and may be
//     repeated.
//   - C++ style line comments (// ...) and block comments (/* ... */) may
//     appear wherever a separator is allowed.
//   - Strings support only the escapes \" \\ \/ \b \f \n \r \t.
//
// For example:
//
//	// Window settings
//	title = "Main"
//	size  = { width = 640, height = 480 }
//	tags  = [ "a", "b" ]  /* trailing comment */
//	debug = false
//
// # Parsing
//
// Parse and ParseString check the top-level structure of a document and
// record where each value begins, without decoding any values:
//
//	doc, err := rjson.ParseString(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// In case of error, parsing stops at the first malformed token and an error
// of concrete type *rjson.SyntaxError is returned. No partial result is
// produced.
//
// # Elements
//
// Values are accessed through Element, a lazy view of one position in the
// input. Each method of an Element classifies or decodes its value on demand,
// re-scanning only the text of that value:
//
//	width, err := doc.Get("size").Path("width")
//	if err != nil { ... }
//	w, err := width.ToInt(0)
//
// Typed accessors take a default that is returned when the element is null or
// absent, so a missing field is not an error:
//
//	name, err := doc.Get("name").ToString("untitled")
//
// Numbers are always decoded as float64; the integer accessors truncate the
// result, so integers with magnitude beyond 2^53 are not represented exactly.
//
// Neither a Document nor an Element copies its input. The input must not be
// modified while they are in use.
package rjson
