// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"go4.org/mem"
)

// An Element is a lazy view of a single RJSON value. It records only the
// position of the value in its input; the value is classified and decoded
// each time one of its methods is called.
//
// The zero Element is the nil element. It stands for a value that is absent,
// and behaves like an explicit null: IsNil reports true and the typed
// accessors return their defaults. Use Present to distinguish the two.
//
// An Element is valid only as long as the input it was parsed from is alive
// and unmodified. Copying an Element does not copy the input.
type Element struct {
	cur Cursor
	ok  bool
}

func newElement(c Cursor) Element { return Element{cur: c, ok: true} }

// Present reports whether e refers to a value in the input.
func (e Element) Present() bool { return e.ok }

// Cursor returns the position of e in its input, and reports whether e is
// present.
func (e Element) Cursor() (Cursor, bool) { return e.cur, e.ok }

// Kind reports the kind of value e refers to. An absent element is Nil.
func (e Element) Kind() Kind {
	if !e.ok {
		return Nil
	}
	return e.cur.kind()
}

// IsNil reports whether e is absent or null.
func (e Element) IsNil() bool { return e.Kind() == Nil }

// IsBool reports whether e is a Boolean value.
func (e Element) IsBool() bool { return e.Kind() == Bool }

// IsNumber reports whether e is a number.
func (e Element) IsNumber() bool { return e.Kind() == Number }

// IsString reports whether e is a string.
func (e Element) IsString() bool { return e.Kind() == String }

// IsArray reports whether e is an array.
func (e Element) IsArray() bool { return e.Kind() == Array }

// IsObject reports whether e is an object.
func (e Element) IsObject() bool { return e.Kind() == Object }

func (e Element) checkKind(op string, want Kind) error {
	if k := e.Kind(); k != want {
		return &TypeError{Op: op, Kind: k}
	}
	return nil
}

// ToBool returns the Boolean value of e, or def if e is nil.
func (e Element) ToBool(def bool) (_ bool, err error) {
	if e.IsNil() {
		return def, nil
	} else if err := e.checkKind("ToBool", Bool); err != nil {
		return def, err
	}
	defer recoverSyntaxError(&err)
	v, _ := e.cur.parseBool()
	return v, nil
}

// ToFloat64 returns the numeric value of e, or def if e is nil.
func (e Element) ToFloat64(def float64) (_ float64, err error) {
	if e.IsNil() {
		return def, nil
	} else if err := e.checkKind("ToFloat64", Number); err != nil {
		return def, err
	}
	defer recoverSyntaxError(&err)
	v, _ := e.cur.parseNumber()
	return v, nil
}

// ToFloat returns the numeric value of e as a float32, or def if e is nil.
func (e Element) ToFloat(def float32) (float32, error) {
	v, err := e.ToFloat64(float64(def))
	if err != nil {
		return def, wrapOp(err, "ToFloat")
	}
	return float32(v), nil
}

// ToInt returns the numeric value of e truncated toward zero, or def if e is
// nil. Values outside the range of int32 are not clamped.
func (e Element) ToInt(def int32) (int32, error) {
	v, err := e.ToFloat64(float64(def))
	if err != nil {
		return def, wrapOp(err, "ToInt")
	}
	return int32(int64(v)), nil
}

// ToUint returns the numeric value of e truncated toward zero, or def if e is
// nil. Negative values wrap modulo 2^32, so -1 becomes math.MaxUint32.
func (e Element) ToUint(def uint32) (uint32, error) {
	v, err := e.ToFloat64(float64(def))
	if err != nil {
		return def, wrapOp(err, "ToUint")
	}
	return uint32(int64(v)), nil
}

// ToString returns the decoded string value of e, or def if e is nil.
// It reports an error of kind TypeMismatch if e is present but is not a
// string.
func (e Element) ToString(def string) (_ string, err error) {
	if e.IsNil() {
		return def, nil
	} else if err := e.checkKind("ToString", String); err != nil {
		return def, err
	}
	defer recoverSyntaxError(&err)
	s, _ := e.cur.parseString()
	return s, nil
}

// Size returns the size of e, depending on its kind:
//
//	absent             0
//	nil, bool, number  1
//	string             length in bytes of the decoded string
//	array              number of elements
//	object             number of members (distinct keys)
func (e Element) Size() (_ int, err error) {
	if !e.ok {
		return 0, nil
	}
	defer recoverSyntaxError(&err)
	switch k := e.Kind(); k {
	case Nil, Bool, Number:
		return 1, nil
	case String:
		s, _ := e.cur.parseString()
		return len(s), nil
	case Array:
		elts, _ := e.cur.parseArray()
		return len(elts), nil
	case Object:
		m, _ := e.cur.parseObject()
		return len(m), nil
	default:
		panic(fmt.Sprintf("rjson: unknown value kind %v", k))
	}
}

// Members returns the members of an object, mapping each key to its value.
func (e Element) Members() (map[string]Element, error) {
	m, err := e.members("Members")
	if err != nil {
		return nil, err
	}
	out := make(map[string]Element, len(m))
	for key, c := range m {
		out[key] = newElement(c)
	}
	return out, nil
}

// Keys returns the keys of an object in sorted order.
func (e Element) Keys() ([]string, error) {
	m, err := e.members("Keys")
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(m)), nil
}

// Elements returns the elements of an array in order.
func (e Element) Elements() (_ []Element, err error) {
	if err := e.checkKind("Elements", Array); err != nil {
		return nil, err
	}
	defer recoverSyntaxError(&err)
	cs, _ := e.cur.parseArray()
	out := make([]Element, len(cs))
	for i, c := range cs {
		out[i] = newElement(c)
	}
	return out, nil
}

// values returns the elements of an array, or the member values of an object
// ordered by key.
func (e Element) values(op string) ([]Element, error) {
	switch e.Kind() {
	case Array:
		return e.Elements()
	case Object:
		m, err := e.Members()
		if err != nil {
			return nil, err
		}
		out := make([]Element, 0, len(m))
		for _, key := range slices.Sorted(maps.Keys(m)) {
			out = append(out, m[key])
		}
		return out, nil
	default:
		return nil, &TypeError{Op: op, Kind: e.Kind()}
	}
}

// At returns the element at offset i of an array. If e is an object, members
// are indexed in key order. At reports an error wrapping ErrNotFound if i is
// out of range.
func (e Element) At(i int) (Element, error) {
	vs, err := e.values("At")
	if err != nil {
		return Element{}, err
	} else if i < 0 || i >= len(vs) {
		return Element{}, fmt.Errorf("index %d out of range (n=%d): %w", i, len(vs), ErrNotFound)
	}
	return vs[i], nil
}

// AtOrNil behaves as At, but returns the nil element if i is out of range.
func (e Element) AtOrNil(i int) (Element, error) {
	v, err := e.At(i)
	if errors.Is(err, ErrNotFound) {
		return Element{}, nil
	}
	return v, err
}

// Field returns the value of the member of an object with the given key.
// Field reports an error wrapping ErrNotFound if there is no such member.
func (e Element) Field(key string) (Element, error) {
	m, err := e.members("Field")
	if err != nil {
		return Element{}, err
	}
	c, ok := m[key]
	if !ok {
		return Element{}, keyNotFound(key)
	}
	return newElement(c), nil
}

// FieldOrNil behaves as Field, but returns the nil element if there is no
// member with the given key.
func (e Element) FieldOrNil(key string) (Element, error) {
	v, err := e.Field(key)
	if errors.Is(err, ErrNotFound) {
		return Element{}, nil
	}
	return v, err
}

func (e Element) members(op string) (_ map[string]Cursor, err error) {
	if err := e.checkKind(op, Object); err != nil {
		return nil, err
	}
	defer recoverSyntaxError(&err)
	m, _ := e.cur.parseObject()
	return m, nil
}

// Span returns the extent of e in its input.
func (e Element) Span() (_ Span, err error) {
	if !e.ok {
		return Span{}, nil
	}
	defer recoverSyntaxError(&err)
	end := e.cur.skipValue()
	return Span{Pos: e.cur.pos, End: end.pos}, nil
}

// Location returns the extent of e in its input, with line and column
// offsets.
func (e Element) Location() (Location, error) {
	span, err := e.Span()
	if err != nil {
		return Location{}, err
	}
	return locationOf(e.cur.src, span), nil
}

// Raw returns a copy of the undecoded text of e. Raw returns nil for an
// absent element.
func (e Element) Raw() ([]byte, error) {
	span, err := e.Span()
	if err != nil || !e.ok {
		return nil, err
	}
	return mem.Append(nil, e.cur.src.Slice(span.Pos, span.End)), nil
}

func keyNotFound(key string) error { return fmt.Errorf("key %q: %w", key, ErrNotFound) }

// wrapOp relabels the operation of a *TypeError produced on behalf of op.
func wrapOp(err error, op string) error {
	if terr, ok := err.(*TypeError); ok {
		return &TypeError{Op: op, Kind: terr.Kind}
	}
	return err
}
