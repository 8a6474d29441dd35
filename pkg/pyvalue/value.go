package pyvalue

import (
	"errors"
	"fmt"
)

// Value is the closed union of shapes the literal renderers understand.
// Instances are built only through the package constructors, so a renderer
// switching on Kind covers every shape that can exist. Values are immutable
// after construction; accessors hand out defensive copies of child slices.
type Value struct {
	kind    Kind
	boolV   bool
	intV    int64
	floatV  float64
	strV    string
	elems   []Value
	entries []Entry
}

// Entry is a single key/value pair inside a Dict value.
type Entry struct {
	Key   Value
	Value Value
}

// None returns the null value. It is also the zero Value, so an
// uninitialised Value renders as the target's null literal instead of
// panicking somewhere downstream.
func None() Value {
	return Value{kind: KindNone}
}

// Bool wraps a boolean.
func Bool(v bool) Value {
	return Value{kind: KindBool, boolV: v}
}

// Int wraps a signed integer.
func Int(v int64) Value {
	return Value{kind: KindInt, intV: v}
}

// Float wraps a floating-point number. NaN and infinities are representable;
// renderers pin their spelling.
func Float(v float64) Value {
	return Value{kind: KindFloat, floatV: v}
}

// Char wraps a single character.
func Char(v rune) Value {
	return Value{kind: KindChar, strV: string(v)}
}

// Str wraps a text string.
func Str(v string) Value {
	return Value{kind: KindStr, strV: v}
}

// List wraps an ordered sequence. Element order is preserved.
func List(elems ...Value) Value {
	return Value{kind: KindList, elems: cloneValues(elems)}
}

// PairOf wraps a 2-tuple.
func PairOf(first, second Value) Value {
	return Value{kind: KindPair, elems: []Value{first, second}}
}

// Dict wraps a mapping. Key uniqueness is the source mapping's contract.
func Dict(entries ...Entry) Value {
	return Value{kind: KindDict, entries: cloneEntries(entries)}
}

// Set wraps an unordered collection. Renderers order elements
// deterministically before emitting.
func Set(elems ...Value) Value {
	return Value{kind: KindSet, elems: cloneValues(elems)}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNone reports whether the value is the null value.
func (v Value) IsNone() bool {
	return v.kind == KindNone
}

// AsBool unwraps a boolean value.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, wrongKind(KindBool, v.kind)
	}
	return v.boolV, nil
}

// AsInt unwraps an integer value.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, wrongKind(KindInt, v.kind)
	}
	return v.intV, nil
}

// AsFloat unwraps a floating-point value.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, wrongKind(KindFloat, v.kind)
	}
	return v.floatV, nil
}

// AsStr unwraps a string or character value; both carry text.
func (v Value) AsStr() (string, error) {
	if v.kind != KindStr && v.kind != KindChar {
		return "", wrongKind(KindStr, v.kind)
	}
	return v.strV, nil
}

// Elems returns a copy of the elements of a List or Set.
func (v Value) Elems() ([]Value, error) {
	if v.kind != KindList && v.kind != KindSet {
		return nil, wrongKind(KindList, v.kind)
	}
	return cloneValues(v.elems), nil
}

// Pair returns the two elements of a Pair value.
func (v Value) Pair() (Value, Value, error) {
	if v.kind != KindPair {
		return Value{}, Value{}, wrongKind(KindPair, v.kind)
	}
	return v.elems[0], v.elems[1], nil
}

// Entries returns a copy of the entries of a Dict.
func (v Value) Entries() ([]Entry, error) {
	if v.kind != KindDict {
		return nil, wrongKind(KindDict, v.kind)
	}
	return cloneEntries(v.entries), nil
}

// ErrWrongKind wraps every accessor mismatch so callers can branch with
// errors.Is.
var ErrWrongKind = errors.New("pyvalue: wrong kind")

func wrongKind(want, got Kind) error {
	return fmt.Errorf("%w: want %s, got %s", ErrWrongKind, want, got)
}

func cloneValues(in []Value) []Value {
	if len(in) == 0 {
		return nil
	}
	out := make([]Value, len(in))
	copy(out, in)
	return out
}

func cloneEntries(in []Entry) []Entry {
	if len(in) == 0 {
		return nil
	}
	out := make([]Entry, len(in))
	copy(out, in)
	return out
}
