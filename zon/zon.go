// Package zon parses and renders Zig object notation manifests.
//
// A manifest is a single value: a quoted string, true/false, a list
// of strings, or a `.{ .key = value, }` object. Objects keep entry
// order so a render of a parse is stable.
package zon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is the sentinel for all zon syntax errors.
var ErrParse = errors.New("zon parse error")

// Kind discriminates the value variants.
type Kind int

const (
	StringKind Kind = iota
	BoolKind
	ListKind
	ObjectKind
)

var kind2String = map[Kind]string{
	StringKind: "string",
	BoolKind:   "bool",
	ListKind:   "list",
	ObjectKind: "object",
}

func (k Kind) String() string {
	return kind2String[k]
}

// Value is one node of a parsed manifest. Only the fields of its Kind
// are meaningful. Object entries live in Keys and Vals at matching
// indices, in source order.
type Value struct {
	Kind Kind
	Str  string
	Bool bool
	List []*Value

	Keys []string
	Vals []*Value
}

func FromString(s string) *Value {
	return &Value{Kind: StringKind, Str: s}
}

func FromBool(b bool) *Value {
	return &Value{Kind: BoolKind, Bool: b}
}

func NewList(elts ...*Value) *Value {
	return &Value{Kind: ListKind, List: elts}
}

func NewObject() *Value {
	return &Value{Kind: ObjectKind}
}

// AsString returns the string payload, or false for other kinds.
func (v *Value) AsString() (string, bool) {
	if v.Kind != StringKind {
		return "", false
	}
	return v.Str, true
}

// AsBool returns the bool payload, or false for other kinds.
func (v *Value) AsBool() (bool, bool) {
	if v.Kind != BoolKind {
		return false, false
	}
	return v.Bool, true
}

// Get returns the entry under key, or nil for absent keys and
// non-object values.
func (v *Value) Get(key string) *Value {
	if v.Kind != ObjectKind {
		return nil
	}
	for i, k := range v.Keys {
		if k == key {
			return v.Vals[i]
		}
	}
	return nil
}

// Insert binds key to val, overwriting in place when key is present.
func (v *Value) Insert(key string, val *Value) {
	for i, k := range v.Keys {
		if k == key {
			v.Vals[i] = val
			return
		}
	}
	v.Keys = append(v.Keys, key)
	v.Vals = append(v.Vals, val)
}

// Delete removes the entry under key, if present.
func (v *Value) Delete(key string) {
	for i, k := range v.Keys {
		if k == key {
			v.Keys = append(v.Keys[:i], v.Keys[i+1:]...)
			v.Vals = append(v.Vals[:i], v.Vals[i+1:]...)
			return
		}
	}
}

// ToAny projects v onto plain Go values: strings, bools, []any for
// lists and map[string]any for objects.
func (v *Value) ToAny() any {
	switch v.Kind {
	case StringKind:
		return v.Str
	case BoolKind:
		return v.Bool
	case ListKind:
		res := make([]any, len(v.List))
		for i, e := range v.List {
			res[i] = e.ToAny()
		}
		return res
	case ObjectKind:
		res := make(map[string]any, len(v.Keys))
		for i, k := range v.Keys {
			res[k] = v.Vals[i].ToAny()
		}
		return res
	}
	return nil
}

func (v *Value) render(sb *strings.Builder, depth int) {
	switch v.Kind {
	case StringKind:
		fmt.Fprintf(sb, "%q", v.Str)
	case BoolKind:
		fmt.Fprintf(sb, "%t", v.Bool)
	case ListKind:
		sb.WriteString(".{\n")
		for _, e := range v.List {
			pad(sb, depth+1)
			e.render(sb, depth+1)
			sb.WriteString(",\n")
		}
		pad(sb, depth)
		sb.WriteString("}")
	case ObjectKind:
		sb.WriteString(".{\n")
		for i, k := range v.Keys {
			pad(sb, depth+1)
			fmt.Fprintf(sb, ".%s = ", k)
			v.Vals[i].render(sb, depth+1)
			sb.WriteString(",\n")
		}
		pad(sb, depth)
		sb.WriteString("}")
	}
}

func pad(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("    ")
	}
}

func (v *Value) String() string {
	var sb strings.Builder
	v.render(&sb, 0)
	return sb.String()
}
