package zon

import (
	"errors"
	"fmt"
)

var (
	// ErrPath is the sentinel for path-addressing errors.
	ErrPath = errors.New("zon path error")

	// ErrEmptyPath reports a mutation with no path segments.
	ErrEmptyPath = fmt.Errorf("%w: empty path", ErrPath)
)

func notAnObjectErr(seg string) error {
	return fmt.Errorf("%w: %q is not an object", ErrPath, seg)
}

// GetPath returns the value at path, or nil when any segment is absent
// or addresses through a non-object.
func (v *Value) GetPath(path ...string) *Value {
	cur := v
	for _, seg := range path {
		if cur = cur.Get(seg); cur == nil {
			return nil
		}
	}
	return cur
}

// SetPath binds path to val, creating intermediate objects for absent
// segments. Existing non-object intermediates are an error.
func (v *Value) SetPath(path []string, val *Value) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	cur := v
	for _, seg := range path[:len(path)-1] {
		if cur.Kind != ObjectKind {
			return notAnObjectErr(seg)
		}
		next := cur.Get(seg)
		if next == nil {
			next = NewObject()
			cur.Insert(seg, next)
		}
		cur = next
	}
	if cur.Kind != ObjectKind {
		return notAnObjectErr(path[len(path)-1])
	}
	cur.Insert(path[len(path)-1], val)
	return nil
}

// RemovePath deletes the entry at path. Intermediate segments must
// exist and be objects; an absent final segment is a no-op.
func (v *Value) RemovePath(path []string) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	cur := v
	for _, seg := range path[:len(path)-1] {
		if cur.Kind != ObjectKind {
			return notAnObjectErr(seg)
		}
		if cur = cur.Get(seg); cur == nil {
			return fmt.Errorf("%w: %q not found", ErrPath, seg)
		}
	}
	if cur.Kind != ObjectKind {
		return notAnObjectErr(path[len(path)-1])
	}
	cur.Delete(path[len(path)-1])
	return nil
}
