package ir

import (
	"fmt"
	"strings"

	"github.com/uniparse/go-uniparse/debug"
)

// Get traverses blocks segment by segment and returns the addressed node.
// Absence is a normal outcome: Get returns nil when any intermediate
// segment is missing or is not a block, or when the final segment does
// not exist. An empty path addresses nothing and returns nil.
func Get(y *Node, path ...string) *Node {
	if len(path) == 0 {
		return nil
	}
	cur := y
	for _, seg := range path {
		if cur.Type != BlockType {
			return nil
		}
		cur = cur.Get(seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Set stores v under path, creating empty intermediate blocks for missing
// segments. It fails wrapping ErrPath on an empty path or when an existing
// intermediate segment is not a block; in that case the tree is left
// unmodified, no partially vivified blocks remain.
func Set(y *Node, path []string, v *Node) error {
	if debug.Paths() {
		debug.Logf("set %s type %s", PathString(path), v.Type)
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if y.Type != BlockType {
		return notABlockErr(y.Name)
	}
	// validate the existing prefix before mutating; everything past the
	// first missing segment is freshly vivified and cannot fail
	cur := y
	for _, seg := range path[:len(path)-1] {
		next := cur.Get(seg)
		if next == nil {
			break
		}
		if next.Type != BlockType {
			return notABlockErr(seg)
		}
		cur = next
	}
	cur = y
	for _, seg := range path[:len(path)-1] {
		next := cur.Get(seg)
		if next == nil {
			next = NewBlock(seg)
			cur.Insert(seg, next)
		}
		cur = next
	}
	cur.Insert(path[len(path)-1], v)
	return nil
}

// Remove deletes the entry at path. Every segment except the last must
// exist and be a block, else Remove fails wrapping ErrPath. A missing
// final segment is not an error: removing what is already absent is a
// no-op, so Remove is idempotent.
func Remove(y *Node, path []string) error {
	if debug.Paths() {
		debug.Logf("remove %s", PathString(path))
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if y.Type != BlockType {
		return notABlockErr(y.Name)
	}
	cur := y
	for _, seg := range path[:len(path)-1] {
		next := cur.Get(seg)
		if next == nil || next.Type != BlockType {
			return notABlockErr(seg)
		}
		cur = next
	}
	cur.Delete(path[len(path)-1])
	return nil
}

// ParsePath splits a dotted path string into segments. A segment may be
// single-quoted to include dots, with \' escaping a quote:
//
//	application.mainClassName -> ["application", "mainClassName"]
//	deps.'org.example:lib'    -> ["deps", "org.example:lib"]
func ParsePath(p string) ([]string, error) {
	if p == "" {
		return nil, fmt.Errorf("%w: empty path string", ErrPath)
	}
	segs := []string{}
	for len(p) > 0 {
		seg, rest, err := parseSegment(p)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
		if len(rest) == 0 {
			return segs, nil
		}
		if rest[0] != '.' {
			return nil, fmt.Errorf("%w: expected '.' at %q", ErrPath, rest)
		}
		p = rest[1:]
		if p == "" {
			return nil, fmt.Errorf("%w: trailing '.'", ErrPath)
		}
	}
	return segs, nil
}

func parseSegment(frag string) (seg, rest string, err error) {
	if frag[0] != '\'' {
		i := strings.IndexByte(frag, '.')
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("%w: empty segment at %q", ErrPath, frag)
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("%w: end of string scanning for \"'\"", ErrPath)
}

// PathString renders segments back to the dotted form, quoting segments
// that contain dots or quotes.
func PathString(segs []string) string {
	parts := make([]string, len(segs))
	for i, seg := range segs {
		if strings.IndexAny(seg, ".'") == -1 && seg != "" {
			parts[i] = seg
			continue
		}
		parts[i] = "'" + strings.Replace(seg, "'", "\\'", -1) + "'"
	}
	return strings.Join(parts, ".")
}
