package gomod

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrPath is the sentinel for path-addressing errors.
var ErrPath = errors.New("gomod path error")

// Get returns the value at path. Supported paths are ["module"],
// ["go_version"] and ["requires", i, "name"|"version"] with a 0-based
// decimal index. Absent or unsupported paths return false.
func (m *GoMod) Get(path ...string) (string, bool) {
	switch {
	case len(path) == 1 && path[0] == "module":
		return m.Module, true
	case len(path) == 1 && path[0] == "go_version":
		return m.GoVersion, true
	case len(path) == 3 && path[0] == "requires":
		i, err := strconv.Atoi(path[1])
		if err != nil || i < 0 || i >= len(m.Requires) {
			return "", false
		}
		switch path[2] {
		case "name":
			return m.Requires[i].Name, true
		case "version":
			return m.Requires[i].Version, true
		}
	}
	return "", false
}

// Set replaces the value at path. The same paths as Get are addressable;
// a require index equal to len(Requires) appends a new entry.
func (m *GoMod) Set(path []string, value string) error {
	switch {
	case len(path) == 1 && path[0] == "module":
		m.Module = value
		return nil
	case len(path) == 1 && path[0] == "go_version":
		m.GoVersion = value
		return nil
	case len(path) == 3 && path[0] == "requires":
		i, err := strconv.Atoi(path[1])
		if err != nil || i < 0 || i > len(m.Requires) {
			return fmt.Errorf("%w: no require entry at index %q", ErrPath, path[1])
		}
		if i == len(m.Requires) {
			m.Requires = append(m.Requires, Require{})
		}
		switch path[2] {
		case "name":
			m.Requires[i].Name = value
		case "version":
			m.Requires[i].Version = value
		default:
			return fmt.Errorf("%w: unknown require field %q", ErrPath, path[2])
		}
		return nil
	}
	return fmt.Errorf("%w: unaddressable path %v", ErrPath, path)
}

// Remove deletes the require entry at ["requires", i]. Out of range
// indices are an error, the module and go directives cannot be removed.
func (m *GoMod) Remove(path []string) error {
	if len(path) != 2 || path[0] != "requires" {
		return fmt.Errorf("%w: unremovable path %v", ErrPath, path)
	}
	i, err := strconv.Atoi(path[1])
	if err != nil || i < 0 || i >= len(m.Requires) {
		return fmt.Errorf("%w: no require entry at index %q", ErrPath, path[1])
	}
	m.Requires = append(m.Requires[:i], m.Requires[i+1:]...)
	return nil
}
