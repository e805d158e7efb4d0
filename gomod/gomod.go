// Package gomod parses and renders go.mod files.
//
// The format is line-oriented, so unlike the build-script DSL there is no
// token stream: each line is classified on its own, with a require block
// flag as the only carried state. Syntax errors name the 1-based line.
package gomod

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse is the sentinel for all go.mod syntax errors.
	ErrParse = errors.New("gomod parse error")

	// ErrMissingField reports an absent module or go directive.
	ErrMissingField = errors.New("missing required field")
)

// GoMod is a parsed go.mod file.
type GoMod struct {
	Module    string
	GoVersion string
	Requires  []Require
}

// Require is a single require entry.
type Require struct {
	Name    string
	Version string
}

// Parse parses go.mod source. The module and go directives are required.
func Parse(src []byte) (*GoMod, error) {
	var (
		module, goVersion string
		requires          []Require
		inRequireBlock    bool
	)
	for i, line := range strings.Split(string(src), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "module "):
			module = strings.TrimSpace(trimmed[len("module "):])
		case strings.HasPrefix(trimmed, "go "):
			goVersion = strings.TrimSpace(trimmed[len("go "):])
		case trimmed == "require (":
			inRequireBlock = true
		case trimmed == ")" && inRequireBlock:
			inRequireBlock = false
		case inRequireBlock || strings.HasPrefix(trimmed, "require "):
			cleaned := strings.TrimSpace(strings.TrimPrefix(trimmed, "require"))
			parts := strings.Fields(cleaned)
			if len(parts) < 2 {
				return nil, fmt.Errorf("%w: invalid require entry %q at line %d",
					ErrParse, trimmed, i+1)
			}
			requires = append(requires, Require{Name: parts[0], Version: parts[1]})
		}
	}
	if module == "" {
		return nil, fmt.Errorf("%w: module", ErrMissingField)
	}
	if goVersion == "" {
		return nil, fmt.Errorf("%w: go version", ErrMissingField)
	}
	return &GoMod{
		Module:    module,
		GoVersion: goVersion,
		Requires:  requires,
	}, nil
}

// RenderPretty renders the parsed file back to go.mod text. Requires
// always render as a block, the single-line require form is normalized.
func (m *GoMod) RenderPretty() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "module %s\n\ngo %s\n", m.Module, m.GoVersion)
	if len(m.Requires) == 0 {
		return sb.String()
	}
	sb.WriteString("\nrequire (\n")
	for _, r := range m.Requires {
		fmt.Fprintf(&sb, "\t%s %s\n", r.Name, r.Version)
	}
	sb.WriteString(")\n")
	return sb.String()
}
