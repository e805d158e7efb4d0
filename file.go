// Package uniparse binds the format-specific parsers behind one
// surface: detect a format from a filename, parse the bytes, and
// render the result back out.
package uniparse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uniparse/go-uniparse/encode"
	"github.com/uniparse/go-uniparse/gomod"
	"github.com/uniparse/go-uniparse/ir"
	"github.com/uniparse/go-uniparse/parse"
	"github.com/uniparse/go-uniparse/zon"
)

// ErrFormat reports an unknown or undetectable format.
var ErrFormat = errors.New("unknown format")

// Format selects which parser handles the input.
type Format int

const (
	FormatGradle Format = iota
	FormatGoMod
	FormatZon
)

var format2String = map[Format]string{
	FormatGradle: "gradle",
	FormatGoMod:  "gomod",
	FormatZon:    "zon",
}

func (f Format) String() string {
	return format2String[f]
}

// ParseFormat maps a format name to its Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range format2String {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, s)
}

// File is a parsed build or manifest file of any supported format.
type File interface {
	RenderPretty() string
}

// GradleFile wraps a parsed build script.
type GradleFile struct {
	Node *ir.Node
}

func (f *GradleFile) RenderPretty() string {
	return encode.MustString(f.Node) + "\n"
}

// ZonFile wraps a parsed Zig manifest.
type ZonFile struct {
	Value *zon.Value
}

func (f *ZonFile) RenderPretty() string {
	return f.Value.String() + "\n"
}

// Parse parses src as the given format.
func Parse(f Format, src []byte) (File, error) {
	switch f {
	case FormatGradle:
		n, err := parse.Parse(src)
		if err != nil {
			return nil, err
		}
		return &GradleFile{Node: n}, nil
	case FormatGoMod:
		return gomod.Parse(src)
	case FormatZon:
		v, err := zon.Parse(src)
		if err != nil {
			return nil, err
		}
		return &ZonFile{Value: v}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrFormat, f)
}

// Detect picks a format from the file name: go.mod and *.mod parse as
// go.mod files, *.zon as Zig manifests, *.gradle as build scripts.
func Detect(path string) (Format, error) {
	base := filepath.Base(path)
	switch {
	case base == "go.mod" || filepath.Ext(base) == ".mod":
		return FormatGoMod, nil
	case filepath.Ext(base) == ".zon":
		return FormatZon, nil
	case filepath.Ext(base) == ".gradle":
		return FormatGradle, nil
	}
	return 0, fmt.Errorf("%w: cannot detect format of %q", ErrFormat, base)
}

// ParseFile detects the format of path and parses its contents.
func ParseFile(path string) (File, error) {
	f, err := Detect(path)
	if err != nil {
		return nil, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(f, d)
}
