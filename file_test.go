package uniparse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	for _, tc := range []struct {
		path string
		want Format
		err  bool
	}{
		{"build.gradle", FormatGradle, false},
		{"sub/dir/settings.gradle", FormatGradle, false},
		{"go.mod", FormatGoMod, false},
		{"tools/go.mod", FormatGoMod, false},
		{"extra.mod", FormatGoMod, false},
		{"build.zig.zon", FormatZon, false},
		{"Makefile", 0, true},
	} {
		got, err := Detect(tc.path)
		if tc.err {
			if !errors.Is(err, ErrFormat) {
				t.Errorf("Detect(%q): got %v, want ErrFormat", tc.path, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("Detect(%q) = %v, %v; want %v", tc.path, got, err, tc.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"gradle", "gomod", "zon"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Fatal(err)
		}
		if f.String() != name {
			t.Errorf("round trip %q: got %q", name, f.String())
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrFormat) {
		t.Errorf("got %v, want ErrFormat", err)
	}
}

func TestParseGradle(t *testing.T) {
	f, err := Parse(FormatGradle, []byte("plugins {\n\tid \"java\"\n}\n"))
	if err != nil {
		t.Fatal(err)
	}
	out := f.RenderPretty()
	if !strings.Contains(out, `id "java"`) {
		t.Errorf("render: %q", out)
	}
	g, ok := f.(*GradleFile)
	if !ok {
		t.Fatalf("got %T", f)
	}
	if g.Node == nil {
		t.Fatal("nil node")
	}
}

func TestParseGoMod(t *testing.T) {
	f, err := Parse(FormatGoMod, []byte("module m\ngo 1.22\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(f.RenderPretty(), "module m") {
		t.Errorf("render: %q", f.RenderPretty())
	}
}

func TestParseZon(t *testing.T) {
	f, err := Parse(FormatZon, []byte(`.{ .name = "x", }`))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(f.RenderPretty(), ".name") {
		t.Errorf("render: %q", f.RenderPretty())
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.gradle")
	if err := os.WriteFile(path, []byte("group \"org.example\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(f.RenderPretty(), `group "org.example"`) {
		t.Errorf("render: %q", f.RenderPretty())
	}
	if _, err := ParseFile(filepath.Join(dir, "missing.gradle")); err == nil {
		t.Error("expected read error")
	}
}
