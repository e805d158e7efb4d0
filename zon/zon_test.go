package zon

import (
	"errors"
	"strings"
	"testing"
)

const sampleManifest = `
.{
    .name = "test",
    .version = "0.1.0",
    .paths = .{
        "src",
        "README.md"
    },
    .dependencies = .{
        .zigimg = .{
            .url = "https://example.com/zigimg.tar.gz",
            .hash = "abc123",
            .lazy = true
        }
    }
}
`

func sample(t *testing.T) *Value {
	t.Helper()
	v, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestParseGet(t *testing.T) {
	v := sample(t)
	if s, ok := v.GetPath("name").AsString(); !ok || s != "test" {
		t.Errorf("name: got %q, %v", s, ok)
	}
	if s, ok := v.GetPath("version").AsString(); !ok || s != "0.1.0" {
		t.Errorf("version: got %q, %v", s, ok)
	}
	url := v.GetPath("dependencies", "zigimg", "url")
	if s, ok := url.AsString(); !ok || s != "https://example.com/zigimg.tar.gz" {
		t.Errorf("nested url: got %q, %v", s, ok)
	}
	if b, ok := v.GetPath("dependencies", "zigimg", "lazy").AsBool(); !ok || !b {
		t.Errorf("lazy: got %v, %v", b, ok)
	}
	if v.GetPath("nope") != nil {
		t.Error("absent key should be nil")
	}
	if v.GetPath("name", "deeper") != nil {
		t.Error("path through string should be nil")
	}
}

func TestParseList(t *testing.T) {
	v := sample(t)
	paths := v.GetPath("paths")
	if paths == nil || paths.Kind != ListKind {
		t.Fatalf("paths: got %v", paths)
	}
	var got []string
	for _, e := range paths.List {
		s, _ := e.AsString()
		got = append(got, s)
	}
	want := []string{"src", "README.md"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paths[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseBooleans(t *testing.T) {
	v, err := Parse([]byte(`.{ .enabled = true, .disabled = false, }`))
	if err != nil {
		t.Fatal(err)
	}
	if b, ok := v.GetPath("enabled").AsBool(); !ok || !b {
		t.Errorf("enabled: got %v, %v", b, ok)
	}
	if b, ok := v.GetPath("disabled").AsBool(); !ok || b {
		t.Errorf("disabled: got %v, %v", b, ok)
	}
}

func TestParseErrs(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
	}{
		{"invalid char", `.{ .bad = @nope, }`},
		{"unknown identifier", `.{ .bad = nope, }`},
		{"missing closing brace", `.{ .key = "value" `},
		{"missing equals", `.{ .key "value" }`},
		{"unterminated string", `.{ .key = "val`},
		{"key in list", `.{ "a", .key = "v" }`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.src)); !errors.Is(err, ErrParse) {
				t.Errorf("got %v, want ErrParse", err)
			}
		})
	}
}

func TestSetPath(t *testing.T) {
	v := sample(t)
	if err := v.SetPath([]string{"dependencies", "my_dep", "url"},
		FromString("http://a.com")); err != nil {
		t.Fatal(err)
	}
	if s, ok := v.GetPath("dependencies", "my_dep", "url").AsString(); !ok || s != "http://a.com" {
		t.Errorf("got %q, %v", s, ok)
	}
	// vivified from an empty object
	obj := NewObject()
	if err := obj.SetPath([]string{"foo", "bar"}, FromBool(true)); err != nil {
		t.Fatal(err)
	}
	if b, ok := obj.GetPath("foo", "bar").AsBool(); !ok || !b {
		t.Errorf("got %v, %v", b, ok)
	}
}

func TestSetPathErrs(t *testing.T) {
	v := sample(t)
	if err := v.SetPath(nil, FromBool(true)); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("empty path: got %v", err)
	}
	if err := v.SetPath([]string{"name", "sub"}, FromBool(true)); !errors.Is(err, ErrPath) {
		t.Errorf("set through string: got %v", err)
	}
	s := FromString("not an object")
	if err := s.SetPath([]string{"foo"}, FromBool(true)); !errors.Is(err, ErrPath) {
		t.Errorf("set on string root: got %v", err)
	}
}

func TestRemovePath(t *testing.T) {
	v := sample(t)
	if err := v.RemovePath([]string{"dependencies", "zigimg", "hash"}); err != nil {
		t.Fatal(err)
	}
	if v.GetPath("dependencies", "zigimg", "hash") != nil {
		t.Error("hash still present after remove")
	}
	if err := v.RemovePath(nil); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("empty path: got %v", err)
	}
	if err := v.RemovePath([]string{"paths", "nonexistent"}); !errors.Is(err, ErrPath) {
		t.Errorf("remove through list: got %v", err)
	}
	if err := v.RemovePath([]string{"ghost", "child"}); !errors.Is(err, ErrPath) {
		t.Errorf("absent intermediate: got %v", err)
	}
}

func TestOrderPreserved(t *testing.T) {
	v := sample(t)
	want := []string{"name", "version", "paths", "dependencies"}
	if len(v.Keys) != len(want) {
		t.Fatalf("keys: got %v", v.Keys)
	}
	for i, k := range want {
		if v.Keys[i] != k {
			t.Errorf("keys[%d]: got %q, want %q", i, v.Keys[i], k)
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	v := sample(t)
	out := v.String()
	for _, frag := range []string{".name", ".version", ".zigimg", `"src"`} {
		if !strings.Contains(out, frag) {
			t.Errorf("render missing %q:\n%s", frag, out)
		}
	}
	v2, err := Parse([]byte(out))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if v2.String() != out {
		t.Error("render not stable")
	}
}

func TestToAny(t *testing.T) {
	v := sample(t)
	m, ok := v.ToAny().(map[string]any)
	if !ok {
		t.Fatalf("root: got %T", v.ToAny())
	}
	deps := m["dependencies"].(map[string]any)
	zigimg := deps["zigimg"].(map[string]any)
	if zigimg["lazy"] != true {
		t.Errorf("lazy: got %v", zigimg["lazy"])
	}
	if paths, ok := m["paths"].([]any); !ok || len(paths) != 2 {
		t.Errorf("paths: got %v", m["paths"])
	}
}
