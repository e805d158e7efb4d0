package encode

import (
	"strings"
	"testing"

	"github.com/uniparse/go-uniparse/ir"
	"github.com/uniparse/go-uniparse/parse"
)

type encTest struct {
	in   string
	want string
}

func TestEncodeVariants(t *testing.T) {
	ets := []encTest{
		{in: `key "value"`, want: "key \"value\"\n"},
		{in: `key = "value"`, want: "key = \"value\"\n"},
		{in: `debug true`, want: "debug true\n"},
		{in: `debug false`, want: "debug false\n"},
		{in: `deploy()`, want: "deploy()\n"},
		{in: `empty {}`, want: "empty {\n}\n"},
		{
			in:   `app { main = "Main" }`,
			want: "app {\n    main = \"Main\"\n}\n",
		},
		{
			in:   `a { b { c "d" } }`,
			want: "a {\n    b {\n        c \"d\"\n    }\n}\n",
		},
		{
			// the parsed two-entry shape reconstructs the source line
			in:   `options "opt1" level "debug"`,
			want: "options \"opt1\" level \"debug\"\n",
		},
	}
	for _, et := range ets {
		blk, err := parse.Parse([]byte(et.in))
		if err != nil {
			t.Fatalf("%q: %v", et.in, err)
		}
		var sb strings.Builder
		if err := Encode(blk, &sb); err != nil {
			t.Fatalf("%q: %v", et.in, err)
		}
		if sb.String() != et.want {
			t.Errorf("%q: got %q, want %q", et.in, sb.String(), et.want)
		}
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	in := `plugins {
    id "application"
}
mainClassName = "com.example.Main"
debug true
options "opt1" level "debug"
deploy()
`
	blk, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	out := MustString(blk)
	back, err := parse.Parse([]byte(out))
	if err != nil {
		t.Fatalf("re-parse of %q: %v", out, err)
	}
	if !ir.Equal(blk, back) {
		t.Errorf("round trip changed the tree:\n%s\nvs\n%s", out, MustString(back))
	}
}

func TestEncodeIndentOption(t *testing.T) {
	blk, err := parse.Parse([]byte(`a { b "c" }`))
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := Encode(blk, &sb, Indent(2)); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "a {\n  b \"c\"\n}\n" {
		t.Errorf("got %q", sb.String())
	}
}

func TestEncodeBareValue(t *testing.T) {
	if got := MustString(ir.FromAssignment("x")); got != `"x"` {
		t.Errorf("assignment: %q", got)
	}
	if got := MustString(ir.FromBool(true)); got != "true" {
		t.Errorf("flag: %q", got)
	}
	if got := MustString(ir.NewCall()); got != "()" {
		t.Errorf("call: %q", got)
	}
}

func TestEncodeCallArgs(t *testing.T) {
	call := ir.NewCall(ir.FromString("a"), ir.FromBool(true), ir.NewBlock("x"))
	if got := MustString(call); got != `("a", true, ?)` {
		t.Errorf("got %q", got)
	}
}

func TestEncodeNamedBlock(t *testing.T) {
	blk := ir.NewBlock("app")
	blk.Insert("debug", ir.FromBool(true))
	want := "app {\n    debug true\n}"
	if got := MustString(blk); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeColorsCover(t *testing.T) {
	blk, err := parse.Parse([]byte(`a { b "c" }`))
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := Encode(blk, &sb, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "a") {
		t.Errorf("colored output lost content: %q", sb.String())
	}
}
