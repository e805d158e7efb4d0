package token

import (
	"errors"
	"testing"
)

type tokTest struct {
	in    string
	types []Type
	texts []string
}

func TestTokenizeOK(t *testing.T) {
	tts := []tokTest{
		{
			in:    `plugins {`,
			types: []Type{TIdent, TLCurl},
			texts: []string{"plugins", "{"},
		},
		{
			in:    `mainClassName = "com.example.Main"`,
			types: []Type{TIdent, TEquals, TString},
			texts: []string{"mainClassName", "=", "com.example.Main"},
		},
		{
			in:    `debug true`,
			types: []Type{TIdent, TTrue},
			texts: []string{"debug", "true"},
		},
		{
			in:    `enabled false`,
			types: []Type{TIdent, TFalse},
			texts: []string{"enabled", "false"},
		},
		{
			in:    `deploy()`,
			types: []Type{TIdent, TLParen, TRParen},
			texts: []string{"deploy", "(", ")"},
		},
		{
			in:    `id 'application'`,
			types: []Type{TIdent, TString},
			texts: []string{"id", "application"},
		},
		{
			in:    `options "opt1" level "debug"`,
			types: []Type{TIdent, TString, TIdent, TString},
			texts: []string{"options", "opt1", "level", "debug"},
		},
		{
			in:    "a {\n\tb \"c\"\n}",
			types: []Type{TIdent, TLCurl, TIdent, TString, TRCurl},
			texts: []string{"a", "{", "b", "c", "}"},
		},
		{
			in:    `_x.y-z "v"`,
			types: []Type{TIdent, TString},
			texts: []string{"_x.y-z", "v"},
		},
		{
			// quotes do not nest, the opening quote picks the delimiter
			in:    `key "it's fine"`,
			types: []Type{TIdent, TString},
			texts: []string{"key", "it's fine"},
		},
		{
			in:    "",
			types: []Type{},
			texts: []string{},
		},
	}
	for _, tt := range tts {
		toks, err := Tokenize([]byte(tt.in))
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.types) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.types))
			continue
		}
		for i := range toks {
			if toks[i].Type != tt.types[i] {
				t.Errorf("%q: token %d type %s, want %s", tt.in, i, toks[i].Type, tt.types[i])
			}
			if toks[i].String() != tt.texts[i] {
				t.Errorf("%q: token %d text %q, want %q", tt.in, i, toks[i].String(), tt.texts[i])
			}
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	for _, in := range []string{
		"invalid$char",
		"$",
		"deploy(x)",
		"deploy(",
		`key "unterminated`,
		"key 'unterminated",
		"@foo",
	} {
		_, err := Tokenize([]byte(in))
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		if !errors.Is(err, ErrLex) {
			t.Errorf("%q: error %v does not wrap ErrLex", in, err)
		}
	}
}

func TestTokenizeTrueWithParensIsCall(t *testing.T) {
	// the keyword check only applies when the identifier is not a call
	toks, err := Tokenize([]byte("true()"))
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Type != TIdent {
		t.Errorf("got %s, want TIdent", toks[0].Type)
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize([]byte("a \"b\"\nc true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := toks[0].Pos.Line(); got != 0 {
		t.Errorf("token a on line %d, want 0", got)
	}
	if got := toks[2].Pos.Line(); got != 1 {
		t.Errorf("token c on line %d, want 1", got)
	}
	if got := toks[2].Pos.Col(); got != 0 {
		t.Errorf("token c at col %d, want 0", got)
	}
	if got := toks[3].Pos.Col(); got != 2 {
		t.Errorf("token true at col %d, want 2", got)
	}
}

func TestTokenizeErrPosition(t *testing.T) {
	_, err := Tokenize([]byte("ok \"v\"\nbad $\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	var le *LexErr
	if !errors.As(err, &le) {
		t.Fatalf("error %T is not *LexErr", err)
	}
	if got := le.Pos.Line(); got != 1 {
		t.Errorf("error on line %d, want 1", got)
	}
}
