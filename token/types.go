package token

import "fmt"

type Type int

const (
	TIdent Type = iota
	TString
	TTrue
	TFalse
	TEquals
	TLCurl
	TRCurl
	TLParen
	TRParen
)

func (t Type) String() string {
	return map[Type]string{
		TIdent:  "TIdent",
		TString: "TString",
		TTrue:   "TTrue",
		TFalse:  "TFalse",
		TEquals: "TEquals",
		TLCurl:  "TLCurl",
		TRCurl:  "TRCurl",
		TLParen: "TLParen",
		TRParen: "TRParen",
	}[t]
}

type Token struct {
	Type  Type
	Pos   *Pos
	Bytes []byte
}

// String returns the token text. Quoted strings are returned without
// their delimiters; the tokenizer stores them stripped.
func (t *Token) String() string {
	return string(t.Bytes)
}

// Bool reports the value of a TTrue or TFalse token.
func (t *Token) Bool() bool {
	return t.Type == TTrue
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}
