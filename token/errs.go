package token

import (
	"errors"
	"fmt"
)

// ErrLex is the sentinel for all lexical errors.
var ErrLex = errors.New("lexical error")

type LexErr struct {
	Err error
	Pos Pos
}

func (e *LexErr) Unwrap() error {
	return e.Err
}

func NewLexErr(err error, p *Pos) *LexErr {
	return &LexErr{Err: err, Pos: *p}
}

func (e *LexErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func unexpectedCharErr(c rune, p *Pos) error {
	return NewLexErr(fmt.Errorf("%w: unexpected character %q", ErrLex, c), p)
}

func unterminatedStringErr(p *Pos) error {
	return NewLexErr(fmt.Errorf("%w: unterminated string", ErrLex), p)
}

func callArgsErr(p *Pos) error {
	return NewLexErr(fmt.Errorf("%w: expected ')' after '(': only empty argument lists are supported", ErrLex), p)
}
