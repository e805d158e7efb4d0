package parse

import (
	"fmt"

	"github.com/uniparse/go-uniparse/debug"
	"github.com/uniparse/go-uniparse/ir"
	"github.com/uniparse/go-uniparse/token"
)

// Parse parses build-script source into the implicit, anonymous top-level
// block. Comment stripping runs first unless disabled with NoStrip.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if !pOpts.noStrip {
		d = []byte(StripComments(string(d)))
		if debug.Strip() {
			debug.Logf("STRIPPED: %s", string(d))
		}
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		debug.Logf("TOKENS: %s", token.Dump(toks))
	}
	off := 0
	return parseBlock(toks, "", &off, false)
}

// peek returns the token ahead positions past i without consuming it, or
// nil past the end of the stream.
func peek(toks []token.Token, i, ahead int) *token.Token {
	if i+ahead >= len(toks) {
		return nil
	}
	return &toks[i+ahead]
}

func parseBlock(toks []token.Token, name string, pi *int, nested bool) (*ir.Node, error) {
	blk := ir.NewBlock(name)
	for *pi < len(toks) {
		t := &toks[*pi]
		switch t.Type {
		case token.TRCurl:
			if !nested {
				return nil, fmt.Errorf("%w: unexpected %q %s", ErrParse, "}", t.Pos)
			}
			*pi++
			return blk, nil
		case token.TIdent:
			key := t.String()
			*pi++
			val, err := parseEntry(toks, key, pi)
			if err != nil {
				return nil, err
			}
			blk.Insert(key, val)
		default:
			return nil, fmt.Errorf("%w: unexpected token %q %s", ErrParse, t.String(), t.Pos)
		}
	}
	if nested {
		return nil, fmt.Errorf("%w: missing closing brace for block %q", ErrParse, name)
	}
	return blk, nil
}

// parseEntry resolves what follows a candidate key. The order of the cases
// is a hard contract; reordering changes what ambiguous input parses to:
//
//  1. '{'            -> nested block
//  2. '='            -> assignment, string required
//  3. str ident str  -> pair group (bounded 3-token lookahead)
//  4. '(' ')'        -> empty call
//  5. str | bool     -> scalar | flag
func parseEntry(toks []token.Token, key string, pi *int) (*ir.Node, error) {
	t0 := peek(toks, *pi, 0)
	if t0 == nil {
		return nil, fmt.Errorf("%w: expected token after identifier %q, but reached end", ErrParse, key)
	}
	if t0.Type == token.TLCurl {
		*pi++
		return parseBlock(toks, key, pi, true)
	}
	if t0.Type == token.TEquals {
		*pi++
		v := peek(toks, *pi, 0)
		if v == nil || v.Type != token.TString {
			return nil, fmt.Errorf("%w: expected string after %q = %s", ErrParse, key, t0.Pos)
		}
		*pi++
		return ir.FromAssignment(v.String()), nil
	}
	if t0.Type == token.TString {
		t1, t2 := peek(toks, *pi, 1), peek(toks, *pi, 2)
		if t1 != nil && t1.Type == token.TIdent && t2 != nil && t2.Type == token.TString {
			*pi += 3
			return ir.FromKeyVals(ir.PairGroupType, []ir.KeyVal{
				{Key: "value", Val: ir.FromString(t0.String())},
				{Key: t1.String(), Val: ir.FromString(t2.String())},
			}), nil
		}
	}
	if t0.Type == token.TLParen {
		if t1 := peek(toks, *pi, 1); t1 != nil && t1.Type == token.TRParen {
			*pi += 2
			return ir.NewCall(), nil
		}
	}
	switch t0.Type {
	case token.TString:
		*pi++
		return ir.FromString(t0.String()), nil
	case token.TTrue, token.TFalse:
		*pi++
		return ir.FromBool(t0.Bool()), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %q after identifier %q %s",
			ErrParse, t0.String(), key, t0.Pos)
	}
}
