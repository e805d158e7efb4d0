package zon

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type tokenType int

const (
	tDotKey tokenType = iota
	tEquals
	tOpenBrace
	tCloseBrace
	tString
	tBool
	tComma
)

var ttype2String = map[tokenType]string{
	tDotKey:     "dot-key",
	tEquals:     "'='",
	tOpenBrace:  "'.{'",
	tCloseBrace: "'}'",
	tString:     "string",
	tBool:       "bool",
	tComma:      "','",
}

func (t tokenType) String() string {
	return ttype2String[t]
}

type ztoken struct {
	ttype tokenType
	str   string
	b     bool
}

// Parse parses manifest source into a value tree.
func Parse(d []byte) (*Value, error) {
	toks, err := tokenize(d)
	if err != nil {
		return nil, err
	}
	v, i, err := parseValue(toks, 0)
	if err != nil {
		return nil, err
	}
	if i != len(toks) {
		return nil, fmt.Errorf("%w: trailing tokens after value", ErrParse)
	}
	return v, nil
}

func tokenize(d []byte) ([]ztoken, error) {
	var toks []ztoken
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case c == '.':
			i++
			if i < len(d) && d[i] == '{' {
				i++
				toks = append(toks, ztoken{ttype: tOpenBrace})
				continue
			}
			start := i
			for i < len(d) && keyByte(d[i]) {
				i++
			}
			key := string(d[start:i])
			switch key {
			case "true":
				toks = append(toks, ztoken{ttype: tBool, b: true})
			case "false":
				toks = append(toks, ztoken{ttype: tBool})
			default:
				toks = append(toks, ztoken{ttype: tDotKey, str: key})
			}
		case c == '=':
			i++
			toks = append(toks, ztoken{ttype: tEquals})
		case c == '{':
			i++
			toks = append(toks, ztoken{ttype: tOpenBrace})
		case c == '}':
			i++
			toks = append(toks, ztoken{ttype: tCloseBrace})
		case c == ',':
			i++
			toks = append(toks, ztoken{ttype: tComma})
		case c == '"':
			i++
			start := i
			for i < len(d) && d[i] != '"' {
				i++
			}
			if i == len(d) {
				return nil, fmt.Errorf("%w: unterminated string at offset %d",
					ErrParse, start-1)
			}
			toks = append(toks, ztoken{ttype: tString, str: string(d[start:i])})
			i++
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if !unicode.IsLetter(r) {
				return nil, fmt.Errorf("%w: unexpected character %q at offset %d",
					ErrParse, r, i)
			}
			start := i
			i += sz
			for i < len(d) && identByte(d[i]) {
				i++
			}
			switch ident := string(d[start:i]); ident {
			case "true":
				toks = append(toks, ztoken{ttype: tBool, b: true})
			case "false":
				toks = append(toks, ztoken{ttype: tBool})
			default:
				return nil, fmt.Errorf("%w: unknown identifier %q at offset %d",
					ErrParse, ident, start)
			}
		}
	}
	return toks, nil
}

func keyByte(c byte) bool {
	return identByte(c) || c == '-'
}

func identByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_'
}

func parseValue(toks []ztoken, i int) (*Value, int, error) {
	if i >= len(toks) {
		return nil, i, fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	switch toks[i].ttype {
	case tOpenBrace:
		i++
		// a string right after the brace makes this a list
		if i < len(toks) && toks[i].ttype == tString {
			return parseList(toks, i)
		}
		return parseObject(toks, i)
	case tString:
		// bare comma separated strings collapse to one value when single
		var elts []*Value
		for i < len(toks) && toks[i].ttype == tString {
			elts = append(elts, FromString(toks[i].str))
			i++
			if i < len(toks) && toks[i].ttype == tComma {
				i++
			} else {
				break
			}
		}
		if len(elts) == 1 {
			return elts[0], i, nil
		}
		return NewList(elts...), i, nil
	case tBool:
		return FromBool(toks[i].b), i + 1, nil
	}
	return nil, i, fmt.Errorf("%w: unexpected %s", ErrParse, toks[i].ttype)
}

func parseList(toks []ztoken, i int) (*Value, int, error) {
	var elts []*Value
	for i < len(toks) && toks[i].ttype != tCloseBrace {
		if toks[i].ttype != tString {
			return nil, i, fmt.Errorf("%w: expected string in list, got %s",
				ErrParse, toks[i].ttype)
		}
		elts = append(elts, FromString(toks[i].str))
		i++
		if i < len(toks) && toks[i].ttype == tComma {
			i++
		}
	}
	if i >= len(toks) {
		return nil, i, fmt.Errorf("%w: missing closing '}' for list", ErrParse)
	}
	return NewList(elts...), i + 1, nil
}

func parseObject(toks []ztoken, i int) (*Value, int, error) {
	obj := NewObject()
	for i < len(toks) && toks[i].ttype != tCloseBrace {
		if toks[i].ttype != tDotKey {
			return nil, i, fmt.Errorf("%w: expected .key, got %s",
				ErrParse, toks[i].ttype)
		}
		key := toks[i].str
		i++
		if i >= len(toks) || toks[i].ttype != tEquals {
			return nil, i, fmt.Errorf("%w: expected '=' after key %q",
				ErrParse, key)
		}
		i++
		val, next, err := parseValue(toks, i)
		if err != nil {
			return nil, i, err
		}
		obj.Insert(key, val)
		i = next
		if i < len(toks) && toks[i].ttype == tComma {
			i++
		}
	}
	if i >= len(toks) {
		return nil, i, fmt.Errorf("%w: missing closing '}' for object", ErrParse)
	}
	return obj, i + 1, nil
}
