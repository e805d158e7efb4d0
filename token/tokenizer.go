package token

import (
	"unicode"
	"unicode/utf8"
)

// Tokenize scans d into its token sequence. It fails with a *LexErr
// wrapping ErrLex on the first unrecognized construct; no partial token
// sequence is returned on failure.
func Tokenize(d []byte) ([]Token, error) {
	doc := NewPosDoc(d)
	toks := []Token{}
	i, n := 0, len(d)
	for i < n {
		c := d[i]
		switch c {
		case '\n':
			doc.nl(i)
			i++
		case ' ', '\t', '\r':
			i++
		case '{':
			toks = append(toks, Token{Type: TLCurl, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '}':
			toks = append(toks, Token{Type: TRCurl, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '(':
			toks = append(toks, Token{Type: TLParen, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ')':
			toks = append(toks, Token{Type: TRParen, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '=':
			toks = append(toks, Token{Type: TEquals, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '"', '\'':
			tok, ni, err := quoted(d, i, doc)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = ni
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if !identStart(r) {
				return nil, unexpectedCharErr(r, doc.Pos(i))
			}
			start := i
			i += sz
			for i < n {
				r, sz = utf8.DecodeRune(d[i:])
				if !identPart(r) {
					break
				}
				i += sz
			}
			ident := d[start:i]
			// an identifier glued to '(' must form an empty call
			if i < n && d[i] == '(' {
				if i+1 >= n || d[i+1] != ')' {
					return nil, callArgsErr(doc.Pos(i + 1))
				}
				toks = append(toks,
					Token{Type: TIdent, Pos: doc.Pos(start), Bytes: ident},
					Token{Type: TLParen, Pos: doc.Pos(i), Bytes: d[i : i+1]},
					Token{Type: TRParen, Pos: doc.Pos(i + 1), Bytes: d[i+1 : i+2]})
				i += 2
				continue
			}
			switch string(ident) {
			case "true":
				toks = append(toks, Token{Type: TTrue, Pos: doc.Pos(start), Bytes: ident})
			case "false":
				toks = append(toks, Token{Type: TFalse, Pos: doc.Pos(start), Bytes: ident})
			default:
				toks = append(toks, Token{Type: TIdent, Pos: doc.Pos(start), Bytes: ident})
			}
		}
	}
	return toks, nil
}

// quoted scans a quoted span starting at d[i]. The opening quote, '"' or
// '\'', determines the closing delimiter. The span is taken verbatim, no
// escape sequences.
func quoted(d []byte, i int, doc *PosDoc) (Token, int, error) {
	open := d[i]
	start := i
	i++
	for i < len(d) {
		if d[i] == open {
			return Token{Type: TString, Pos: doc.Pos(start), Bytes: d[start+1 : i]}, i + 1, nil
		}
		if d[i] == '\n' {
			doc.nl(i)
		}
		i++
	}
	return Token{}, 0, unterminatedStringErr(doc.Pos(start))
}

func identStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func identPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-'
}
