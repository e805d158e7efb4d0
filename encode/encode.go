package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/uniparse/go-uniparse/ir"
)

type EncState struct {
	depth, indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders node to w. A block renders as its entries; the anonymous
// top-level block renders without surrounding braces. Any other node
// renders in its value form, which is what a path lookup result looks like.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	switch node.Type {
	case ir.BlockType:
		if node.Name == "" {
			return encodeEntries(node, w, es)
		}
		return encodeEntry(node.Name, node, w, es)
	case ir.PairGroupType:
		return encodePairs("", node, w, es)
	default:
		if err := writeString(w, es.pad()); err != nil {
			return err
		}
		return writeString(w, es.value(node))
	}
}

func encodeEntries(blk *ir.Node, w io.Writer, es *EncState) error {
	for i, key := range blk.Keys {
		if err := encodeEntry(key, blk.Values[i], w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeEntry(key string, val *ir.Node, w io.Writer, es *EncState) error {
	pad := es.pad()
	field := es.color(val.Type, FieldColor, key)
	switch val.Type {
	case ir.ScalarType, ir.FlagType:
		return writeString(w, pad+field+" "+es.value(val)+"\n")
	case ir.AssignmentType:
		sep := es.color(val.Type, SepColor, "=")
		return writeString(w, pad+field+" "+sep+" "+es.value(val)+"\n")
	case ir.CallType:
		return writeString(w, pad+field+es.value(val)+"\n")
	case ir.BlockType:
		open := es.color(val.Type, SepColor, "{")
		if err := writeString(w, pad+field+" "+open+"\n"); err != nil {
			return err
		}
		es.depth++
		if err := encodeEntries(val, w, es); err != nil {
			return err
		}
		es.depth--
		return writeString(w, pad+es.color(val.Type, SepColor, "}")+"\n")
	case ir.PairGroupType:
		return encodePairs(key, val, w, es)
	default:
		return fmt.Errorf("cannot encode type %s", val.Type)
	}
}

// encodePairs renders a pair group. The parsed two-entry shape, where the
// first key is "value", reconstructs the original single-line source form
// `key "a" sub "b"`. Any other shape falls back to one line per pair.
func encodePairs(key string, pg *ir.Node, w io.Writer, es *EncState) error {
	pad := es.pad()
	prefix := ""
	if key != "" {
		prefix = es.color(pg.Type, FieldColor, key) + " "
	}
	if pg.Len() == 2 && pg.Keys[0] == "value" {
		v0, ok0 := pg.Values[0].AsString()
		v1, ok1 := pg.Values[1].AsString()
		if ok0 && ok1 {
			return writeString(w, pad+prefix+
				es.color(ir.ScalarType, ValueColor, quote(v0))+" "+
				es.color(pg.Type, FieldColor, pg.Keys[1])+" "+
				es.color(ir.ScalarType, ValueColor, quote(v1))+"\n")
		}
	}
	for i, sub := range pg.Keys {
		s, ok := pg.Values[i].AsString()
		if !ok {
			continue
		}
		line := pad + prefix + es.color(pg.Type, FieldColor, sub) + " " +
			es.color(ir.ScalarType, ValueColor, quote(s)) + "\n"
		if err := writeString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) value(val *ir.Node) string {
	switch val.Type {
	case ir.ScalarType, ir.AssignmentType:
		return es.color(val.Type, ValueColor, quote(val.String))
	case ir.FlagType:
		if val.Bool {
			return es.color(val.Type, ValueColor, "true")
		}
		return es.color(val.Type, ValueColor, "false")
	case ir.CallType:
		if len(val.Values) == 0 {
			return es.color(val.Type, SepColor, "()")
		}
		args := make([]string, len(val.Values))
		for i, a := range val.Values {
			switch a.Type {
			case ir.ScalarType, ir.AssignmentType:
				args[i] = es.color(a.Type, ValueColor, quote(a.String))
			case ir.FlagType:
				args[i] = es.value(a)
			default:
				// lossy placeholder for argument kinds the DSL cannot spell
				args[i] = "?"
			}
		}
		return es.color(val.Type, SepColor, "(") +
			strings.Join(args, ", ") +
			es.color(val.Type, SepColor, ")")
	default:
		return ""
	}
}

func (es *EncState) pad() string {
	return strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
}

func (es *EncState) color(t ir.Type, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, attr, s)
}

func quote(s string) string {
	return `"` + s + `"`
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
