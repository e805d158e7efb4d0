package ir

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ToAny projects a tree onto plain Go values suitable for JSON or YAML
// marshaling: blocks and pair groups become maps, calls become argument
// slices, scalars and assignments become strings, flags become bools.
// The projection normalizes: the scalar/assignment distinction, pair-group
// shape and entry order are not represented.
func ToAny(y *Node) any {
	switch y.Type {
	case ScalarType, AssignmentType:
		return y.String
	case FlagType:
		return y.Bool
	case CallType:
		args := make([]any, len(y.Values))
		for i, v := range y.Values {
			args[i] = ToAny(v)
		}
		return args
	case BlockType, PairGroupType:
		res := make(map[string]any, len(y.Keys))
		for i, k := range y.Keys {
			res[k] = ToAny(y.Values[i])
		}
		return res
	default:
		panic("type")
	}
}

// FromAny rebuilds a tree from plain values, inverting ToAny with the
// normalizations that projection implies: maps become blocks with keys in
// sorted order, strings become assignments, bools become flags, slices
// become calls. Numbers are kept as assignment strings since the DSL has
// no numeric literal. A null has no DSL rendering and is an error.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case string:
		return FromAssignment(t), nil
	case bool:
		return FromBool(t), nil
	case float64:
		return FromAssignment(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case []any:
		args := make([]*Node, len(t))
		for i, e := range t {
			a, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		return NewCall(args...), nil
	case map[string]any:
		blk := NewBlock("")
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			val, err := FromAny(t[k])
			if err != nil {
				return nil, err
			}
			if val.Type == BlockType {
				val.Name = k
			}
			blk.Insert(k, val)
		}
		return blk, nil
	case nil:
		return nil, fmt.Errorf("cannot represent null in a build script")
	default:
		return nil, fmt.Errorf("cannot represent %T in a build script", v)
	}
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToAny(y))
}

func (y *Node) UnmarshalJSON(d []byte) error {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return err
	}
	n, err := FromAny(v)
	if err != nil {
		return err
	}
	*y = *n
	return nil
}
