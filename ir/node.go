package ir

type Node struct {
	Type Type

	// Name is the block name for BlockType nodes. The top-level block of a
	// parsed script is anonymous and has an empty Name.
	Name string

	// Keys holds entry keys in source order for BlockType and PairGroupType
	// nodes. Values is parallel to Keys for those types; for CallType it
	// holds the call arguments.
	Keys   []string
	Values []*Node

	String string
	Bool   bool
}

func FromString(v string) *Node {
	return &Node{Type: ScalarType, String: v}
}

func FromAssignment(v string) *Node {
	return &Node{Type: AssignmentType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: FlagType, Bool: v}
}

func NewBlock(name string) *Node {
	return &Node{Type: BlockType, Name: name}
}

func NewCall(args ...*Node) *Node {
	return &Node{Type: CallType, Values: args}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(t Type, kvs []KeyVal) *Node {
	res := &Node{Type: t}
	for _, kv := range kvs {
		res.Insert(kv.Key, kv.Val)
	}
	return res
}

// Get returns the entry under key, or nil. Only BlockType and
// PairGroupType nodes have entries.
func (y *Node) Get(key string) *Node {
	for i, k := range y.Keys {
		if k == key {
			return y.Values[i]
		}
	}
	return nil
}

// Insert stores v under key. A duplicate key silently overwrites the prior
// value, keeping its original position.
func (y *Node) Insert(key string, v *Node) {
	for i, k := range y.Keys {
		if k == key {
			y.Values[i] = v
			return
		}
	}
	y.Keys = append(y.Keys, key)
	y.Values = append(y.Values, v)
}

// Delete removes the entry under key, reporting whether it was present.
func (y *Node) Delete(key string) bool {
	for i, k := range y.Keys {
		if k == key {
			y.Keys = append(y.Keys[:i], y.Keys[i+1:]...)
			y.Values = append(y.Values[:i], y.Values[i+1:]...)
			return true
		}
	}
	return false
}

func (y *Node) Len() int {
	return len(y.Keys)
}

func (y *Node) Clone() *Node {
	res := &Node{
		Type:   y.Type,
		Name:   y.Name,
		String: y.String,
		Bool:   y.Bool,
	}
	if y.Keys != nil {
		res.Keys = append([]string(nil), y.Keys...)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// AsString returns the string value of a Scalar or Assignment node.
func (y *Node) AsString() (string, bool) {
	switch y.Type {
	case ScalarType, AssignmentType:
		return y.String, true
	default:
		return "", false
	}
}

func (y *Node) AsBool() (bool, bool) {
	if y.Type == FlagType {
		return y.Bool, true
	}
	return false, false
}

func (y *Node) AsBlock() (*Node, bool) {
	if y.Type == BlockType {
		return y, true
	}
	return nil, false
}

// Visit walks the tree rooted at y, calling f before and after each node's
// children. Returning dive=false from the pre call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
