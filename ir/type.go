package ir

import "fmt"

type Type int

const (
	ScalarType Type = iota
	FlagType
	BlockType
	AssignmentType
	CallType
	PairGroupType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ScalarType:     "Scalar",
		FlagType:       "Flag",
		BlockType:      "Block",
		AssignmentType: "Assignment",
		CallType:       "Call",
		PairGroupType:  "PairGroup",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Scalar":     ScalarType,
		"Flag":       FlagType,
		"Block":      BlockType,
		"Assignment": AssignmentType,
		"Call":       CallType,
		"PairGroup":  PairGroupType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ScalarType,
		FlagType,
		BlockType,
		AssignmentType,
		CallType,
		PairGroupType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case BlockType, PairGroupType, CallType:
		return false
	default:
		return true
	}
}
