package ir

import "fmt"

type Type int

const (
	NoneType Type = iota
	IntType
	Int64Type
	FloatType
	BoolType
	StringType
	GroupType
	ArrayType
	ListType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NoneType:   "None",
		IntType:    "Int",
		Int64Type:  "Int64",
		FloatType:  "Float",
		BoolType:   "Bool",
		StringType: "String",
		GroupType:  "Group",
		ArrayType:  "Array",
		ListType:   "List",
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
		"None":   NoneType,
		"Int":    IntType,
		"Int64":  Int64Type,
		"Float":  FloatType,
		"Bool":   BoolType,
		"String": StringType,
		"Group":  GroupType,
		"Array":  ArrayType,
		"List":   ListType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NoneType,
		IntType,
		Int64Type,
		FloatType,
		BoolType,
		StringType,
		GroupType,
		ArrayType,
		ListType,
	}
}

// IsScalar reports whether t is one of the five scalar types.
func (t Type) IsScalar() bool {
	switch t {
	case IntType, Int64Type, FloatType, BoolType, StringType:
		return true
	default:
		return false
	}
}

// IsContainer reports whether t can hold child nodes.
func (t Type) IsContainer() bool {
	switch t {
	case GroupType, ArrayType, ListType:
		return true
	default:
		return false
	}
}
