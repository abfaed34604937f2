package cfg

import "github.com/cfg-format/go-cfg/ir"

// OptionType identifies the scalar type of a setting value.
type OptionType int

const (
	IntegerType OptionType = iota
	Int64Type
	FloatType
	StringType
	BooleanType
)

func (t OptionType) String() string {
	s, ok := map[OptionType]string{
		IntegerType: "Integer",
		Int64Type:   "Int64",
		FloatType:   "Float",
		StringType:  "String",
		BooleanType: "Boolean",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func optionType(t ir.Type) (OptionType, bool) {
	switch t {
	case ir.IntType:
		return IntegerType, true
	case ir.Int64Type:
		return Int64Type, true
	case ir.FloatType:
		return FloatType, true
	case ir.StringType:
		return StringType, true
	case ir.BoolType:
		return BooleanType, true
	default:
		return 0, false
	}
}
