package ir

import (
	"encoding/json"
)

// The IR itself round-trips through JSON, which makes trees inspectable
// and transportable without cfg parsing support. Parent linkage is
// reconstructed on unmarshal.

type irBase struct {
	Type   Type    `json:"type"`
	Name   string  `json:"name,omitempty"`
	Values []*Node `json:"values,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   y.Type,
		Name:   y.Name,
		Values: y.Values,
	}
	switch y.Type {
	case IntType, Int64Type:
		type C struct {
			irBase
			Int64 int64 `json:"int"`
		}
		return json.Marshal(C{irBase: *base, Int64: y.Int64})
	case FloatType:
		type C struct {
			irBase
			Float64 float64 `json:"float"`
		}
		return json.Marshal(C{irBase: *base, Float64: y.Float64})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		Int64   int64   `json:"int"`
		Float64 float64 `json:"float"`
		Bool    bool    `json:"bool"`
		String  string  `json:"string"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Name = tmp.Name
	y.Values = tmp.Values
	y.Int64 = tmp.Int64
	y.Float64 = tmp.Float64
	y.Bool = tmp.Bool
	y.String = tmp.String
	for i, v := range y.Values {
		v.Parent = y
		v.ParentIndex = i
	}
	return nil
}

func ToJSON(node *Node) ([]byte, error) {
	return json.Marshal(node)
}

func FromJSON(d []byte) (*Node, error) {
	node := &Node{}
	if err := json.Unmarshal(d, node); err != nil {
		return nil, err
	}
	return node, nil
}
