package ir

import (
	"testing"
)

func group(kvs ...*Node) *Node {
	g := NewGroup()
	for _, kv := range kvs {
		name := kv.Name
		kv.Name = ""
		if err := g.Add(name, kv); err != nil {
			panic(err)
		}
	}
	return g
}

func named(name string, n *Node) *Node {
	n.Name = name
	return n
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		{"nil < node", nil, FromBool(false), -1},
		{"Int < Int64", FromInt32(1), FromInt64(1), -1},
		{"Int64 < Float", FromInt64(1), FromFloat(1), -1},
		{"Bool < String", FromBool(true), FromString("a"), -1},
		{"Group < Array", NewGroup(), NewArray(), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},
		{"1 < 2", FromInt32(1), FromInt32(2), -1},
		{"1.5 == 1.5", FromFloat(1.5), FromFloat(1.5), 0},
		{"a < b", FromString("a"), FromString("b"), -1},

		{"empty group == empty group", NewGroup(), NewGroup(), 0},
		{"short group < long group",
			group(named("a", FromInt32(1))),
			group(named("a", FromInt32(1)), named("b", FromInt32(2))), -1},
		{"group name order matters",
			group(named("a", FromInt32(1)), named("b", FromInt32(2))),
			group(named("b", FromInt32(2)), named("a", FromInt32(1))), -1},
		{"group value compared",
			group(named("a", FromInt32(1))),
			group(named("a", FromInt32(2))), -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.expected {
				t.Errorf("Compare = %d, want %d", got, tc.expected)
			}
			if got := Compare(tc.b, tc.a); got != -tc.expected {
				t.Errorf("reverse Compare = %d, want %d", got, -tc.expected)
			}
		})
	}
}
