package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result is 0 if a==b, -1 if a < b, and +1 if a > b. Nodes of
// different types order by type; group children compare by name then
// value in insertion order. Parent linkage is ignored.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case IntType, Int64Type:
		return cmp.Compare(a.Int64, b.Int64)
	case FloatType:
		return cmp.Compare(a.Float64, b.Float64)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case StringType:
		return strings.Compare(a.String, b.String)
	case GroupType:
		return compareChildren(a, b, true)
	case ArrayType, ListType:
		return compareChildren(a, b, false)
	}
	return 0
}

func compareChildren(a, b *Node, named bool) int {
	if c := cmp.Compare(len(a.Values), len(b.Values)); c != 0 {
		return c
	}
	for i := range a.Values {
		av, bv := a.Values[i], b.Values[i]
		if named {
			if c := strings.Compare(av.Name, bv.Name); c != 0 {
				return c
			}
		}
		if c := Compare(av, bv); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether two nodes are structurally equal: same shape,
// names, order and values.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
