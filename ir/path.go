package ir

import (
	"strconv"

	"github.com/cfg-format/go-cfg/ir/cfgpath"
)

// Path returns the dotted path of this node's position in the tree.
//
// Examples:
//   - root node → ""
//   - group member "a" → "a"
//   - element 0 of array "a" → "a[0]"
//   - nested member → "a.b"
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	prefix := y.Parent.Path()
	switch y.Parent.Type {
	case GroupType:
		if prefix == "" {
			return y.Name
		}
		return prefix + "." + y.Name
	default:
		return prefix + "[" + strconv.Itoa(y.ParentIndex) + "]"
	}
}

// Lookup resolves a dotted path relative to this node and returns the
// target node, or nil when the path does not resolve. Resolution walks
// left to right; the first segment that fails aborts the walk. Absence is
// never an error: a syntactically invalid path also yields nil.
func (y *Node) Lookup(path string) *Node {
	p, err := cfgpath.Parse(path)
	if err != nil {
		return nil
	}
	return y.lookup(p)
}

func (y *Node) lookup(p *cfgpath.Path) *Node {
	res := y
	for p != nil {
		switch res.Type {
		case GroupType:
			if p.Name == nil {
				return nil
			}
			res = res.Get(*p.Name)
			if res == nil {
				return nil
			}
		case ArrayType, ListType:
			if p.Index == nil {
				return nil
			}
			res = res.At(*p.Index)
			if res == nil {
				return nil
			}
		default:
			return nil
		}
		p = p.Next
	}
	return res
}
