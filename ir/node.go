package ir

import "fmt"

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	Name        string

	Values []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
}

func FromInt32(v int32) *Node {
	return &Node{Type: IntType, Int64: int64(v)}
}

func FromInt64(v int64) *Node {
	return &Node{Type: Int64Type, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func NewGroup() *Node {
	return &Node{Type: GroupType}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func NewList() *Node {
	return &Node{Type: ListType}
}

// Add appends child to a container node. Group children require a unique,
// non-empty name; array and list children must be unnamed. Array children
// must be scalars and all share one type. The child is linked to its new
// parent; it must not already be part of a tree.
func (y *Node) Add(name string, child *Node) error {
	switch y.Type {
	case GroupType:
		if name == "" {
			return ErrUnnamed
		}
		if y.Get(name) != nil {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	case ArrayType:
		if name != "" {
			return fmt.Errorf("%w: %q", ErrNamed, name)
		}
		if !child.Type.IsScalar() {
			return fmt.Errorf("%w: got %s", ErrArrayElement, child.Type)
		}
		if len(y.Values) > 0 && y.Values[0].Type != child.Type {
			return fmt.Errorf("%w: %s into array of %s",
				ErrArrayElement, child.Type, y.Values[0].Type)
		}
	case ListType:
		if name != "" {
			return fmt.Errorf("%w: %q", ErrNamed, name)
		}
	default:
		return fmt.Errorf("%w: %s", ErrContainer, y.Type)
	}
	child.Parent = y
	child.ParentIndex = len(y.Values)
	child.Name = name
	y.Values = append(y.Values, child)
	return nil
}

// Get returns the child of a group node with the given name, or nil.
func (y *Node) Get(name string) *Node {
	if y.Type != GroupType {
		return nil
	}
	for _, v := range y.Values {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// At returns the i-th child of a container node, or nil if out of bounds.
func (y *Node) At(i int) *Node {
	if !y.Type.IsContainer() {
		return nil
	}
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Remove removes the named child from a group node and detaches it.
func (y *Node) Remove(name string) error {
	if y.Type != GroupType {
		return fmt.Errorf("%w: %s", ErrContainer, y.Type)
	}
	for i, v := range y.Values {
		if v.Name == name {
			return y.RemoveAt(i)
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

// RemoveAt removes the i-th child of a container node and detaches it.
// Subsequent siblings are reindexed.
func (y *Node) RemoveAt(i int) error {
	if !y.Type.IsContainer() {
		return fmt.Errorf("%w: %s", ErrContainer, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return fmt.Errorf("%w: index %d (len %d)", ErrNotFound, i, len(y.Values))
	}
	removed := y.Values[i]
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
	removed.Parent = nil
	removed.ParentIndex = 0
	return nil
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Name = y.Name
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	if y.Values == nil {
		return dst
	}
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	return dst
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

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

// ToMap returns a name-keyed view of a group node's children, or nil for
// any other node type. Insertion order is lost.
func ToMap(node *Node) map[string]*Node {
	if node.Type != GroupType {
		return nil
	}
	res := make(map[string]*Node, len(node.Values))
	for _, v := range node.Values {
		res[v.Name] = v
	}
	return res
}
