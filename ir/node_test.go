package ir

import (
	"errors"
	"testing"
)

func TestGroupAdd(t *testing.T) {
	g := NewGroup()
	if err := g.Add("a", FromInt32(1)); err != nil {
		t.Fatal(err)
	}
	if err := g.Add("b", FromString("x")); err != nil {
		t.Fatal(err)
	}
	if err := g.Add("a", FromInt32(2)); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate add: got %v, want ErrDuplicateName", err)
	}
	if err := g.Add("", FromInt32(3)); !errors.Is(err, ErrUnnamed) {
		t.Errorf("unnamed add: got %v, want ErrUnnamed", err)
	}
	if n := g.Get("a"); n == nil || n.Int64 != 1 {
		t.Errorf("Get(a) = %v", n)
	}
	if n := g.Get("missing"); n != nil {
		t.Errorf("Get(missing) = %v, want nil", n)
	}
	if g.Values[1].ParentIndex != 1 || g.Values[1].Parent != g {
		t.Error("parent linkage not maintained")
	}
}

func TestArrayHomogeneity(t *testing.T) {
	a := NewArray()
	if err := a.Add("", FromInt32(1)); err != nil {
		t.Fatal(err)
	}
	if err := a.Add("", FromInt32(2)); err != nil {
		t.Fatal(err)
	}
	if err := a.Add("", FromString("x")); !errors.Is(err, ErrArrayElement) {
		t.Errorf("mixed-type add: got %v, want ErrArrayElement", err)
	}
	if err := a.Add("", NewGroup()); !errors.Is(err, ErrArrayElement) {
		t.Errorf("group into array: got %v, want ErrArrayElement", err)
	}
	if err := a.Add("x", FromInt32(3)); !errors.Is(err, ErrNamed) {
		t.Errorf("named array element: got %v, want ErrNamed", err)
	}
}

func TestListHeterogeneous(t *testing.T) {
	l := NewList()
	for _, child := range []*Node{FromInt32(1), FromString("two"), FromBool(true), NewGroup()} {
		if err := l.Add("", child); err != nil {
			t.Fatal(err)
		}
	}
	if len(l.Values) != 4 {
		t.Fatalf("len = %d, want 4", len(l.Values))
	}
}

func TestScalarAdd(t *testing.T) {
	s := FromInt32(1)
	if err := s.Add("a", FromInt32(2)); !errors.Is(err, ErrContainer) {
		t.Errorf("add to scalar: got %v, want ErrContainer", err)
	}
}

func TestRemove(t *testing.T) {
	g := NewGroup()
	for _, name := range []string{"a", "b", "c"} {
		if err := g.Add(name, FromString(name)); err != nil {
			t.Fatal(err)
		}
	}
	b := g.Get("b")
	if err := g.Remove("b"); err != nil {
		t.Fatal(err)
	}
	if b.Parent != nil {
		t.Error("removed node still has parent")
	}
	if g.Get("b") != nil {
		t.Error("removed node still reachable")
	}
	// remaining siblings reindexed
	if c := g.Get("c"); c == nil || c.ParentIndex != 1 {
		t.Errorf("sibling not reindexed: %+v", c)
	}
	if err := g.Remove("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("remove absent: got %v, want ErrNotFound", err)
	}
}

func TestRemoveAt(t *testing.T) {
	l := NewList()
	for i := range 3 {
		if err := l.Add("", FromInt32(int32(i))); err != nil {
			t.Fatal(err)
		}
	}
	if err := l.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if len(l.Values) != 2 || l.Values[0].Int64 != 1 || l.Values[0].ParentIndex != 0 {
		t.Errorf("after RemoveAt(0): %+v", l.Values)
	}
	if err := l.RemoveAt(5); !errors.Is(err, ErrNotFound) {
		t.Errorf("out of bounds: got %v, want ErrNotFound", err)
	}
}

func TestClone(t *testing.T) {
	g := NewGroup()
	sub := NewGroup()
	if err := g.Add("sub", sub); err != nil {
		t.Fatal(err)
	}
	if err := sub.Add("n", FromInt64(42)); err != nil {
		t.Fatal(err)
	}
	c := g.Clone()
	if !Equal(g, c) {
		t.Fatal("clone not equal")
	}
	if err := c.Get("sub").Add("m", FromBool(true)); err != nil {
		t.Fatal(err)
	}
	if Equal(g, c) {
		t.Fatal("clone shares structure with original")
	}
	if c.Get("sub").Parent != c {
		t.Error("clone parent linkage broken")
	}
}

func TestRoot(t *testing.T) {
	g := NewGroup()
	sub := NewGroup()
	if err := g.Add("sub", sub); err != nil {
		t.Fatal(err)
	}
	leaf := FromInt32(1)
	if err := sub.Add("leaf", leaf); err != nil {
		t.Fatal(err)
	}
	if leaf.Root() != g {
		t.Error("Root() did not reach top")
	}
	if g.Root() != g {
		t.Error("Root() of root is not itself")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := NewGroup()
	if err := g.Add("s", FromString("hi")); err != nil {
		t.Fatal(err)
	}
	arr := NewArray()
	if err := g.Add("a", arr); err != nil {
		t.Fatal(err)
	}
	if err := arr.Add("", FromFloat(2.5)); err != nil {
		t.Fatal(err)
	}
	d, err := ToJSON(g)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(g, back) {
		t.Errorf("json round trip: got %s, want %v", d, back)
	}
	if back.Get("a").Parent != back {
		t.Error("parent linkage not restored")
	}
}
