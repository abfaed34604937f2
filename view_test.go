package cfg

import (
	"errors"
	"testing"
)

func TestWriterDuplicateName(t *testing.T) {
	c := New()
	w := c.CreateSection("root")
	if !w.CreateSection("x").Exists() {
		t.Fatal("first CreateSection failed")
	}
	if w.CreateSection("x").Exists() {
		t.Error("duplicate CreateSection succeeded")
	}
	if !w.WriteInt32("n", 1).Exists() {
		t.Fatal("first write failed")
	}
	if w.WriteString("n", "clash").Exists() {
		t.Error("duplicate write succeeded")
	}
}

func TestWriterChain(t *testing.T) {
	c := New()
	w := c.CreateSection("s").
		WriteInt32("a", 1).
		WriteBool("b", true).
		WriteString("c", "three")
	if !w.Exists() {
		t.Fatal("chain broke")
	}
	// a failed link unbinds the rest of the chain
	w = c.CreateSection("t").WriteInt32("a", 1).WriteInt32("a", 2).WriteInt32("b", 3)
	if w.Exists() {
		t.Error("chain survived a duplicate write")
	}
	if c.Value("t.b").Exists() {
		t.Error("write after failed link landed")
	}
}

func TestWriterNonGroup(t *testing.T) {
	c := New()
	s := c.CreateSection("s")
	arr := s.CreateArray("arr")
	if !arr.Exists() {
		t.Fatal("CreateArray failed")
	}
	// arrays and lists take no named settings
	if arr.WriteInt32("n", 1).Exists() {
		t.Error("wrote a named setting into an array")
	}
	if arr.CreateSection("g").Exists() {
		t.Error("created a group inside an array")
	}
	lst := s.CreateList("lst")
	if lst.WriteString("n", "x").Exists() {
		t.Error("wrote a named setting into a list")
	}
}

func TestUnboundWriter(t *testing.T) {
	w := &OptionWriter{}
	if w.Exists() {
		t.Error("unbound writer exists")
	}
	if w.CreateSection("x").Exists() || w.WriteInt32("n", 1).Exists() {
		t.Error("unbound writer accepted an operation")
	}
	if err := w.Delete(); !errors.Is(err, ErrElementNotExists) {
		t.Errorf("got %v, want ErrElementNotExists", err)
	}
}

func TestReaderTypes(t *testing.T) {
	c := New()
	if err := c.LoadFromString(`
g = { n = 1; };
a = [ 1, 2 ];
l = ( "x" );
s = "str";
`); err != nil {
		t.Fatal(err)
	}
	if v, ok := c.Value("g").IsSection(); !ok || !v {
		t.Error("g not a section")
	}
	if v, ok := c.Value("a").IsArray(); !ok || !v {
		t.Error("a not an array")
	}
	if v, ok := c.Value("l").IsList(); !ok || !v {
		t.Error("l not a list")
	}
	if v, ok := c.Value("s").IsSection(); !ok || v {
		t.Error("s reported as section")
	}
	if _, ok := c.Value("absent").IsSection(); ok {
		t.Error("unbound IsSection reported ok")
	}
	if tp, ok := c.Value("g.n").ValueType(); !ok || tp != IntegerType {
		t.Errorf("g.n type: got %v, %t", tp, ok)
	}
	if _, ok := c.Value("g").ValueType(); ok {
		t.Error("ValueType ok for a group")
	}
}

func TestReaderConversions(t *testing.T) {
	c := New()
	if err := c.LoadFromString(`
i = 12;
big = 4294967297L;
f = -3.9;
b = true;
s = "nope";
`); err != nil {
		t.Fatal(err)
	}
	if v, ok := c.Value("i").AsInt64(); !ok || v != 12 {
		t.Errorf("i as int64: got %d, %t", v, ok)
	}
	if v, ok := c.Value("i").AsFloat64(); !ok || v != 12.0 {
		t.Errorf("i as float: got %v, %t", v, ok)
	}
	// 2^32+1 loses its high bits on the way to int32
	if v, ok := c.Value("big").AsInt32(); !ok || v != 1 {
		t.Errorf("big as int32: got %d, %t", v, ok)
	}
	// float conversion truncates toward zero
	if v, ok := c.Value("f").AsInt32(); !ok || v != -3 {
		t.Errorf("f as int32: got %d, %t", v, ok)
	}
	if v, ok := c.Value("f").AsInt64(); !ok || v != -3 {
		t.Errorf("f as int64: got %d, %t", v, ok)
	}
	if _, ok := c.Value("b").AsInt32(); ok {
		t.Error("bool converted to int")
	}
	if _, ok := c.Value("s").AsInt32(); ok {
		t.Error("string converted to int")
	}
	if _, ok := c.Value("i").AsBool(); ok {
		t.Error("int converted to bool")
	}
	if _, ok := c.Value("i").AsString(); ok {
		t.Error("int converted to string")
	}
}

func TestReaderParent(t *testing.T) {
	c := New()
	if err := c.LoadFromString(`outer = { inner = { n = 1; }; };`); err != nil {
		t.Fatal(err)
	}
	r := c.Value("outer.inner.n").Parent().Parent()
	if v, ok := r.IsSection(); !ok || !v {
		t.Error("grandparent not a section")
	}
	if v, ok := r.Value("inner.n").AsInt32(); !ok || v != 1 {
		t.Errorf("relative lookup: got %d, %t", v, ok)
	}
	root := c.Value("outer").Parent()
	if !root.Exists() {
		t.Fatal("parent of outer should be the root")
	}
	if root.Parent().Exists() {
		t.Error("root has a parent")
	}
	if (&OptionReader{}).Parent().Exists() {
		t.Error("unbound Parent exists")
	}
}

func TestDelete(t *testing.T) {
	c := New()
	if err := c.LoadFromString(`
g = { n = 1; m = 2; };
a = [ 1, 2, 3 ];
`); err != nil {
		t.Fatal(err)
	}
	// scalar removed by position
	if err := c.Value("g.n").Delete(); err != nil {
		t.Fatal(err)
	}
	if c.Value("g.n").Exists() {
		t.Error("g.n still resolves")
	}
	if v, ok := c.Value("g.m").AsInt32(); !ok || v != 2 {
		t.Errorf("sibling disturbed: got %d, %t", v, ok)
	}
	// array element removed by position, rest shifts down
	if err := c.Value("a.[1]").Delete(); err != nil {
		t.Fatal(err)
	}
	if v, ok := c.Value("a.[1]").AsInt32(); !ok || v != 3 {
		t.Errorf("a[1] after delete: got %d, %t", v, ok)
	}
	// group removed by name
	if err := c.Value("g").Delete(); err != nil {
		t.Fatal(err)
	}
	if c.Value("g").Exists() {
		t.Error("g still resolves")
	}
}

func TestDeleteErrors(t *testing.T) {
	c := New()
	if err := c.LoadFromString(`n = 1;`); err != nil {
		t.Fatal(err)
	}
	if err := (&OptionReader{}).Delete(); !errors.Is(err, ErrElementNotExists) {
		t.Errorf("unbound: got %v", err)
	}
	if err := (&OptionReader{node: c.Root()}).Delete(); !errors.Is(err, ErrDelete) {
		t.Errorf("root: got %v", err)
	}
}

func TestDeleteInvalidatesViews(t *testing.T) {
	c := New()
	if err := c.LoadFromString(`g = { n = 7; };`); err != nil {
		t.Fatal(err)
	}
	r := c.Value("g.n")
	w := c.CreateSection("g")
	if err := r.Delete(); err != nil {
		t.Fatal(err)
	}
	if r.Exists() {
		t.Error("reader still bound after delete")
	}
	if _, ok := r.AsInt32(); ok {
		t.Error("reader read a deleted node")
	}
	if err := r.Delete(); !errors.Is(err, ErrElementNotExists) {
		t.Errorf("second delete: got %v", err)
	}
	// the containing group is untouched
	if !w.WriteInt32("n2", 8).Exists() {
		t.Error("group writer broken by child delete")
	}
}
