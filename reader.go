package cfg

import "github.com/cfg-format/go-cfg/ir"

// OptionReader is a read view of one node. An unbound reader (no
// underlying live node) reports absence from every accessor.
type OptionReader struct {
	node *ir.Node
}

// Exists reports whether the view is bound to a live node.
func (r *OptionReader) Exists() bool {
	return live(r.node) != nil
}

// Value resolves path relative to this node and returns a read view of
// the result. The view is unbound when the path does not resolve.
func (r *OptionReader) Value(path string) *OptionReader {
	n := live(r.node)
	if n == nil {
		return &OptionReader{}
	}
	return &OptionReader{node: n.Lookup(path)}
}

// IsSection reports whether the node is a group. ok is false for an
// unbound view.
func (r *OptionReader) IsSection() (v, ok bool) {
	n := live(r.node)
	if n == nil {
		return false, false
	}
	return n.Type == ir.GroupType, true
}

// IsArray reports whether the node is an array. ok is false for an
// unbound view.
func (r *OptionReader) IsArray() (v, ok bool) {
	n := live(r.node)
	if n == nil {
		return false, false
	}
	return n.Type == ir.ArrayType, true
}

// IsList reports whether the node is a list. ok is false for an unbound
// view.
func (r *OptionReader) IsList() (v, ok bool) {
	n := live(r.node)
	if n == nil {
		return false, false
	}
	return n.Type == ir.ListType, true
}

// ValueType returns the scalar type of the node. ok is false for an
// unbound view or a container node.
func (r *OptionReader) ValueType() (OptionType, bool) {
	n := live(r.node)
	if n == nil {
		return 0, false
	}
	return optionType(n.Type)
}

// AsInt32 returns the value as an int32. Int64 values convert by
// low-order truncation; float values are truncated toward zero. Bool
// and string values do not convert.
func (r *OptionReader) AsInt32() (int32, bool) {
	n := live(r.node)
	if n == nil {
		return 0, false
	}
	switch n.Type {
	case ir.IntType, ir.Int64Type:
		return int32(n.Int64), true
	case ir.FloatType:
		return int32(n.Float64), true
	}
	return 0, false
}

// AsInt32Default is AsInt32 with def returned on absence.
func (r *OptionReader) AsInt32Default(def int32) int32 {
	if v, ok := r.AsInt32(); ok {
		return v
	}
	return def
}

// AsInt64 returns the value as an int64. Int values widen; float values
// are truncated toward zero. Bool and string values do not convert.
func (r *OptionReader) AsInt64() (int64, bool) {
	n := live(r.node)
	if n == nil {
		return 0, false
	}
	switch n.Type {
	case ir.IntType, ir.Int64Type:
		return n.Int64, true
	case ir.FloatType:
		return int64(n.Float64), true
	}
	return 0, false
}

// AsInt64Default is AsInt64 with def returned on absence.
func (r *OptionReader) AsInt64Default(def int64) int64 {
	if v, ok := r.AsInt64(); ok {
		return v
	}
	return def
}

// AsFloat64 returns the value as a float64. Integer values convert,
// exactly up to 53 bits. Bool and string values do not convert.
func (r *OptionReader) AsFloat64() (float64, bool) {
	n := live(r.node)
	if n == nil {
		return 0, false
	}
	switch n.Type {
	case ir.FloatType:
		return n.Float64, true
	case ir.IntType, ir.Int64Type:
		return float64(n.Int64), true
	}
	return 0, false
}

// AsFloat64Default is AsFloat64 with def returned on absence.
func (r *OptionReader) AsFloat64Default(def float64) float64 {
	if v, ok := r.AsFloat64(); ok {
		return v
	}
	return def
}

// AsBool returns the value of a boolean node.
func (r *OptionReader) AsBool() (bool, bool) {
	n := live(r.node)
	if n == nil || n.Type != ir.BoolType {
		return false, false
	}
	return n.Bool, true
}

// AsBoolDefault is AsBool with def returned on absence.
func (r *OptionReader) AsBoolDefault(def bool) bool {
	if v, ok := r.AsBool(); ok {
		return v
	}
	return def
}

// AsString returns the value of a string node.
func (r *OptionReader) AsString() (string, bool) {
	n := live(r.node)
	if n == nil || n.Type != ir.StringType {
		return "", false
	}
	return n.String, true
}

// AsStringDefault is AsString with def returned on absence.
func (r *OptionReader) AsStringDefault(def string) string {
	if v, ok := r.AsString(); ok {
		return v
	}
	return def
}

// Parent returns a read view of the node's parent. The view is unbound
// at the root or for an unbound view.
func (r *OptionReader) Parent() *OptionReader {
	n := live(r.node)
	if n == nil {
		return &OptionReader{}
	}
	return &OptionReader{node: n.Parent}
}

// Delete removes the node from its parent. See OptionWriter.Delete.
func (r *OptionReader) Delete() error {
	return (&OptionWriter{node: r.node}).Delete()
}
