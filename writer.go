package cfg

import (
	"fmt"

	"github.com/cfg-format/go-cfg/ir"
)

// OptionWriter is a mutation view of one group node. An unbound writer
// (no underlying node) rejects every operation. Creation methods return
// a new writer; write methods return the same group so calls chain.
type OptionWriter struct {
	node *ir.Node
}

// Exists reports whether the view is bound to a live node.
func (w *OptionWriter) Exists() bool {
	return live(w.node) != nil
}

// Reader returns a read view of the same node.
func (w *OptionWriter) Reader() *OptionReader {
	return &OptionReader{node: w.node}
}

func (w *OptionWriter) add(name string, child *ir.Node) bool {
	n := live(w.node)
	if n == nil || n.Type != ir.GroupType {
		return false
	}
	return n.Add(name, child) == nil
}

// CreateSection appends an empty group named name and returns a writer
// for it. The result is unbound if the view is unbound, the node is not
// a group, or name already exists.
func (w *OptionWriter) CreateSection(name string) *OptionWriter {
	child := ir.NewGroup()
	if !w.add(name, child) {
		return &OptionWriter{}
	}
	return &OptionWriter{node: child}
}

// CreateArray appends an empty array named name and returns a writer
// for it.
func (w *OptionWriter) CreateArray(name string) *OptionWriter {
	child := ir.NewArray()
	if !w.add(name, child) {
		return &OptionWriter{}
	}
	return &OptionWriter{node: child}
}

// CreateList appends an empty list named name and returns a writer for
// it.
func (w *OptionWriter) CreateList(name string) *OptionWriter {
	child := ir.NewList()
	if !w.add(name, child) {
		return &OptionWriter{}
	}
	return &OptionWriter{node: child}
}

// WriteInt32 appends an int32 setting and returns this writer. The
// result is unbound on failure.
func (w *OptionWriter) WriteInt32(name string, v int32) *OptionWriter {
	return w.write(name, ir.FromInt32(v))
}

// WriteInt64 appends an int64 setting and returns this writer.
func (w *OptionWriter) WriteInt64(name string, v int64) *OptionWriter {
	return w.write(name, ir.FromInt64(v))
}

// WriteFloat64 appends a float setting and returns this writer.
func (w *OptionWriter) WriteFloat64(name string, v float64) *OptionWriter {
	return w.write(name, ir.FromFloat(v))
}

// WriteBool appends a boolean setting and returns this writer.
func (w *OptionWriter) WriteBool(name string, v bool) *OptionWriter {
	return w.write(name, ir.FromBool(v))
}

// WriteString appends a string setting and returns this writer.
func (w *OptionWriter) WriteString(name string, v string) *OptionWriter {
	return w.write(name, ir.FromString(v))
}

func (w *OptionWriter) write(name string, child *ir.Node) *OptionWriter {
	if !w.add(name, child) {
		return &OptionWriter{}
	}
	return w
}

// Delete removes the node from its parent. Groups are removed by name,
// everything else by position. Returns ErrElementNotExists for an
// unbound view and ErrDelete when the node has no parent or, for a
// group, no name. The removed node is cleared, so any view still
// holding it reports absence rather than the old contents. Views into
// deeper nodes of a removed subtree are not cleared; using one after
// the deletion is a caller error.
func (w *OptionWriter) Delete() error {
	n := live(w.node)
	if n == nil {
		return ErrElementNotExists
	}
	parent := n.Parent
	if parent == nil {
		return fmt.Errorf("%w: node has no parent", ErrDelete)
	}
	if n.Type == ir.GroupType {
		if n.Name == "" {
			return fmt.Errorf("%w: group has no name", ErrDelete)
		}
		if err := parent.Remove(n.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrDelete, err)
		}
	} else {
		if err := parent.RemoveAt(n.ParentIndex); err != nil {
			return fmt.Errorf("%w: %w", ErrDelete, err)
		}
	}
	*n = ir.Node{}
	w.node = nil
	return nil
}

// live maps a cleared node to nil so stale views read as unbound.
func live(n *ir.Node) *ir.Node {
	if n == nil || n.Type == ir.NoneType {
		return nil
	}
	return n
}
