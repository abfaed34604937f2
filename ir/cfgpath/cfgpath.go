// Package cfgpath parses and prints dotted setting paths.
//
// A path addresses a node in a cfg tree starting from some node, usually
// the root group:
//
//   - "a.b" → group member "b" of group member "a"
//   - "a.[0]" or "a[0]" → element 0 of the array or list "a"
//   - "a.0" → element 0 when "a" is an array or list, the member named
//     "0" when "a" is a group
//   - "" → the start node itself
//
// A segment consisting only of ASCII digits keeps both readings: which one
// applies is decided by the kind of node reached at that point of the walk.
// Any other segment is a literal, case-sensitive group member name. There
// is no escaping for names containing literal dots; such names cannot be
// addressed through a path.
package cfgpath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is one segment of a parsed path, linked to the rest. A segment
// carries a member name, an element index, or both (for bare numeric
// segments, where the node kind at resolution time picks the reading).
type Path struct {
	Name  *string // group member name
	Index *int    // array/list element index
	Next  *Path   // next segment, nil at the leaf
}

var (
	ErrPath = fmt.Errorf("bad path")
)

// Parse parses a dotted path. An empty path parses to nil, addressing the
// start node. Empty segments ("a..b", a leading or trailing dot) are
// skipped.
func Parse(p string) (*Path, error) {
	var (
		root *Path
		tail *Path
	)
	add := func(seg *Path) {
		if tail == nil {
			root, tail = seg, seg
			return
		}
		tail.Next = seg
		tail = seg
	}
	for _, part := range strings.Split(p, ".") {
		if part == "" {
			continue
		}
		rest := part
		// name component before any bracket index
		if i := strings.IndexByte(rest, '['); i != 0 {
			nm := rest
			if i > 0 {
				nm, rest = rest[:i], rest[i:]
			} else {
				rest = ""
			}
			seg := &Path{Name: &nm}
			if idx, err := strconv.Atoi(nm); err == nil && idx >= 0 {
				seg.Index = &idx
			}
			add(seg)
		}
		// bracket index components
		for rest != "" {
			if rest[0] != '[' {
				return nil, fmt.Errorf("%w: %q at %q", ErrPath, p, rest)
			}
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q: unclosed index", ErrPath, p)
			}
			idx, err := strconv.Atoi(rest[1:end])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: %q: bad index %q", ErrPath, p, rest[1:end])
			}
			add(&Path{Index: &idx})
			rest = rest[end+1:]
		}
	}
	return root, nil
}

// String returns the canonical form of the path: names joined with dots,
// indices in brackets. Bare numeric segments print as names.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Name != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(*x.Name)
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// SegmentString returns the canonical form of this single segment.
func (p *Path) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Name != nil {
		return *p.Name
	}
	if p.Index != nil {
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

// Split splits a path into its first segment and the remaining path.
func Split(p string) (first string, rest string, err error) {
	parsed, err := Parse(p)
	if err != nil {
		return "", "", err
	}
	if parsed == nil {
		return "", "", nil
	}
	return parsed.SegmentString(), parsed.Next.String(), nil
}
