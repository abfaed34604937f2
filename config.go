package cfg

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cfg-format/go-cfg/encode"
	"github.com/cfg-format/go-cfg/ir"
	"github.com/cfg-format/go-cfg/ir/cfgpath"
	"github.com/cfg-format/go-cfg/parse"
)

// Config owns one configuration tree rooted at a group. The zero value is
// not usable; construct with New.
type Config struct {
	root       *ir.Node
	includeDir string
}

// New returns a Config with an empty root group.
func New() *Config {
	return &Config{root: ir.NewGroup()}
}

// Root returns the root group of the tree. The tree remains owned by the
// Config.
func (c *Config) Root() *ir.Node {
	return c.root
}

// IncludeDir sets the directory against which relative @include paths
// are resolved during subsequent loads.
func (c *Config) IncludeDir(dir string) {
	c.includeDir = dir
}

// LoadFromFile replaces the tree with the parsed contents of the file at
// path. A missing file yields ErrFileNotExists and leaves the current
// tree in place. A parse failure yields ErrParse and resets the tree to
// an empty root group.
func (c *Config) LoadFromFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %q", ErrFileNotExists, path)
	}
	var opts []parse.ParseOption
	if c.includeDir != "" {
		opts = append(opts, parse.IncludeDir(c.includeDir))
	}
	root, err := parse.ParseFile(path, opts...)
	if err != nil {
		c.root = ir.NewGroup()
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	c.root = root
	return nil
}

// LoadFromString replaces the tree with the parsed contents of text. A
// parse failure yields ErrParse and resets the tree to an empty root
// group.
func (c *Config) LoadFromString(text string) error {
	var opts []parse.ParseOption
	if c.includeDir != "" {
		opts = append(opts, parse.IncludeDir(c.includeDir))
	}
	root, err := parse.Parse([]byte(text), opts...)
	if err != nil {
		c.root = ir.NewGroup()
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	c.root = root
	return nil
}

// SaveToFile serializes the tree to path in canonical form.
func (c *Config) SaveToFile(path string) error {
	var buf bytes.Buffer
	if err := encode.Encode(c.root, &buf); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

// Value resolves path from the root and returns a read view. The view is
// unbound when the path does not resolve.
func (c *Config) Value(path string) *OptionReader {
	return &OptionReader{node: c.root.Lookup(path)}
}

// CreateSection resolves path from the root, creating missing groups
// along the way, and returns a write view of the final group. The view
// is unbound when an existing segment is not a group or a segment
// addresses an element by index.
func (c *Config) CreateSection(path string) *OptionWriter {
	p, err := cfgpath.Parse(path)
	if err != nil {
		return &OptionWriter{}
	}
	at := c.root
	for ; p != nil; p = p.Next {
		if p.Name == nil {
			return &OptionWriter{}
		}
		next := at.Get(*p.Name)
		if next == nil {
			next = ir.NewGroup()
			if err := at.Add(*p.Name, next); err != nil {
				return &OptionWriter{}
			}
		} else if next.Type != ir.GroupType {
			return &OptionWriter{}
		}
		at = next
	}
	return &OptionWriter{node: at}
}
