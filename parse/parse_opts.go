package parse

import (
	"github.com/cfg-format/go-cfg/ir"
	"github.com/cfg-format/go-cfg/token"
)

const defaultMaxIncludeDepth = 10

type parseOpts struct {
	includeDir      string
	positions       map[*ir.Node]*token.Pos
	maxIncludeDepth int
}

type ParseOption func(*parseOpts)

// IncludeDir sets the directory against which relative @include paths are
// resolved. When unset, ParseFile resolves them against the including
// file's directory and Parse against the working directory.
func IncludeDir(dir string) ParseOption {
	return func(o *parseOpts) { o.includeDir = dir }
}

// Positions records the source position of each parsed node into m.
func Positions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// MaxIncludeDepth bounds @include nesting. The default is 10.
func MaxIncludeDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxIncludeDepth = n }
}
