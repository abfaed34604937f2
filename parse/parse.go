// Package parse provides cfg parsing support.
//
// A cfg document is a sequence of settings forming the root group:
//
//	name = value;
//
// where value is a scalar literal, a group { ... }, an array [ ... ] of
// same-typed scalars, or a list ( ... ) of arbitrary values. Both "=" and
// ":" separate name and value; settings may be terminated by ";" or ",",
// and the terminator is optional. An @include "file" directive splices the
// settings of another file into the current group.
package parse

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cfg-format/go-cfg/ir"
	"github.com/cfg-format/go-cfg/token"
)

// Parse parses a cfg document into its root group.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxIncludeDepth: defaultMaxIncludeDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	p := &parser{toks: toks, opts: pOpts}
	root := ir.NewGroup()
	if err := p.settings(root, -1); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseFile reads and parses path. Relative @include paths resolve
// against the file's directory unless IncludeDir overrides that.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts = append([]ParseOption{IncludeDir(filepath.Dir(path))}, opts...)
	return Parse(d, opts...)
}

type parser struct {
	toks  []token.Token
	i     int
	opts  *parseOpts
	depth int
}

func (p *parser) cur() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) trackPos(node *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

// settings parses "name = value" entries into dst until the closing token
// (or end of input when close < 0).
func (p *parser) settings(dst *ir.Node, close token.TokenType) error {
	for {
		t := p.cur()
		if t == nil {
			if close >= 0 {
				return fmt.Errorf("%w: unbalanced group", ErrParse)
			}
			return nil
		}
		if close >= 0 && t.Type == close {
			p.i++
			return nil
		}
		switch t.Type {
		case token.TInclude:
			p.i++
			if err := p.include(dst); err != nil {
				return err
			}
		case token.TName:
			if err := p.setting(dst); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: expected setting name, got %s", ErrParse, t.Info())
		}
	}
}

func (p *parser) setting(dst *ir.Node) error {
	name := p.cur()
	p.i++
	t := p.cur()
	if t == nil || t.Type != token.TEquals {
		return fmt.Errorf("%w: expected = after %q at %s", ErrParse, name.String(), name.Pos)
	}
	p.i++
	val, err := p.value()
	if err != nil {
		return err
	}
	if err := dst.Add(name.String(), val); err != nil {
		return fmt.Errorf("%w: %w at %s", ErrParse, err, name.Pos)
	}
	p.trackPos(val, name.Pos)
	p.terminator()
	return nil
}

// terminator consumes one optional ";" or ",".
func (p *parser) terminator() {
	if t := p.cur(); t != nil && (t.Type == token.TSemi || t.Type == token.TComma) {
		p.i++
	}
}

func (p *parser) value() (*ir.Node, error) {
	t := p.cur()
	if t == nil {
		return nil, fmt.Errorf("%w: expected value", ErrParse)
	}
	switch t.Type {
	case token.TLCurl:
		p.i++
		g := ir.NewGroup()
		p.trackPos(g, t.Pos)
		if err := p.settings(g, token.TRCurl); err != nil {
			return nil, err
		}
		return g, nil
	case token.TLSquare:
		p.i++
		return p.elements(ir.NewArray(), token.TRSquare, t.Pos)
	case token.TLParen:
		p.i++
		return p.elements(ir.NewList(), token.TRParen, t.Pos)
	default:
		return p.scalar()
	}
}

// elements parses comma-separated values into an array or list node.
func (p *parser) elements(dst *ir.Node, close token.TokenType, pos *token.Pos) (*ir.Node, error) {
	p.trackPos(dst, pos)
	for {
		t := p.cur()
		if t == nil {
			return nil, fmt.Errorf("%w: unbalanced %s", ErrParse, pos)
		}
		if t.Type == close {
			p.i++
			return dst, nil
		}
		var (
			elt *ir.Node
			err error
		)
		if dst.Type == ir.ArrayType {
			elt, err = p.scalar()
		} else {
			elt, err = p.value()
		}
		if err != nil {
			return nil, err
		}
		if err := dst.Add("", elt); err != nil {
			return nil, fmt.Errorf("%w: %w at %s", ErrParse, err, t.Pos)
		}
		if t := p.cur(); t != nil && t.Type == token.TComma {
			p.i++
		}
	}
}

func (p *parser) scalar() (*ir.Node, error) {
	t := p.cur()
	if t == nil {
		return nil, fmt.Errorf("%w: expected scalar value", ErrParse)
	}
	switch t.Type {
	case token.TInteger:
		p.i++
		v, err := parseInt(string(t.Bytes))
		if err != nil {
			return nil, fmt.Errorf("%w: %w at %s", ErrParse, err, t.Pos)
		}
		// integers that do not fit in 32 bits promote to int64
		if v < math.MinInt32 || v > math.MaxInt32 {
			return node(ir.FromInt64(v), p, t), nil
		}
		return node(ir.FromInt32(int32(v)), p, t), nil
	case token.TInt64:
		p.i++
		v, err := parseInt(strings.TrimRight(string(t.Bytes), "L"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w at %s", ErrParse, err, t.Pos)
		}
		return node(ir.FromInt64(v), p, t), nil
	case token.TFloat:
		p.i++
		v, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w at %s", ErrParse, err, t.Pos)
		}
		return node(ir.FromFloat(v), p, t), nil
	case token.TTrue:
		p.i++
		return node(ir.FromBool(true), p, t), nil
	case token.TFalse:
		p.i++
		return node(ir.FromBool(false), p, t), nil
	case token.TString:
		p.i++
		s := t.String()
		// adjacent string literals concatenate
		for {
			n := p.cur()
			if n == nil || n.Type != token.TString {
				break
			}
			s += n.String()
			p.i++
		}
		return node(ir.FromString(s), p, t), nil
	default:
		return nil, fmt.Errorf("%w: expected scalar value, got %s", ErrParse, t.Info())
	}
}

// parseInt reads a decimal or 0x-prefixed hex integer. Decimal literals
// with leading zeros stay decimal (no octal reading).
func parseInt(raw string) (int64, error) {
	neg := false
	digits := raw
	switch {
	case strings.HasPrefix(raw, "-"):
		neg = true
		digits = raw[1:]
	case strings.HasPrefix(raw, "+"):
		digits = raw[1:]
	}
	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
		base = 16
	}
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

func node(n *ir.Node, p *parser, t *token.Token) *ir.Node {
	p.trackPos(n, t.Pos)
	return n
}

func (p *parser) include(dst *ir.Node) error {
	t := p.cur()
	if t == nil || t.Type != token.TString {
		return fmt.Errorf("%w: @include needs a quoted file name", ErrInclude)
	}
	p.i++
	if p.depth+1 > p.opts.maxIncludeDepth {
		return fmt.Errorf("%w: depth limit %d exceeded at %s",
			ErrInclude, p.opts.maxIncludeDepth, t.Pos)
	}
	file := t.String()
	if !filepath.IsAbs(file) && p.opts.includeDir != "" {
		file = filepath.Join(p.opts.includeDir, file)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("%w: %w at %s", ErrInclude, err, t.Pos)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInclude, err)
	}
	sub := &parser{toks: toks, opts: p.opts, depth: p.depth + 1}
	if err := sub.settings(dst, -1); err != nil {
		return fmt.Errorf("%w: in %s: %w", ErrInclude, file, err)
	}
	p.terminator()
	return nil
}
