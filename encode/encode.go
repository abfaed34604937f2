// Package encode renders ir.Node trees as cfg text.
//
// The output is canonical: scalars as "name = value;", groups braced over
// multiple lines, arrays and lists on one line unless they contain groups.
// Canonical output parses back to an equal tree.
package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cfg-format/go-cfg/ir"
	"github.com/cfg-format/go-cfg/token"
)

type EncState struct {
	depth, indent int

	Color func(ir.Type, ColorAttr, string) string
}

var ErrEncoding = fmt.Errorf("encoding error")

// Encode writes node to w. The root of a document is a group whose
// settings are written unbraced; any other node renders as its value form.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node.Type == ir.GroupType && node.Parent == nil {
		return encodeSettings(node, w, es)
	}
	if err := encodeValue(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encodeSettings(group *ir.Node, w io.Writer, es *EncState) error {
	for _, child := range group.Values {
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := writeName(w, child, es); err != nil {
			return err
		}
		if err := writeString(w, " = "); err != nil {
			return err
		}
		if err := encodeValue(child, w, es); err != nil {
			return err
		}
		if err := writeSep(w, ";\n", child.Type, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeValue(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.GroupType:
		return encodeGroup(node, w, es)
	case ir.ArrayType:
		return encodeElements(node, w, "[", "]", es)
	case ir.ListType:
		return encodeElements(node, w, "(", ")", es)
	case ir.IntType:
		return writeScalar(w, strconv.FormatInt(node.Int64, 10), node.Type, es)
	case ir.Int64Type:
		return writeScalar(w, strconv.FormatInt(node.Int64, 10)+"L", node.Type, es)
	case ir.FloatType:
		return writeScalar(w, formatFloat(node.Float64), node.Type, es)
	case ir.BoolType:
		return writeScalar(w, strconv.FormatBool(node.Bool), node.Type, es)
	case ir.StringType:
		return writeScalar(w, token.Quote(node.String), node.Type, es)
	default:
		return fmt.Errorf("%w: cannot encode %s node", ErrEncoding, node.Type)
	}
}

func encodeGroup(group *ir.Node, w io.Writer, es *EncState) error {
	if len(group.Values) == 0 {
		return writeSep(w, "{ }", ir.GroupType, es)
	}
	if err := writeSep(w, "{\n", ir.GroupType, es); err != nil {
		return err
	}
	es.depth++
	if err := encodeSettings(group, w, es); err != nil {
		return err
	}
	es.depth--
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeSep(w, "}", ir.GroupType, es)
}

// encodeElements writes array/list elements, one line when all elements
// are scalars, one element per line otherwise.
func encodeElements(node *ir.Node, w io.Writer, open, close string, es *EncState) error {
	multiline := false
	for _, v := range node.Values {
		if !v.Type.IsScalar() {
			multiline = true
			break
		}
	}
	if err := writeSep(w, open, node.Type, es); err != nil {
		return err
	}
	if multiline {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.depth++
	} else if len(node.Values) > 0 {
		if err := writeString(w, " "); err != nil {
			return err
		}
	}
	for i, v := range node.Values {
		if multiline {
			if err := writeIndent(w, es); err != nil {
				return err
			}
		}
		if err := encodeValue(v, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeSep(w, ",", node.Type, es); err != nil {
				return err
			}
		}
		if multiline {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		} else if i < len(node.Values)-1 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
	}
	if multiline {
		es.depth--
		if err := writeIndent(w, es); err != nil {
			return err
		}
		return writeSep(w, close, node.Type, es)
	}
	return writeSep(w, " "+close, node.Type, es)
}

// formatFloat renders f so it reads back as a float: the text always
// carries a '.' or an exponent.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eE") || strings.Contains(s, "Inf") || strings.Contains(s, "NaN") {
		return s
	}
	return s + ".0"
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeIndent(w io.Writer, es *EncState) error {
	if es.depth == 0 {
		return nil
	}
	return writeString(w, strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func writeName(w io.Writer, node *ir.Node, es *EncState) error {
	if es.Color != nil {
		return writeString(w, es.Color(node.Type, NameColor, node.Name))
	}
	return writeString(w, node.Name)
}

func writeScalar(w io.Writer, s string, t ir.Type, es *EncState) error {
	if es.Color != nil {
		return writeString(w, es.Color(t, ValueColor, s))
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, s string, t ir.Type, es *EncState) error {
	if es.Color != nil {
		return writeString(w, es.Color(t, SepColor, s))
	}
	return writeString(w, s)
}
