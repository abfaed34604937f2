// Package gomap converts between configuration trees and plain Go
// values (map[string]any, []any, scalars) for interop and export.
package gomap

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/cfg-format/go-cfg/ir"
	"github.com/cfg-format/go-cfg/parse"
)

// ErrGoValue indicates a Go value with no tree representation.
var ErrGoValue = fmt.Errorf("unsupported go value")

// ToGo converts a tree to plain Go values: groups become
// map[string]any, arrays and lists become []any, scalars become int32,
// int64, float64, bool, or string. Nil in, nil out.
func ToGo(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.GroupType:
		m := make(map[string]any, len(node.Values))
		for _, child := range node.Values {
			m[child.Name] = ToGo(child)
		}
		return m
	case ir.ArrayType, ir.ListType:
		s := make([]any, len(node.Values))
		for i, child := range node.Values {
			s[i] = ToGo(child)
		}
		return s
	case ir.IntType:
		return int32(node.Int64)
	case ir.Int64Type:
		return node.Int64
	case ir.FloatType:
		return node.Float64
	case ir.BoolType:
		return node.Bool
	case ir.StringType:
		return node.String
	}
	return nil
}

// FromGo converts plain Go values to a tree. Maps with string keys
// become groups with sorted member order; slices and arrays become
// arrays when every element is a scalar of one type, lists otherwise;
// integer kinds up to 32 bits become int settings, 64-bit kinds int64.
func FromGo(v any) (*ir.Node, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil", ErrGoValue)
	}
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Map:
		return mapFromGo(val)
	case reflect.Slice, reflect.Array:
		return sliceFromGo(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return ir.FromInt32(int32(val.Int())), nil
	case reflect.Int64:
		return ir.FromInt64(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return ir.FromInt64(int64(val.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Interface, reflect.Pointer:
		if val.IsNil() {
			return nil, fmt.Errorf("%w: nil", ErrGoValue)
		}
		return FromGo(val.Elem().Interface())
	}
	return nil, fmt.Errorf("%w: %s", ErrGoValue, val.Kind())
}

func mapFromGo(val reflect.Value) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: map key %s", ErrGoValue, val.Type().Key())
	}
	keys := make([]string, 0, val.Len())
	for _, k := range val.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	group := ir.NewGroup()
	for _, k := range keys {
		child, err := FromGo(val.MapIndex(reflect.ValueOf(k)).Interface())
		if err != nil {
			return nil, err
		}
		if err := group.Add(k, child); err != nil {
			return nil, err
		}
	}
	return group, nil
}

func sliceFromGo(val reflect.Value) (*ir.Node, error) {
	children := make([]*ir.Node, val.Len())
	for i := range children {
		child, err := FromGo(val.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	dst := ir.NewArray()
	for _, child := range children {
		if !child.Type.IsScalar() || child.Type != children[0].Type {
			dst = ir.NewList()
			break
		}
	}
	for _, child := range children {
		if err := dst.Add("", child); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// Load parses configuration text and unmarshals it into p through the
// json package, so p can be a struct with json tags or a plain
// map[string]any.
func Load(d []byte, p any) error {
	node, err := parse.Parse(d)
	if err != nil {
		return err
	}
	jd, err := json.Marshal(ToGo(node))
	if err != nil {
		return err
	}
	return json.Unmarshal(jd, p)
}
