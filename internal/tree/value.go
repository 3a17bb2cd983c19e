package tree

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// ToValue converts a tree into plain maps, slices and scalars suitable for
// JSON or msgpack encoding. Each node becomes a map with "kind", "span"
// ([start, end) byte offsets) and one entry per populated field.
func ToValue(n Node) any {
	if n == nil {
		return nil
	}
	return nodeValue(reflect.ValueOf(n))
}

// ListValue converts a node sequence.
func ListValue(ns []Node) []any {
	out := make([]any, 0, len(ns))
	for _, n := range ns {
		out = append(out, ToValue(n))
	}
	return out
}

func nodeValue(v reflect.Value) any {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return scalarValue(v)
	}
	node, _ := v.Addr().Interface().(Node)
	m := make(map[string]any, v.NumField()+1)
	if node != nil {
		m["kind"] = node.Kind().String()
		sp := node.Pos()
		m["span"] = []uint32{sp.Start, sp.End}
	}
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := t.Field(i)
		if f.Type == baseType {
			continue
		}
		fv := v.Field(i)
		if isZeroField(fv) {
			continue
		}
		m[lowerFirst(f.Name)] = fieldValue(fv)
	}
	return m
}

func fieldValue(v reflect.Value) any {
	if v.Kind() == reflect.Slice {
		out := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			out = append(out, nodeValue(v.Index(i)))
		}
		return out
	}
	return nodeValue(v)
}

func scalarValue(v reflect.Value) any {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	}
	return fmt.Sprint(v.Interface())
}

// пустые срезы, nil-узлы и false не выводим; строки и перечисления выводим всегда
func isZeroField(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice:
		return v.Len() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	case reflect.Bool:
		return !v.Bool()
	}
	return false
}

func lowerFirst(s string) string {
	r, sz := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[sz:]
}
