// Package bpmn parses BPMN 2.0 process-definition XML and extracts the
// business metadata embedded as Camunda custom properties.
package bpmn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ErrMalformedXML indicates the input is not well-formed XML. Callers should
// report the failure and continue with an empty result; it must never abort a
// multi-file analysis run.
var ErrMalformedXML = errors.New("malformed XML")

// DecodeTree converts raw XML into a nested mapping. Each element becomes a
// map[string]any: attributes are keyed "@name", child elements are keyed by
// their tag. A tag repeated under the same parent becomes a []any; a single
// occurrence stays a plain value. An element with no attributes and no
// children collapses to its text; mixed elements expose text under "#text".
func DecodeTree(data []byte) (map[string]any, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedXML)
	}
	return map[string]any{root.FullTag(): elementToValue(root)}, nil
}

func elementToValue(el *etree.Element) any {
	children := el.ChildElements()
	text := strings.TrimSpace(el.Text())

	if len(el.Attr) == 0 && len(children) == 0 {
		return text
	}

	m := make(map[string]any, len(el.Attr)+len(children))
	for _, a := range el.Attr {
		m["@"+a.FullKey()] = a.Value
	}
	for _, child := range children {
		tag := child.FullTag()
		v := elementToValue(child)
		existing, ok := m[tag]
		if !ok {
			m[tag] = v
			continue
		}
		if list, isList := existing.([]any); isList {
			m[tag] = append(list, v)
		} else {
			m[tag] = []any{existing, v}
		}
	}
	if text != "" {
		m["#text"] = text
	}
	return m
}

// AsList coerces a tree value into a slice. Repeated elements already decode
// to []any; a single element decodes to a scalar and is wrapped; nil and
// empty strings yield an empty slice. Every "may repeat" access goes through
// this helper.
func AsList(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	case string:
		if t == "" {
			return nil
		}
		return []any{t}
	default:
		return []any{t}
	}
}

// AsMap coerces a tree value into a mapping, returning nil for anything that
// is not an element with attributes or children.
func AsMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// Attr reads an attribute value from a decoded element, defaulting to def
// when the attribute is absent or the node is not a mapping.
func Attr(m map[string]any, name, def string) string {
	if m == nil {
		return def
	}
	if s, ok := m["@"+name].(string); ok && s != "" {
		return s
	}
	return def
}

// Child returns a named child value from a decoded element.
func Child(m map[string]any, name string) any {
	if m == nil {
		return nil
	}
	return m[name]
}
