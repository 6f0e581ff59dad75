package bpmn

import (
	"errors"
	"testing"
)

func TestDecodeTree_AttributesAndNesting(t *testing.T) {
	xml := `<?xml version="1.0"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL" exporter="Camunda Modeler">
  <bpmn:process id="P1" name="Billing">
    <bpmn:task id="T1" name="Send invoice"/>
  </bpmn:process>
</bpmn:definitions>`

	tree, err := DecodeTree([]byte(xml))
	if err != nil {
		t.Fatalf("DecodeTree() error = %v", err)
	}

	defs := AsMap(tree["bpmn:definitions"])
	if defs == nil {
		t.Fatal("missing bpmn:definitions")
	}
	if got := Attr(defs, "exporter", ""); got != "Camunda Modeler" {
		t.Errorf("exporter = %q", got)
	}

	proc := AsMap(Child(defs, "bpmn:process"))
	if proc == nil {
		t.Fatal("single process should decode to a map, not a list")
	}
	if got := Attr(proc, "id", ""); got != "P1" {
		t.Errorf("process id = %q", got)
	}
}

func TestDecodeTree_RepeatedElementsBecomeList(t *testing.T) {
	xml := `<root><item id="a"/><item id="b"/><only id="c"/></root>`

	tree, err := DecodeTree([]byte(xml))
	if err != nil {
		t.Fatalf("DecodeTree() error = %v", err)
	}

	root := AsMap(tree["root"])
	items := AsList(Child(root, "item"))
	if len(items) != 2 {
		t.Fatalf("repeated element: got %d entries, want 2", len(items))
	}
	if got := Attr(AsMap(items[0]), "id", ""); got != "a" {
		t.Errorf("items[0] id = %q, want a (order must be preserved)", got)
	}

	// A single occurrence stays scalar but AsList still wraps it.
	if _, isList := Child(root, "only").([]any); isList {
		t.Error("single occurrence should not be wrapped in a list by the decoder")
	}
	if got := len(AsList(Child(root, "only"))); got != 1 {
		t.Errorf("AsList(single) length = %d, want 1", got)
	}
}

func TestDecodeTree_TextOnlyElementCollapses(t *testing.T) {
	tree, err := DecodeTree([]byte(`<root><name>  Finance  </name></root>`))
	if err != nil {
		t.Fatalf("DecodeTree() error = %v", err)
	}

	root := AsMap(tree["root"])
	if got, ok := Child(root, "name").(string); !ok || got != "Finance" {
		t.Errorf("text-only element = %#v, want trimmed string", Child(root, "name"))
	}
}

func TestDecodeTree_Malformed(t *testing.T) {
	for _, raw := range []string{"not xml at all", "<unclosed>", ""} {
		_, err := DecodeTree([]byte(raw))
		if !errors.Is(err, ErrMalformedXML) {
			t.Errorf("DecodeTree(%q) error = %v, want ErrMalformedXML", raw, err)
		}
	}
}

func TestAsList(t *testing.T) {
	if got := AsList(nil); len(got) != 0 {
		t.Errorf("AsList(nil) = %v", got)
	}
	if got := AsList(""); len(got) != 0 {
		t.Errorf("AsList(\"\") = %v", got)
	}
	if got := AsList(map[string]any{"@id": "x"}); len(got) != 1 {
		t.Errorf("AsList(map) length = %d, want 1", len(got))
	}
	if got := AsList([]any{1, 2, 3}); len(got) != 3 {
		t.Errorf("AsList(slice) length = %d, want 3", len(got))
	}
}
