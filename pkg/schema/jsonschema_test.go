package schema

import "testing"

func TestFromJSONObject(t *testing.T) {
	doc := `{
		"type": "object",
		"description": "a location query",
		"properties": {
			"city": {"type": "string", "description": "city name"},
			"unit": {"type": "string", "enum": ["celsius", "fahrenheit"]}
		}
	}`
	node, err := FromJSON([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	obj, ok := node.(Object)
	if !ok {
		t.Fatalf("got %T, want Object", node)
	}
	if obj.Properties.Len() != 2 {
		t.Fatalf("Properties.Len() = %d, want 2", obj.Properties.Len())
	}
	first, _ := obj.Properties.Get("city")
	if _, ok := first.(String); !ok {
		t.Errorf("city node = %T, want String", first)
	}
	second, _ := obj.Properties.Get("unit")
	enum, ok := second.(Enum)
	if !ok {
		t.Fatalf("unit node = %T, want Enum", second)
	}
	if len(enum.Values) != 2 {
		t.Errorf("enum.Values = %v, want 2 entries", enum.Values)
	}
}

func TestFromJSONArrayOfObjects(t *testing.T) {
	doc := `{
		"type": "array",
		"items": {
			"type": "object",
			"properties": {"id": {"type": "number"}}
		}
	}`
	node, err := FromJSON([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	arr, ok := node.(Array)
	if !ok {
		t.Fatalf("got %T, want Array", node)
	}
	if _, ok := arr.Element.(Object); !ok {
		t.Errorf("Element = %T, want Object", arr.Element)
	}
}

func TestFromJSONUnknownTypeRejected(t *testing.T) {
	_, err := FromJSON([]byte(`{"type": "null"}`))
	if err == nil {
		t.Fatal("expected an error for an unsupported schema type")
	}
}

type weatherArgs struct {
	City string `json:"city" jsonschema:"required,description=city name"`
	Unit string `json:"unit,omitempty" jsonschema:"description=temperature unit"`
}

func TestFromGoType(t *testing.T) {
	node, err := FromGoType[weatherArgs]()
	if err != nil {
		t.Fatal(err)
	}
	obj, ok := node.(Object)
	if !ok {
		t.Fatalf("got %T, want Object", node)
	}
	if obj.Properties.Len() != 2 {
		t.Fatalf("Properties.Len() = %d, want 2", obj.Properties.Len())
	}
	if _, ok := obj.Properties.Get("city"); !ok {
		t.Error("expected a city property")
	}
}
