package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// rawNode mirrors the subset of the JSON Schema vocabulary this package
// understands, decoded with an ordered property map so object property order
// (and therefore per_first_prop/per_additional_prop accounting) matches the
// order the schema author wrote, not Go map iteration order.
type rawNode struct {
	Type        string                                 `json:"type"`
	Description string                                 `json:"description"`
	Properties  *orderedmap.OrderedMap[string, rawNode] `json:"properties"`
	Items       *rawNode                                `json:"items"`
	Enum        []string                                `json:"enum"`
}

// FromJSON decodes a standard JSON Schema document (as carried in a tool
// definition's "parameters"/"input_schema" field) into a Node tree.
func FromJSON(data []byte) (Node, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema: decoding json schema: %w", err)
	}
	return raw.toNode()
}

// FromGoType reflects T's JSON Schema via struct tags (the same convention
// functiontool-style builders use: json and jsonschema tags) and converts it
// into a Node tree, so a tool's input schema can be declared as a typed Go
// struct instead of hand-assembled Node values.
func FromGoType[T any]() (Node, error) {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		DoNotReference:             true,
	}
	data, err := json.Marshal(reflector.Reflect(new(T)))
	if err != nil {
		return nil, fmt.Errorf("schema: reflecting go type: %w", err)
	}
	return FromJSON(data)
}

func (r rawNode) toNode() (Node, error) {
	switch r.Type {
	case "object":
		props := NewProperties()
		if r.Properties != nil {
			for pair := r.Properties.Oldest(); pair != nil; pair = pair.Next() {
				child, err := pair.Value.toNode()
				if err != nil {
					return nil, err
				}
				props.Set(pair.Key, child)
			}
		}
		return Object{Description: r.Description, HasDesc: r.Description != "", Properties: props}, nil
	case "string":
		if len(r.Enum) > 0 {
			return Enum{Description: r.Description, HasDesc: r.Description != "", Values: r.Enum}, nil
		}
		return String{Description: r.Description, HasDesc: r.Description != ""}, nil
	case "integer", "number":
		return Number{Description: r.Description, HasDesc: r.Description != ""}, nil
	case "boolean":
		return Boolean{Description: r.Description, HasDesc: r.Description != ""}, nil
	case "array":
		if r.Items == nil {
			return nil, &InvalidNodeError{Reason: "array schema missing items"}
		}
		elem, err := r.Items.toNode()
		if err != nil {
			return nil, err
		}
		return Array{Description: r.Description, HasDesc: r.Description != "", Element: elem}, nil
	default:
		return nil, &InvalidNodeError{Reason: fmt.Sprintf("unsupported schema type %q", r.Type)}
	}
}
