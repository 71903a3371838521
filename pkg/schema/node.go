// Package schema defines the tagged-variant input-schema tree a tool
// definition carries, and the walker that tokenizes it for the Prompt
// Accountant.
package schema

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Kind discriminates the six node shapes a schema tree is built from. The
// walker always dispatches on Kind, never on which fields happen to be set.
type Kind string

const (
	KindObject  Kind = "object"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindEnum    Kind = "enum"
	KindArray   Kind = "array"
)

// Node is a tagged-variant schema tree node. Every concrete type below
// implements it; Walk switches on the concrete type (equivalently, Kind())
// rather than probing for field presence.
type Node interface {
	Kind() Kind
	// Desc returns the node's description and whether one was set.
	Desc() (string, bool)
}

// Properties is the ordered name->node map an Object node carries. Go's map
// type has no iteration order, but the accountant's per_first_prop /
// per_additional_prop coefficients depend on property position, so property
// lists use an explicit ordered map instead.
type Properties = orderedmap.OrderedMap[string, Node]

// NewProperties returns an empty, insertion-ordered property map.
func NewProperties() *Properties {
	return orderedmap.New[string, Node]()
}

// Object is an object schema node: a tag plus its ordered properties.
type Object struct {
	Description string
	HasDesc     bool
	Properties  *Properties
}

func (Object) Kind() Kind                { return KindObject }
func (o Object) Desc() (string, bool)    { return o.Description, o.HasDesc }

// String is a scalar string schema node.
type String struct {
	Description string
	HasDesc     bool
}

func (String) Kind() Kind             { return KindString }
func (s String) Desc() (string, bool) { return s.Description, s.HasDesc }

// Number is a scalar numeric schema node.
type Number struct {
	Description string
	HasDesc     bool
}

func (Number) Kind() Kind             { return KindNumber }
func (n Number) Desc() (string, bool) { return n.Description, n.HasDesc }

// Boolean is a scalar boolean schema node.
type Boolean struct {
	Description string
	HasDesc     bool
}

func (Boolean) Kind() Kind             { return KindBoolean }
func (b Boolean) Desc() (string, bool) { return b.Description, b.HasDesc }

// Enum is a string enumeration schema node.
type Enum struct {
	Description string
	HasDesc     bool
	Values      []string
}

func (Enum) Kind() Kind             { return KindEnum }
func (e Enum) Desc() (string, bool) { return e.Description, e.HasDesc }

// Array is an array schema node; Element describes the shape of each item.
type Array struct {
	Description string
	HasDesc     bool
	Element     Node
}

func (Array) Kind() Kind             { return KindArray }
func (a Array) Desc() (string, bool) { return a.Description, a.HasDesc }
