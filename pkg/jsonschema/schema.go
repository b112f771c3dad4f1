// Package jsonschema holds a small JSON-Schema-like vocabulary used to
// validate form responses. A form's document schema is composed from one
// node per question and persisted alongside the form.
package jsonschema

// Node is a schema fragment for a single value.
type Node struct {
	Type      string   `json:"type"` // "string", "number", "array"
	Format    string   `json:"format,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	AllOf     []*Node  `json:"allOf,omitempty"` // additional pattern constraints
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Enum      []string `json:"enum,omitempty"`
	Items     *Node    `json:"items,omitempty"`
	MinItems  *int     `json:"minItems,omitempty"`
	MaxItems  *int     `json:"maxItems,omitempty"`
}

// Document is an object schema keyed by question id.
type Document struct {
	Type       string           `json:"type"`
	Properties map[string]*Node `json:"properties"`
	Required   []string         `json:"required"`
}

// Property is one named fragment of a document, in question order.
type Property struct {
	Key  string
	Node *Node
}

// Compose builds the document schema from per-question fragments. Properties
// with a nil node carry no validation and are omitted entirely; every
// included property is required.
func Compose(props []Property) *Document {
	doc := &Document{
		Type:       "object",
		Properties: make(map[string]*Node),
		Required:   make([]string, 0, len(props)),
	}
	for _, p := range props {
		if p.Node == nil {
			continue
		}
		doc.Properties[p.Key] = p.Node
		doc.Required = append(doc.Required, p.Key)
	}
	return doc
}

func IntPtr(v int) *int { return &v }

// String returns a string node with optional length bounds.
func String(minLen, maxLen int) *Node {
	n := &Node{Type: "string"}
	if minLen >= 0 {
		n.MinLength = IntPtr(minLen)
	}
	if maxLen >= 0 {
		n.MaxLength = IntPtr(maxLen)
	}
	return n
}

// StringFormat returns a string node constrained by a named format.
func StringFormat(format string) *Node {
	return &Node{Type: "string", Format: format}
}

// StringPattern returns a string node constrained by a regular expression.
func StringPattern(pattern string) *Node {
	return &Node{Type: "string", Pattern: pattern}
}

// Number returns a numeric node.
func Number() *Node {
	return &Node{Type: "number"}
}

// EnumArray returns an array-of-enum node with item count bounds. A negative
// max leaves the upper bound open.
func EnumArray(enum []string, minItems, maxItems int) *Node {
	n := &Node{
		Type:     "array",
		Items:    &Node{Type: "string", Enum: enum},
		MinItems: IntPtr(minItems),
	}
	if maxItems >= 0 {
		n.MaxItems = IntPtr(maxItems)
	}
	return n
}
