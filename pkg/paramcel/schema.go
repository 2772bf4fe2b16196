// Package paramcel implements a CEL type provider backed by a JSON
// schema document.
//
// This allows node parameter expressions to be type-checked against
// the declared shape of the workflow input, so that a reference to a
// field the input does not carry is caught at lint time rather than
// at run time.
package paramcel

// Type is a JSON schema primitive type.
type Type string

const (
	Null    Type = "null"
	Boolean Type = "boolean"
	Object  Type = "object"
	Array   Type = "array"
	Number  Type = "number"
	String  Type = "string"
	Integer Type = "integer"
)

// Schema is a minimal JSON schema node: just enough structure to type
// an input object for CEL checking. A zero Type is treated as Object,
// so the root of a schema document may omit it.
type Schema struct {
	Type       Type               `json:"type,omitempty" yaml:"type,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`

	// AdditionalProperties permits keys beyond those declared in
	// Properties. Selections into such an object cannot be checked at
	// compile time and are typed as Any.
	AdditionalProperties bool `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
}
