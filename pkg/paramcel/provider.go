package paramcel

import (
	"github.com/google/cel-go/checker/decls"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Provider implements the CEL ref.TypeProvider interface over a JSON
// schema, exposing the schema's object tree as CEL types.
type Provider struct {
	// fallback proto-based type provider.
	protos ref.TypeProvider

	// schemas maps dotted CEL type references to the corresponding
	// JSON schema node. For a root type "input" with an object
	// property "group" holding a string "id", the keys are:
	//
	//	input          -> the root schema
	//	input.group    -> the group object schema
	//	input.group.id -> the id string schema
	schemas map[string]*Schema
}

var _ ref.TypeProvider = &Provider{}

// NewProvider creates a Provider rooting the schema at the given type
// name (conventionally "input"). A nil schema is treated as an empty
// object.
func NewProvider(typeName string, schema *Schema) *Provider {
	if schema == nil {
		schema = &Schema{}
	}

	p := &Provider{
		protos:  types.NewEmptyRegistry(),
		schemas: map[string]*Schema{},
	}
	p.index(typeName, schema)
	return p
}

// index registers a schema node and all its descendants under dotted
// keys.
func (p *Provider) index(key string, s *Schema) {
	p.schemas[key] = s
	for name, child := range s.Properties {
		p.index(key+"."+name, child)
	}
}

// celType maps a schema node to its CEL type. The key names the node's
// own dotted reference, used for nested object types.
func celType(key string, s *Schema) (*exprpb.Type, bool) {
	switch s.Type {
	case Null:
		return decls.Null, true
	case Boolean:
		return decls.Bool, true
	case Object, "":
		// open objects can hold keys we don't know about at compile
		// time, so selections into them cannot be checked.
		if s.AdditionalProperties {
			return decls.Any, true
		}
		return decls.NewObjectType(key), true
	case Array:
		return decls.NewListType(decls.String), true
	case Number:
		return decls.Double, true
	case String:
		return decls.String, true
	case Integer:
		return decls.Int, true
	}
	return nil, false
}

// EnumValue returns the numeric value of the given enum value name.
func (p *Provider) EnumValue(enumName string) ref.Val {
	return p.protos.EnumValue(enumName)
}

// FindIdent takes a qualified identifier name and returns a Value if
// one exists.
func (p *Provider) FindIdent(identName string) (ref.Val, bool) {
	return p.protos.FindIdent(identName)
}

// FindType looks up the Type given a qualified type name. Used during
// type-checking only.
func (p *Provider) FindType(typeName string) (*exprpb.Type, bool) {
	if s, ok := p.schemas[typeName]; ok {
		if t, ok := celType(typeName, s); ok {
			return t, true
		}
	}
	return p.protos.FindType(typeName)
}

// FindFieldType returns the field type for a checked type value. Used
// during type-checking only.
func (p *Provider) FindFieldType(messageType string, fieldName string) (*ref.FieldType, bool) {
	key := messageType + "." + fieldName
	if s, ok := p.schemas[key]; ok {
		if t, ok := celType(key, s); ok {
			return &ref.FieldType{Type: t}, true
		}
	}
	return p.protos.FindFieldType(messageType, fieldName)
}

// NewValue creates a new type value from a qualified name and map of
// field name to value.
func (p *Provider) NewValue(typeName string, fields map[string]ref.Val) ref.Val {
	return p.protos.NewValue(typeName, fields)
}
