package emitter

import (
	"github.com/go-openapi/spec"
	"github.com/griffnb/core-resolve/internal/domain"
)

const (
	// STRING represent a string value.
	STRING = "string"
	// NUMBER represent a number value.
	NUMBER = "number"
	// OBJECT represent a object value.
	OBJECT = "object"
)

// PrimitiveSchema builds a primitive schema.
func PrimitiveSchema(refType string) *spec.Schema {
	return &spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{refType}}}
}

// scalarSchemaType maps a scalar kind to its swagger primitive name.
func scalarSchemaType(kind domain.ScalarKind) string {
	switch kind {
	case domain.ScalarString:
		return STRING
	case domain.ScalarNumber:
		return NUMBER
	default:
		return OBJECT
	}
}

// typeSchema converts a type node into the schema referencing it. Named
// object types become $ref entries against the definitions section; unions
// degrade to a permissive object because Swagger 2.0 has no oneOf; tuples
// are emitted as arrays of their first element type.
func typeSchema(node domain.TypeNode) *spec.Schema {
	switch t := node.(type) {
	case *domain.ScalarType:
		schema := PrimitiveSchema(scalarSchemaType(t.Kind))
		if t.Literal != nil {
			schema.Enum = []interface{}{t.Literal}
		}
		return schema
	case *domain.ObjectType:
		if t.Name != "" {
			return spec.RefProperty("#/definitions/" + t.Name)
		}
		return PrimitiveSchema(OBJECT)
	case *domain.UnionType:
		return PrimitiveSchema(OBJECT)
	case *domain.TupleType:
		if len(t.Elements) > 0 {
			return spec.ArrayProperty(typeSchema(t.Elements[0]))
		}
		return spec.ArrayProperty(PrimitiveSchema(OBJECT))
	default:
		return PrimitiveSchema(OBJECT)
	}
}

// objectSchema builds the definition schema for an object type. Types with a
// base compose the base reference with the directly-declared properties via
// AllOf, mirroring how the definitions section models inheritance.
func objectSchema(model *domain.ObjectType) *spec.Schema {
	properties := make(map[string]spec.Schema)
	if model.Fields != nil {
		model.Fields.Range(func(name string, f *domain.Field) bool {
			properties[name] = *typeSchema(f.Type)
			return true
		})
	}

	own := spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type:       []string{OBJECT},
			Properties: properties,
		},
	}

	if model.Base == nil || model.Base.Name == "" {
		return &own
	}

	return spec.ComposedSchema(
		*spec.RefProperty("#/definitions/"+model.Base.Name),
		own,
	)
}
