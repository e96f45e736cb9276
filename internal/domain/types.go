// Package domain contains the core type-graph model shared across the
// application: object, union, tuple and scalar type nodes, fields, and the
// operation/response structures the resolver works over. Values are built
// once by the host and treated as read-only afterwards.
package domain

// TypeNode is the closed set of response body shapes. Implementations are
// *ObjectType, *UnionType, *TupleType and *ScalarType; the unexported marker
// method keeps the set sealed so shape handling stays an exhaustive switch.
type TypeNode interface {
	typeNode()
}

// ScalarKind classifies the primitive carried by a ScalarType.
type ScalarKind int

const (
	// ScalarOther is any primitive that is neither string nor number.
	ScalarOther ScalarKind = iota
	// ScalarString is a string primitive.
	ScalarString
	// ScalarNumber is a numeric primitive.
	ScalarNumber
)

// String returns the scalar kind name.
func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarNumber:
		return "number"
	default:
		return "other"
	}
}

// ObjectType is a structured type with named fields and at most one base type.
// The inheritance chain is guaranteed acyclic by the graph builder.
type ObjectType struct {
	Name string

	// Fields holds only the fields declared directly on this type, in
	// declaration order. Inherited fields are resolved by flattening.
	Fields *FieldMap

	// Base is the single supertype, nil for a root type.
	Base *ObjectType

	// IsError marks types flagged as error shapes by the upstream
	// annotation mechanism. The resolver treats it as an opaque boolean.
	IsError bool
}

func (*ObjectType) typeNode() {}

// UnionVariant is one member of a union, optionally named.
type UnionVariant struct {
	Name string
	Type TypeNode
}

// UnionType represents "exactly one of" its variants, in declaration order.
// Unions are never inheritable and carry no fields of their own.
type UnionType struct {
	Variants []UnionVariant
}

func (*UnionType) typeNode() {}

// TupleType is a fixed-order sequence of member types.
type TupleType struct {
	Elements []TypeNode
}

func (*TupleType) typeNode() {}

// ScalarType is a leaf type carrying an optional literal value. Status-code
// fields are typically scalars with a string or number literal.
type ScalarType struct {
	Kind ScalarKind

	// Literal is the literal value if this scalar denotes one: a string for
	// ScalarString, a float64 for ScalarNumber, nil when the scalar is not
	// a literal.
	Literal interface{}
}

func (*ScalarType) typeNode() {}

// Field is a named member of an object type.
type Field struct {
	Name string
	Type TypeNode

	// IsStatusCode marks the field externally annotated as carrying the
	// HTTP-style status code for its response body.
	IsStatusCode bool
}

// Response is one declared outcome of an operation. Only the body shape is
// modeled; headers and content types live outside this engine.
type Response struct {
	Body        TypeNode
	Description string
}

// Operation is an ordered sequence of responses. Declaration order is
// load-bearing: classification and search return the first qualifying match.
type Operation struct {
	Name      string
	Responses []*Response
}

// Service groups the operations handed to the engine in one batch.
type Service struct {
	Name       string
	Version    string
	Operations []*Operation
}

// UnresolvedBody is the placeholder returned by the diagnostic boundary when
// an operation has no qualifying success response. Callers may compare
// against it by pointer.
var UnresolvedBody = &ObjectType{Name: "<unresolved>", Fields: NewFieldMap()}

// NewObject builds an object type from directly-declared fields.
func NewObject(name string, fields ...*Field) *ObjectType {
	fm := NewFieldMap()
	for _, f := range fields {
		fm.Set(f.Name, f)
	}
	return &ObjectType{Name: name, Fields: fm}
}

// NewErrorObject builds an object type carrying the error marker.
func NewErrorObject(name string, fields ...*Field) *ObjectType {
	m := NewObject(name, fields...)
	m.IsError = true
	return m
}

// Extend builds an object type derived from base.
func Extend(name string, base *ObjectType, fields ...*Field) *ObjectType {
	m := NewObject(name, fields...)
	m.Base = base
	return m
}

// NewField builds a plain field.
func NewField(name string, t TypeNode) *Field {
	return &Field{Name: name, Type: t}
}

// StatusCodeField builds the designated status-code field for a response
// body. Numeric codes become number literals, everything else is opaque.
func StatusCodeField(literal interface{}) *Field {
	f := &Field{Name: "statusCode", IsStatusCode: true}
	switch v := literal.(type) {
	case string:
		f.Type = StringLiteral(v)
	case int:
		f.Type = NumberLiteral(float64(v))
	case float64:
		f.Type = NumberLiteral(v)
	default:
		f.Type = &ScalarType{Kind: ScalarOther}
	}
	return f
}

// StringLiteral builds a string scalar with a literal value.
func StringLiteral(v string) *ScalarType {
	return &ScalarType{Kind: ScalarString, Literal: v}
}

// NumberLiteral builds a numeric scalar with a literal value.
func NumberLiteral(v float64) *ScalarType {
	return &ScalarType{Kind: ScalarNumber, Literal: v}
}

// String builds a string scalar without a literal.
func String() *ScalarType {
	return &ScalarType{Kind: ScalarString}
}

// Number builds a numeric scalar without a literal.
func Number() *ScalarType {
	return &ScalarType{Kind: ScalarNumber}
}

// Union builds a union from unnamed variants.
func Union(members ...TypeNode) *UnionType {
	variants := make([]UnionVariant, 0, len(members))
	for _, m := range members {
		variants = append(variants, UnionVariant{Type: m})
	}
	return &UnionType{Variants: variants}
}

// Tuple builds a tuple from ordered elements.
func Tuple(elements ...TypeNode) *TupleType {
	return &TupleType{Elements: elements}
}
