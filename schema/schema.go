package schema

import "fmt"

type (
	// Datamodel is the complete input of a generation run.
	Datamodel struct {
		Enums  []*Enum
		Models []*Model
		Types  []*Model
	}

	// Enum is a named, ordered set of values.
	Enum struct {
		Name          string
		Values        []string
		Documentation string
	}

	// Model is a model or an embedded type.
	Model struct {
		Name          string
		Fields        []*Field
		Documentation string
	}

	// Field is a single attribute of a Model.
	Field struct {
		Name string
		Kind Kind
		// Type is the referenced model, type or enum name for relation and
		// enum fields, and the scalar name for scalar fields.
		Type            string
		Scalar          ScalarKind
		IsRequired      bool
		IsList          bool
		HasDefaultValue bool
		Documentation   string
	}
)

// Descriptor is implemented by the field and edge builders.
type Descriptor interface {
	Descriptor() *Field
}

// NewEnum returns an Enum with the given values in order.
func NewEnum(name string, values ...string) *Enum {
	return &Enum{Name: name, Values: values}
}

// NewModel returns a Model built from the given field descriptors.
func NewModel(name string, fields ...Descriptor) *Model {
	m := &Model{Name: name, Fields: make([]*Field, 0, len(fields))}
	for _, f := range fields {
		m.Fields = append(m.Fields, f.Descriptor())
	}
	return m
}

// Comment sets the model documentation.
func (m *Model) Comment(doc string) *Model {
	m.Documentation = doc
	return m
}

// Comment sets the enum documentation.
func (e *Enum) Comment(doc string) *Enum {
	e.Documentation = doc
	return e
}

// Field returns the field with the given name, or nil.
func (m *Model) Field(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Nullable reports whether the field accepts null.
func (f *Field) Nullable() bool { return !f.IsRequired }

// Kind is the category of a Field.
type Kind uint8

// Field kinds.
const (
	KindScalar Kind = iota
	KindRelation
	KindEnum
	KindUnsupported
)

var kindNames = [...]string{
	KindScalar:      "scalar",
	KindRelation:    "object",
	KindEnum:        "enum",
	KindUnsupported: "unsupported",
}

// String returns the DMMF name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind parses a DMMF field kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown field kind %q", s)
}

// ScalarKind is one of the fixed primitive field categories.
type ScalarKind uint8

// Scalar kinds, in the order their type options are declared.
const (
	String ScalarKind = iota
	Boolean
	Int
	Float
	JSON
	DateTime
	BigInt
	Decimal
	Bytes
)

// ScalarKinds lists every ScalarKind.
var ScalarKinds = []ScalarKind{String, Boolean, Int, Float, JSON, DateTime, BigInt, Decimal, Bytes}

var scalarNames = [...]string{
	String:   "String",
	Boolean:  "Boolean",
	Int:      "Int",
	Float:    "Float",
	JSON:     "Json",
	DateTime: "DateTime",
	BigInt:   "BigInt",
	Decimal:  "Decimal",
	Bytes:    "Bytes",
}

// String returns the schema name of the scalar.
func (s ScalarKind) String() string {
	if int(s) < len(scalarNames) {
		return scalarNames[s]
	}
	return fmt.Sprintf("ScalarKind(%d)", s)
}

// ParseScalar parses a schema scalar name such as "DateTime".
func ParseScalar(s string) (ScalarKind, error) {
	for k, name := range scalarNames {
		if name == s {
			return ScalarKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown scalar type %q", s)
}
