package field

import (
	"github.com/syssam/tsgen/schema"
)

// Builder configures a single field.
type Builder struct {
	desc *schema.Field
}

func scalar(name string, kind schema.ScalarKind) *Builder {
	return &Builder{desc: &schema.Field{
		Name:       name,
		Kind:       schema.KindScalar,
		Type:       kind.String(),
		Scalar:     kind,
		IsRequired: true,
	}}
}

// String returns a builder for a String field.
func String(name string) *Builder { return scalar(name, schema.String) }

// Bool returns a builder for a Boolean field.
func Bool(name string) *Builder { return scalar(name, schema.Boolean) }

// Int returns a builder for an Int field.
func Int(name string) *Builder { return scalar(name, schema.Int) }

// Float returns a builder for a Float field.
func Float(name string) *Builder { return scalar(name, schema.Float) }

// JSON returns a builder for a Json field.
func JSON(name string) *Builder { return scalar(name, schema.JSON) }

// Time returns a builder for a DateTime field.
func Time(name string) *Builder { return scalar(name, schema.DateTime) }

// BigInt returns a builder for a BigInt field.
func BigInt(name string) *Builder { return scalar(name, schema.BigInt) }

// Decimal returns a builder for a Decimal field.
func Decimal(name string) *Builder { return scalar(name, schema.Decimal) }

// Bytes returns a builder for a Bytes field.
func Bytes(name string) *Builder { return scalar(name, schema.Bytes) }

// Enum returns a builder for a field referencing the named enum.
func Enum(name, enum string) *Builder {
	return &Builder{desc: &schema.Field{
		Name:       name,
		Kind:       schema.KindEnum,
		Type:       enum,
		IsRequired: true,
	}}
}

// Unsupported returns a builder for a field whose column type has no
// datamodel representation.
func Unsupported(name string) *Builder {
	return &Builder{desc: &schema.Field{
		Name:       name,
		Kind:       schema.KindUnsupported,
		Type:       "Unsupported",
		IsRequired: true,
	}}
}

// Optional marks the field as nullable.
func (b *Builder) Optional() *Builder {
	b.desc.IsRequired = false
	return b
}

// List marks the field as list-valued.
func (b *Builder) List() *Builder {
	b.desc.IsList = true
	return b
}

// Default marks the field as having a default value.
func (b *Builder) Default() *Builder {
	b.desc.HasDefaultValue = true
	return b
}

// Comment appends a documentation line.
func (b *Builder) Comment(doc string) *Builder {
	b.desc.Documentation = appendLine(b.desc.Documentation, doc)
	return b
}

// Override sets a regular type override for the field.
func (b *Builder) Override(t string) *Builder {
	return b.Comment("[" + t + "]")
}

// Literal sets a literal type override for the field.
func (b *Builder) Literal(t string) *Builder {
	return b.Comment("![" + t + "]")
}

// Descriptor implements the schema.Descriptor interface.
func (b *Builder) Descriptor() *schema.Field {
	d := *b.desc
	return &d
}

func appendLine(doc, line string) string {
	if doc == "" {
		return line
	}
	return doc + "\n" + line
}
