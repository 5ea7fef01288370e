package edge

import (
	"github.com/syssam/tsgen/schema"
)

// Builder configures a relation field.
type Builder struct {
	desc *schema.Field
}

// To returns a builder for a relation named name pointing at target.
func To(name, target string) *Builder {
	return &Builder{desc: &schema.Field{
		Name:       name,
		Kind:       schema.KindRelation,
		Type:       target,
		IsRequired: true,
	}}
}

// Optional marks the relation as nullable.
func (b *Builder) Optional() *Builder {
	b.desc.IsRequired = false
	return b
}

// List marks the relation as to-many.
func (b *Builder) List() *Builder {
	b.desc.IsList = true
	return b
}

// Comment appends a documentation line.
func (b *Builder) Comment(doc string) *Builder {
	if b.desc.Documentation != "" {
		doc = b.desc.Documentation + "\n" + doc
	}
	b.desc.Documentation = doc
	return b
}

// Override sets a regular type override for the relation.
func (b *Builder) Override(t string) *Builder {
	return b.Comment("[" + t + "]")
}

// Descriptor implements the schema.Descriptor interface.
func (b *Builder) Descriptor() *schema.Field {
	d := *b.desc
	return &d
}
