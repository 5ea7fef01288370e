// Package schema provides the datamodel consumed by the TypeScript generator.
//
// A Datamodel holds three ordered lists: enums, models and embedded types.
// Models and embedded types share the Model type; they only differ in which
// list they belong to. Each Model is an ordered list of Field values.
//
// Datamodels are usually produced by the compiler/load package from a DMMF
// document, but they can also be built in code with the field and edge
// builders:
//
//	dm := &schema.Datamodel{
//	    Enums: []*schema.Enum{
//	        schema.NewEnum("Gender", "Male", "Female", "Other"),
//	    },
//	    Models: []*schema.Model{
//	        schema.NewModel("Person",
//	            field.Int("id").Default(),
//	            field.String("email").Optional(),
//	            field.Enum("gender", "Gender"),
//	            edge.To("posts", "Post").List(),
//	        ),
//	    },
//	}
//
// # Field Kinds
//
// Every Field has one of four kinds:
//
//   - KindScalar: one of the nine ScalarKind values
//   - KindRelation: a reference to a model or an embedded type
//   - KindEnum: a reference to an enum
//   - KindUnsupported: a column type the datamodel cannot describe
//
// The last line of a field's documentation may carry a type override,
// "[Type]" or "![Type]". See compiler/gen for the grammar.
package schema
