// Package field provides fluent builders for scalar, enum and unsupported
// fields of a schema.Model.
//
// Fields are required and single-valued unless configured otherwise:
//
//	field.Int("id").Default()
//	field.String("email").Optional()
//	field.String("tags").List()
//	field.JSON("data").Override("Record<string, number>")
//	field.String("code").Literal(`"a" | "b"`)
//	field.Enum("role", "Role")
//	field.Unsupported("location")
package field
