// Package edge provides fluent builders for relation fields.
//
// A relation references a model or an embedded type by name:
//
//	edge.To("author", "User")
//	edge.To("posts", "Post").List()
//	edge.To("address", "Address").Optional()
//
// Whether the target is a model or an embedded type is decided by the
// Datamodel the field ends up in, not by the builder.
package edge
