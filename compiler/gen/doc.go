// Package gen generates TypeScript type definitions from a schema.Datamodel.
//
// # Architecture
//
// A generation run follows this flow:
//
//	option map (map[string]string)
//	        ↓
//	   Resolve → Config
//	        ↓
//	   NewGraph: name maps + Registry (scalar kinds, per-field overrides), frozen
//	        ↓
//	   Generator.Render: enums and declarations in parallel, joined in order
//	        ↓
//	   Writer: optional Formatter, atomic file write
//
// # Key Types
//
//   - Config: resolved configuration, with closed ModelType, EnumType and
//     RelationPolicy variants
//   - Registry: custom type records, deduplicated by name
//   - Usage: the records consumed by a set of declarations
//   - Graph: everything an emitter reads
//   - Generator: renders and writes the document
//
// # Type Overrides
//
// Scalar type options and per-field overrides share one grammar:
//
//	import:Name:./module.js   import Name from ./module.js
//	import:Name               import Name from typeImportPath
//	Name:Body                 declare type Name = Body
//	anything else             print as is
//
// A per-field override is the last line of a field's documentation, either
// "[Type]" or "![Type]". The "!" form is literal: it is never given an
// array suffix and may be any type expression. The regular form must be a
// type name. A name that is not a built-in helper and is not declared or
// imported by another record is imported from typeImportPath.
//
// When two records share a name, the one with the highest precedence wins:
// import, then defined, then built-in, then inline.
//
// # Configuration
//
// Host-provided options are resolved in one pass, which reports every
// problem at once:
//
//	cfg, err := gen.Resolve(map[string]string{
//	    "modelType": "type",
//	    "bytesType": "import:Blob:./blob.js",
//	}, schemaDir)
//
// Programmatic callers can use functional options instead:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithEnumType("object"),
//	    gen.WithRelations(gen.RelationsOmitted),
//	    gen.WithOutput("./src/types.ts"),
//	)
//
// # Error Handling
//
//   - ConfigError: invalid or unknown options, aggregated
//   - SchemaReferenceError: a field references an unknown model or enum
//   - OverrideGrammarError: a per-field override that cannot be used
//   - ExternalToolError: the formatter is missing or failed
//   - GenerationError: the output could not be written
package gen
