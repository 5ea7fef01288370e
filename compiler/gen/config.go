package gen

import (
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/syssam/tsgen/schema"
)

// DefaultHeader is the header comment used when headerComment is not set.
const DefaultHeader = "This file was auto-generated by tsgen"

// DefaultOutput is the output file used when output is not set, relative to
// the schema directory.
const DefaultOutput = "interfaces.ts"

// Config is the resolved generator configuration. It is produced once per
// run, by Resolve or NewConfig, and never mutated afterwards.
type Config struct {
	// SchemaDir is the directory relative paths are resolved against.
	SchemaDir string
	// Output is the path of the generated file.
	Output string
	// Header is the comment placed at the top of the document.
	Header string

	Naming    Naming
	ModelType ModelType
	EnumType  EnumType
	Scalars   ScalarTypes

	// TypeImportPath is the module imported types come from when an
	// override does not name its own module.
	TypeImportPath string

	PerFieldTypes          bool
	ExportEnums            bool
	OptionalRelations      bool
	OmitRelations          bool
	OptionalNullables      bool
	OptionalDefaults       bool
	IncludeComments        bool
	RelationCounts         bool
	OptionalRelationCounts bool

	Format Format
}

// Naming holds the prefixes and suffixes applied to declared names.
type Naming struct {
	EnumPrefix       string
	EnumSuffix       string
	EnumObjectPrefix string
	EnumObjectSuffix string
	ModelPrefix      string
	ModelSuffix      string
	TypePrefix       string
	TypeSuffix       string
}

// Enum returns the rendered name of an enum.
func (n Naming) Enum(name string) string { return n.EnumPrefix + name + n.EnumSuffix }

// EnumObject returns the rendered name of the constant object of an enum,
// given its rendered enum name.
func (n Naming) EnumObject(rendered string) string {
	return n.EnumObjectPrefix + rendered + n.EnumObjectSuffix
}

// Model returns the rendered name of a model.
func (n Naming) Model(name string) string { return n.ModelPrefix + name + n.ModelSuffix }

// Type returns the rendered name of an embedded type.
func (n Naming) Type(name string) string { return n.TypePrefix + name + n.TypeSuffix }

// ScalarTypes holds one override string per scalar kind.
type ScalarTypes [schema.Bytes + 1]string

// Format configures the external formatter.
type Format struct {
	Enabled bool
	// ResolveConfig lets the formatter look up its own configuration file.
	ResolveConfig bool
	// ConfigPath is an explicit configuration file. Empty means unset.
	ConfigPath string
	// NoConfig disables configuration lookup entirely.
	NoConfig bool
	// Command is the formatter command line.
	Command []string
}

// RelationPolicy returns how fields relating to models are emitted.
func (c *Config) RelationPolicy() RelationPolicy {
	switch {
	case c.OmitRelations:
		return RelationsOmitted
	case c.OptionalRelations:
		return RelationsOptional
	default:
		return RelationsRequired
	}
}

// OutputPath returns the absolute-or-relative output path resolved against
// the schema directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Output) || c.SchemaDir == "" {
		return c.Output
	}
	return filepath.Join(c.SchemaDir, c.Output)
}

// DefaultConfig returns the configuration used when no option is set.
func DefaultConfig() *Config {
	return &Config{
		Output:    DefaultOutput,
		Header:    DefaultHeader,
		ModelType: ModelInterface,
		EnumType:  EnumStringUnion,
		Scalars: ScalarTypes{
			schema.String:   "string",
			schema.Boolean:  "boolean",
			schema.Int:      "number",
			schema.Float:    "number",
			schema.JSON:     "JsonValue",
			schema.DateTime: "Date",
			schema.BigInt:   "bigint",
			schema.Decimal:  "Decimal",
			schema.Bytes:    "Uint8Array",
		},
		PerFieldTypes:          true,
		ExportEnums:            true,
		OptionalRelations:      true,
		OptionalRelationCounts: true,
		Format: Format{
			ResolveConfig: true,
			Command:       []string{"prettier"},
		},
	}
}

// ModelType selects the declaration wrapper of models and embedded types.
type ModelType uint8

// Declaration wrappers.
const (
	ModelInterface ModelType = iota
	ModelTypeAlias
)

var modelTypeNames = [...]string{
	ModelInterface: "interface",
	ModelTypeAlias: "type",
}

// String returns the option value of the wrapper.
func (t ModelType) String() string {
	if int(t) < len(modelTypeNames) {
		return modelTypeNames[t]
	}
	return fmt.Sprintf("ModelType(%d)", t)
}

// ParseModelType parses a modelType option value.
func ParseModelType(s string) (ModelType, error) {
	for t, name := range modelTypeNames {
		if name == s {
			return ModelType(t), nil
		}
	}
	return 0, errors.Newf("unknown model type %q", s)
}

// EnumType selects how enums are represented.
type EnumType uint8

// Enum representations.
const (
	EnumStringUnion EnumType = iota
	EnumNative
	EnumObject
)

var enumTypeNames = [...]string{
	EnumStringUnion: "stringUnion",
	EnumNative:      "enum",
	EnumObject:      "object",
}

// String returns the option value of the representation.
func (t EnumType) String() string {
	if int(t) < len(enumTypeNames) {
		return enumTypeNames[t]
	}
	return fmt.Sprintf("EnumType(%d)", t)
}

// ParseEnumType parses an enumType option value.
func ParseEnumType(s string) (EnumType, error) {
	for t, name := range enumTypeNames {
		if name == s {
			return EnumType(t), nil
		}
	}
	return 0, errors.Newf("unknown enum type %q", s)
}

// RelationPolicy controls fields relating to models.
type RelationPolicy uint8

// Relation policies.
const (
	RelationsOptional RelationPolicy = iota
	RelationsRequired
	RelationsOmitted
)

func (p RelationPolicy) String() string {
	switch p {
	case RelationsOptional:
		return "optional"
	case RelationsRequired:
		return "required"
	case RelationsOmitted:
		return "omitted"
	default:
		return fmt.Sprintf("RelationPolicy(%d)", p)
	}
}
