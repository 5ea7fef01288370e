package gen

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
	"golang.org/x/text/cases"

	"github.com/syssam/tsgen/schema"
)

// OptionKind describes which values an option accepts.
type OptionKind uint8

// Option kinds.
const (
	// OptionString accepts any string.
	OptionString OptionKind = iota
	// OptionNonEmpty rejects empty and whitespace-only strings.
	OptionNonEmpty
	// OptionBool accepts "true" or "false", case-insensitively.
	OptionBool
	// OptionEnum accepts one of Values, case-sensitively.
	OptionEnum
	// OptionCommand accepts a non-empty shell-quoted command line.
	OptionCommand
)

// OptionInfo describes a recognized generator option.
type OptionInfo struct {
	// Name of the option, as it appears in the option map.
	Name string
	Kind OptionKind
	// Default is the value used when the option is absent. An empty default
	// for an OptionNonEmpty option means the option may be absent.
	Default string
	// Values lists the accepted values of an OptionEnum option.
	Values []string
	// DependsOn names a boolean option that must be enabled for this option
	// to be evaluated.
	DependsOn   string
	Description string

	str  func(*Config) *string
	flag func(*Config) *bool
	set  func(*Config, string) error
}

func stringOption(name, def, desc string, kind OptionKind, str func(*Config) *string) *OptionInfo {
	return &OptionInfo{Name: name, Kind: kind, Default: def, Description: desc, str: str}
}

func boolOption(name string, def bool, desc string, flag func(*Config) *bool) *OptionInfo {
	return &OptionInfo{Name: name, Kind: OptionBool, Default: fmt.Sprint(def), Description: desc, flag: flag}
}

func scalarOption(name string, kind schema.ScalarKind) *OptionInfo {
	return stringOption(name, DefaultConfig().Scalars[kind], "Type emitted for "+kind.String()+" fields", OptionNonEmpty,
		func(c *Config) *string { return &c.Scalars[kind] })
}

// Options lists every recognized option, in documentation order.
var Options = []*OptionInfo{
	stringOption("output", DefaultOutput, "Path of the generated file, relative to the schema directory", OptionNonEmpty,
		func(c *Config) *string { return &c.Output }),
	stringOption("enumPrefix", "", "Prefix added to enum names", OptionString,
		func(c *Config) *string { return &c.Naming.EnumPrefix }),
	stringOption("enumSuffix", "", "Suffix added to enum names", OptionString,
		func(c *Config) *string { return &c.Naming.EnumSuffix }),
	stringOption("enumObjectPrefix", "", "Prefix added to enum objects when enumType is object", OptionString,
		func(c *Config) *string { return &c.Naming.EnumObjectPrefix }),
	stringOption("enumObjectSuffix", "", "Suffix added to enum objects when enumType is object", OptionString,
		func(c *Config) *string { return &c.Naming.EnumObjectSuffix }),
	stringOption("modelPrefix", "", "Prefix added to model names", OptionString,
		func(c *Config) *string { return &c.Naming.ModelPrefix }),
	stringOption("modelSuffix", "", "Suffix added to model names", OptionString,
		func(c *Config) *string { return &c.Naming.ModelSuffix }),
	stringOption("typePrefix", "", "Prefix added to embedded type names", OptionString,
		func(c *Config) *string { return &c.Naming.TypePrefix }),
	stringOption("typeSuffix", "", "Suffix added to embedded type names", OptionString,
		func(c *Config) *string { return &c.Naming.TypeSuffix }),
	stringOption("headerComment", DefaultHeader, "Comment placed at the top of the file; empty for none", OptionString,
		func(c *Config) *string { return &c.Header }),
	{
		Name: "modelType", Kind: OptionEnum, Default: ModelInterface.String(),
		Values:      modelTypeNames[:],
		Description: "Declaration style of models and embedded types",
		set: func(c *Config, v string) (err error) {
			c.ModelType, err = ParseModelType(v)
			return err
		},
	},
	{
		Name: "enumType", Kind: OptionEnum, Default: EnumStringUnion.String(),
		Values:      enumTypeNames[:],
		Description: "Representation of enums",
		set: func(c *Config, v string) (err error) {
			c.EnumType, err = ParseEnumType(v)
			return err
		},
	},
	scalarOption("stringType", schema.String),
	scalarOption("booleanType", schema.Boolean),
	scalarOption("intType", schema.Int),
	scalarOption("floatType", schema.Float),
	scalarOption("jsonType", schema.JSON),
	scalarOption("dateType", schema.DateTime),
	scalarOption("bigIntType", schema.BigInt),
	scalarOption("decimalType", schema.Decimal),
	scalarOption("bytesType", schema.Bytes),
	stringOption("typeImportPath", "", "Module that imported custom types come from", OptionNonEmpty,
		func(c *Config) *string { return &c.TypeImportPath }),
	boolOption("perFieldTypes", true, "Read type overrides from field documentation",
		func(c *Config) *bool { return &c.PerFieldTypes }),
	boolOption("exportEnums", true, "Export enum declarations",
		func(c *Config) *bool { return &c.ExportEnums }),
	boolOption("optionalRelations", true, "Mark relation fields as optional",
		func(c *Config) *bool { return &c.OptionalRelations }),
	boolOption("omitRelations", false, "Leave relation fields out of models",
		func(c *Config) *bool { return &c.OmitRelations }),
	boolOption("optionalNullables", false, "Mark nullable fields as optional",
		func(c *Config) *bool { return &c.OptionalNullables }),
	boolOption("optionalDefaults", false, "Mark fields with a default value as optional",
		func(c *Config) *bool { return &c.OptionalDefaults }),
	boolOption("includeComments", false, "Emit schema documentation as doc comments",
		func(c *Config) *bool { return &c.IncludeComments }),
	boolOption("includeRelationCounts", false, "Add a _count field for list relations",
		func(c *Config) *bool { return &c.RelationCounts }),
	boolOption("optionalRelationCounts", true, "Mark the _count field as optional",
		func(c *Config) *bool { return &c.OptionalRelationCounts }),
	boolOption("prettier", false, "Format the output with Prettier",
		func(c *Config) *bool { return &c.Format.Enabled }),
	boolOption("resolvePrettierConfig", true, "Let Prettier resolve its configuration file",
		func(c *Config) *bool { return &c.Format.ResolveConfig }),
	{
		Name: "prettierConfigPath", Kind: OptionString, DependsOn: "prettier",
		Description: `Prettier configuration file relative to the schema directory; "null" for none`,
		set: func(c *Config, v string) error {
			switch v {
			case "":
			case "null":
				c.Format.NoConfig = true
			default:
				c.Format.ConfigPath = v
			}
			return nil
		},
	},
	{
		Name: "prettierCommand", Kind: OptionCommand, Default: "prettier", DependsOn: "prettier",
		Description: "Command used to run Prettier",
		set: func(c *Config, v string) (err error) {
			c.Format.Command, err = shellquote.Split(v)
			return err
		},
	},
}

// LookupOption returns the option with the given name, or nil.
func LookupOption(name string) *OptionInfo {
	for _, o := range Options {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// apply validates v and stores it in c. It returns a problem description
// when v is not acceptable.
func (o *OptionInfo) apply(c *Config, v string) string {
	switch o.Kind {
	case OptionString:
	case OptionNonEmpty, OptionCommand:
		if strings.TrimSpace(v) == "" {
			return invalid(o.Name, v)
		}
	case OptionBool:
		switch cases.Fold().String(v) {
		case "true":
			*o.flag(c) = true
		case "false":
			*o.flag(c) = false
		default:
			return invalid(o.Name, v)
		}
		return ""
	case OptionEnum:
		if !slices.Contains(o.Values, v) {
			return invalid(o.Name, v)
		}
	}
	if o.set != nil {
		if err := o.set(c, v); err != nil {
			return invalid(o.Name, v)
		}
		return ""
	}
	*o.str(c) = v
	return ""
}

func (o *OptionInfo) enabled(c *Config) bool {
	if o.DependsOn == "" {
		return true
	}
	dep := LookupOption(o.DependsOn)
	return dep != nil && dep.flag != nil && *dep.flag(c)
}

// Resolve validates the raw option map and returns the resolved
// configuration. Relative paths are resolved against schemaDir. All
// problems are collected and returned together as a *ConfigError; a
// missing prettierConfigPath file also matches *ExternalToolError.
func Resolve(raw map[string]string, schemaDir string) (*Config, error) {
	c := DefaultConfig()
	c.SchemaDir = schemaDir
	var problems []string
	for name := range raw {
		if LookupOption(name) == nil {
			problems = append(problems, fmt.Sprintf("Unknown config property: %q", name))
		}
	}
	// Options with a dependency are evaluated after the option they depend on.
	for _, deferred := range []bool{false, true} {
		for _, o := range Options {
			if (o.DependsOn != "") != deferred || !o.enabled(c) {
				continue
			}
			v, ok := raw[o.Name]
			if !ok {
				continue
			}
			if p := o.apply(c, v); p != "" {
				problems = append(problems, p)
			}
		}
	}
	problems = append(problems, c.validate()...)
	c.resolvePaths()
	var tool *ExternalToolError
	if c.Format.Enabled {
		if tool = c.Format.checkConfigPath(); tool != nil {
			problems = append(problems, tool.Message)
		}
	}
	if len(problems) > 0 {
		err := NewConfigError(problems...)
		if tool != nil {
			err.cause = tool
		}
		return nil, err
	}
	return c, nil
}

// validate reports cross-option problems.
func (c *Config) validate() []string {
	var problems []string
	if c.TypeImportPath == "" {
		for i, o := range scalarOptions() {
			if ov := ParseOverride(c.Scalars[i]); ov.Kind == OverrideImport && ov.Source == "" {
				problems = append(problems, fmt.Sprintf("Invalid %s: %q (requires typeImportPath)", o.Name, c.Scalars[i]))
			}
		}
	}
	return problems
}

// scalarOptions returns the scalar type options indexed by schema.ScalarKind.
func scalarOptions() []*OptionInfo {
	names := [...]string{
		schema.String:   "stringType",
		schema.Boolean:  "booleanType",
		schema.Int:      "intType",
		schema.Float:    "floatType",
		schema.JSON:     "jsonType",
		schema.DateTime: "dateType",
		schema.BigInt:   "bigIntType",
		schema.Decimal:  "decimalType",
		schema.Bytes:    "bytesType",
	}
	opts := make([]*OptionInfo, len(names))
	for i, name := range names {
		opts[i] = LookupOption(name)
	}
	return opts
}

func (c *Config) resolvePaths() {
	if c.SchemaDir == "" {
		return
	}
	if c.Format.ConfigPath != "" && !filepath.IsAbs(c.Format.ConfigPath) {
		c.Format.ConfigPath = filepath.Join(c.SchemaDir, c.Format.ConfigPath)
	}
}
