package gen

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kballard/go-shellquote"

	"github.com/syssam/tsgen/schema"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the header comment placed at the top of the document.
// An empty header omits the comment block.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithOutput sets the output file path.
func WithOutput(path string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(path) == "" {
			return NewConfigError(invalid("output", path))
		}
		c.Output = path
		return nil
	}
}

// WithSchemaDir sets the directory relative paths are resolved against.
func WithSchemaDir(dir string) Option {
	return func(c *Config) error {
		c.SchemaDir = dir
		return nil
	}
}

// WithNaming sets the prefixes and suffixes of rendered names.
func WithNaming(n Naming) Option {
	return func(c *Config) error {
		c.Naming = n
		return nil
	}
}

// WithModelType sets the declaration wrapper.
// Supported values: "interface", "type".
func WithModelType(t string) Option {
	return func(c *Config) error {
		mt, err := ParseModelType(t)
		if err != nil {
			return NewConfigError(invalid("modelType", t))
		}
		c.ModelType = mt
		return nil
	}
}

// WithEnumType sets the enum representation.
// Supported values: "stringUnion", "enum", "object".
func WithEnumType(t string) Option {
	return func(c *Config) error {
		et, err := ParseEnumType(t)
		if err != nil {
			return NewConfigError(invalid("enumType", t))
		}
		c.EnumType = et
		return nil
	}
}

// WithScalarType sets the override string of a scalar kind, for example
// WithScalarType(schema.Bytes, "import:Blob:./blob.js").
func WithScalarType(kind schema.ScalarKind, override string) Option {
	return func(c *Config) error {
		if int(kind) >= len(c.Scalars) {
			return NewConfigError(invalid("scalar kind", kind.String()))
		}
		if strings.TrimSpace(override) == "" {
			return NewConfigError(invalid(scalarOptions()[kind].Name, override))
		}
		c.Scalars[kind] = override
		return nil
	}
}

// WithTypeImportPath sets the module imported custom types come from.
func WithTypeImportPath(path string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(path) == "" {
			return NewConfigError(invalid("typeImportPath", path))
		}
		c.TypeImportPath = path
		return nil
	}
}

// WithPerFieldTypes enables or disables type overrides read from field
// documentation.
func WithPerFieldTypes(enabled bool) Option {
	return func(c *Config) error {
		c.PerFieldTypes = enabled
		return nil
	}
}

// WithExportEnums enables or disables the export keyword on enums.
func WithExportEnums(enabled bool) Option {
	return func(c *Config) error {
		c.ExportEnums = enabled
		return nil
	}
}

// WithRelations sets the relation policy.
func WithRelations(p RelationPolicy) Option {
	return func(c *Config) error {
		switch p {
		case RelationsOptional:
			c.OptionalRelations, c.OmitRelations = true, false
		case RelationsRequired:
			c.OptionalRelations, c.OmitRelations = false, false
		case RelationsOmitted:
			c.OmitRelations = true
		default:
			return NewConfigError(invalid("relations", p.String()))
		}
		return nil
	}
}

// WithOptionalNullables marks nullable fields as optional.
func WithOptionalNullables(enabled bool) Option {
	return func(c *Config) error {
		c.OptionalNullables = enabled
		return nil
	}
}

// WithOptionalDefaults marks fields with a default value as optional.
func WithOptionalDefaults(enabled bool) Option {
	return func(c *Config) error {
		c.OptionalDefaults = enabled
		return nil
	}
}

// WithComments enables documentation comments.
func WithComments(enabled bool) Option {
	return func(c *Config) error {
		c.IncludeComments = enabled
		return nil
	}
}

// WithRelationCounts enables the _count field. The optional argument
// controls its optionality marker.
func WithRelationCounts(enabled, optional bool) Option {
	return func(c *Config) error {
		c.RelationCounts = enabled
		c.OptionalRelationCounts = optional
		return nil
	}
}

// WithPrettier enables formatting with the given command line. An empty
// command keeps the current one.
func WithPrettier(command string) Option {
	return func(c *Config) error {
		if command != "" {
			args, err := shellquote.Split(command)
			if err != nil || len(args) == 0 {
				return NewConfigError(invalid("prettierCommand", command))
			}
			c.Format.Command = args
		}
		c.Format.Enabled = true
		return nil
	}
}

// WithPrettierConfig sets the Prettier configuration file. "null" disables
// configuration lookup and "" restores automatic resolution.
func WithPrettierConfig(path string) Option {
	return func(c *Config) error {
		c.Format.ConfigPath, c.Format.NoConfig = "", false
		switch path {
		case "":
		case "null":
			c.Format.NoConfig = true
		default:
			c.Format.ConfigPath = path
		}
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors into one ConfigError.
func (c *Config) ApplyAll(opts ...Option) error {
	var problems []string
	for _, opt := range opts {
		err := opt(c)
		if err == nil {
			continue
		}
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			problems = append(problems, cerr.Problems...)
		} else {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) > 0 {
		return NewConfigError(problems...)
	}
	return nil
}

// NewConfig creates a new Config from the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	if problems := c.validate(); len(problems) > 0 {
		return nil, NewConfigError(problems...)
	}
	c.resolvePaths()
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
