package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidConfig indicates one or more invalid generator options.
	ErrInvalidConfig = errors.New("tsgen: invalid configuration")
	// ErrUnknownReference indicates a field referencing an undeclared model or enum.
	ErrUnknownReference = errors.New("tsgen: unknown reference")
	// ErrInvalidOverride indicates a per-field type override that cannot be used.
	ErrInvalidOverride = errors.New("tsgen: invalid type override")
	// ErrExternalTool indicates a missing or failing formatter.
	ErrExternalTool = errors.New("tsgen: external tool failed")
	// ErrGenerationFailed indicates a failure while writing the output.
	ErrGenerationFailed = errors.New("tsgen: generation failed")
)

// ConfigError aggregates every problem found while resolving options.
type ConfigError struct {
	Problems []string
	// cause is set when a problem is also an external tool failure.
	cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "Invalid config:\n - " + strings.Join(e.Problems, "\n - ")
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Unwrap returns the external tool failure among the problems, if any.
func (e *ConfigError) Unwrap() error {
	return e.cause
}

// NewConfigError creates a new ConfigError with sorted problems.
func NewConfigError(problems ...string) *ConfigError {
	sorted := slices.Clone(problems)
	slices.Sort(sorted)
	return &ConfigError{Problems: sorted}
}

// invalid formats a single "Invalid <name>: <value>" problem.
func invalid(name, value string) string {
	return fmt.Sprintf("Invalid %s: %q", name, value)
}

// SchemaReferenceError is returned when a field references a model, type or
// enum that is not declared in the datamodel.
type SchemaReferenceError struct {
	Declaration string
	Field       string
	// Kind is "model" or "enum".
	Kind string
	Name string
}

// Error implements the error interface.
func (e *SchemaReferenceError) Error() string {
	var b strings.Builder
	b.WriteString("tsgen: unknown ")
	b.WriteString(e.Kind)
	b.WriteString(" name ")
	b.WriteString(e.Name)
	if e.Declaration != "" {
		b.WriteString(" on ")
		b.WriteString(e.Declaration)
		if e.Field != "" {
			b.WriteString(".")
			b.WriteString(e.Field)
		}
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for SchemaReferenceError.
func (e *SchemaReferenceError) Is(target error) bool {
	return target == ErrUnknownReference
}

// NewSchemaReferenceError creates a new SchemaReferenceError.
func NewSchemaReferenceError(decl, field, kind, name string) *SchemaReferenceError {
	return &SchemaReferenceError{
		Declaration: decl,
		Field:       field,
		Kind:        kind,
		Name:        name,
	}
}

// OverrideGrammarError is returned for a per-field override that is invalid
// in its context.
type OverrideGrammarError struct {
	Declaration string
	Field       string
	Override    string
	Message     string
	Hint        string
}

// Error implements the error interface.
func (e *OverrideGrammarError) Error() string {
	var b strings.Builder
	b.WriteString("tsgen: ")
	b.WriteString(e.Declaration)
	b.WriteString(".")
	b.WriteString(e.Field)
	b.WriteString(" ")
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for OverrideGrammarError.
func (e *OverrideGrammarError) Is(target error) bool {
	return target == ErrInvalidOverride
}

// NewOverrideGrammarError creates a new OverrideGrammarError. The hint is
// also attached with errors.WithHint so that callers can surface it with
// errors.GetAllHints.
func NewOverrideGrammarError(decl, field, override, message, hint string) error {
	err := &OverrideGrammarError{
		Declaration: decl,
		Field:       field,
		Override:    override,
		Message:     message,
		Hint:        hint,
	}
	if hint == "" {
		return err
	}
	return errors.WithHint(err, hint)
}

// ExternalToolError is returned when the formatter cannot be used.
type ExternalToolError struct {
	Tool    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExternalToolError) Error() string {
	var b strings.Builder
	b.WriteString("tsgen: ")
	b.WriteString(e.Tool)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ExternalToolError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ExternalToolError.
func (e *ExternalToolError) Is(target error) bool {
	return target == ErrExternalTool
}

// NewExternalToolError creates a new ExternalToolError.
func NewExternalToolError(tool, message string, cause error) *ExternalToolError {
	return &ExternalToolError{
		Tool:    tool,
		Message: message,
		Cause:   cause,
	}
}

// GenerationError represents a failure while producing the output file.
type GenerationError struct {
	Phase string // e.g., "render", "format", "write"
	File  string
	Cause error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("tsgen: generation failed")
	if e.Phase != "" {
		b.WriteString(" during ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" for ")
		b.WriteString(e.File)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file string, cause error) *GenerationError {
	return &GenerationError{
		Phase: phase,
		File:  file,
		Cause: cause,
	}
}

// ============================================================================
// Error type checking helpers
// ============================================================================

// IsConfigError reports whether err is or wraps a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsSchemaReferenceError reports whether err is or wraps a SchemaReferenceError.
func IsSchemaReferenceError(err error) bool {
	var e *SchemaReferenceError
	return errors.As(err, &e)
}

// IsOverrideGrammarError reports whether err is or wraps an OverrideGrammarError.
func IsOverrideGrammarError(err error) bool {
	var e *OverrideGrammarError
	return errors.As(err, &e)
}

// IsExternalToolError reports whether err is or wraps an ExternalToolError.
func IsExternalToolError(err error) bool {
	var e *ExternalToolError
	return errors.As(err, &e)
}

// IsGenerationError reports whether err is or wraps a GenerationError.
func IsGenerationError(err error) bool {
	var e *GenerationError
	return errors.As(err, &e)
}
