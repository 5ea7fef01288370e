package gen

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/syssam/tsgen/schema"
)

// Precedence ranks competing records for the same type name.
type Precedence uint8

// Precedence classes, lowest first.
const (
	PrecedenceInline Precedence = iota
	PrecedenceBuiltin
	PrecedenceDefined
	PrecedenceImport
)

func (p Precedence) String() string {
	switch p {
	case PrecedenceInline:
		return "inline"
	case PrecedenceBuiltin:
		return "built-in"
	case PrecedenceDefined:
		return "defined"
	case PrecedenceImport:
		return "import"
	default:
		return fmt.Sprintf("Precedence(%d)", p)
	}
}

// CustomType describes how a type name is declared or imported.
type CustomType struct {
	Name string
	// Definition is the body of a locally declared type.
	Definition string
	// Source is the module an imported type comes from.
	Source     string
	Precedence Precedence
	// fallback marks a bare per-field reference. It is imported from
	// typeImportPath unless a higher class record replaces it.
	fallback bool
}

// BuiltinTypes are helper types declared on demand when an override or a
// scalar type names them.
var BuiltinTypes = map[string]string{
	"Decimal":      "{ valueOf(): string }",
	"JsonValue":    "string | number | boolean | { [key in string]?: JsonValue } | Array<JsonValue> | null",
	"BufferObject": `{ type: "Buffer"; data: number[] }`,
	"ArrayObject":  "{ [index: number]: number } & { length?: never }",
}

var (
	errNotImportable = errors.New("type is not importable")
	errNeedsImport   = errors.New("type must be imported")
)

// Registry owns the custom type records of a generation run. It is
// populated by NewRegistry and frozen before it is returned; afterwards it
// is only read, through Usage values.
type Registry struct {
	typeImportPath string
	cache          map[string]*CustomType
	kinds          [len(ScalarTypes{})]*CustomType
	fields         map[string]*fieldType
	warnings       []string
	frozen         bool
}

type fieldType struct {
	typ     *CustomType
	literal bool
	raw     string
}

// NewRegistry resolves the scalar kind table of c and, when per-field types
// are enabled, every override found in the field documentation of dm.
func NewRegistry(c *Config, dm *schema.Datamodel) (*Registry, error) {
	r := &Registry{
		typeImportPath: c.TypeImportPath,
		cache:          make(map[string]*CustomType),
		fields:         make(map[string]*fieldType),
	}
	opts := scalarOptions()
	for _, k := range schema.ScalarKinds {
		ct, err := r.resolve(c.Scalars[k], false, false)
		if err != nil {
			return nil, NewConfigError(fmt.Sprintf("Invalid %s: %q (requires typeImportPath)", opts[k].Name, c.Scalars[k]))
		}
		r.kinds[k] = ct
	}
	if c.PerFieldTypes {
		for _, m := range slices.Concat(dm.Models, dm.Types) {
			for _, f := range m.Fields {
				if _, ov := splitDocumentation(f.Documentation); ov != nil {
					if err := r.addField(m.Name, f.Name, ov); err != nil {
						return nil, err
					}
				}
			}
		}
		if err := r.checkFallbacks(dm); err != nil {
			return nil, err
		}
	}
	r.Freeze()
	return r, nil
}

func (r *Registry) addField(model, field string, ov *fieldOverride) error {
	ct, err := r.resolve(ov.Type, true, ov.Literal)
	switch {
	case errors.Is(err, errNotImportable):
		return NewOverrideGrammarError(model, field, ov.Type,
			fmt.Sprintf("has an invalid custom type: [%s]", ov.Type),
			fmt.Sprintf("If this was meant to be a literal type, add an exclamation point: ![%s]", ov.Type))
	case errors.Is(err, errNeedsImport):
		return needsImport(model, field, ov.Type)
	case err != nil:
		return err
	}
	r.fields[fieldKey(model, field)] = &fieldType{typ: ct, literal: ov.Literal, raw: ov.Type}
	return nil
}

// checkFallbacks reports, in schema order, the first bare per-field
// reference that no other record declared and that has no module to be
// imported from.
func (r *Registry) checkFallbacks(dm *schema.Datamodel) error {
	if r.typeImportPath != "" {
		return nil
	}
	for _, m := range slices.Concat(dm.Models, dm.Types) {
		for _, f := range m.Fields {
			if ft, ok := r.fields[fieldKey(m.Name, f.Name)]; ok && ft.typ.fallback {
				return needsImport(m.Name, f.Name, ft.raw)
			}
		}
	}
	return nil
}

func needsImport(model, field, typ string) error {
	return NewOverrideGrammarError(model, field, typ,
		fmt.Sprintf("has custom type '[%s]' which must be imported, but typeImportPath is not set!", typ), "")
}

func fieldKey(model, field string) string { return model + "." + field }

// resolve parses an override string and upserts the resulting record.
// Regular per-field overrides must name a type; unknown names stay in the
// inline class and fall back to an import from typeImportPath.
func (r *Registry) resolve(s string, perField, literal bool) (*CustomType, error) {
	ov := ParseOverride(s)
	switch ov.Kind {
	case OverrideImport:
		source := ov.Source
		if source == "" {
			source = r.typeImportPath
		}
		if source == "" {
			return nil, errNeedsImport
		}
		return r.upsert(&CustomType{Name: ov.Name, Source: source, Precedence: PrecedenceImport}), nil
	case OverrideDefined:
		return r.upsert(&CustomType{Name: ov.Name, Definition: ov.Body, Precedence: PrecedenceDefined}), nil
	}
	importUnknown := perField && !literal
	if importUnknown && !isIdent(s) {
		return nil, errNotImportable
	}
	if def, ok := BuiltinTypes[s]; ok {
		return r.upsert(&CustomType{Name: s, Definition: def, Precedence: PrecedenceBuiltin}), nil
	}
	if importUnknown {
		return r.upsert(&CustomType{Name: s, Source: r.typeImportPath, Precedence: PrecedenceInline, fallback: true}), nil
	}
	return r.upsert(&CustomType{Name: s, Precedence: PrecedenceInline}), nil
}

// upsert returns the canonical record for ct.Name. A cached record is kept
// and its fields are replaced when ct has a higher precedence. Records of
// equal precedence with different payloads keep the smaller payload, so the
// outcome does not depend on the order of references.
func (r *Registry) upsert(ct *CustomType) *CustomType {
	if r.frozen {
		panic("tsgen: upsert on a frozen registry")
	}
	cached, ok := r.cache[ct.Name]
	if !ok {
		r.cache[ct.Name] = ct
		return ct
	}
	switch {
	case ct.Precedence > cached.Precedence:
		cached.Definition, cached.Source, cached.Precedence, cached.fallback = ct.Definition, ct.Source, ct.Precedence, ct.fallback
	case ct.Precedence == cached.Precedence && payload(ct) != payload(cached):
		keep := cached
		if payload(ct) < payload(cached) {
			cached.Definition, cached.Source, cached.fallback = ct.Definition, ct.Source, ct.fallback
			keep = ct
		}
		r.warnings = append(r.warnings, fmt.Sprintf("type %s has conflicting %s definitions; using %q", ct.Name, ct.Precedence, payload(keep)))
	}
	return cached
}

func payload(ct *CustomType) string {
	if ct.Source != "" || ct.fallback {
		return ct.Definition + "\x00" + ct.Source
	}
	return ct.Definition
}

// Freeze forbids further changes to the registry.
func (r *Registry) Freeze() { r.frozen = true }

// Warnings returns the conflicts recorded while populating the registry.
func (r *Registry) Warnings() []string { return slices.Clone(r.warnings) }

// Len returns the number of distinct type names.
func (r *Registry) Len() int { return len(r.cache) }

// Lookup returns a copy of the record for name.
func (r *Registry) Lookup(name string) (CustomType, bool) {
	ct, ok := r.cache[name]
	if !ok {
		return CustomType{}, false
	}
	return *ct, true
}

// NewUsage returns an empty usage set reading from r.
func (r *Registry) NewUsage() *Usage {
	return &Usage{r: r, names: make(map[string]struct{})}
}

// Definitions returns a "type Name = Body;" statement for every used record
// with a definition, sorted by name.
func (r *Registry) Definitions(u *Usage) []string {
	var names []string
	for name := range u.names {
		if r.cache[name].Definition != "" && r.cache[name].Source == "" {
			names = append(names, name)
		}
	}
	sortNames(names)
	defs := make([]string, len(names))
	for i, name := range names {
		defs[i] = fmt.Sprintf("type %s = %s;", name, r.cache[name].Definition)
	}
	return defs
}

// Imports returns one import statement per module of the used imported
// records. Statements are sorted by module and names within a statement
// are sorted.
func (r *Registry) Imports(u *Usage) []string {
	bySource := make(map[string][]string)
	for name := range u.names {
		if ct := r.cache[name]; ct.Source != "" {
			bySource[ct.Source] = append(bySource[ct.Source], name)
		}
	}
	sources := slices.Collect(maps.Keys(bySource))
	sortNames(sources)
	stmts := make([]string, len(sources))
	for i, source := range sources {
		names := bySource[source]
		sortNames(names)
		stmts[i] = fmt.Sprintf("import { %s } from %q;", strings.Join(names, ", "), source)
	}
	return stmts
}

// sortNames sorts using English collation, falling back to byte order so
// that distinct strings never compare equal.
func sortNames(names []string) {
	c := collate.New(language.English)
	slices.SortFunc(names, func(a, b string) int {
		if n := c.CompareString(a, b); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
}

// Usage records which registry records a set of declarations consumes.
// A Usage is not safe for concurrent use; emitters use one each and the
// results are merged.
type Usage struct {
	r     *Registry
	names map[string]struct{}
}

// Scalar returns the type name for a scalar kind and marks it used.
func (u *Usage) Scalar(k schema.ScalarKind) (string, error) {
	if int(k) >= len(u.r.kinds) {
		return "", errors.Newf("unknown scalar type: %s", k)
	}
	ct := u.r.kinds[k]
	u.names[ct.Name] = struct{}{}
	return ct.Name, nil
}

// Field returns the per-field override of model.field, if any, and marks
// it used.
func (u *Usage) Field(model, field string) (name string, literal, ok bool) {
	ft, ok := u.r.fields[fieldKey(model, field)]
	if !ok {
		return "", false, false
	}
	u.names[ft.typ.Name] = struct{}{}
	return ft.typ.Name, ft.literal, true
}

// Merge adds the names used by o.
func (u *Usage) Merge(o *Usage) {
	maps.Copy(u.names, o.names)
}

// Names returns the used type names, sorted.
func (u *Usage) Names() []string {
	names := slices.Collect(maps.Keys(u.names))
	sortNames(names)
	return names
}
