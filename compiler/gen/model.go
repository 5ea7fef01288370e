package gen

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/syssam/tsgen/schema"
)

// CountField is the name of the synthetic relation counts field.
const CountField = "_count"

// fieldDecl is a resolved field, ready to be printed.
type fieldDecl struct {
	Name     string
	Type     string
	Doc      string
	Optional bool
	List     bool
	Nullable bool
	// counted marks list relations to models, which appear in _count.
	counted bool
}

// String returns the field line, prefixed by its documentation block.
func (d *fieldDecl) String() string {
	typ := d.Type
	if (d.List || d.Nullable) && isComplex(typ) {
		typ = "(" + typ + ")"
	}
	var b strings.Builder
	b.WriteString(docBlock(d.Doc, 2))
	b.WriteString("  ")
	b.WriteString(d.Name)
	if d.Optional {
		b.WriteString("?")
	}
	b.WriteString(": ")
	b.WriteString(typ)
	if d.List {
		b.WriteString("[]")
	}
	if d.Nullable {
		b.WriteString(" | null")
	}
	b.WriteString(";")
	return b.String()
}

// renderModel returns the declaration of a model or an embedded type.
func (g *Graph) renderModel(m *schema.Model, u *Usage) (string, error) {
	c := g.Config
	var (
		lines   []string
		counted []string
	)
	for _, f := range m.Fields {
		fd, err := g.resolveField(m.Name, f, u)
		if err != nil {
			return "", err
		}
		if fd == nil {
			continue
		}
		lines = append(lines, fd.String())
		if fd.counted {
			counted = append(counted, fd.Name)
		}
	}
	if c.RelationCounts && len(counted) > 0 {
		lines = append(lines, countLine(counted, c.OptionalRelationCounts))
	}
	body := "{}"
	if len(lines) > 0 {
		body = "{\n" + strings.Join(lines, "\n") + "\n}"
	}
	doc := ""
	if c.IncludeComments {
		doc = docBlock(m.Documentation, 0)
	}
	name := g.declarationName(m.Name)
	switch c.ModelType {
	case ModelInterface:
		return fmt.Sprintf("%sexport interface %s %s", doc, name, body), nil
	case ModelTypeAlias:
		return fmt.Sprintf("%sexport type %s = %s;", doc, name, body), nil
	default:
		return "", errors.Newf("unknown model type: %s", c.ModelType)
	}
}

// resolveField resolves the type and modifiers of f. It returns nil for
// relations that are omitted.
func (g *Graph) resolveField(decl string, f *schema.Field, u *Usage) (*fieldDecl, error) {
	c := g.Config
	fd := &fieldDecl{
		Name:     f.Name,
		Doc:      f.Documentation,
		List:     f.IsList,
		Nullable: f.Nullable(),
	}
	overridden := false
	if c.PerFieldTypes {
		fd.Doc, _ = splitDocumentation(f.Documentation)
		if name, literal, ok := u.Field(decl, f.Name); ok {
			fd.Type, overridden = name, true
			if literal {
				fd.List = false
			}
		}
	}
	if !overridden {
		switch f.Kind {
		case schema.KindScalar:
			name, err := u.Scalar(f.Scalar)
			if err != nil {
				return nil, errors.Wrapf(err, "%s.%s", decl, f.Name)
			}
			fd.Type = name
		case schema.KindRelation:
			if name, ok := g.Names.Models[f.Type]; ok {
				switch c.RelationPolicy() {
				case RelationsOmitted:
					return nil, nil
				case RelationsOptional:
					fd.Optional = true
				case RelationsRequired:
				}
				fd.Type, fd.counted = name, f.IsList
			} else if name, ok := g.Names.Types[f.Type]; ok {
				fd.Type = name
			} else {
				return nil, NewSchemaReferenceError(decl, f.Name, "model", f.Type)
			}
		case schema.KindEnum:
			name, ok := g.Names.Enums[f.Type]
			if !ok {
				return nil, NewSchemaReferenceError(decl, f.Name, "enum", f.Type)
			}
			fd.Type = name
		case schema.KindUnsupported:
			fd.Type = "any"
		default:
			return nil, errors.Newf("%s.%s: unknown field kind: %s", decl, f.Name, f.Kind)
		}
	}
	if !c.IncludeComments {
		fd.Doc = ""
	}
	fd.Optional = fd.Optional ||
		(fd.Nullable && c.OptionalNullables) ||
		(f.HasDefaultValue && c.OptionalDefaults)
	return fd, nil
}

// countLine renders the _count field for the given relation names.
func countLine(names []string, optional bool) string {
	members := make([]string, len(names))
	for i, n := range names {
		members[i] = n + ": number"
	}
	marker := ""
	if optional {
		marker = "?"
	}
	return fmt.Sprintf("  %s%s: { %s };", CountField, marker, strings.Join(members, "; "))
}
