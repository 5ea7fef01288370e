package gen

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/syssam/tsgen/schema"
)

// renderEnum returns the declaration of a single enum in the configured
// representation. Values keep their declared order.
func (g *Graph) renderEnum(e *schema.Enum) (string, error) {
	c := g.Config
	name := g.Names.Enums[e.Name]
	export := ""
	if c.ExportEnums {
		export = "export "
	}
	doc := ""
	if c.IncludeComments {
		doc = docBlock(e.Documentation, 0)
	}
	switch c.EnumType {
	case EnumStringUnion:
		return fmt.Sprintf("%s%stype %s = %s;", doc, export, name, literalUnion(e.Values)), nil
	case EnumNative:
		members := make([]string, len(e.Values))
		for i, v := range e.Values {
			members[i] = fmt.Sprintf("  %s = %q", v, v)
		}
		return fmt.Sprintf("%s%senum %s {\n%s\n}", doc, export, name, strings.Join(members, ",\n")), nil
	case EnumObject:
		obj := c.Naming.EnumObject(name)
		members := make([]string, len(e.Values))
		for i, v := range e.Values {
			members[i] = fmt.Sprintf("  %s: %q", v, v)
		}
		return fmt.Sprintf("%s%sconst %s = {\n%s\n} satisfies Record<string, %s>;\n\n%stype %s = (typeof %s)[keyof typeof %s];",
			doc, export, obj, strings.Join(members, ",\n"), literalUnion(e.Values), export, name, obj, obj), nil
	default:
		return "", errors.Newf("unknown enum type: %s", c.EnumType)
	}
}

// literalUnion returns the union of the quoted values.
func literalUnion(values []string) string {
	if len(values) == 0 {
		return "never"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, " | ")
}

// docBlock renders documentation as a block comment indented by indent
// spaces, followed by a newline.
func docBlock(doc string, indent int) string {
	if doc == "" {
		return ""
	}
	pad := strings.Repeat(" ", indent)
	var b strings.Builder
	b.WriteString(pad)
	b.WriteString("/**\n")
	for _, line := range strings.Split(doc, "\n") {
		b.WriteString(pad)
		b.WriteString(strings.TrimRight(" * "+line, " \t\r"))
		b.WriteString("\n")
	}
	b.WriteString(pad)
	b.WriteString(" */\n")
	return b.String()
}
