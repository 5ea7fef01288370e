package gen

import "strings"

// OverrideKind is the form of a type override string.
type OverrideKind uint8

// Override forms.
const (
	// OverrideLiteral is a type expression printed as is.
	OverrideLiteral OverrideKind = iota
	// OverrideDefined declares a local type alias, "Name:Body".
	OverrideDefined
	// OverrideImport imports a type, "import:Name" or "import:Name:module".
	OverrideImport
)

func (k OverrideKind) String() string {
	switch k {
	case OverrideLiteral:
		return "literal"
	case OverrideDefined:
		return "defined"
	case OverrideImport:
		return "import"
	default:
		return "unknown"
	}
}

// Override is a parsed type override string.
type Override struct {
	Kind OverrideKind
	// Name is the type name to print. For literals it is the whole string.
	Name string
	// Body is the definition of an OverrideDefined type.
	Body string
	// Source is the module of an OverrideImport type. Empty means the
	// configured typeImportPath.
	Source string
}

// ParseOverride parses a type override string. The forms are tried in
// order: import, definition, literal.
func ParseOverride(s string) Override {
	if rest, ok := strings.CutPrefix(s, "import:"); ok {
		name, source, _ := strings.Cut(rest, ":")
		if isIdent(name) {
			return Override{Kind: OverrideImport, Name: name, Source: strings.TrimSpace(source)}
		}
		return Override{Kind: OverrideLiteral, Name: s}
	}
	if name, body, ok := strings.Cut(s, ":"); ok && isIdent(name) {
		if body = strings.TrimSpace(body); body != "" {
			return Override{Kind: OverrideDefined, Name: name, Body: body}
		}
	}
	return Override{Kind: OverrideLiteral, Name: s}
}

// isIdent reports whether s is made of word characters and dollar signs.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '$':
		default:
			return false
		}
	}
	return true
}

// fieldOverride is a type override read from field documentation.
type fieldOverride struct {
	Type    string
	Literal bool
}

// splitDocumentation separates a trailing "[Type]" or "![Type]" line from
// the rest of the field documentation.
func splitDocumentation(doc string) (string, *fieldOverride) {
	if doc == "" {
		return "", nil
	}
	head, last := "", doc
	if i := strings.LastIndexByte(doc, '\n'); i >= 0 {
		head, last = doc[:i], doc[i+1:]
	}
	last = strings.TrimLeft(last, " \t\r")
	literal := strings.HasPrefix(last, "!")
	if literal {
		last = last[1:]
	}
	inner, ok := strings.CutPrefix(last, "[")
	if !ok {
		return doc, nil
	}
	inner = strings.TrimLeft(inner, " \t")
	end := strings.LastIndexByte(inner, ']')
	if end <= 0 {
		return doc, nil
	}
	return head, &fieldOverride{Type: strings.TrimSpace(inner[:end]), Literal: literal}
}

// isComplex reports whether a type expression contains a union,
// intersection, conditional or function type.
func isComplex(t string) bool {
	return strings.ContainsAny(t, "|&?") || strings.Contains(t, "=>")
}
