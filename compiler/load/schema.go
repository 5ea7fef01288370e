// Package load reads DMMF datamodel documents into schema.Datamodel values.
package load

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/syssam/tsgen/schema"
)

// Document is the serialized form of a datamodel. Documents may be wrapped
// in a top-level "datamodel" key, as emitted by DMMF dumps.
type Document struct {
	Enums  []*Enum  `json:"enums,omitempty" yaml:"enums,omitempty"`
	Models []*Model `json:"models,omitempty" yaml:"models,omitempty"`
	Types  []*Model `json:"types,omitempty" yaml:"types,omitempty"`
}

// Enum represents a serialized schema.Enum.
type Enum struct {
	Name          string       `json:"name" yaml:"name"`
	Values        []*EnumValue `json:"values,omitempty" yaml:"values,omitempty"`
	Documentation string       `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// EnumValue represents a single serialized enum value.
type EnumValue struct {
	Name string `json:"name" yaml:"name"`
}

// Model represents a serialized schema.Model.
type Model struct {
	Name          string   `json:"name" yaml:"name"`
	Fields        []*Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	Documentation string   `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// Field represents a serialized schema.Field.
type Field struct {
	Name            string `json:"name" yaml:"name"`
	Kind            string `json:"kind" yaml:"kind"`
	Type            string `json:"type" yaml:"type"`
	IsRequired      bool   `json:"isRequired" yaml:"isRequired"`
	IsList          bool   `json:"isList,omitempty" yaml:"isList,omitempty"`
	HasDefaultValue bool   `json:"hasDefaultValue,omitempty" yaml:"hasDefaultValue,omitempty"`
	Documentation   string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

type wrapper struct {
	Datamodel *Document `json:"datamodel" yaml:"datamodel"`
}

// Format is the encoding of a datamodel document.
type Format uint8

// Supported formats.
const (
	JSON Format = iota
	YAML
)

// FormatOf returns the format implied by the file extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, errors.Newf("unsupported datamodel extension %q", filepath.Ext(path))
	}
}

// LoadError is returned when a datamodel file cannot be read or decoded.
type LoadError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("tsgen: load %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads the datamodel stored at path.
func Load(path string) (*schema.Datamodel, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	buf, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	dm, err := UnmarshalDatamodel(buf, format)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	return dm, nil
}

// UnmarshalDatamodel decodes buf and converts it to a schema.Datamodel.
func UnmarshalDatamodel(buf []byte, format Format) (*schema.Datamodel, error) {
	doc, err := decode(buf, format)
	if err != nil {
		return nil, err
	}
	return doc.Datamodel()
}

func decode(buf []byte, format Format) (*Document, error) {
	var (
		w   wrapper
		doc Document
	)
	switch format {
	case JSON:
		if err := json.Unmarshal(buf, &w); err != nil {
			return nil, errors.Wrap(err, "decode json")
		}
		if w.Datamodel != nil {
			return w.Datamodel, nil
		}
		if err := json.Unmarshal(buf, &doc); err != nil {
			return nil, errors.Wrap(err, "decode json")
		}
	case YAML:
		if err := yaml.Unmarshal(buf, &w); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
		if w.Datamodel != nil {
			return w.Datamodel, nil
		}
		if err := yaml.Unmarshal(buf, &doc); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	default:
		return nil, errors.Newf("unknown format %d", format)
	}
	return &doc, nil
}

// Datamodel converts the document, resolving field kinds and scalar names.
func (d *Document) Datamodel() (*schema.Datamodel, error) {
	dm := &schema.Datamodel{
		Enums:  make([]*schema.Enum, 0, len(d.Enums)),
		Models: make([]*schema.Model, 0, len(d.Models)),
		Types:  make([]*schema.Model, 0, len(d.Types)),
	}
	for _, e := range d.Enums {
		values := make([]string, len(e.Values))
		for i, v := range e.Values {
			values[i] = v.Name
		}
		dm.Enums = append(dm.Enums, &schema.Enum{Name: e.Name, Values: values, Documentation: e.Documentation})
	}
	for _, m := range d.Models {
		sm, err := m.model()
		if err != nil {
			return nil, err
		}
		dm.Models = append(dm.Models, sm)
	}
	for _, m := range d.Types {
		sm, err := m.model()
		if err != nil {
			return nil, err
		}
		dm.Types = append(dm.Types, sm)
	}
	return dm, nil
}

func (m *Model) model() (*schema.Model, error) {
	sm := &schema.Model{
		Name:          m.Name,
		Fields:        make([]*schema.Field, 0, len(m.Fields)),
		Documentation: m.Documentation,
	}
	for _, f := range m.Fields {
		kind, err := schema.ParseKind(f.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "%s.%s", m.Name, f.Name)
		}
		sf := &schema.Field{
			Name:            f.Name,
			Kind:            kind,
			Type:            f.Type,
			IsRequired:      f.IsRequired,
			IsList:          f.IsList,
			HasDefaultValue: f.HasDefaultValue,
			Documentation:   f.Documentation,
		}
		if kind == schema.KindScalar {
			if sf.Scalar, err = schema.ParseScalar(f.Type); err != nil {
				return nil, errors.Wrapf(err, "%s.%s", m.Name, f.Name)
			}
		}
		sm.Fields = append(sm.Fields, sf)
	}
	return sm, nil
}

// NewDocument converts a schema.Datamodel to its serialized form.
func NewDocument(dm *schema.Datamodel) *Document {
	doc := &Document{}
	for _, e := range dm.Enums {
		de := &Enum{Name: e.Name, Documentation: e.Documentation}
		for _, v := range e.Values {
			de.Values = append(de.Values, &EnumValue{Name: v})
		}
		doc.Enums = append(doc.Enums, de)
	}
	for _, m := range dm.Models {
		doc.Models = append(doc.Models, newModel(m))
	}
	for _, m := range dm.Types {
		doc.Types = append(doc.Types, newModel(m))
	}
	return doc
}

func newModel(m *schema.Model) *Model {
	dm := &Model{Name: m.Name, Documentation: m.Documentation}
	for _, f := range m.Fields {
		dm.Fields = append(dm.Fields, &Field{
			Name:            f.Name,
			Kind:            f.Kind.String(),
			Type:            f.Type,
			IsRequired:      f.IsRequired,
			IsList:          f.IsList,
			HasDefaultValue: f.HasDefaultValue,
			Documentation:   f.Documentation,
		})
	}
	return dm
}

// MarshalDatamodel encodes dm as a wrapped DMMF JSON document.
func MarshalDatamodel(dm *schema.Datamodel) ([]byte, error) {
	return json.MarshalIndent(wrapper{Datamodel: NewDocument(dm)}, "", "  ")
}
