package gen

import (
	"github.com/syssam/tsgen/schema"
)

// Graph is the read-only state shared by every emitter of a run: the
// configuration, the datamodel, the name maps and the frozen registry.
type Graph struct {
	Config   *Config
	Schema   *schema.Datamodel
	Names    NameMaps
	Registry *Registry
}

// NameMaps map declared names to rendered names, one map per entity
// category.
type NameMaps struct {
	Enums  map[string]string
	Models map[string]string
	Types  map[string]string
}

// NewGraph builds the name maps and the registry of a run. Once it returns,
// nothing in the Graph is modified.
func NewGraph(c *Config, dm *schema.Datamodel) (*Graph, error) {
	if c == nil {
		c = DefaultConfig()
	}
	reg, err := NewRegistry(c, dm)
	if err != nil {
		return nil, err
	}
	g := &Graph{
		Config:   c,
		Schema:   dm,
		Registry: reg,
		Names: NameMaps{
			Enums:  make(map[string]string, len(dm.Enums)),
			Models: make(map[string]string, len(dm.Models)),
			Types:  make(map[string]string, len(dm.Types)),
		},
	}
	for _, e := range dm.Enums {
		g.Names.Enums[e.Name] = c.Naming.Enum(e.Name)
	}
	for _, m := range dm.Models {
		g.Names.Models[m.Name] = c.Naming.Model(m.Name)
	}
	for _, t := range dm.Types {
		g.Names.Types[t.Name] = c.Naming.Type(t.Name)
	}
	return g, nil
}

// declarationName returns the rendered name of a model or embedded type.
func (g *Graph) declarationName(name string) string {
	if n, ok := g.Names.Models[name]; ok {
		return n
	}
	return g.Names.Types[name]
}
