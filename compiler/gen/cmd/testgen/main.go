// testgen is a simple test program that renders a small datamodel built with
// the schema builders and prints the TypeScript document.
// Run: go run ./compiler/gen/cmd/testgen
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/syssam/tsgen/compiler/gen"
	"github.com/syssam/tsgen/schema"
	"github.com/syssam/tsgen/schema/edge"
	"github.com/syssam/tsgen/schema/field"
)

func main() {
	dm := &schema.Datamodel{
		Enums: []*schema.Enum{
			schema.NewEnum("Role", "ADMIN", "USER"),
		},
		Models: []*schema.Model{
			schema.NewModel("User",
				field.Int("id").Default(),
				field.String("name"),
				field.Int("age").Optional(),
				field.Enum("role", "Role").Default(),
				field.JSON("settings").Override("Settings:{ theme: string; compact: boolean }"),
				edge.To("cars", "Car").List(),
				edge.To("groups", "Group").List(),
			),
			schema.NewModel("Car",
				field.String("model"),
				field.Time("registeredAt"),
				field.Decimal("price"),
				edge.To("owner", "User").Optional(),
				edge.To("plate", "Plate"),
			),
			schema.NewModel("Group",
				field.String("name"),
				edge.To("users", "User").List(),
			),
		},
		Types: []*schema.Model{
			schema.NewModel("Plate",
				field.String("country"),
				field.String("number"),
			),
		},
	}

	// Create config with functional options
	config, err := gen.NewConfig(
		gen.WithModelType("type"),
		gen.WithEnumType("object"),
		gen.WithRelationCounts(true, true),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %v\n", err)
		os.Exit(1)
	}

	graph, err := gen.NewGraph(config, dm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create graph: %v\n", err)
		os.Exit(1)
	}

	out, err := gen.NewGenerator(graph).Render(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
