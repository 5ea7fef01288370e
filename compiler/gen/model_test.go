package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/tsgen/schema"
	"github.com/syssam/tsgen/schema/edge"
	"github.com/syssam/tsgen/schema/field"
)

func mustGraph(t *testing.T, dm *schema.Datamodel, opts ...Option) *Graph {
	t.Helper()
	c, err := NewConfig(opts...)
	require.NoError(t, err)
	g, err := NewGraph(c, dm)
	require.NoError(t, err)
	return g
}

// renderDecl renders the model or type named name.
func renderDecl(t *testing.T, g *Graph, name string) string {
	t.Helper()
	for _, m := range append(append([]*schema.Model(nil), g.Schema.Models...), g.Schema.Types...) {
		if m.Name == name {
			got, err := g.renderModel(m, g.Registry.NewUsage())
			require.NoError(t, err)
			return got
		}
	}
	t.Fatalf("no declaration %s", name)
	return ""
}

func interfaceOf(name string, lines ...string) string {
	if len(lines) == 0 {
		return "export interface " + name + " {}"
	}
	return "export interface " + name + " {\n" + strings.Join(lines, "\n") + "\n}"
}

func TestRenderModelScalars(t *testing.T) {
	dm := &schema.Datamodel{Models: []*schema.Model{
		schema.NewModel("Person",
			field.Int("id").Default(),
			field.String("name"),
			field.Int("age").Optional(),
			field.Bool("active"),
			field.Float("score"),
			field.JSON("meta"),
			field.Time("born"),
			field.BigInt("big"),
			field.Decimal("price"),
			field.Bytes("avatar").Optional(),
			field.Unsupported("location"),
		),
	}}
	got := renderDecl(t, mustGraph(t, dm), "Person")
	assert.Equal(t, interfaceOf("Person",
		"  id: number;",
		"  name: string;",
		"  age: number | null;",
		"  active: boolean;",
		"  score: number;",
		"  meta: JsonValue;",
		"  born: Date;",
		"  big: bigint;",
		"  price: Decimal;",
		"  avatar: Uint8Array | null;",
		"  location: any;",
	), got)
}

func TestRenderField(t *testing.T) {
	tests := []struct {
		name  string
		field schema.Descriptor
		opts  []Option
		want  string
	}{
		{"list", field.String("tags").List(), nil, "  tags: string[];"},
		{"nullable", field.String("email").Optional(), nil, "  email: string | null;"},
		{"optional nullable", field.String("email").Optional(), []Option{WithOptionalNullables(true)}, "  email?: string | null;"},
		{"default", field.Int("id").Default(), nil, "  id: number;"},
		{"optional default", field.Int("id").Default(), []Option{WithOptionalDefaults(true)}, "  id?: number;"},
		{"nullable list", field.Int("ids").List().Optional(), nil, "  ids: number[] | null;"},
		{
			"complex list", field.String("tags").List(),
			[]Option{WithScalarType(schema.String, "string | number")},
			"  tags: (string | number)[];",
		},
		{
			"complex nullable", field.String("email").Optional(),
			[]Option{WithScalarType(schema.String, "string | number")},
			"  email: (string | number) | null;",
		},
		{
			"function list", field.String("cbs").List(),
			[]Option{WithScalarType(schema.String, "() => void")},
			"  cbs: (() => void)[];",
		},
		{
			"complex required", field.String("email"),
			[]Option{WithScalarType(schema.String, "string | number")},
			"  email: string | number;",
		},
		{"override list", field.String("ids").List().Override("Meta:{ a: number }"), nil, "  ids: Meta[];"},
		{"literal list", field.String("tags").List().Literal(`"a" | "b"`), nil, `  tags: "a" | "b";`},
		{"literal nullable list", field.String("tags").List().Optional().Literal(`"a" | "b"`), nil, `  tags: ("a" | "b") | null;`},
		{"enum", field.Enum("gender", "Gender"), []Option{WithNaming(Naming{EnumPrefix: "e"})}, "  gender: eGender;"},
		{"enum list", field.Enum("genders", "Gender").List(), nil, "  genders: Gender[];"},
		{"per field types off", field.String("ids").List().Override("Meta"), []Option{WithPerFieldTypes(false)}, "  ids: string[];"},
		{"builtin override", field.Bytes("data").Override("BufferObject"), nil, "  data: BufferObject;"},
		{
			"imported override", field.String("email").Optional().Override("Email"),
			[]Option{WithTypeImportPath("./types.js")},
			"  email: Email | null;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := &schema.Datamodel{
				Enums:  []*schema.Enum{schema.NewEnum("Gender", "Male", "Female")},
				Models: []*schema.Model{schema.NewModel("Person", tt.field)},
			}
			got := renderDecl(t, mustGraph(t, dm, tt.opts...), "Person")
			assert.Equal(t, interfaceOf("Person", tt.want), got)
		})
	}
}

func TestRenderModelComments(t *testing.T) {
	person := func() *schema.Datamodel {
		return &schema.Datamodel{Models: []*schema.Model{
			schema.NewModel("Person",
				field.String("code").Comment("The code.").Override("Code"),
				field.String("name").Comment("Full name.  "),
			).Comment("A person."),
		}}
	}

	t.Run("enabled", func(t *testing.T) {
		got := renderDecl(t, mustGraph(t, person(), WithComments(true), WithTypeImportPath("./codes.js")), "Person")
		assert.Equal(t, "/**\n * A person.\n */\n"+interfaceOf("Person",
			"  /**",
			"   * The code.",
			"   */",
			"  code: Code;",
			"  /**",
			"   * Full name.",
			"   */",
			"  name: string;",
		), got)
	})

	t.Run("disabled", func(t *testing.T) {
		got := renderDecl(t, mustGraph(t, person(), WithTypeImportPath("./codes.js")), "Person")
		assert.Equal(t, interfaceOf("Person", "  code: Code;", "  name: string;"), got)
	})

	t.Run("override line kept without per field types", func(t *testing.T) {
		got := renderDecl(t, mustGraph(t, person(), WithComments(true), WithPerFieldTypes(false)), "Person")
		assert.Contains(t, got, "  /**\n   * The code.\n   * [Code]\n   */\n  code: string;")
	})
}

func relations() *schema.Datamodel {
	return &schema.Datamodel{
		Models: []*schema.Model{
			schema.NewModel("User",
				field.Int("id"),
				edge.To("posts", "Post").List(),
				edge.To("profile", "Profile").Optional(),
				edge.To("best", "Post"),
				edge.To("photos", "Photo").List(),
				edge.To("cover", "Photo").Optional(),
			),
			schema.NewModel("Post", field.Int("id"), edge.To("author", "User")),
			schema.NewModel("Profile", field.Int("id")),
		},
		Types: []*schema.Model{
			schema.NewModel("Photo", field.Int("height")),
		},
	}
}

func TestRenderRelations(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{
			name: "optional",
			want: []string{
				"  id: number;",
				"  posts?: Post[];",
				"  profile?: Profile | null;",
				"  best?: Post;",
				"  photos: Photo[];",
				"  cover: Photo | null;",
			},
		},
		{
			name: "required",
			opts: []Option{WithRelations(RelationsRequired)},
			want: []string{
				"  id: number;",
				"  posts: Post[];",
				"  profile: Profile | null;",
				"  best: Post;",
				"  photos: Photo[];",
				"  cover: Photo | null;",
			},
		},
		{
			name: "omitted",
			opts: []Option{WithRelations(RelationsOmitted)},
			want: []string{
				"  id: number;",
				"  photos: Photo[];",
				"  cover: Photo | null;",
			},
		},
		{
			name: "embedded types follow nullable rule",
			opts: []Option{WithRelations(RelationsOmitted), WithOptionalNullables(true)},
			want: []string{
				"  id: number;",
				"  photos: Photo[];",
				"  cover?: Photo | null;",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderDecl(t, mustGraph(t, relations(), tt.opts...), "User")
			assert.Equal(t, interfaceOf("User", tt.want...), got)
		})
	}
}

func TestRenderRelationNames(t *testing.T) {
	g := mustGraph(t, relations(), WithNaming(Naming{ModelPrefix: "I", TypeSuffix: "Type"}))
	got := renderDecl(t, g, "User")
	assert.True(t, strings.HasPrefix(got, "export interface IUser {\n"), got)
	assert.Contains(t, got, "  posts?: IPost[];")
	assert.Contains(t, got, "  photos: PhotoType[];")
	assert.True(t, strings.HasPrefix(renderDecl(t, g, "Photo"), "export interface PhotoType {\n"))
}

func TestRenderRelationCounts(t *testing.T) {
	t.Run("optional", func(t *testing.T) {
		got := renderDecl(t, mustGraph(t, relations(), WithRelationCounts(true, true)), "User")
		assert.True(t, strings.HasSuffix(got, "  cover: Photo | null;\n  _count?: { posts: number };\n}"), got)
	})

	t.Run("required", func(t *testing.T) {
		got := renderDecl(t, mustGraph(t, relations(), WithRelationCounts(true, false)), "User")
		assert.Contains(t, got, "\n  _count: { posts: number };\n}")
	})

	t.Run("disabled", func(t *testing.T) {
		got := renderDecl(t, mustGraph(t, relations()), "User")
		assert.NotContains(t, got, CountField)
	})

	t.Run("omitted relations", func(t *testing.T) {
		got := renderDecl(t, mustGraph(t, relations(), WithRelationCounts(true, true), WithRelations(RelationsOmitted)), "User")
		assert.NotContains(t, got, CountField)
	})

	t.Run("no list relations", func(t *testing.T) {
		got := renderDecl(t, mustGraph(t, relations(), WithRelationCounts(true, true)), "Post")
		assert.Equal(t, interfaceOf("Post", "  id: number;", "  author?: User;"), got)
	})

	t.Run("several relations", func(t *testing.T) {
		dm := relations()
		dm.Models[0].Fields = append(dm.Models[0].Fields,
			edge.To("drafts", "Post").List().Descriptor(),
			edge.To("pinned", "Post").List().Override("Pinned:number[]").Descriptor(),
		)
		got := renderDecl(t, mustGraph(t, dm, WithRelationCounts(true, true)), "User")
		assert.Contains(t, got, "  pinned: Pinned[];\n  _count?: { posts: number; drafts: number };\n}")
	})
}

func TestRenderModelTypeAlias(t *testing.T) {
	dm := &schema.Datamodel{Models: []*schema.Model{
		schema.NewModel("Person", field.Int("id")),
		schema.NewModel("Empty"),
	}}
	g := mustGraph(t, dm, WithModelType("type"))
	assert.Equal(t, "export type Person = {\n  id: number;\n};", renderDecl(t, g, "Person"))
	assert.Equal(t, "export type Empty = {};", renderDecl(t, g, "Empty"))

	g = mustGraph(t, dm)
	assert.Equal(t, "export interface Empty {}", renderDecl(t, g, "Empty"))
}

func TestRenderModelErrors(t *testing.T) {
	t.Run("unknown model", func(t *testing.T) {
		dm := &schema.Datamodel{Models: []*schema.Model{
			schema.NewModel("Car", edge.To("owner", "Ghost")),
		}}
		g := mustGraph(t, dm)
		_, err := g.renderModel(dm.Models[0], g.Registry.NewUsage())
		require.Error(t, err)
		assert.True(t, IsSchemaReferenceError(err))
		assert.EqualError(t, err, "tsgen: unknown model name Ghost on Car.owner")

		var rerr *SchemaReferenceError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, "model", rerr.Kind)
	})

	t.Run("unknown enum", func(t *testing.T) {
		dm := &schema.Datamodel{Models: []*schema.Model{
			schema.NewModel("Person", field.Enum("mood", "Mood")),
		}}
		g := mustGraph(t, dm)
		_, err := g.renderModel(dm.Models[0], g.Registry.NewUsage())
		require.Error(t, err)
		assert.EqualError(t, err, "tsgen: unknown enum name Mood on Person.mood")
	})

	t.Run("overridden field is not resolved", func(t *testing.T) {
		dm := &schema.Datamodel{Models: []*schema.Model{
			schema.NewModel("Car", edge.To("owner", "Ghost").Override("Owner:string")),
		}}
		got := renderDecl(t, mustGraph(t, dm), "Car")
		assert.Equal(t, interfaceOf("Car", "  owner: Owner;"), got)
	})
}

func TestRenderModelUsage(t *testing.T) {
	dm := &schema.Datamodel{Models: []*schema.Model{
		schema.NewModel("Person", field.JSON("meta"), field.String("name"), field.Int("age").Override("Age:number")),
	}}
	g := mustGraph(t, dm)
	u := g.Registry.NewUsage()
	_, err := g.renderModel(dm.Models[0], u)
	require.NoError(t, err)
	assert.Equal(t, []string{"Age", "JsonValue", "string"}, u.Names())
}
