package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/tsgen/schema"
	"github.com/syssam/tsgen/schema/edge"
	"github.com/syssam/tsgen/schema/field"
)

func TestLoadJSON(t *testing.T) {
	dm, err := Load("testdata/blog.json")
	require.NoError(t, err)
	require.Len(t, dm.Enums, 1)
	assert.Equal(t, []string{"ADMIN", "USER"}, dm.Enums[0].Values)
	require.Len(t, dm.Models, 2)
	require.Len(t, dm.Types, 1)

	user := dm.Models[0]
	assert.Equal(t, "User", user.Name)
	require.Len(t, user.Fields, 4)

	id := user.Field("id")
	assert.Equal(t, schema.KindScalar, id.Kind)
	assert.Equal(t, schema.Int, id.Scalar)
	assert.True(t, id.HasDefaultValue)

	email := user.Field("email")
	assert.False(t, email.IsRequired)
	assert.Equal(t, "Primary address.", email.Documentation)

	assert.Equal(t, schema.KindEnum, user.Field("role").Kind)
	posts := user.Field("posts")
	assert.Equal(t, schema.KindRelation, posts.Kind)
	assert.True(t, posts.IsList)
	assert.Equal(t, "Post", posts.Type)

	assert.Equal(t, schema.Bytes, dm.Types[0].Field("raw").Scalar)
}

func TestLoadYAML(t *testing.T) {
	dm, err := Load("testdata/blog.yaml")
	require.NoError(t, err)
	require.Len(t, dm.Models, 1)
	user := dm.Models[0]
	assert.Equal(t, "An account.", user.Documentation)
	assert.Equal(t, schema.KindUnsupported, user.Field("location").Kind)
	assert.Empty(t, dm.Types)
}

func TestLoadErrors(t *testing.T) {
	t.Run("unknown scalar", func(t *testing.T) {
		_, err := Load("testdata/bad_scalar.json")
		require.Error(t, err)
		var lerr *LoadError
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, "testdata/bad_scalar.json", lerr.Path)
		assert.Contains(t, err.Error(), "User.id")
		assert.Contains(t, err.Error(), `unknown scalar type "Uuid"`)
	})
	t.Run("unknown kind", func(t *testing.T) {
		_, err := UnmarshalDatamodel([]byte(`{"models":[{"name":"A","fields":[{"name":"b","kind":"thing","type":"X"}]}]}`), JSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "A.b")
	})
	t.Run("extension", func(t *testing.T) {
		_, err := Load("schema.prisma")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported datamodel extension")
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := UnmarshalDatamodel([]byte(`{`), JSON)
		assert.Error(t, err)
		_, err = UnmarshalDatamodel([]byte("models: [\n"), YAML)
		assert.Error(t, err)
	})
}

func TestMarshalDatamodel(t *testing.T) {
	dm := &schema.Datamodel{
		Enums: []*schema.Enum{schema.NewEnum("Role", "ADMIN", "USER")},
		Models: []*schema.Model{
			schema.NewModel("User",
				field.Int("id").Default(),
				field.String("email").Optional().Comment("Primary address."),
				edge.To("posts", "Post").List(),
			),
		},
	}
	buf, err := MarshalDatamodel(dm)
	require.NoError(t, err)

	got, err := UnmarshalDatamodel(buf, JSON)
	require.NoError(t, err)
	assert.Equal(t, dm.Enums, got.Enums)
	require.Len(t, got.Models, 1)
	assert.Equal(t, dm.Models[0].Fields, got.Models[0].Fields)
}
