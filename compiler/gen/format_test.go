package gen

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExecFormatter(t *testing.T) {
	t.Run("missing binary", func(t *testing.T) {
		_, err := NewExecFormatter(Format{Command: []string{"tsgen-no-such-prettier"}})
		require.Error(t, err)
		assert.True(t, IsExternalToolError(err))
		assert.Contains(t, err.Error(), "Unable to run Prettier. Is it installed?")
	})

	t.Run("empty command", func(t *testing.T) {
		_, err := NewExecFormatter(Format{})
		require.Error(t, err)
		assert.True(t, IsExternalToolError(err))
	})

	t.Run("missing config", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.json")
		_, err := NewExecFormatter(Format{Command: []string{os.Args[0]}, ConfigPath: missing})
		require.Error(t, err)
		assert.True(t, IsExternalToolError(err))
		assert.Contains(t, err.Error(), `prettierConfigPath does not exist: "`+missing+`"`)
	})

	t.Run("config is a directory", func(t *testing.T) {
		_, err := NewExecFormatter(Format{Command: []string{os.Args[0]}, ConfigPath: t.TempDir()})
		require.Error(t, err)
		assert.True(t, IsExternalToolError(err))
	})

	t.Run("ok", func(t *testing.T) {
		cfg := filepath.Join(t.TempDir(), ".prettierrc")
		require.NoError(t, os.WriteFile(cfg, []byte("{}"), 0o600))
		f, err := NewExecFormatter(Format{Command: []string{os.Args[0], "--flag"}, ConfigPath: cfg, ResolveConfig: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"--flag", "--stdin-filepath", "out.ts", "--parser", "typescript", "--config", cfg}, f.Args("out.ts"))
	})
}

func TestExecFormatterArgs(t *testing.T) {
	tests := []struct {
		name string
		cfg  Format
		want []string
	}{
		{
			name: "resolve",
			cfg:  Format{ResolveConfig: true},
			want: []string{"prettier", "--stdin-filepath", "/out/types.ts", "--parser", "typescript"},
		},
		{
			name: "no resolve",
			cfg:  Format{},
			want: []string{"prettier", "--stdin-filepath", "/out/types.ts", "--parser", "typescript", "--no-config"},
		},
		{
			name: "null config",
			cfg:  Format{ResolveConfig: true, NoConfig: true},
			want: []string{"prettier", "--stdin-filepath", "/out/types.ts", "--parser", "typescript", "--no-config"},
		},
		{
			name: "explicit config",
			cfg:  Format{ResolveConfig: true, ConfigPath: "/cfg/.prettierrc"},
			want: []string{"prettier", "--stdin-filepath", "/out/types.ts", "--parser", "typescript", "--config", "/cfg/.prettierrc"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &ExecFormatter{path: "npx", args: []string{"prettier"}, cfg: tt.cfg}
			assert.Equal(t, tt.want, f.Args("/out/types.ts"))
		})
	}
}

func TestExecFormatterRun(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	ctx := context.Background()

	t.Run("stdout is the result", func(t *testing.T) {
		f, err := NewExecFormatter(Format{Command: []string{"sh", "-c", "tr a-z A-Z"}, ResolveConfig: true})
		require.NoError(t, err)
		out, err := f.Format(ctx, []byte("export type a = b;\n"), "out.ts")
		require.NoError(t, err)
		assert.Equal(t, "EXPORT TYPE A = B;\n", string(out))
	})

	t.Run("stderr is reported", func(t *testing.T) {
		f, err := NewExecFormatter(Format{Command: []string{"sh", "-c", "echo 'SyntaxError: boom' >&2; exit 2"}})
		require.NoError(t, err)
		_, err = f.Format(ctx, []byte("x"), "out.ts")
		require.Error(t, err)
		assert.True(t, IsExternalToolError(err))
		assert.Contains(t, err.Error(), "SyntaxError: boom")
	})
}
