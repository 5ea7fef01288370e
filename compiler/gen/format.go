package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// Formatter rewrites a generated document.
type Formatter interface {
	Format(ctx context.Context, src []byte, filename string) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(ctx context.Context, src []byte, filename string) ([]byte, error)

// Format calls f.
func (f FormatterFunc) Format(ctx context.Context, src []byte, filename string) ([]byte, error) {
	return f(ctx, src, filename)
}

// ExecFormatter runs Prettier as a child process, feeding the document on
// stdin and reading the result from stdout.
type ExecFormatter struct {
	path string
	args []string
	cfg  Format
}

// NewExecFormatter checks that the configured command and configuration
// file exist and returns a formatter for them.
func NewExecFormatter(f Format) (*ExecFormatter, error) {
	if len(f.Command) == 0 {
		return nil, NewExternalToolError("prettier", "empty prettierCommand", nil)
	}
	path, err := exec.LookPath(f.Command[0])
	if err != nil {
		return nil, NewExternalToolError("prettier", "Unable to run Prettier. Is it installed?", err)
	}
	if err := f.checkConfigPath(); err != nil {
		return nil, err
	}
	return &ExecFormatter{path: path, args: f.Command[1:], cfg: f}, nil
}

// checkConfigPath reports an explicit configuration file that is missing
// or not a regular file.
func (f Format) checkConfigPath() *ExternalToolError {
	if f.ConfigPath == "" {
		return nil
	}
	st, err := os.Stat(f.ConfigPath)
	if err != nil || !st.Mode().IsRegular() {
		return NewExternalToolError("prettier", fmt.Sprintf("prettierConfigPath does not exist: %q", f.ConfigPath), err)
	}
	return nil
}

// Args returns the command line arguments used to format filename.
func (f *ExecFormatter) Args(filename string) []string {
	args := append([]string(nil), f.args...)
	args = append(args, "--stdin-filepath", filename, "--parser", "typescript")
	switch {
	case f.cfg.NoConfig || !f.cfg.ResolveConfig:
		args = append(args, "--no-config")
	case f.cfg.ConfigPath != "":
		args = append(args, "--config", f.cfg.ConfigPath)
	}
	return args
}

// Format implements the Formatter interface.
func (f *ExecFormatter) Format(ctx context.Context, src []byte, filename string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.path, f.Args(filename)...) //nolint:gosec // command is configured by the user
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "format failed"
		}
		return nil, NewExternalToolError("prettier", msg, errors.Wrapf(err, "run %s", f.path))
	}
	return stdout.Bytes(), nil
}
