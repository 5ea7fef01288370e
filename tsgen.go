// Package tsgen generates TypeScript type definitions from Prisma datamodel
// documents.
//
// Most callers use GenerateFile, which loads a document, resolves the host
// option map and writes the output file:
//
//	err := tsgen.GenerateFile(ctx, "prisma/dmmf.json", map[string]string{
//	    "enumType": "object",
//	}, tsgen.WithWorkers(4))
//
// The compiler/gen package exposes the individual stages.
package tsgen

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/syssam/tsgen/compiler/gen"
	"github.com/syssam/tsgen/compiler/load"
)

// RunOption configures a GenerateFile call.
type RunOption func(*run)

type run struct {
	workers   int
	logger    *zap.SugaredLogger
	formatter gen.Formatter
}

// WithWorkers sets the number of parallel render workers.
func WithWorkers(n int) RunOption {
	return func(r *run) { r.workers = n }
}

// WithLogger sets the logger.
func WithLogger(l *zap.SugaredLogger) RunOption {
	return func(r *run) { r.logger = l }
}

// WithFormatter replaces the formatter described by the options.
func WithFormatter(f gen.Formatter) RunOption {
	return func(r *run) { r.formatter = f }
}

// GenerateFile generates the definitions of the datamodel document at
// schemaPath. Relative paths in options are resolved against the directory
// of the document. Options are validated before the document is read.
func GenerateFile(ctx context.Context, schemaPath string, options map[string]string, opts ...RunOption) error {
	r := &run{}
	for _, opt := range opts {
		opt(r)
	}
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return errors.Wrap(err, "resolve schema path")
	}
	c, err := gen.Resolve(options, filepath.Dir(abs))
	if err != nil {
		return err
	}
	dm, err := load.Load(abs)
	if err != nil {
		return err
	}
	g, err := gen.NewGraph(c, dm)
	if err != nil {
		return err
	}
	return gen.NewGenerator(g).
		WithWorkers(r.workers).
		WithLogger(r.logger).
		WithFormatter(r.formatter).
		Generate(ctx)
}
