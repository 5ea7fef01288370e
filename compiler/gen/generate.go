package gen

import (
	"context"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/tsgen/schema"
)

// Generator renders the document of a Graph and writes it.
// Declarations are rendered in parallel and joined in schema order.
type Generator struct {
	graph     *Graph
	workers   int
	logger    *zap.SugaredLogger
	formatter Formatter
}

// NewGenerator creates a generator for g.
//
// Example:
//
//	g, err := gen.NewGraph(cfg, dm)
//	if err != nil {
//	    return err
//	}
//	err = gen.NewGenerator(g).WithWorkers(4).Generate(ctx)
func NewGenerator(g *Graph) *Generator {
	return &Generator{
		graph:   g,
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop().Sugar(),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithLogger sets the logger.
func (g *Generator) WithLogger(l *zap.SugaredLogger) *Generator {
	if l != nil {
		g.logger = l
	}
	return g
}

// WithFormatter sets the formatter used instead of the one described by
// the configuration.
func (g *Generator) WithFormatter(f Formatter) *Generator {
	g.formatter = f
	return g
}

// renderTask renders one enum or declaration.
type renderTask func(u *Usage) (string, error)

// Render returns the assembled document, without formatting.
func (g *Generator) Render(ctx context.Context) ([]byte, error) {
	start := time.Now()
	dm, reg := g.graph.Schema, g.graph.Registry
	for _, w := range reg.Warnings() {
		g.logger.Warnw("conflicting type definitions", "detail", w)
	}

	tasks := make([]renderTask, 0, len(dm.Enums)+len(dm.Models)+len(dm.Types))
	for _, e := range dm.Enums {
		tasks = append(tasks, func(*Usage) (string, error) { return g.graph.renderEnum(e) })
	}
	for _, m := range append(append([]*schema.Model(nil), dm.Models...), dm.Types...) {
		tasks = append(tasks, func(u *Usage) (string, error) { return g.graph.renderModel(m, u) })
	}

	var (
		blocks = make([]string, len(tasks))
		usages = make([]*Usage, len(tasks))
		errs   = make([]error, len(tasks))
	)
	// Tasks are not cancelled when a sibling fails, so the error reported
	// below is always the first one in schema order.
	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for i, task := range tasks {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			u := reg.NewUsage()
			blocks[i], errs[i] = task(u)
			usages[i] = u
			return errs[i]
		})
	}
	if err := eg.Wait(); err != nil {
		// Report the first failure in schema order.
		for _, e := range errs {
			if e != nil {
				return nil, e
			}
		}
		return nil, err
	}

	used := reg.NewUsage()
	for _, u := range usages {
		used.Merge(u)
	}
	var b strings.Builder
	assemble(&b, g.graph.Config.Header, reg.Imports(used), blocks, reg.Definitions(used))
	g.logger.Debugw("rendered document",
		"enums", len(dm.Enums),
		"models", len(dm.Models),
		"types", len(dm.Types),
		"custom_types", len(used.Names()),
		"workers", g.workers,
		"duration", time.Since(start),
	)
	return []byte(b.String()), nil
}

// assemble writes the document blocks separated by blank lines, with a
// single trailing newline.
func assemble(b *strings.Builder, header string, imports, declarations, definitions []string) {
	var blocks []string
	if header != "" {
		lines := strings.Split(header, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRight("// "+line, " ")
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if len(imports) > 0 {
		blocks = append(blocks, strings.Join(imports, "\n"))
	}
	blocks = append(blocks, declarations...)
	blocks = append(blocks, definitions...)
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n")
}

// Generate renders the document, formats it when configured and writes it
// to the configured output path.
func (g *Generator) Generate(ctx context.Context) error {
	c := g.graph.Config
	formatter := g.formatter
	if formatter == nil && c.Format.Enabled {
		ef, err := NewExecFormatter(c.Format)
		if err != nil {
			return err
		}
		formatter = ef
	}
	out, err := g.Render(ctx)
	if err != nil {
		return err
	}
	path := c.OutputPath()
	w := NewWriter(formatter)
	if err := w.Write(ctx, path, out); err != nil {
		return err
	}
	m := w.Metrics()
	g.logger.Infow("wrote output", "path", path, "bytes", m.TotalBytes, "format_time", m.FormatTime)
	return nil
}

// Generate is the convenience entry point: it builds the graph of dm and
// writes its document.
func Generate(ctx context.Context, c *Config, dm *schema.Datamodel, logger *zap.SugaredLogger) error {
	g, err := NewGraph(c, dm)
	if err != nil {
		return err
	}
	return NewGenerator(g).WithLogger(logger).Generate(ctx)
}
