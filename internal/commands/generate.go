package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/syssam/tsgen"
	"github.com/syssam/tsgen/internal/logger"
)

type generateOptions struct {
	schema   string
	config   string
	set      []string
	watch    bool
	debounce time.Duration
	workers  int
}

func registerGenerateCmd(parent *cobra.Command, v *viper.Viper) {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the TypeScript definitions of a datamodel",
		Long: `Read a datamodel document (JSON or YAML, optionally wrapped in a
"datamodel" key) and write the TypeScript definitions to the configured
output file, relative to the directory of the schema.`,
		Example: `  # Generate with default options
  tsgen generate --schema prisma/dmmf.json

  # Options from a file, one of them overridden
  tsgen generate -s prisma/dmmf.json -c tsgen.yaml --set enumType=object

  # Regenerate whenever the schema or options change
  tsgen generate -s prisma/dmmf.json -c tsgen.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o.debounce = v.GetDuration("debounce")
			o.workers = v.GetInt("workers")
			return runGenerate(cmd.Context(), o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.schema, "schema", "s", "", "datamodel document (.json, .yaml or .yml)")
	flags.StringVarP(&o.config, "config", "c", "", "options file (YAML or JSON)")
	flags.StringArrayVar(&o.set, "set", nil, "set an option, name=value (repeatable)")
	flags.BoolVarP(&o.watch, "watch", "w", false, "regenerate when the schema or options file changes")
	flags.Duration("debounce", 300*time.Millisecond, "quiet period before regenerating in watch mode")
	flags.Int("workers", 0, "parallel render workers (0 uses GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("schema")
	_ = v.BindPFlag("debounce", flags.Lookup("debounce"))
	_ = v.BindPFlag("workers", flags.Lookup("workers"))

	parent.AddCommand(cmd)
}

func runGenerate(ctx context.Context, o *generateOptions) error {
	log := logger.Named("generate")
	err := generateOnce(ctx, o, log)
	if !o.watch {
		return err
	}
	if err != nil {
		log.Errorw("generation failed", "error", err)
	}

	paths := []string{o.schema}
	if o.config != "" {
		paths = append(paths, o.config)
	}
	log.Infow("watching for changes", "files", paths, "debounce", o.debounce)
	return watchFiles(ctx, paths, o.debounce, log, func() {
		if err := generateOnce(ctx, o, log); err != nil {
			log.Errorw("generation failed", "error", err)
		}
	})
}

// generateOnce loads the schema and options from disk and writes the output.
func generateOnce(ctx context.Context, o *generateOptions, log *zap.SugaredLogger) error {
	start := time.Now()
	log = log.With("run", uuid.NewString())
	raw, err := optionMap(o.config, o.set)
	if err != nil {
		return err
	}
	if err := tsgen.GenerateFile(ctx, o.schema, raw, tsgen.WithWorkers(o.workers), tsgen.WithLogger(log)); err != nil {
		return err
	}
	log.Debugw("generation finished", "schema", o.schema, "duration", time.Since(start))
	return nil
}
