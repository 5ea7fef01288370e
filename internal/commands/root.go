// Package commands contains all CLI command definitions.
package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/syssam/tsgen/internal/logger"
	"github.com/syssam/tsgen/internal/version"
)

// EnvPrefix prefixes the environment variables that override flags, for
// example TSGEN_LOG_JSON or TSGEN_WORKERS.
const EnvPrefix = "TSGEN"

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	v := newViper()
	rootCmd := &cobra.Command{
		Use:           "tsgen",
		Short:         "Generate TypeScript type definitions from a Prisma datamodel",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return logger.Initialize(v.GetBool("log-json"), v.GetInt("verbose"))
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Cleanup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Bool("log-json", false, "write logs as JSON")
	flags.CountP("verbose", "v", "increase log verbosity")
	_ = v.BindPFlag("log-json", flags.Lookup("log-json"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))

	registerGenerateCmd(rootCmd, v)
	registerOptionsCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}
