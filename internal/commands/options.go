package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syssam/tsgen/compiler/gen"
)

func registerOptionsCmd(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "options",
		Short: "List the generator options",
		Long: `List every option accepted in a --config file or through --set,
with its default value.`,
		Example: `  # Show all options
  tsgen options`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printOptions(cmd)
		},
	})
}

func printOptions(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDEFAULT\tDESCRIPTION")
	for _, o := range gen.Options {
		def := fmt.Sprintf("%q", o.Default)
		if o.Kind == gen.OptionEnum {
			def = strings.Join(o.Values, "|")
		}
		desc := o.Description
		if o.DependsOn != "" {
			desc += " (requires " + o.DependsOn + ")"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", o.Name, def, desc)
	}
	return w.Flush()
}
