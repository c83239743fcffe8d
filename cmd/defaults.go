package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/clustereng/provwrap/internal/config"
	apperrors "github.com/clustereng/provwrap/internal/errors"
)

var defaultsJSON bool

var defaultsCmd = &cobra.Command{
	Use:   "defaults NAMESPACE [OPTION VALUE]...",
	Short: "Show or update the option defaults of a namespace.",
	Long: `Defaults prints the current option set of a namespace after applying
any OPTION VALUE pairs given. Option names may omit their leading dash;
names the namespace does not recognize are ignored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		namespace := args[0]
		current := application.Options.Defaults(namespace, args[1:]...)
		if namespace == config.LoggerNamespace {
			application.ReloadLoggerOptions()
		}

		if defaultsJSON {
			var json = jsoniter.ConfigCompatibleWithStandardLibrary
			data, err := json.MarshalIndent(current, "", "  ")
			if err != nil {
				return apperrors.Wrap(err, apperrors.CodeInternal, "encoding options as JSON")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		names := make([]string, 0, len(current))
		for name := range current {
			names = append(names, name)
		}
		sort.Strings(names)

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		defer tw.Flush()
		for _, name := range names {
			fmt.Fprintf(tw, "%s\t%s\n", name, current[name])
		}
		return nil
	},
}

func init() {
	defaultsCmd.Flags().BoolVar(&defaultsJSON, "json", false, "Print the option set as JSON")
	// dash-prefixed option names follow the namespace; keep them out of
	// flag parsing
	defaultsCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(defaultsCmd)
}
