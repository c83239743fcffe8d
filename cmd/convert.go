package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/clustereng/provwrap/internal/errors"
	"github.com/clustereng/provwrap/pkg/units"
)

var (
	convertFrom      string
	convertTo        string
	convertPrecision string
)

var convertCmd = &cobra.Command{
	Use:   "convert SPEC",
	Short: "Convert a byte-size specification between SI units.",
	Long: `Convert parses a size specification such as '10k' or '1.5GB' and
re-expresses it in another unit. A unit suffix inside the spec overrides
--from; without --to the result is a byte count.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := units.Convert(args[0], convertFrom, convertTo, convertPrecision)
		if err != nil {
			wrapped := apperrors.WrapUserFacing(err, apperrors.CodeUnknownUnit,
				fmt.Sprintf("cannot convert %q", args[0]),
				"Recognized units: b, k, m, g, t, p, e, z, y, optionally followed by B.")
			reportError(wrapped)
			return wrapped
		}
		application.Logger.Debugf("converted %q (from=%q, to=%q) -> %s", args[0], convertFrom, convertTo, result)
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Unit assumed when the spec carries no suffix")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Unit to express the result in (default bytes)")
	convertCmd.Flags().StringVar(&convertPrecision, "precision", "", "fmt verb for fractional results (default %.01f)")
	rootCmd.AddCommand(convertCmd)
}
