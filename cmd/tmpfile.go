package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clustereng/provwrap/internal/config"
	apperrors "github.com/clustereng/provwrap/internal/errors"
	"github.com/clustereng/provwrap/pkg/tmpfile"
)

var (
	tmpfileExt    string
	tmpfileCreate bool
)

var tmpfileCmd = &cobra.Command{
	Use:   "tmpfile PREFIX",
	Short: "Generate a unique temporary file path.",
	Long: `Tmpfile composes a unique path under the resolved temporary directory
from PREFIX and an optional extension. With --create the file is opened
exclusively before the path is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		override, _ := application.Options.Get(config.LoggerNamespace, config.OptTmpDir)

		if tmpfileCreate {
			f, err := tmpfile.Create(override, args[0], tmpfileExt)
			if err != nil {
				wrapped := apperrors.WrapUserFacing(err, apperrors.CodeTempFileError,
					"cannot create temporary file",
					"Check the temporary directory and its permissions.")
				reportError(wrapped)
				return wrapped
			}
			defer f.Close()
			application.Logger.Debugf("created temporary file %s", f.Name())
			fmt.Fprintln(cmd.OutOrStdout(), f.Name())
			return nil
		}

		path := tmpfile.File(override, args[0], tmpfileExt)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	tmpfileCmd.Flags().StringVar(&tmpfileExt, "ext", "", "Extension appended to the file name (leading dot optional)")
	tmpfileCmd.Flags().BoolVar(&tmpfileCreate, "create", false, "Create the file exclusively instead of only naming it")
	rootCmd.AddCommand(tmpfileCmd)
}
