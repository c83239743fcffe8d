package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clustereng/provwrap/internal/app"
	apperrors "github.com/clustereng/provwrap/internal/errors"
)

var (
	cfgFile    string
	logLevel   string
	logFile    string
	dateFormat string
	tmpDir     string
)

// application is built in PersistentPreRunE and shared by subcommands.
var application *app.Application

var rootCmd = &cobra.Command{
	Use:   "provwrap",
	Short: "Utility core of the cluster provisioning wrapper.",
	Long: `provwrap carries the support facilities of the cluster-management CLI:
leveled logging with terminal-aware formatting, per-namespace option
defaults, SI byte-size conversion and temporary-file helpers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(); err != nil {
			return err
		}
		built, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if err != nil {
			reportError(err)
			return err
		}
		application = built
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application != nil {
			application.Close()
		}
	},
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .provwrap.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (fatal, error, warn, notice, info, debug, trace)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write log output to a file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&dateFormat, "date-format", "", "Override the timestamp layout of file log lines")
	rootCmd.PersistentFlags().StringVar(&tmpDir, "tmp-dir", "", "Override temporary-directory resolution")

	viper.BindPFlag("settings.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("settings.log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("settings.date_format", rootCmd.PersistentFlags().Lookup("date-format"))
	viper.BindPFlag("settings.tmp_dir", rootCmd.PersistentFlags().Lookup("tmp-dir"))

	viper.SetEnvPrefix("PROVWRAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func initializeConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".provwrap")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return apperrors.Wrap(err, apperrors.CodeConfigReadError, "failed to read config file")
		}
	}
	return nil
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	if userMsg, suggestion, ok := apperrors.GetUserFacingMessage(err); ok {
		fmt.Fprintf(os.Stderr, "Error Details: %s\n", userMsg)
		if suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
		}
	}
}
