package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/clustereng/provwrap/internal/config"
	"github.com/clustereng/provwrap/internal/errors"
	"github.com/clustereng/provwrap/internal/log"
	"github.com/clustereng/provwrap/internal/options"
)

// BuildApplicationFromViper turns the merged viper state (file, env,
// flags) into a validated Config and the wired logger and options store.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper) (*Application, error) {
	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigParseError, "failed to unmarshal configuration")
	}

	// Bound flags surface empty defaults through Unmarshal; backfill so
	// an unset flag does not erase the built-in settings.
	if cfg.Settings.LogLevel == "" {
		cfg.Settings.LogLevel = log.LevelNotice.String()
	}
	if cfg.Settings.DateFormat == "" {
		cfg.Settings.DateFormat = log.DefaultTimeFormat
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(ctx, cfg); err != nil {
		var details strings.Builder
		details.WriteString("Configuration validation failed:")
		validationErrors := err.(validator.ValidationErrors)
		for _, fe := range validationErrors {
			details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return nil, errors.NewUserFacing(errors.CodeConfigValidation, details.String(), "Please check your configuration file or flags.")
	}

	level, err := log.ParseLevel(cfg.Settings.LogLevel)
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigValidation,
			fmt.Sprintf("unrecognized log level %q", cfg.Settings.LogLevel),
			"Use one of: fatal, error, warn, notice, info, debug, trace.")
	}

	app := &Application{Config: cfg}

	sink := os.Stderr
	if cfg.Settings.LogFile != "" {
		f, err := os.OpenFile(cfg.Settings.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.WrapUserFacing(err, errors.CodeLogSinkError,
				fmt.Sprintf("cannot open log file %q", cfg.Settings.LogFile),
				"Check the path and its permissions.")
		}
		app.logFile = f
		sink = f
	}

	app.Logger = log.New(log.Config{
		Level:      level,
		Sink:       sink,
		Mode:       log.SinkAuto,
		TimeFormat: cfg.Settings.DateFormat,
	})

	app.Options = options.New()
	app.Options.Register(config.LoggerNamespace, cfg.LoggerOptions())

	app.Logger.Debugf("Logger initialized (Level: %s, Sink: %s)", level, sinkName(cfg))
	if v.ConfigFileUsed() != "" {
		app.Logger.Debugf("Using configuration file: %s", v.ConfigFileUsed())
	} else {
		app.Logger.Debugf("No configuration file found, using defaults/env/flags.")
	}

	return app, nil
}

func sinkName(cfg *config.Config) string {
	if cfg.Settings.LogFile != "" {
		return cfg.Settings.LogFile
	}
	return "stderr"
}
