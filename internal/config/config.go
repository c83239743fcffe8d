package config

import (
	"github.com/clustereng/provwrap/internal/log"
)

// Namespace names for the options store.
const (
	LoggerNamespace = "logger"
)

// Canonical option names of the logger namespace.
const (
	OptVerbose = "-verbose"
	OptLogFile = "-logfile"
	OptDate    = "-date"
	OptTmpDir  = "-tmpdir"
)

type Config struct {
	Settings SettingsConfig `mapstructure:"settings" yaml:"settings"`
}

type SettingsConfig struct {
	// LogLevel is a canonical severity name; validated against the
	// level table during bootstrap rather than by tag.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// LogFile routes log output to a file instead of stderr.
	LogFile string `mapstructure:"log_file" yaml:"log_file" validate:"omitempty,filepath"`
	// DateFormat is the Go time layout for non-terminal log lines.
	// Empty falls back to log.DefaultTimeFormat.
	DateFormat string `mapstructure:"date_format" yaml:"date_format"`
	// TmpDir overrides temporary-directory resolution when set.
	TmpDir string `mapstructure:"tmp_dir" yaml:"tmp_dir"`
}

// LoggerOptions exposes the settings as the logger namespace's option
// defaults for the store.
func (c *Config) LoggerOptions() map[string]string {
	return map[string]string{
		OptVerbose: c.Settings.LogLevel,
		OptLogFile: c.Settings.LogFile,
		OptDate:    c.Settings.DateFormat,
		OptTmpDir:  c.Settings.TmpDir,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:   log.LevelNotice.String(),
			LogFile:    "",
			DateFormat: log.DefaultTimeFormat,
			TmpDir:     "",
		},
	}
}
