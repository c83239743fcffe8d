package app

import (
	"os"

	"github.com/clustereng/provwrap/internal/config"
	"github.com/clustereng/provwrap/internal/log"
	"github.com/clustereng/provwrap/internal/options"
)

// Application bundles the wired utility core handed to the commands.
type Application struct {
	Logger  *log.Logger
	Options *options.Store
	Config  *config.Config

	logFile *os.File
}

// Close releases the log file when logging was routed to one. The
// stderr sink is never closed.
func (a *Application) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

// ReloadLoggerOptions pushes the logger namespace's current option
// values back onto the live logger. Called after a defaults update so
// -verbose changes take effect immediately.
func (a *Application) ReloadLoggerOptions() {
	verbose, ok := a.Options.Get(config.LoggerNamespace, config.OptVerbose)
	if !ok {
		return
	}
	if level, err := log.ParseLevel(verbose); err == nil {
		a.Logger.SetLevel(level)
	}
}
