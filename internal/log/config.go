package log

import (
	"io"
	"os"
)

// SinkMode selects the output format. SinkAuto probes the sink at
// construction time; the other two force a formatter regardless of what
// the sink actually is.
type SinkMode int

const (
	SinkAuto SinkMode = iota
	SinkTerminal
	SinkPlain
)

// DefaultTimeFormat is the timestamp layout of the plain formatter.
const DefaultTimeFormat = "2006-01-02 15:04:05"

type Config struct {
	// Level is the verbosity threshold; messages ranked above it are
	// suppressed.
	Level Level
	// Sink receives formatted lines. The logger never closes it.
	// Defaults to os.Stderr.
	Sink io.Writer
	// Mode picks the terminal or plain formatter. SinkAuto inspects
	// the sink with isatty.
	Mode SinkMode
	// TimeFormat is the Go time layout used by the plain formatter.
	TimeFormat string
}

func DefaultConfig() Config {
	return Config{
		Level:      LevelNotice,
		Sink:       os.Stderr,
		Mode:       SinkAuto,
		TimeFormat: DefaultTimeFormat,
	}
}
