package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Logger emits one formatted line per call to an externally owned sink.
// The formatter is fixed at construction: colorized without timestamps
// for terminal sinks, timestamped plain text otherwise. Writes are
// serialized so concurrent callers cannot interleave a line.
type Logger struct {
	mu         sync.Mutex
	threshold  Level
	sink       io.Writer
	terminal   bool
	timeFormat string
	now        func() time.Time
}

func New(cfg Config) *Logger {
	sink := cfg.Sink
	if sink == nil {
		sink = os.Stderr
	}

	terminal := false
	switch cfg.Mode {
	case SinkTerminal:
		terminal = true
	case SinkPlain:
		terminal = false
	default:
		terminal = isTerminal(sink)
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	level := cfg.Level
	if level == 0 {
		level = LevelNotice
	}

	return &Logger{
		threshold:  level,
		sink:       sink,
		terminal:   terminal,
		timeFormat: timeFormat,
		now:        time.Now,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Threshold returns the current verbosity threshold.
func (l *Logger) Threshold() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threshold
}

// SetLevel changes the verbosity threshold for subsequent calls.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = level
}

// Enabled reports whether a message at the given level would be emitted.
// The level may be a Level, an int or a name; LevelUnknown always passes
// (see the LevelUnknown doc).
func (l *Logger) Enabled(level any) bool {
	return l.Threshold() >= LevelOf(level)
}

// Log resolves level, filters against the threshold and writes one line.
func (l *Logger) Log(level any, msg string) {
	l.emit(LevelOf(level), msg)
}

// Logf is Log with fmt.Sprintf formatting.
func (l *Logger) Logf(level any, format string, args ...any) {
	lvl := LevelOf(level)
	if l.Threshold() < lvl {
		return
	}
	l.emit(lvl, fmt.Sprintf(format, args...))
}

func (l *Logger) Fatalf(format string, args ...any)  { l.Logf(LevelFatal, format, args...) }
func (l *Logger) Errorf(format string, args ...any)  { l.Logf(LevelError, format, args...) }
func (l *Logger) Warnf(format string, args ...any)   { l.Logf(LevelWarn, format, args...) }
func (l *Logger) Noticef(format string, args ...any) { l.Logf(LevelNotice, format, args...) }
func (l *Logger) Infof(format string, args ...any)   { l.Logf(LevelInfo, format, args...) }
func (l *Logger) Debugf(format string, args ...any)  { l.Logf(LevelDebug, format, args...) }
func (l *Logger) Tracef(format string, args ...any)  { l.Logf(LevelTrace, format, args...) }

func (l *Logger) emit(lvl Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.threshold < lvl {
		return
	}

	var line string
	if l.terminal {
		line = formatTerminal(lvl, msg)
	} else {
		line = formatPlain(l.now().Format(l.timeFormat), lvl, msg)
	}
	fmt.Fprintln(l.sink, line)
}

// formatTerminal wraps the padded tag and the message in the escape
// sequence for the level and omits the timestamp.
func formatTerminal(lvl Level, msg string) string {
	tag := fmt.Sprintf("%-6.6s", lvl.String())
	esc, ok := levelEscapes[lvl]
	if !ok {
		return fmt.Sprintf("[%s] %s", tag, msg)
	}
	return fmt.Sprintf("%s[%s]%s %s%s%s", esc, tag, escReset, esc, msg, escReset)
}

func formatPlain(stamp string, lvl Level, msg string) string {
	tag := fmt.Sprintf("%-6.6s", lvl.String())
	return fmt.Sprintf("[%s] [%s] %s", stamp, tag, msg)
}
