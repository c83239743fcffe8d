package log

import (
	"fmt"
	"strings"
)

// Level is a log severity rank. Higher values are more verbose, so a
// threshold of LevelNotice permits FATAL through NOTICE and suppresses
// INFO, DEBUG and TRACE.
type Level int

const (
	LevelFatal Level = iota + 1
	LevelError
	LevelWarn
	LevelNotice
	LevelInfo
	LevelDebug
	LevelTrace
)

// LevelUnknown is the sentinel for names that match no canonical level.
// Every threshold compares >= -1, so a message carrying an unrecognized
// level name is always emitted. Callers that want strict handling should
// go through ParseLevel and check the error instead.
const LevelUnknown Level = -1

var ErrUnknownLevel = fmt.Errorf("unrecognized log level")

var levelNames = map[Level]string{
	LevelFatal:  "FATAL",
	LevelError:  "ERROR",
	LevelWarn:   "WARN",
	LevelNotice: "NOTICE",
	LevelInfo:   "INFO",
	LevelDebug:  "DEBUG",
	LevelTrace:  "TRACE",
}

var levelsByName = func() map[string]Level {
	m := make(map[string]Level, len(levelNames))
	for lvl, name := range levelNames {
		m[name] = lvl
	}
	return m
}()

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	if l == LevelUnknown {
		return "UNKNOWN"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel resolves a canonical level name, case-insensitively.
func ParseLevel(name string) (Level, error) {
	if lvl, ok := levelsByName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return lvl, nil
	}
	return LevelUnknown, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// LevelOf resolves the logger's dynamic level argument. Integers pass
// through without range validation; strings resolve via ParseLevel with
// unrecognized names degrading to LevelUnknown.
func LevelOf(v any) Level {
	switch lvl := v.(type) {
	case Level:
		return lvl
	case int:
		return Level(lvl)
	case string:
		parsed, _ := ParseLevel(lvl)
		return parsed
	default:
		return LevelUnknown
	}
}
