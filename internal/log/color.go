package log

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// attrsByName maps the symbolic names accepted by Escape to ANSI
// attributes. Foreground colors are lowercase, background colors are
// capitalized, effects are lowercase words.
var attrsByName = map[string]color.Attribute{
	"normal": color.Reset,
	"bold":   color.Bold,
	"light":  color.Faint,
	"blink":  color.BlinkSlow,
	"invert": color.ReverseVideo,

	"black":  color.FgBlack,
	"red":    color.FgRed,
	"green":  color.FgGreen,
	"yellow": color.FgYellow,
	"blue":   color.FgBlue,
	"purple": color.FgMagenta,
	"cyan":   color.FgCyan,
	"white":  color.FgWhite,

	"Black":  color.BgBlack,
	"Red":    color.BgRed,
	"Green":  color.BgGreen,
	"Yellow": color.BgYellow,
	"Blue":   color.BgBlue,
	"Purple": color.BgMagenta,
	"Cyan":   color.BgCyan,
	"White":  color.BgWhite,
}

// Escape builds a single ANSI escape sequence from symbolic attribute
// names, semicolon-joining the numeric codes. Unrecognized names are
// dropped silently.
func Escape(names ...string) string {
	codes := make([]string, 0, len(names))
	for _, name := range names {
		if attr, ok := attrsByName[name]; ok {
			codes = append(codes, strconv.Itoa(int(attr)))
		}
	}
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

var escReset = Escape("normal")

// levelEscapes colors the terminal formatter output per severity.
// INFO and TRACE stay uncolored.
var levelEscapes = map[Level]string{
	LevelFatal:  Escape("purple"),
	LevelError:  Escape("red"),
	LevelWarn:   Escape("yellow"),
	LevelNotice: Escape("bold", "blue"),
	LevelDebug:  Escape("light"),
}
