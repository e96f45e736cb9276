// Package console provides a small colored logger used for debug output.
// Format strings may embed color directives like $Red{...} or $Bold{$Cyan{...}}
// which are expanded to ANSI escape sequences when writing to a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Logger is the shared console logger. DebugLevel 0 silences Debug output.
var Logger = &ConsoleLogger{out: os.Stderr}

var colorCodes = map[string]string{
	"Bold":   "1",
	"Red":    "31",
	"Green":  "32",
	"Yellow": "33",
	"Blue":   "34",
	"Cyan":   "36",
}

var colorDirective = regexp.MustCompile(`\$(\w+)\{([^{}]*)\}`)

// ConsoleLogger writes optionally colorized log lines to an io target.
type ConsoleLogger struct {
	DebugLevel int
	NoColor    bool
	out        io.Writer
}

// Debug writes a formatted debug line when DebugLevel is above zero.
func (l *ConsoleLogger) Debug(format string, args ...interface{}) {
	if l.DebugLevel <= 0 {
		return
	}
	l.write(format, args...)
}

// Warn writes a formatted warning line unconditionally.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write("$Yellow{warning:} "+format, args...)
}

func (l *ConsoleLogger) write(format string, args ...interface{}) {
	line := fmt.Sprintf(l.expand(format), args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	fmt.Fprint(l.out, line)
}

// expand rewrites $Color{text} directives, innermost first so nested
// directives like $Bold{$Cyan{text}} compose.
func (l *ConsoleLogger) expand(format string) string {
	for colorDirective.MatchString(format) {
		format = colorDirective.ReplaceAllStringFunc(format, func(m string) string {
			parts := colorDirective.FindStringSubmatch(m)
			code, ok := colorCodes[parts[1]]
			if !ok || l.NoColor {
				return parts[2]
			}
			return "\x1b[" + code + "m" + parts[2] + "\x1b[0m"
		})
	}
	return format
}
