package main

import (
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"
)

// isatty reports whether the file is a terminal. If it is true, we can use
// ANSI color codes.
func isatty(f *os.File) bool {
	_, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	posColor  = color.New(color.Bold)
	errColor  = color.New(color.FgRed)
	hintColor = color.New(color.Faint)

	rePos = regexp.MustCompile(`^(\S+:\d+:\d+): (.*)$`)
)

// colorize adds ANSI color codes to the error message unless color.NoColor is
// set. Each line is an error, optionally prefixed by its position and
// suffixed by a suggestion.
func colorize(message string) string {
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		m := rePos.FindStringSubmatch(line)
		if m == nil {
			lines[i] = errColor.Sprint(line)
			continue
		}

		msg, hint := m[2], ""
		if j := strings.Index(msg, ", did you mean"); j >= 0 {
			msg, hint = msg[:j], msg[j:]
		}
		lines[i] = posColor.Sprint(m[1]+":") + " " + errColor.Sprint(msg)
		if hint != "" {
			lines[i] += hintColor.Sprint(hint)
		}
	}
	return strings.Join(lines, "\n")
}
