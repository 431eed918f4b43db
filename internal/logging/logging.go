package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/idlab-discover/uom-cli/internal/ui"
)

// Logger is a tiny opt-in logger used across internal packages.
// When Writer is nil, logging is disabled.
//
// The output format is:
//
//	<ColoredPrefix> kind=<kind> <formattedMessage>\n
//
// where <kind> is trimmed and defaults to "(any)".
type Logger struct {
	Writer io.Writer

	PrefixText  string
	PrefixColor string

	// OmitKind controls whether the kind field is written.
	// When false (default), output includes: "kind=<kind>".
	OmitKind bool
}

func (l *Logger) SetWriter(w io.Writer) { l.Writer = w }

func (l *Logger) Enabled() bool { return l != nil && l.Writer != nil }

func (l *Logger) Logf(kind string, format string, args ...any) {
	if l == nil || l.Writer == nil {
		return
	}
	prefix := l.PrefixText
	if prefix == "" {
		prefix = "Log:"
	}
	if l.PrefixColor != "" {
		prefix = ui.Color(prefix, l.PrefixColor)
	}
	msg := fmt.Sprintf(format, args...)
	if l.OmitKind {
		fmt.Fprintf(l.Writer, "%s %s\n", prefix, msg)
		return
	}

	k := strings.TrimSpace(kind)
	if k == "" {
		k = "(any)"
	}
	fmt.Fprintf(l.Writer, "%s kind=%s %s\n", prefix, k, msg)
}
