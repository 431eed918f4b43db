package ui

// Raw ANSI codes for the plain-writer logger in internal/logging, which must
// not depend on lipgloss rendering. Everything else uses the styles in styles.go.
const (
	Reset      = "\033[0m"
	LegacyBold = "\033[1m"
	FgCyan     = "\033[36m"
	FgGreen    = "\033[32m"
	FgMagenta  = "\033[35m"
	FgYellow   = "\033[33m"
	FgRed      = "\033[31m"
)

// Color wraps s in the given ANSI code.
func Color(s string, code string) string {
	return code + s + Reset
}
