package ui

import (
	"os"
	"strings"

	"github.com/amonks/prodcode/internal/ids"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var prefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// HighlightCode returns a code with its unique prefix highlighted when
// stdout is a color terminal.
func HighlightCode(code string, prefixLen int) string {
	if !ANSIEnabled() {
		return code
	}
	return highlightPrefix(code, prefixLen)
}

func highlightPrefix(code string, prefixLen int) string {
	if code == "" || prefixLen <= 0 || prefixLen > len(code) {
		return code
	}
	return prefixStyle.Render(code[:prefixLen]) + code[prefixLen:]
}

// ANSIEnabled reports whether styled output should be written to stdout.
func ANSIEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CodePrefixLengths returns the shortest unique prefix length of each code.
func CodePrefixLengths(codes []string) map[string]int {
	return ids.UniquePrefixLengths(codes)
}

// PrefixLength looks up a code in a prefix length map case-insensitively.
func PrefixLength(lengths map[string]int, code string) int {
	if lengths == nil || code == "" {
		return 0
	}
	return lengths[strings.ToLower(code)]
}

// TerminalWidth returns the stdout width, or fallback when stdout is not a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
