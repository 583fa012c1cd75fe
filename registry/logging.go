package registry

import (
	"fmt"
	"io"

	"github.com/amonks/prodcode/productcode"
	"github.com/charmbracelet/lipgloss"
)

// Logger captures resolution progress and insert conflicts.
type Logger interface {
	productcode.Logger
	Conflict(ConflictLog)
}

// ConflictLog records an insert that lost a race for its code.
type ConflictLog struct {
	Name    string
	Code    string
	Attempt int
}

type noopLogger struct{}

func (noopLogger) Attempt(productcode.AttemptLog)     {}
func (noopLogger) Exhausted(productcode.ExhaustedLog) {}
func (noopLogger) Conflict(ConflictLog)               {}

// ConsoleLogger writes resolution and conflict entries as styled lines.
type ConsoleLogger struct {
	*productcode.ConsoleLogger
	writer        io.Writer
	conflictStyle lipgloss.Style
}

// NewConsoleLogger builds a styled logger for interactive output.
func NewConsoleLogger(writer io.Writer) *ConsoleLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &ConsoleLogger{
		ConsoleLogger: productcode.NewConsoleLogger(writer),
		writer:        writer,
		conflictStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}

// Conflict logs an insert conflict.
func (logger *ConsoleLogger) Conflict(entry ConflictLog) {
	if logger == nil {
		return
	}
	fmt.Fprintf(logger.writer, "%s %s for %q was claimed concurrently (insert %d)\n",
		logger.conflictStyle.Render("conflict:"), entry.Code, entry.Name, entry.Attempt)
}
