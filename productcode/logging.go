package productcode

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Logger captures resolution progress.
type Logger interface {
	Attempt(AttemptLog)
	Exhausted(ExhaustedLog)
}

// AttemptLog records one existence check.
type AttemptLog struct {
	Candidate string
	Code      string
	Attempt   int
	Taken     bool
}

// ExhaustedLog records a resolution that hit its attempt bound.
type ExhaustedLog struct {
	Candidate string
	Attempts  int
}

type noopLogger struct{}

func (noopLogger) Attempt(AttemptLog)     {}
func (noopLogger) Exhausted(ExhaustedLog) {}

// ConsoleLogger writes one styled line per entry.
type ConsoleLogger struct {
	writer     io.Writer
	takenStyle lipgloss.Style
	freeStyle  lipgloss.Style
	errorStyle lipgloss.Style
}

// NewConsoleLogger builds a styled logger for interactive output.
func NewConsoleLogger(writer io.Writer) *ConsoleLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &ConsoleLogger{
		writer:     writer,
		takenStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		freeStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35")),
		errorStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// Attempt logs an existence check.
func (logger *ConsoleLogger) Attempt(entry AttemptLog) {
	if logger == nil {
		return
	}
	status := logger.freeStyle.Render("free")
	if entry.Taken {
		status = logger.takenStyle.Render("taken")
	}
	fmt.Fprintf(logger.writer, "check %d: %s %s\n", entry.Attempt, entry.Code, status)
}

// Exhausted logs a resolution that gave up.
func (logger *ConsoleLogger) Exhausted(entry ExhaustedLog) {
	if logger == nil {
		return
	}
	fmt.Fprintf(logger.writer, "%s %s after %d checks\n",
		logger.errorStyle.Render("exhausted:"), entry.Candidate, entry.Attempts)
}
