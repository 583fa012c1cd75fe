// Package markdown builds and renders the markdown reports printed by the CLI.
package markdown

import (
	"strings"
	"sync"

	internalstrings "github.com/amonks/prodcode/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text for terminal output at the given width.
// If rendering fails the source text is returned unchanged.
func Render(width int, input string) string {
	value := internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(input))
	if strings.TrimSpace(value) == "" {
		return ""
	}
	width = max(width, 1)

	rendered, ok := safeRender(markdownRenderer(width), value)
	if !ok {
		return value
	}
	return internalstrings.TrimTrailingNewlines(rendered)
}

func safeRender(r renderer, value string) (rendered string, ok bool) {
	if r == nil {
		return "", false
	}
	defer func() {
		if recover() != nil {
			rendered, ok = "", false
		}
	}()
	out, err := r.Render(value)
	if err != nil || strings.TrimSpace(out) == "" {
		return "", false
	}
	return out, true
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

// Table formats headers and rows as a GitHub-flavored markdown table.
// Pipes inside cells are escaped.
func Table(headers []string, rows [][]string) string {
	var builder strings.Builder
	writeRow := func(cells []string) {
		builder.WriteString("|")
		for _, cell := range cells {
			builder.WriteString(" ")
			builder.WriteString(escapeCell(cell))
			builder.WriteString(" |")
		}
		builder.WriteString("\n")
	}

	writeRow(headers)
	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = "---"
	}
	writeRow(separator)
	for _, row := range rows {
		writeRow(row)
	}
	return builder.String()
}

// Code wraps value in an inline code span.
func Code(value string) string {
	if value == "" {
		return "` `"
	}
	return "`" + value + "`"
}

func escapeCell(value string) string {
	value = internalstrings.NormalizeWhitespace(value)
	return strings.ReplaceAll(value, "|", `\|`)
}
