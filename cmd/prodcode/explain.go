package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amonks/prodcode/internal/markdown"
	"github.com/amonks/prodcode/internal/ui"
	"github.com/amonks/prodcode/productcode"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

const explainWidth = 80

var explainCmd = &cobra.Command{
	Use:   "explain NAME",
	Short: "Show how a name turns into a code",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

var (
	explainFormat outputFormat
	explainRaw    bool
)

func init() {
	rootCmd.AddCommand(explainCmd)
	addOutputFlags(explainCmd, &explainFormat)
	explainCmd.Flags().BoolVar(&explainRaw, "raw", false, "Print the markdown source instead of rendering it")
}

func runExplain(cmd *cobra.Command, args []string) error {
	breakdown, explainErr := productcode.Explain(args[0])

	out := cmd.OutOrStdout()
	switch {
	case explainFormat.structured():
		if err := explainFormat.write(out, breakdown); err != nil {
			return err
		}
	case explainRaw:
		fmt.Fprint(out, breakdownMarkdown(breakdown, explainErr))
	default:
		width := min(ui.TerminalWidth(explainWidth), explainWidth)
		fmt.Fprintln(out, markdown.Render(width, breakdownMarkdown(breakdown, explainErr)))
	}

	if explainErr != nil {
		return classifyError(explainErr)
	}
	return nil
}

func breakdownMarkdown(breakdown productcode.Breakdown, explainErr error) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "# %s\n\n", breakdown.Name)
	fmt.Fprintf(&builder, "- Normalized: %s\n", markdown.Code(breakdown.Normalized))
	fmt.Fprintf(&builder, "- Fingerprint: %s\n", markdown.Code(breakdown.Fingerprint))

	if explainErr != nil {
		fmt.Fprintf(&builder, "\n%s\n", wordwrap.String(explainHint(explainErr), explainWidth))
		return builder.String()
	}

	selected := make(map[int]bool, len(breakdown.Selection.Runs))
	for _, run := range breakdown.Selection.Runs {
		selected[run.Start] = true
	}
	rows := make([][]string, 0, len(breakdown.Runs))
	for _, run := range breakdown.Runs {
		mark := ""
		if selected[run.Start] {
			mark = "yes"
		}
		rows = append(rows, []string{run.Text, strconv.Itoa(run.Start), strconv.Itoa(run.End), mark})
	}

	builder.WriteString("\n## Runs\n\n")
	builder.WriteString(markdown.Table([]string{"Run", "Start", "End", "Selected"}, rows))
	fmt.Fprintf(&builder, "\n- Letters: %s (%d..%d)\n", markdown.Code(breakdown.Selection.Concat), breakdown.Selection.Start, breakdown.Selection.End)
	fmt.Fprintf(&builder, "- Candidate: %s\n", markdown.Code(breakdown.Candidate))
	return builder.String()
}

func explainHint(err error) string {
	switch {
	case errors.Is(err, productcode.ErrNameTooShort):
		return "This name cannot be coded: fewer than two letters a-z remain after lowercasing it and dropping every other character."
	case errors.Is(err, productcode.ErrNoIncreasingSubstring):
		return "This name cannot be coded: no letter is followed by a later letter of the alphabet, so there is no increasing run to encode."
	default:
		return err.Error()
	}
}
