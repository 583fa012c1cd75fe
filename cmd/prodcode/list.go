package main

import (
	"fmt"
	"time"

	"github.com/amonks/prodcode/internal/ui"
	"github.com/amonks/prodcode/registry"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded product codes",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var listFormat outputFormat

func init() {
	rootCmd.AddCommand(listCmd)
	addOutputFlags(listCmd, &listFormat)
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer reg.Close()

	records, err := reg.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list codes: %w", err)
	}

	if listFormat.structured() {
		if records == nil {
			records = []registry.Record{}
		}
		return listFormat.write(cmd.OutOrStdout(), records)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No product codes recorded.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), formatRecordTable(records, time.Now()))
	return nil
}

func formatRecordTable(records []registry.Record, now time.Time) string {
	codes := make([]string, 0, len(records))
	for _, rec := range records {
		codes = append(codes, rec.Code)
	}
	prefixLengths := ui.CodePrefixLengths(codes)

	table := ui.NewTableBuilder([]string{"CODE", "NAME", "CREATED"}, len(records))
	for _, rec := range records {
		table.AddRow(
			ui.HighlightCode(rec.Code, ui.PrefixLength(prefixLengths, rec.Code)),
			ui.TruncateTableCell(rec.Name),
			ui.FormatTimeAgo(rec.CreatedAt, now),
		)
	}
	return table.String()
}
