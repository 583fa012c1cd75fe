package main

import (
	"fmt"
	"time"

	"github.com/amonks/prodcode/productcode"
	"github.com/amonks/prodcode/registry"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show CODE",
	Short: "Show the record for a product code",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showFormat outputFormat

func init() {
	rootCmd.AddCommand(showCmd)
	addOutputFlags(showCmd, &showFormat)
}

type codeDetail struct {
	registry.Record `yaml:",inline"`
	Parts           productcode.Parts `json:"parts" yaml:"parts"`
}

func runShow(cmd *cobra.Command, args []string) error {
	parts, err := productcode.Parse(args[0])
	if err != nil {
		return err
	}

	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer reg.Close()

	rec, err := reg.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if showFormat.structured() {
		return showFormat.write(cmd.OutOrStdout(), codeDetail{Record: rec, Parts: parts})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Code:        %s\n", rec.Code)
	fmt.Fprintf(out, "Name:        %s\n", rec.Name)
	fmt.Fprintf(out, "ID:          %s\n", rec.ID)
	fmt.Fprintf(out, "Created:     %s\n", rec.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "Fingerprint: %s\n", parts.Fingerprint)
	fmt.Fprintf(out, "Letters:     %s (%d..%d)\n", parts.Letters, parts.Start, parts.End)
	if parts.Suffix > 0 {
		fmt.Fprintf(out, "Suffix:      %d (base %s)\n", parts.Suffix, parts.Base())
	}
	return nil
}
