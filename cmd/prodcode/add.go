package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Assign a code to a product name and record it",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var addFormat outputFormat

func init() {
	rootCmd.AddCommand(addCmd)
	addOutputFlags(addCmd, &addFormat)
}

func runAdd(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer reg.Close()

	rec, err := reg.Register(cmd.Context(), args[0])
	if err != nil {
		return classifyError(fmt.Errorf("add %q: %w", args[0], err))
	}

	if addFormat.structured() {
		return addFormat.write(cmd.OutOrStdout(), rec)
	}
	fmt.Fprintln(cmd.OutOrStdout(), rec.Code)
	return nil
}
