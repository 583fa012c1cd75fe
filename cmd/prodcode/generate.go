package main

import (
	"fmt"
	"strings"

	"github.com/amonks/prodcode/productcode"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate NAME...",
	Short: "Print the code each name would be assigned, without recording it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

var generateOffline bool

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVar(&generateOffline, "offline", false, "Skip the registry and print the bare candidate")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if generateOffline {
		for _, name := range args {
			candidate, err := productcode.Candidate(strings.TrimSpace(name))
			if err != nil {
				return classifyError(fmt.Errorf("generate %q: %w", name, err))
			}
			fmt.Fprintln(out, candidate)
		}
		return nil
	}

	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer reg.Close()

	for _, name := range args {
		code, err := reg.Preview(cmd.Context(), name)
		if err != nil {
			return classifyError(fmt.Errorf("generate %q: %w", name, err))
		}
		fmt.Fprintln(out, code)
	}
	return nil
}
