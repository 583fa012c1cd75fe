package main

import (
	"fmt"

	"github.com/amonks/prodcode/productcode"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check CODE",
	Short: "Report whether a product code is free; exits 1 when taken",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	code := args[0]
	if !productcode.Valid(code) {
		return fmt.Errorf("%w: %q", productcode.ErrInvalidCode, code)
	}

	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer reg.Close()

	taken, err := reg.Check(cmd.Context(), code)
	if err != nil {
		return fmt.Errorf("check %s: %w", code, err)
	}
	if taken {
		fmt.Fprintln(cmd.OutOrStdout(), "taken")
		return exitError{code: 1}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "free")
	return nil
}
