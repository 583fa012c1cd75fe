package main

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type outputFormat struct {
	json bool
	yaml bool
}

func addOutputFlags(cmd *cobra.Command, format *outputFormat) {
	cmd.Flags().BoolVar(&format.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&format.yaml, "yaml", false, "Output as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

// structured reports whether the format asks for machine-readable output.
func (f outputFormat) structured() bool {
	return f.json || f.yaml
}

func (f outputFormat) write(w io.Writer, value any) error {
	switch {
	case f.json:
		return writeJSON(w, value)
	case f.yaml:
		return writeYAML(w, value)
	default:
		return errors.New("no structured output format selected")
	}
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeYAML(w io.Writer, value any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
