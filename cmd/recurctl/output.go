package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputText = "text"
)

type styles struct {
	title lipgloss.Style
	key   lipgloss.Style
	muted lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		key:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		muted: lipgloss.NewStyle().Faint(true),
	}
}

// texter is implemented by views that have a human-readable form.
type texter interface {
	text(st styles) string
}

// render writes v in the format chosen by --output.
func render(cmd *cobra.Command, v any) error {
	format, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()

	switch format {
	case outputJSON, "":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	case outputText:
		t, ok := v.(texter)
		if !ok {
			return fmt.Errorf("text output not supported here")
		}
		_, err := fmt.Fprintln(out, t.text(newStyles()))
		return err
	default:
		return fmt.Errorf("unknown output format %q: want json, yaml or text", format)
	}
}
