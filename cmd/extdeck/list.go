package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/extdeck/internal/catalog"
	"github.com/alexisbeaulieu97/extdeck/internal/config"
	"github.com/alexisbeaulieu97/extdeck/internal/filter"
)

type listOptions struct {
	filter     string
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List extensions in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "all", "Show all, active or inactive extensions")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	mode, err := filter.ParseMode(opts.filter)
	if err != nil {
		return newCommandError("list", "parsing --filter", err, "Use one of: all, active, inactive.")
	}

	app, err := openApp(cmd, flags, "list", false)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	items := filter.Apply(app.Catalog.Items(), mode)
	app.Log.WithFields(map[string]any{"filter": mode.String(), "count": len(items)}).Debug("listing extensions")

	if opts.jsonOutput {
		return renderListJSON(cmd, mode, items)
	}

	if len(items) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s extensions.\n", strings.ToLower(mode.Label()))
		return nil
	}

	return renderListTable(cmd, items, resolveUnicode(app.Config.Unicode, cmd.OutOrStdout()))
}

func renderListTable(cmd *cobra.Command, items []catalog.Item, useUnicode bool) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tSTATUS\tDESCRIPTION")

	for _, item := range items {
		fmt.Fprintf(writer, "%s\t%s\t%s\n",
			item.Name,
			formatStatus(item.IsActive, useUnicode),
			valueOrFallback(item.Description, "(no description)"),
		)
	}

	return writer.Flush()
}

type listJSONExtension struct {
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type listJSONPayload struct {
	Version    string              `json:"version"`
	Filter     string              `json:"filter"`
	Count      int                 `json:"count"`
	Extensions []listJSONExtension `json:"extensions"`
}

func renderListJSON(cmd *cobra.Command, mode filter.Mode, items []catalog.Item) error {
	payload := listJSONPayload{
		Version:    "1.0",
		Filter:     mode.String(),
		Count:      len(items),
		Extensions: make([]listJSONExtension, len(items)),
	}

	for i, item := range items {
		payload.Extensions[i] = listJSONExtension{
			Name:        item.Name,
			Logo:        item.Logo,
			Description: item.Description,
			IsActive:    item.IsActive,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func resolveUnicode(mode string, writer any) bool {
	switch mode {
	case config.UnicodeOn:
		return true
	case config.UnicodeOff:
		return false
	default:
		return supportsUnicode(writer)
	}
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func formatStatus(active, useUnicode bool) string {
	switch {
	case active && useUnicode:
		return "● active"
	case active:
		return "[x] active"
	case useUnicode:
		return "○ inactive"
	default:
		return "[ ] inactive"
	}
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
