package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/onceui/internal/tokens"
)

type tokensOptions struct {
	jsonOutput bool
}

func newTokensCmd(app *AppContext) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens [CATEGORY]",
		Short: "Print the active token tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, app, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runTokens(cmd *cobra.Command, app *AppContext, opts *tokensOptions, args []string) error {
	tables := app.Resolver.Registry().Tables()
	categories := tokens.Categories()

	if len(args) == 1 {
		category, ok := tokens.ParseCategory(args[0])
		if !ok {
			names := make([]string, len(categories))
			for i, c := range categories {
				names[i] = string(c)
			}
			return newCommandError("list tokens", args[0], fmt.Errorf("unknown token category %q", args[0]), "Known categories: "+strings.Join(names, ", ")+".")
		}
		categories = []tokens.Category{category}
	}

	if opts.jsonOutput {
		payload := make(map[string][]string, len(categories))
		for _, c := range categories {
			payload[string(c)] = tables.List(c)
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	out := cmd.OutOrStdout()
	if len(categories) == 1 {
		for _, value := range tables.List(categories[0]) {
			fmt.Fprintln(out, value)
		}
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CATEGORY", "TOKENS")
	for _, c := range categories {
		t.Row(string(c), strings.Join(tables.List(c), " "))
	}
	fmt.Fprintln(out, t.Render())
	return nil
}
