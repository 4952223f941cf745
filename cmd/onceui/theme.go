package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/onceui/internal/theme"
	"github.com/alexisbeaulieu97/onceui/internal/tui"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and change the theme attributes",
	}

	cmd.AddCommand(newThemeShowCmd(app))
	cmd.AddCommand(newThemeSetCmd(app))
	cmd.AddCommand(newThemePanelCmd(app))

	return cmd
}

func newThemeShowCmd(app *AppContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the root data-* attributes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderTheme(cmd, app.Theme.Config(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newThemeSetCmd(app *AppContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "set ATTRIBUTE=VALUE...",
		Short: "Apply theme attribute changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeSet(cmd, app, args, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runThemeSet(cmd *cobra.Command, app *AppContext, args []string, jsonOutput bool) error {
	type assignment struct{ name, value string }
	assignments := make([]assignment, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return newCommandError("set theme", arg, fmt.Errorf("expected ATTRIBUTE=VALUE"), "Write assignments such as brand=violet scaling=105.")
		}
		if _, known := theme.Options(name); !known {
			return newCommandError("set theme", arg, theme.ErrUnknownAttribute, "Known attributes: "+strings.Join(theme.Names(), ", ")+".")
		}
		assignments = append(assignments, assignment{name: name, value: value})
	}

	change, err := app.Theme.Update(cmd.Context(), func(c *theme.Config) {
		for _, a := range assignments {
			_ = c.Set(a.name, a.value)
		}
	})
	if err != nil {
		return newCommandError("set theme", strings.Join(args, " "), err, themeSuggestion(err))
	}

	if !jsonOutput {
		out := cmd.OutOrStdout()
		if !change.Changed() {
			fmt.Fprintln(out, "theme unchanged")
		}
		for _, name := range change.Attributes {
			from, _ := change.Previous.Get(name)
			to, _ := change.Current.Get(name)
			fmt.Fprintf(out, "%s: %s → %s\n", name, from, to)
		}
	}
	return renderTheme(cmd, app.Theme.Config(), jsonOutput)
}

func themeSuggestion(err error) string {
	if themeErr, ok := asThemeError(err); ok {
		if options, known := theme.Options(themeErr.Attribute); known {
			return fmt.Sprintf("Valid values for %s: %s.", themeErr.Attribute, strings.Join(options, ", "))
		}
	}
	return "Run 'onceui theme show' to see the current attributes."
}

func newThemePanelCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "panel",
		Short: "Launch the interactive theme panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(cmd.OutOrStdout()) {
				return newCommandError("launch theme panel", "no terminal", fmt.Errorf("stdin and stdout must be a terminal"), "Use 'onceui theme set' in scripts.")
			}

			model := tui.NewModel(cmd.Context(), app.Theme, app.Resolver, tui.DefaultPreview())
			program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()))

			// Handlers run inside the program's own Update when the panel
			// mutates the store, so Send must not block the event loop.
			sub := app.Theme.Subscribe(func(_ context.Context, change theme.Change) {
				go program.Send(tui.ThemeChangedMsg{Change: change})
			})
			defer sub.Unsubscribe()

			if _, err := program.Run(); err != nil {
				return newCommandError("run theme panel", "bubbletea", err, "Try again with a larger terminal.")
			}
			return renderTheme(cmd, app.Theme.Config(), false)
		},
	}
}

func renderTheme(cmd *cobra.Command, cfg theme.Config, jsonOutput bool) error {
	attrs := cfg.Attributes()
	out := cmd.OutOrStdout()

	if jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(attrs)
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%s=%q\n", k, attrs[k])
	}
	return nil
}
