package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logJSON    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "onceui",
		Short:         "onceui compiles style props into utility class names and inline styles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or TOML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON instead of console format")

	cmd.AddCommand(newCompileCmd(app))
	cmd.AddCommand(newTokensCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
