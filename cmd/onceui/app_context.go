package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/onceui/internal/config"
	"github.com/alexisbeaulieu97/onceui/internal/logger"
	"github.com/alexisbeaulieu97/onceui/internal/style"
	"github.com/alexisbeaulieu97/onceui/internal/theme"
	"github.com/alexisbeaulieu97/onceui/internal/tokens"
)

// AppContext bundles long-lived services created before any command runs.
type AppContext struct {
	Config   *config.Config
	Logger   *logger.Logger
	Resolver *style.Resolver
	Theme    *theme.Store
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	cfg := config.Default()
	if path := strings.TrimSpace(flags.configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return newCommandError("load configuration", path, err, "Check the file syntax and that every token name is lower-case and hyphen-separated.")
		}
		cfg = loaded
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !flags.logJSON && !cfg.Log.JSON,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError("configure logging", level, err, "Use one of trace, debug, info, warn or error.")
	}

	store, err := theme.NewStore(cfg.Theme, theme.WithLogger(log.WithComponent("theme")))
	if err != nil {
		return newCommandError("load configuration", "theme", err, "Run 'onceui theme show' to see valid attribute values.")
	}

	a.Config = cfg
	a.Logger = log
	a.Resolver = style.NewResolver(tokens.NewRegistry(cfg.Tokens), style.WithLogger(log.WithComponent("style")))
	a.Theme = store

	log.WithFields(map[string]any{"config": flags.configPath}).Debug("configuration loaded")
	return nil
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
