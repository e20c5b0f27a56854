package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/repl"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/settings"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	config := &types.Config{}

	root := &cobra.Command{
		Use:          project.Name,
		Short:        "Calculator engine served over the Model Context Protocol",
		Version:      project.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return prepare(cmd, config)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *config)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&config.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&config.SettingsPath, "settings", "", "Path to the settings file (default: user config directory, empty string disables persistence)")
	flags.IntVar(&config.HistoryLimit, "history-limit", calc.DefaultHistoryLimit, "Number of calculations kept in history (1-10)")
	flags.BoolVar(&config.Guarded, "guarded", false, "Reject division by zero and non-numeric operands instead of showing Infinity or NaN")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve calculator tools over MCP stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *config)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Run an interactive calculator in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, *config)
		},
	})

	return root
}

// prepare validates the configuration and installs the logger
func prepare(cmd *cobra.Command, config *types.Config) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
	}

	// stdout carries MCP messages, so logs go to stderr
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	if config.HistoryLimit < 1 || config.HistoryLimit > calc.DefaultHistoryLimit {
		return fmt.Errorf("history limit must be between 1 and %d, got %d", calc.DefaultHistoryLimit, config.HistoryLimit)
	}

	if !cmd.Flags().Changed("settings") {
		path, err := settings.DefaultPath()
		if err != nil {
			slog.Warn("Theme preference will not be persisted", "error", err)
		}
		config.SettingsPath = path
	}

	return nil
}

func runServe(ctx context.Context, config types.Config) error {
	mcpServer, err := server.NewCalcServer(config)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Start the server (this blocks until the client disconnects)
	if err := mcpServer.Serve(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}

func runREPL(cmd *cobra.Command, config types.Config) error {
	store := settings.NewStore(config.SettingsPath)

	theme, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	initial := settings.Default()
	initial.Theme = theme

	machine := calc.NewMachine(calc.Options{
		Guarded:      config.Guarded,
		HistoryLimit: config.HistoryLimit,
	})

	s := session.New(machine, store, initial)
	return repl.New(s, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}
