package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/settings"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer represents the calculator MCP server
type CalcServer struct {
	mcpServer *server.MCPServer
	session   *session.Session
	store     *settings.Store
	config    types.Config
}

// NewCalcServer creates a new calculator MCP server
func NewCalcServer(config types.Config) (*CalcServer, error) {
	store := settings.NewStore(config.SettingsPath)

	theme, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	initial := settings.Default()
	initial.Theme = theme

	machine := calc.NewMachine(calc.Options{
		Guarded:      config.Guarded,
		HistoryLimit: config.HistoryLimit,
	})

	s := &CalcServer{
		mcpServer: server.NewMCPServer(project.Name, project.Version, server.WithToolCapabilities(false)),
		session:   session.New(machine, store, initial),
		store:     store,
		config:    config,
	}
	s.registerTools()

	return s, nil
}

// Session returns the calculator session served by this server
func (s *CalcServer) Session() *session.Session {
	return s.session
}

// MCPServer returns the underlying MCP server
func (s *CalcServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve serves MCP requests on stdio until the client disconnects or ctx is done
func (s *CalcServer) Serve(ctx context.Context) error {
	return s.ServeStreams(ctx, os.Stdin, os.Stdout)
}

// ServeStreams serves newline-delimited MCP messages read from in, writing responses to out
func (s *CalcServer) ServeStreams(ctx context.Context, in io.Reader, out io.Writer) error {
	slog.Info("Starting calculator MCP server", "config", fmt.Sprintf("%+v", s.config))

	if err := s.store.Watch(ctx, s.session.ApplyTheme); err != nil {
		return fmt.Errorf("failed to watch settings: %w", err)
	}

	stdio := server.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalcServer) registerTools() {
	for _, tool := range tools.All(s.session) {
		definition := tool.GetTool()
		s.mcpServer.AddTool(definition, tool.Handle)
		slog.Debug("Registered tool", "name", definition.Name)
	}
}
