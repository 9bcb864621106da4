package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"phalcon-mcp/internal/phalcon"
	"phalcon-mcp/internal/runner"
)

// CommandRunner executes built commands. *runner.Runner is the production
// implementation; tests substitute a stub.
type CommandRunner interface {
	Run(ctx context.Context, cmd phalcon.Command) (runner.Result, error)
	Detach(ctx context.Context, cmd phalcon.Command) (runner.Result, error)
}

// Config holds the dependencies for the MCP server.
type Config struct {
	Name     string
	Version  string
	Logger   *slog.Logger
	Registry *phalcon.Registry
	Runner   CommandRunner
}

// Server wraps the MCP SDK server with the phalcon tool catalog.
type Server struct {
	mcpServer *mcp.Server
	registry  *phalcon.Registry
	runner    CommandRunner
	logger    *slog.Logger
}

// New creates the MCP server and registers every catalog tool plus the
// help prompt.
func New(cfg Config) (*Server, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("server name is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("server version is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if cfg.Runner == nil {
		return nil, fmt.Errorf("runner is required")
	}

	s := &Server{
		mcpServer: mcp.NewServer(&mcp.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		}, nil),
		registry: cfg.Registry,
		runner:   cfg.Runner,
		logger:   cfg.Logger,
	}

	s.registerTools()
	s.registerPrompts()
	return s, nil
}

// Run serves the MCP protocol on the given transport until the context is
// canceled or the client disconnects.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

// registerTools registers one MCP tool per catalog entry. The input schema
// is generated from the same parameter table the validator uses, so the
// wire schema and the validation rules cannot drift apart.
func (s *Server) registerTools() {
	for _, spec := range s.registry.Specs() {
		tool := &mcp.Tool{
			Name:        spec.Name,
			Description: spec.Description,
			InputSchema: schemaFor(spec),
		}
		mcp.AddTool(s.mcpServer, tool, s.handler(spec))
		s.logger.Debug("tool registered", "tool", spec.Name)
	}
}
