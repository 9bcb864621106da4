package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	mcpSdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"phalcon-mcp/internal/config"
	"phalcon-mcp/internal/log"
	"phalcon-mcp/internal/phalcon"
	"phalcon-mcp/internal/runner"
	"phalcon-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start the MCP server on stdin/stdout. The host (an AI assistant's
MCP runtime) launches this command as a subprocess and calls the registered
phalcon tools over the protocol. Logs go to stderr; stdout carries the
protocol stream.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// runServe wires config, logger, registry, and runner into the MCP server
// and blocks until the client disconnects or a signal arrives.
func runServe(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.New(log.Config{Level: cfg.LogLevel(), JSON: cfg.Log.JSON})

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry, err := phalcon.NewRegistry(cfg.PhalconBinary, cfg.WorkingDir, logger.With("component", "registry"))
	if err != nil {
		return fmt.Errorf("building tool registry: %w", err)
	}

	run, err := runner.New(cfg.CommandTimeout(), cfg.ServeGrace(), logger.With("component", "runner"))
	if err != nil {
		return fmt.Errorf("creating process runner: %w", err)
	}

	srv, err := server.New(server.Config{
		Name:     "phalcon-mcp",
		Version:  Version,
		Logger:   logger.With("component", "server"),
		Registry: registry,
		Runner:   run,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	logger.Info("MCP server ready",
		"version", Version,
		"binary", cfg.PhalconBinary,
		"transport", "stdio")

	if err := srv.Run(ctx, &mcpSdk.StdioTransport{}); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	logger.Info("MCP server shut down")
	return nil
}
