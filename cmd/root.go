package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "phalcon-mcp",
	Short: "MCP server for the Phalcon devtools CLI",
	Long: `phalcon-mcp exposes the Phalcon devtools CLI as a set of MCP tools
over stdio, so AI assistants can create projects, generate controllers,
models, migrations, and scaffolding, and start the development server.

Running phalcon-mcp without a subcommand starts the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
