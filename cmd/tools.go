package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"phalcon-mcp/internal/config"
	"phalcon-mcp/internal/log"
	"phalcon-mcp/internal/phalcon"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools this server exposes",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return runTools()
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	registry, err := phalcon.NewRegistry(cfg.PhalconBinary, cfg.WorkingDir, log.NewNop())
	if err != nil {
		return fmt.Errorf("building tool registry: %w", err)
	}

	for _, spec := range registry.Specs() {
		fmt.Printf("%s\n    %s\n", spec.Name, spec.Description)
		for _, p := range spec.Params {
			fmt.Printf("    - %s (%s%s)%s\n",
				p.Name, p.Kind, paramQualifiers(p), paramDetail(p))
		}
		fmt.Println()
	}
	return nil
}

func paramQualifiers(p phalcon.Param) string {
	if p.Required {
		return ", required"
	}
	return ", optional"
}

func paramDetail(p phalcon.Param) string {
	var parts []string
	if p.Default != "" {
		parts = append(parts, "default: "+p.Default)
	}
	if len(p.Allowed) > 0 {
		parts = append(parts, "allowed: "+strings.Join(p.Allowed, "|"))
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, "; ") + "]"
}
