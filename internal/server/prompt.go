package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// helpGroups orders the catalog for the help prompt.
var helpGroups = []struct {
	title string
	tools []string
}{
	{"Project management", []string{"phalcon_create_project", "phalcon_create_module", "phalcon_serve"}},
	{"Code generation", []string{"phalcon_create_controller", "phalcon_create_model", "phalcon_create_all_models", "phalcon_create_migration", "phalcon_create_scaffold"}},
	{"Development tools", []string{"phalcon_info", "phalcon_create_webtools", "phalcon_list_commands"}},
}

// registerPrompts registers the static help prompt describing the tool
// catalog.
func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        "phalcon_help",
		Description: "Overview of the Phalcon MCP tools and what each one does.",
	}, s.helpPrompt)
}

func (s *Server) helpPrompt(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Phalcon MCP tool overview",
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: s.helpText()},
		}},
	}, nil
}

// helpText renders the grouped tool overview from the live catalog, so the
// prompt can never disagree with what is actually registered.
func (s *Server) helpText() string {
	var b strings.Builder
	b.WriteString("The Phalcon MCP server provides the following tools:\n")
	for _, group := range helpGroups {
		fmt.Fprintf(&b, "\n%s:\n", group.title)
		for _, name := range group.tools {
			spec, ok := s.registry.Lookup(name)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "  - %s: %s\n", spec.Name, spec.Description)
		}
	}
	return b.String()
}
