package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"phalcon-mcp/internal/phalcon"
	"phalcon-mcp/internal/runner"
)

// handler returns the MCP tool handler for one catalog entry.
//
// Outcome mapping, in order:
//   - validation failure: Go error (protocol-level, no process started)
//   - launch failure or timeout: Go error (protocol-level, no CLI output
//     exists to show)
//   - nonzero exit: IsError result carrying the CLI's own output, so the
//     caller can read phalcon's diagnostics and act on them
//   - zero exit: text result with stdout, stderr appended when non-empty
//   - detached (phalcon_serve): "server started" text result
func (s *Server) handler(spec phalcon.Spec) func(ctx context.Context, req *mcp.CallToolRequest, raw map[string]any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, raw map[string]any) (*mcp.CallToolResult, any, error) {
		cmd, err := s.registry.Dispatch(spec.Name, raw)
		if err != nil {
			return nil, nil, err
		}

		var res runner.Result
		if spec.Detach {
			res, err = s.runner.Detach(ctx, cmd)
		} else {
			res, err = s.runner.Run(ctx, cmd)
		}
		if err != nil {
			return nil, nil, err
		}

		return toCallResult(cmd, res), nil, nil
	}
}

// toCallResult renders an execution outcome as an MCP tool result.
func toCallResult(cmd phalcon.Command, res runner.Result) *mcp.CallToolResult {
	if res.Detached {
		return textResult(fmt.Sprintf("Development server started (pid %d): %s", res.PID, cmd.String()), false)
	}

	if res.ExitCode != 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "%s exited with status %d\n", cmd.Program, res.ExitCode)
		appendStream(&b, "stdout", res.Stdout)
		appendStream(&b, "stderr", res.Stderr)
		return textResult(b.String(), true)
	}

	text := res.Stdout
	if strings.TrimSpace(res.Stderr) != "" {
		var b strings.Builder
		b.WriteString(text)
		appendStream(&b, "stderr", res.Stderr)
		text = b.String()
	}
	if strings.TrimSpace(text) == "" {
		text = fmt.Sprintf("%s completed with no output", cmd.String())
	}
	return textResult(text, false)
}

func appendStream(b *strings.Builder, name, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "--- %s ---\n%s", name, content)
}

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isError,
	}
}
