package phalcon

import (
	"fmt"
	"log/slog"
)

// Registry is the immutable tool table built once at startup. It owns the
// dispatch path: tool lookup, argument validation, and command construction.
// It holds no mutable state, so concurrent dispatches are safe.
type Registry struct {
	specs   []Spec
	byName  map[string]Spec
	workDir string
	logger  *slog.Logger
}

// NewRegistry builds the registry for the given phalcon executable.
// workDir, when non-empty, becomes the working directory of every built
// command. It enforces the catalog invariants: tool names are unique, and
// parameter names are unique within a tool.
func NewRegistry(program, workDir string, logger *slog.Logger) (*Registry, error) {
	if program == "" {
		return nil, fmt.Errorf("phalcon program name is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	specs := Catalog(program)
	byName := make(map[string]Spec, len(specs))
	for _, spec := range specs {
		if _, dup := byName[spec.Name]; dup {
			return nil, fmt.Errorf("duplicate tool name %q in catalog", spec.Name)
		}
		seen := make(map[string]bool, len(spec.Params))
		for _, p := range spec.Params {
			if seen[p.Name] {
				return nil, fmt.Errorf("tool %q: duplicate parameter %q", spec.Name, p.Name)
			}
			seen[p.Name] = true
		}
		byName[spec.Name] = spec
	}

	return &Registry{
		specs:   specs,
		byName:  byName,
		workDir: workDir,
		logger:  logger,
	}, nil
}

// Specs returns the tool specs in catalog order.
func (r *Registry) Specs() []Spec {
	return r.specs
}

// Lookup returns the spec for a tool name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	spec, ok := r.byName[name]
	return spec, ok
}

// Dispatch validates raw arguments for the named tool and builds its
// external command. It returns a *ValidationError when the tool is unknown
// or the arguments do not satisfy the schema; no process is ever started for
// an invalid call.
func (r *Registry) Dispatch(tool string, raw map[string]any) (Command, error) {
	spec, ok := r.byName[tool]
	if !ok {
		return Command{}, &ValidationError{Kind: ErrUnknownTool, Tool: tool}
	}

	args, err := validate(spec, raw)
	if err != nil {
		r.logger.Warn("tool call rejected", "tool", tool, "error", err)
		return Command{}, err
	}

	cmd := spec.Build(args)
	cmd.Dir = r.workDir
	r.logger.Debug("command built", "tool", tool, "command", cmd.String())
	return cmd, nil
}
