package server

import (
	"github.com/google/jsonschema-go/jsonschema"

	"phalcon-mcp/internal/phalcon"
)

// schemaFor builds the JSON Schema for a tool's input from its parameter
// descriptors.
func schemaFor(spec phalcon.Spec) *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, len(spec.Params))
	var required []string

	for _, p := range spec.Params {
		ps := &jsonschema.Schema{Description: p.Description}
		switch p.Kind {
		case phalcon.KindFlag:
			ps.Type = "boolean"
		case phalcon.KindEnum:
			ps.Type = "string"
			ps.Enum = make([]any, len(p.Allowed))
			for i, v := range p.Allowed {
				ps.Enum[i] = v
			}
		default:
			ps.Type = "string"
		}
		props[p.Name] = ps
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}
