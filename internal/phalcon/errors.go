package phalcon

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the class of a validation failure.
// All of these are detected before any external process is started.
type ErrorKind string

// Validation error kinds.
const (
	ErrUnknownTool        ErrorKind = "unknown_tool"
	ErrMissingArgument    ErrorKind = "missing_argument"
	ErrUnexpectedArgument ErrorKind = "unexpected_argument"
	ErrInvalidValue       ErrorKind = "invalid_value"
)

// ValidationError reports a tool-call argument set that failed schema
// validation. It is returned to the MCP client as a protocol-level error;
// the phalcon CLI is never invoked for an invalid call.
type ValidationError struct {
	Kind  ErrorKind
	Tool  string
	Field string

	// Allowed carries the permitted values for ErrInvalidValue on an
	// enum parameter.
	Allowed []string

	// Reason adds detail for ErrInvalidValue (e.g. wrong JSON type).
	Reason string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrUnknownTool:
		return fmt.Sprintf("unknown tool %q", e.Tool)
	case ErrMissingArgument:
		return fmt.Sprintf("%s: missing required argument %q", e.Tool, e.Field)
	case ErrUnexpectedArgument:
		return fmt.Sprintf("%s: unexpected argument %q", e.Tool, e.Field)
	case ErrInvalidValue:
		msg := fmt.Sprintf("%s: invalid value for %q", e.Tool, e.Field)
		if e.Reason != "" {
			msg += ": " + e.Reason
		}
		if len(e.Allowed) > 0 {
			msg += fmt.Sprintf(" (allowed: %s)", strings.Join(e.Allowed, ", "))
		}
		return msg
	default:
		return fmt.Sprintf("%s: validation failed for %q", e.Tool, e.Field)
	}
}
