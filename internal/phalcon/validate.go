package phalcon

import (
	"fmt"
	"math"
	"slices"
	"strconv"
)

// validate checks raw arguments against the spec's parameter schema and
// produces the validated set with defaults applied. The same routine serves
// every tool; there is no per-tool validation code.
func validate(spec Spec, raw map[string]any) (Args, error) {
	known := make(map[string]bool, len(spec.Params))
	for _, p := range spec.Params {
		known[p.Name] = true
	}

	// Reject unknown parameter names deterministically (sorted) so the
	// reported field does not depend on map iteration order.
	var unexpected []string
	for name := range raw {
		if !known[name] {
			unexpected = append(unexpected, name)
		}
	}
	if len(unexpected) > 0 {
		slices.Sort(unexpected)
		return Args{}, &ValidationError{Kind: ErrUnexpectedArgument, Tool: spec.Name, Field: unexpected[0]}
	}

	args := Args{
		values: make(map[string]string, len(spec.Params)),
		flags:  make(map[string]bool),
	}

	for _, p := range spec.Params {
		v, present := raw[p.Name]
		if !present || v == nil {
			switch {
			case p.Kind == KindFlag:
				args.flags[p.Name] = false
			case p.Default != "":
				args.values[p.Name] = p.Default
			case p.Required:
				return Args{}, &ValidationError{Kind: ErrMissingArgument, Tool: spec.Name, Field: p.Name}
			}
			// Omitted optional without default: pass-through, flag is
			// not emitted and the phalcon CLI applies its own default.
			continue
		}

		if p.Kind == KindFlag {
			b, ok := v.(bool)
			if !ok {
				return Args{}, &ValidationError{
					Kind: ErrInvalidValue, Tool: spec.Name, Field: p.Name,
					Reason: fmt.Sprintf("expected boolean, got %T", v),
				}
			}
			args.flags[p.Name] = b
			continue
		}

		s, err := coerceString(v)
		if err != nil {
			return Args{}, &ValidationError{
				Kind: ErrInvalidValue, Tool: spec.Name, Field: p.Name,
				Reason: err.Error(),
			}
		}
		if p.Kind == KindEnum && !slices.Contains(p.Allowed, s) {
			return Args{}, &ValidationError{
				Kind: ErrInvalidValue, Tool: spec.Name, Field: p.Name,
				Allowed: p.Allowed,
				Reason:  fmt.Sprintf("%q is not permitted", s),
			}
		}
		args.values[p.Name] = s
	}

	return args, nil
}

// coerceString converts a decoded JSON value to the string token that will
// be passed to the CLI. Integral numbers are accepted because MCP clients
// send numeric-looking parameters (the serve port) as JSON numbers.
func coerceString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		if t != math.Trunc(t) {
			return "", fmt.Errorf("expected string or integer, got fractional number %v", t)
		}
		return strconv.FormatInt(int64(t), 10), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}
