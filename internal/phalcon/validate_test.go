package phalcon

import (
	"errors"
	"strings"
	"testing"
)

func dispatchErr(t *testing.T, tool string, args map[string]any) *ValidationError {
	t.Helper()
	r := newTestRegistry(t)
	_, err := r.Dispatch(tool, args)
	if err == nil {
		t.Fatalf("Dispatch(%s, %v) should have failed", tool, args)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return verr
}

func TestDispatchUnknownTool(t *testing.T) {
	verr := dispatchErr(t, "phalcon_destroy_everything", nil)
	if verr.Kind != ErrUnknownTool {
		t.Errorf("Kind = %s, want %s", verr.Kind, ErrUnknownTool)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	tests := []struct {
		tool  string
		field string
	}{
		{"phalcon_create_project", "name"},
		{"phalcon_create_module", "name"},
		{"phalcon_create_controller", "name"},
		{"phalcon_create_model", "name"},
		{"phalcon_create_migration", "table_name"},
		{"phalcon_create_scaffold", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			verr := dispatchErr(t, tt.tool, map[string]any{})
			if verr.Kind != ErrMissingArgument {
				t.Errorf("Kind = %s, want %s", verr.Kind, ErrMissingArgument)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestValidateUnexpectedArgument(t *testing.T) {
	verr := dispatchErr(t, "phalcon_info", map[string]any{"verbose": true})
	if verr.Kind != ErrUnexpectedArgument {
		t.Errorf("Kind = %s, want %s", verr.Kind, ErrUnexpectedArgument)
	}
	if verr.Field != "verbose" {
		t.Errorf("Field = %q, want verbose", verr.Field)
	}
}

func TestValidateUnexpectedArgumentDeterministic(t *testing.T) {
	// With several unknown names the reported field is the first in sorted
	// order, not whichever the map iterates first.
	for range 5 {
		verr := dispatchErr(t, "phalcon_info", map[string]any{
			"zeta": 1, "alpha": 2, "mid": 3,
		})
		if verr.Field != "alpha" {
			t.Fatalf("Field = %q, want alpha", verr.Field)
		}
	}
}

func TestValidateEnumRejectsUnknownValue(t *testing.T) {
	verr := dispatchErr(t, "phalcon_create_project", map[string]any{
		"name":     "my-app",
		"template": "enterprise",
	})
	if verr.Kind != ErrInvalidValue {
		t.Errorf("Kind = %s, want %s", verr.Kind, ErrInvalidValue)
	}
	if verr.Field != "template" {
		t.Errorf("Field = %q, want template", verr.Field)
	}
	for _, allowed := range []string{"basic", "micro", "api"} {
		if !strings.Contains(verr.Error(), allowed) {
			t.Errorf("error message %q should list allowed value %q", verr.Error(), allowed)
		}
	}
}

func TestValidateFlagRejectsNonBoolean(t *testing.T) {
	verr := dispatchErr(t, "phalcon_create_scaffold", map[string]any{
		"name":  "products",
		"force": "yes",
	})
	if verr.Kind != ErrInvalidValue {
		t.Errorf("Kind = %s, want %s", verr.Kind, ErrInvalidValue)
	}
	if verr.Field != "force" {
		t.Errorf("Field = %q, want force", verr.Field)
	}
}

func TestValidateRejectsFractionalNumber(t *testing.T) {
	verr := dispatchErr(t, "phalcon_serve", map[string]any{"port": 80.5})
	if verr.Kind != ErrInvalidValue {
		t.Errorf("Kind = %s, want %s", verr.Kind, ErrInvalidValue)
	}
}

func TestValidateRejectsWrongType(t *testing.T) {
	verr := dispatchErr(t, "phalcon_create_controller", map[string]any{
		"name": []any{"Users"},
	})
	if verr.Kind != ErrInvalidValue {
		t.Errorf("Kind = %s, want %s", verr.Kind, ErrInvalidValue)
	}
}

func TestValidateNilValueTreatedAsOmitted(t *testing.T) {
	r := newTestRegistry(t)
	cmd, err := r.Dispatch("phalcon_create_model", map[string]any{
		"name":   "customers",
		"schema": nil,
	})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	for _, tok := range cmd.Args {
		if tok == "--schema" {
			t.Errorf("nil schema should omit --schema, got argv %v", cmd.Argv())
		}
	}
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		in      any
		want    string
		wantErr bool
	}{
		{"hello", "hello", false},
		{float64(8000), "8000", false},
		{float64(0), "0", false},
		{80.5, "", true},
		{int(42), "42", false},
		{int64(7), "7", false},
		{true, "", true},
		{map[string]any{}, "", true},
	}

	for _, tt := range tests {
		got, err := coerceString(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("coerceString(%v) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("coerceString(%v) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("coerceString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidationErrorMessages(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{&ValidationError{Kind: ErrUnknownTool, Tool: "nope"}, `unknown tool "nope"`},
		{&ValidationError{Kind: ErrMissingArgument, Tool: "t", Field: "name"}, `t: missing required argument "name"`},
		{&ValidationError{Kind: ErrUnexpectedArgument, Tool: "t", Field: "x"}, `t: unexpected argument "x"`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
