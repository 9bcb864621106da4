// Package phalcon maps MCP tool calls onto Phalcon devtools CLI invocations.
//
// The package is the pure core of the server: a static catalog of tool
// specifications (name, argument schema, command builder), a uniform
// validation routine, and builders that translate validated arguments into
// argv vectors. Nothing here touches the operating system; process execution
// lives in internal/runner.
package phalcon

import "runtime"

// Spec describes one tool: its wire name, its argument schema, and the
// builder that turns a validated argument set into a Command.
type Spec struct {
	Name        string
	Description string
	Params      []Param

	// Detach marks tools whose external command never terminates on its
	// own (the dev server). The runner starts these and returns after a
	// grace period instead of waiting for exit.
	Detach bool

	// Build constructs the external invocation. It must be pure: the same
	// Args always produce the same Command.
	Build func(a Args) Command
}

// DefaultProgram returns the platform-appropriate phalcon executable name.
// Windows installs devtools behind a batch wrapper; everywhere else the
// bare name resolves through PATH.
func DefaultProgram() string {
	if runtime.GOOS == "windows" {
		return "phalcon.bat"
	}
	return "phalcon"
}

// Catalog returns the specs for every tool the server exposes, all invoking
// the given program. The catalog is static: it is built once at startup and
// never mutated afterwards.
func Catalog(program string) []Spec {
	cmd := func(args ...string) Command {
		return Command{Program: program, Args: args}
	}

	return []Spec{
		{
			Name:        "phalcon_info",
			Description: "Show Phalcon framework version and environment information.",
			Build: func(Args) Command {
				return cmd("info")
			},
		},
		{
			Name:        "phalcon_create_project",
			Description: "Create a new Phalcon project skeleton.",
			Params: []Param{
				{Name: "name", Kind: KindString, Required: true, Description: "Project name"},
				{Name: "template", Kind: KindEnum, Default: "basic", Allowed: []string{"basic", "micro", "api"}, Description: "Project template (default: basic)"},
				{Name: "directory", Kind: KindString, Description: "Target directory for the new project"},
			},
			Build: func(a Args) Command {
				name, _ := a.Value("name")
				args := []string{"project", name}
				args = appendOpt(args, a, "template", "--template")
				args = appendOpt(args, a, "directory", "--directory")
				return cmd(args...)
			},
		},
		{
			Name:        "phalcon_create_module",
			Description: "Create a new module inside an existing Phalcon project.",
			Params: []Param{
				{Name: "name", Kind: KindString, Required: true, Description: "Module name"},
				{Name: "directory", Kind: KindString, Description: "Project directory"},
			},
			Build: func(a Args) Command {
				name, _ := a.Value("name")
				args := []string{"create-module", "--name", name}
				args = appendOpt(args, a, "directory", "--directory")
				return cmd(args...)
			},
		},
		{
			Name:        "phalcon_create_controller",
			Description: "Create a new controller class.",
			Params: []Param{
				{Name: "name", Kind: KindString, Required: true, Description: "Controller name"},
				{Name: "base_class", Kind: KindString, Description: "Base class the controller extends"},
			},
			Build: func(a Args) Command {
				name, _ := a.Value("name")
				args := []string{"create-controller", "--name", name}
				args = appendOpt(args, a, "base_class", "--base-class")
				return cmd(args...)
			},
		},
		{
			Name:        "phalcon_create_model",
			Description: "Create a model class for one database table.",
			Params: []Param{
				{Name: "name", Kind: KindString, Required: true, Description: "Table name to model"},
				{Name: "schema", Kind: KindString, Description: "Database schema name"},
				{Name: "namespace", Kind: KindString, Description: "PHP namespace for the model"},
			},
			Build: func(a Args) Command {
				name, _ := a.Value("name")
				args := []string{"create-model", "--name", name}
				args = appendOpt(args, a, "schema", "--schema")
				args = appendOpt(args, a, "namespace", "--namespace")
				return cmd(args...)
			},
		},
		{
			Name:        "phalcon_create_all_models",
			Description: "Create model classes for every table in the database.",
			Params: []Param{
				{Name: "schema", Kind: KindString, Description: "Database schema name"},
				{Name: "namespace", Kind: KindString, Description: "PHP namespace for the models"},
			},
			Build: func(a Args) Command {
				args := []string{"create-model", "--all"}
				args = appendOpt(args, a, "schema", "--schema")
				args = appendOpt(args, a, "namespace", "--namespace")
				return cmd(args...)
			},
		},
		{
			Name:        "phalcon_create_migration",
			Description: "Generate a database migration for a table.",
			Params: []Param{
				{Name: "table_name", Kind: KindString, Required: true, Description: "Table to generate the migration for"},
				{Name: "directory", Kind: KindString, Description: "Migrations directory"},
			},
			Build: func(a Args) Command {
				table, _ := a.Value("table_name")
				args := []string{"migration", "generate", "--table", table}
				args = appendOpt(args, a, "directory", "--migrations-dir")
				return cmd(args...)
			},
		},
		{
			Name:        "phalcon_create_scaffold",
			Description: "Generate complete CRUD scaffolding for a table.",
			Params: []Param{
				{Name: "name", Kind: KindString, Required: true, Description: "Table name to scaffold"},
				{Name: "schema", Kind: KindString, Description: "Database schema name"},
				{Name: "template", Kind: KindString, Description: "Scaffold template"},
				{Name: "force", Kind: KindFlag, Description: "Overwrite existing files"},
			},
			Build: func(a Args) Command {
				name, _ := a.Value("name")
				args := []string{"create-scaffold", "--name", name}
				args = appendOpt(args, a, "schema", "--schema")
				args = appendOpt(args, a, "template", "--template")
				if a.Flag("force") {
					args = append(args, "--force")
				}
				return cmd(args...)
			},
		},
		{
			Name:        "phalcon_create_webtools",
			Description: "Enable the Phalcon webtools interface in the current project.",
			Build: func(Args) Command {
				return cmd("webtools", "--action", "enable")
			},
		},
		{
			Name:        "phalcon_serve",
			Description: "Start the Phalcon development server. Returns once the server is running; the process keeps serving in the background.",
			Detach:      true,
			Params: []Param{
				{Name: "host", Kind: KindString, Default: "localhost", Description: "Host to bind (default: localhost)"},
				{Name: "port", Kind: KindString, Default: "8000", Description: "Port to listen on (default: 8000)"},
			},
			Build: func(a Args) Command {
				host, _ := a.Value("host")
				port, _ := a.Value("port")
				return cmd("serve", "--host", host, "--port", port)
			},
		},
		{
			Name:        "phalcon_list_commands",
			Description: "List all commands supported by the installed Phalcon devtools.",
			Build: func(Args) Command {
				return cmd("commands")
			},
		},
	}
}

// appendOpt appends "<flag> <value>" when the parameter is present in the
// validated set, and leaves args untouched when it was omitted.
func appendOpt(args []string, a Args, param, flag string) []string {
	if v, ok := a.Value(param); ok {
		args = append(args, flag, v)
	}
	return args
}
