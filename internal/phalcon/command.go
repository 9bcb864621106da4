package phalcon

import "strings"

// Command is a fully built external invocation, ready for the process runner.
// Args never pass through a shell: each element is handed to the child
// process as one atomic argv token.
type Command struct {
	// Program is the resolved phalcon executable name (e.g. "phalcon" or
	// "phalcon.bat").
	Program string

	// Args are the tokens following the program name.
	Args []string

	// Dir is the working directory for the child process.
	// Empty means inherit the current process's working directory.
	Dir string
}

// Argv returns the complete argument vector including the program name.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Program)
	return append(argv, c.Args...)
}

// String renders the command for logs and diagnostics. It is NOT a shell
// command line; tokens are joined with spaces purely for readability.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}
