package runner

import "fmt"

// Kind classifies why the external process produced no usable result.
// A nonzero exit code is NOT a process error; it is reported through
// Result.ExitCode with the CLI's own output attached.
type Kind string

// Process error kinds.
const (
	// KindNotFound means the phalcon executable could not be resolved on
	// the search path.
	KindNotFound Kind = "executable_not_found"

	// KindPermission means the executable exists but cannot be run.
	KindPermission Kind = "permission_denied"

	// KindTimeout means the child exceeded the configured timeout and was
	// terminated.
	KindTimeout Kind = "timeout"

	// KindStartFailed covers any other failure to start the child.
	KindStartFailed Kind = "start_failed"
)

// ProcessError reports that the external command could not be started or
// did not run to completion. No CLI output exists for these failures, so
// they surface as protocol-level errors rather than tool results.
type ProcessError struct {
	Kind    Kind
	Program string
	Err     error
}

func (e *ProcessError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s: executable not found on PATH (is phalcon devtools installed?)", e.Program)
	case KindPermission:
		return fmt.Sprintf("%s: permission denied", e.Program)
	case KindTimeout:
		return fmt.Sprintf("%s: timed out and was terminated", e.Program)
	default:
		return fmt.Sprintf("%s: failed to start: %v", e.Program, e.Err)
	}
}

func (e *ProcessError) Unwrap() error { return e.Err }
