// Package runner executes built phalcon commands as child processes.
//
// It is the only part of the server that touches the operating system.
// Stdout and stderr are captured as separate streams; merging for display
// is the caller's decision. A nonzero exit code is a normal Result, not an
// error: the phalcon CLI's diagnostic output belongs to the caller.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"time"

	"phalcon-mcp/internal/phalcon"
)

// Result is the captured outcome of one external invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string

	// Detached is set when the child was left running after the grace
	// period (dev server). PID identifies the running process; Stdout,
	// Stderr, and ExitCode are meaningless in that case.
	Detached bool
	PID      int
}

// Runner executes commands with a per-call timeout. It holds no mutable
// state; concurrent calls are independent.
type Runner struct {
	timeout time.Duration
	grace   time.Duration
	logger  *slog.Logger
}

// New creates a Runner. timeout bounds ordinary commands; grace is how long
// Detach waits for an immediate startup failure before declaring the child
// successfully running.
func New(timeout, grace time.Duration, logger *slog.Logger) (*Runner, error) {
	if timeout <= 0 {
		return nil, fmt.Errorf("command timeout must be positive, got %v", timeout)
	}
	if grace <= 0 {
		return nil, fmt.Errorf("serve grace period must be positive, got %v", grace)
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Runner{timeout: timeout, grace: grace, logger: logger}, nil
}

// Run executes the command and waits for it to finish or time out.
// The argv tokens are passed to the child verbatim; nothing is interpreted
// through a shell.
func (r *Runner) Run(ctx context.Context, cmd phalcon.Command) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	c := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	r.logger.Debug("running command", "command", cmd.String(), "dir", cmd.Dir)

	err := c.Run()
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			r.logger.Warn("command timed out", "command", cmd.String(), "timeout", r.timeout)
			return Result{}, &ProcessError{Kind: KindTimeout, Program: cmd.Program, Err: ctx.Err()}
		}
		if ctx.Err() != nil {
			// Canceled by the caller; propagate as-is.
			return Result{}, ctx.Err()
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.logger.Debug("command failed", "command", cmd.String(),
				"exit_code", exitErr.ExitCode(), "elapsed", elapsed)
			return Result{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}, nil
		}

		perr := classifyStart(cmd.Program, err)
		r.logger.Warn("command could not start", "command", cmd.String(), "error", perr)
		return Result{}, perr
	}

	r.logger.Debug("command succeeded", "command", cmd.String(),
		"elapsed", elapsed, "stdout_bytes", stdout.Len())
	return Result{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// Detach starts the command and returns without waiting for it to exit.
// A child that exits within the grace period is reported as a normal Result
// (so an immediate startup failure surfaces with its output); a child still
// running after the grace period is left running and reported as Detached.
func (r *Runner) Detach(ctx context.Context, cmd phalcon.Command) (Result, error) {
	c := exec.Command(cmd.Program, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	r.logger.Debug("starting detached command", "command", cmd.String(), "grace", r.grace)

	if err := c.Start(); err != nil {
		perr := classifyStart(cmd.Program, err)
		r.logger.Warn("detached command could not start", "command", cmd.String(), "error", perr)
		return Result{}, perr
	}

	done := make(chan error, 1)
	go func() { done <- c.Wait() }()

	grace := time.NewTimer(r.grace)
	defer grace.Stop()

	select {
	case err := <-done:
		// Exited within the grace period: the server failed to start
		// (or exited immediately). Report it like a normal run.
		res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
		if err == nil {
			return res, nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			r.logger.Warn("detached command exited early", "command", cmd.String(),
				"exit_code", res.ExitCode)
			return res, nil
		}
		return Result{}, &ProcessError{Kind: KindStartFailed, Program: cmd.Program, Err: err}

	case <-grace.C:
		// Still running: declare the server started and leave it be.
		// The wait goroutine reaps the child whenever it eventually exits.
		pid := c.Process.Pid
		r.logger.Info("detached command running", "command", cmd.String(), "pid", pid)
		return Result{Detached: true, PID: pid}, nil

	case <-ctx.Done():
		_ = c.Process.Kill()
		<-done
		return Result{}, ctx.Err()
	}
}

// classifyStart maps a start failure to a ProcessError kind.
func classifyStart(program string, err error) *ProcessError {
	kind := KindStartFailed
	switch {
	case errors.Is(err, exec.ErrNotFound):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	}
	return &ProcessError{Kind: kind, Program: program, Err: err}
}
