// Package gitrun executes git subcommands against a working directory and
// reports failures with the raw stderr attached so callers can surface it.
package gitrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandError reports a git invocation that could not complete or exited
// non-zero. Stderr carries the trimmed diagnostic text git produced.
type CommandError struct {
	Args     []string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	cmd := strings.Join(e.Args, " ")
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %v: %s", cmd, e.Err, e.Stderr)
	}
	return fmt.Sprintf("git %s: %v", cmd, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

type Runner struct {
	Timeout time.Duration
}

// Run executes `git args...` in dir and returns stdout. A nil error means a
// zero exit status. Every failure is a *CommandError.
func (r Runner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	c := exec.CommandContext(ctx, "git", args...)
	c.Dir = dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Start(); err != nil {
		return "", newCommandError(args, err, stderr.String())
	}
	done := make(chan error, 1)
	go func() { done <- c.Wait() }()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	select {
	case err := <-done:
		if err != nil {
			return "", newCommandError(args, err, stderr.String())
		}
		return stdout.String(), nil
	case <-time.After(timeout):
		_ = c.Process.Kill()
		<-done
		return "", newCommandError(args, fmt.Errorf("command timed out after %s", timeout), stderr.String())
	case <-ctx.Done():
		_ = c.Process.Kill()
		<-done
		cause := ctx.Err()
		if cause == nil {
			cause = errors.New("context canceled")
		}
		return "", newCommandError(args, cause, stderr.String())
	}
}

func newCommandError(args []string, cause error, stderr string) *CommandError {
	ce := &CommandError{
		Args:     args,
		Stderr:   strings.TrimSpace(stderr),
		ExitCode: -1,
		Err:      cause,
	}
	var exitErr *exec.ExitError
	if errors.As(cause, &exitErr) {
		ce.ExitCode = exitErr.ExitCode()
	}
	return ce
}

// Stderr extracts the captured stderr from an error produced by Run, or the
// plain error text when it is not a *CommandError.
func Stderr(err error) string {
	var ce *CommandError
	if errors.As(err, &ce) && ce.Stderr != "" {
		return ce.Stderr
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// IsWorkTree reports whether dir sits inside a git working tree. The second
// return value is false when the check itself could not run, in which case
// callers should proceed and rely on command-level failure.
func (r Runner) IsWorkTree(ctx context.Context, dir string) (inside bool, checked bool) {
	out, err := r.Run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		var ce *CommandError
		if errors.As(err, &ce) && ce.ExitCode >= 0 {
			// git ran and said no
			return false, true
		}
		return false, false
	}
	return strings.TrimSpace(out) == "true", true
}
