package gitrun

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestCommandError_Error(t *testing.T) {
	err := &CommandError{
		Args:   []string{"diff", "--name-status", "main...HEAD"},
		Stderr: "fatal: not a git repository",
		Err:    errors.New("exit status 128"),
	}
	msg := err.Error()
	if !strings.Contains(msg, "git diff --name-status main...HEAD") {
		t.Fatalf("message should include the command: %q", msg)
	}
	if !strings.Contains(msg, "fatal: not a git repository") {
		t.Fatalf("message should include stderr: %q", msg)
	}
}

func TestStderr(t *testing.T) {
	ce := &CommandError{Args: []string{"log"}, Stderr: "boom", Err: errors.New("exit status 1")}
	wrapped := fmt.Errorf("collecting commits: %w", ce)
	if got := Stderr(wrapped); got != "boom" {
		t.Fatalf("expected wrapped stderr, got %q", got)
	}
	plain := errors.New("plain failure")
	if got := Stderr(plain); got != "plain failure" {
		t.Fatalf("expected plain error text, got %q", got)
	}
	if Stderr(nil) != "" {
		t.Fatalf("nil error has no stderr")
	}
}

func TestResolveWorkdir(t *testing.T) {
	dir := t.TempDir()
	wd := ResolveWorkdir(dir)
	if wd.Source != "argument" {
		t.Fatalf("explicit argument must win, got source %q", wd.Source)
	}
	if wd.Dir != dir {
		t.Fatalf("expected %q, got %q", dir, wd.Dir)
	}

	wd = ResolveWorkdir("")
	if wd.Source != "process" {
		t.Fatalf("expected process fallback, got %q", wd.Source)
	}
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if wd.Dir != cwd || wd.ProcessDir != cwd {
		t.Fatalf("process fallback should use the process working directory")
	}
}
