// Package runner is the narrow subprocess capability used to drive gh and
// git. Commands report an exit code and captured stdout; callers decide what
// a non-zero exit means.
package runner

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ExitNotFound is reported when the binary cannot be resolved.
const ExitNotFound = 127

// Result holds the outcome of one command.
type Result struct {
	ExitCode int
	Stdout   string
}

// OK reports whether the command exited with status 0.
func (r Result) OK() bool { return r.ExitCode == 0 }

// Runner executes external commands.
type Runner interface {
	// Run executes name with args and captures stdout. Stderr is discarded.
	Run(ctx context.Context, name string, args ...string) Result
	// Attach executes name with args connected to the current terminal, for
	// interactive commands such as "gh auth login".
	Attach(ctx context.Context, name string, args ...string) Result
	// LookPath reports whether name resolves on PATH.
	LookPath(name string) bool
}

// Exec runs commands with os/exec.
type Exec struct {
	// Dir is the working directory; empty means the current one.
	Dir string
}

var _ Runner = (*Exec)(nil)

func (e *Exec) command(ctx context.Context, name string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	if e.Dir != "" {
		cmd.Dir = e.Dir
	}
	return cmd
}

// Run implements Runner.
func (e *Exec) Run(ctx context.Context, name string, args ...string) Result {
	cmd := e.command(ctx, name, args)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	res := Result{ExitCode: exitCode(err), Stdout: stdout.String()}
	slog.Debug("command finished", "cmd", name+" "+strings.Join(args, " "), "exit", res.ExitCode)
	return res
}

// Attach implements Runner.
func (e *Exec) Attach(ctx context.Context, name string, args ...string) Result {
	cmd := e.command(ctx, name, args)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	res := Result{ExitCode: exitCode(err)}
	slog.Debug("interactive command finished", "cmd", name+" "+strings.Join(args, " "), "exit", res.ExitCode)
	return res
}

// LookPath implements Runner.
func (e *Exec) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return ExitNotFound
	}
	return -1
}
