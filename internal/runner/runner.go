package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Command is a single program invocation. Args are passed as discrete argv
// elements and never joined into a shell string.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory of the child. Empty means the current
	// directory of this process, which is never changed.
	Dir string
}

// Argv returns the full argument vector including the program name.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command for logs and diagnostics.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Output captures the result of a finished command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner runs a command to completion.
//
// A non-zero exit is not an error: it is reported through Output.ExitCode.
// The error return is for commands that could not be started at all.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

// Run starts the command, waits for it to exit and returns both streams.
func (ExecRunner) Run(ctx context.Context, c Command) (*Output, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", c.Name, err)
	}

	return output, nil
}

// CommandError is returned by RunChecked when a command exits non-zero.
type CommandError struct {
	Command Command
	Output  *Output
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command.Name, e.Output.ExitCode)
}

// Diagnostics returns the captured streams of the failed command.
func (e *CommandError) Diagnostics() string {
	return FormatStreams(e.Output)
}

// RunChecked runs the command and turns a non-zero exit into a *CommandError.
func RunChecked(ctx context.Context, r Runner, c Command) (*Output, error) {
	out, err := r.Run(ctx, c)
	if err != nil {
		return out, err
	}
	if out.ExitCode != 0 {
		return out, &CommandError{Command: c, Output: out}
	}
	return out, nil
}

// FormatStreams renders captured stdout and stderr for a diagnostic report.
// Empty streams are omitted.
func FormatStreams(out *Output) string {
	if out == nil {
		return ""
	}
	var b strings.Builder
	if s := strings.TrimRight(out.Stdout, "\n"); s != "" {
		b.WriteString("--- stdout ---\n")
		b.WriteString(s)
		b.WriteString("\n")
	}
	if s := strings.TrimRight(out.Stderr, "\n"); s != "" {
		b.WriteString("--- stderr ---\n")
		b.WriteString(s)
		b.WriteString("\n")
	}
	return b.String()
}
