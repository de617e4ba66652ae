package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const DefaultCommandTimeout = 2 * time.Second

// ErrCommandLaunch wraps every failure to obtain output from a command:
// missing binary, start failure, or the timeout expiring.
var ErrCommandLaunch = errors.New("command could not be run")

// CommandRunner runs an external diagnostic command and returns its
// stdout. A non-zero exit that still wrote to stdout is not an error;
// the output is returned for parsing.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands as child processes, bounded by Timeout.
type ExecRunner struct {
	Timeout time.Duration
}

func NewExecRunner(timeout time.Duration) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &ExecRunner{Timeout: timeout}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	// Kill leaves grandchildren holding the pipe open; stop waiting on them.
	cmd.WaitDelay = r.Timeout / 2

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCommandLaunch, name, ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stdout.Len() > 0 {
			return stdout.Bytes(), nil
		}
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s exited with status %d", name, exitErr.ExitCode())
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrCommandLaunch, name, err)
	}
	return stdout.Bytes(), nil
}

func commandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
