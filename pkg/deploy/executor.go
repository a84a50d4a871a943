package deploy

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandExecutor interface for running container runtime commands.
type CommandExecutor interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	Run(ctx context.Context, name string, args ...string) error
}

// realCommandExecutor executes real system commands.
type realCommandExecutor struct{}

func (r *realCommandExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		// Surface stderr so callers can tell "no such container" apart from
		// real failures.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
	}
	return out, err
}

func (r *realCommandExecutor) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
