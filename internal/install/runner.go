// Package install provisions the Docker runtime on the host by driving the
// native package manager of the detected platform.
package install

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"kaspa-setup-tool/internal/console"
)

// Runner executes installation steps and reports progress. The command
// constructor is injectable so strategies can be tested without touching the
// host.
type Runner struct {
	console     *console.Console
	logger      zerolog.Logger
	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewRunner creates a runner for real command execution.
func NewRunner(cons *console.Console, logger zerolog.Logger) *Runner {
	return &Runner{
		console:     cons,
		logger:      logger.With().Str("component", "install").Logger(),
		execCommand: exec.CommandContext,
	}
}

// Step runs one installation command, printing the step description first.
// Command output is captured and attached to the error on failure.
func (r *Runner) Step(ctx context.Context, step string, name string, args ...string) error {
	r.console.Printf("⏳ %s", step)
	r.logger.Debug().Str("command", name).Strs("args", args).Msg("running step")

	out, err := r.execCommand(ctx, name, args...).CombinedOutput()
	if err != nil {
		r.logger.Error().Err(err).Str("command", name).Msg("step failed")
		return fmt.Errorf("%s: %s failed: %w\n%s", step, name, err, tail(string(out), 10))
	}
	return nil
}

// Output runs a command silently and returns its combined output.
func (r *Runner) Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := r.execCommand(ctx, name, args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s failed: %w", name, err)
	}
	return string(out), nil
}

// Quiet reports whether a command succeeds without printing anything.
func (r *Runner) Quiet(ctx context.Context, name string, args ...string) bool {
	return r.execCommand(ctx, name, args...).Run() == nil
}

// sudoArgs prefixes a command with sudo when the process is not already
// privileged. Package managers refuse to run unprivileged.
func sudoArgs(name string, args ...string) (string, []string) {
	if runtime.GOOS != "linux" || os.Geteuid() == 0 {
		return name, args
	}
	return "sudo", append([]string{name}, args...)
}

// tail returns the last n lines of s.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
