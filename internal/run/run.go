// Package run executes external tools, echoing each command line before it
// starts and mapping process failures onto the diag taxonomy.
package run

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/dosanma1/flint-cli/internal/diag"
	"github.com/dosanma1/flint-cli/internal/ui"
)

// Runner runs external commands in a fixed working directory.
type Runner struct {
	Dir     string
	Printer *ui.Printer
}

// NewRunner creates a runner rooted at dir.
func NewRunner(dir string, p *ui.Printer) *Runner {
	return &Runner{Dir: dir, Printer: p}
}

// Run executes a command and waits for it, wiring output to the terminal.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	r.Printer.Say(ui.Run, Quote(name, args))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return diag.New(diag.ToolMissing, "Command not found: %s", name).
			WithHint("Make sure it's installed and on PATH.")
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return diag.New(diag.CommandFailed, "Command failed (exit %d): %s", exitErr.ExitCode(), name).
			WithHint("See output above for details.").
			WithExitCode(exitErr.ExitCode())
	}
	return err
}

// Start launches a command without waiting for it. The caller owns the
// returned process and must reap it.
func (r *Runner) Start(ctx context.Context, name string, args ...string) (*exec.Cmd, error) {
	r.Printer.Say(ui.Run, Quote(name, args))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, diag.New(diag.ToolMissing, "Command not found: %s", name).
				WithHint("Make sure it's installed and on PATH.")
		}
		return nil, err
	}
	return cmd, nil
}

// LookPath checks that a program is on PATH, returning a ToolMissing error
// with the given installation hint otherwise.
func LookPath(name, hint string) error {
	if _, err := exec.LookPath(name); err != nil {
		e := diag.New(diag.ToolMissing, "%s not found.", name)
		if hint != "" {
			e = e.WithHint(hint)
		}
		return e
	}
	return nil
}

// Quote renders a command line for display, quoting arguments that contain
// whitespace or quote characters.
func Quote(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, a := range append([]string{name}, args...) {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			parts = append(parts, "'"+strings.ReplaceAll(a, "'", `'\''`)+"'")
		} else {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, " ")
}
