package release

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes one external command and waits for it.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands as child processes sharing the caller's stdio.
type ExecRunner struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner wired to the process stdio.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{
		Dir:    dir,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	//nolint:gosec // binary and arguments are fixed by the release steps
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	return cmd.Run()
}

// GitError reports the git step that failed. The manifest has already been
// rewritten when it occurs.
type GitError struct {
	Step string
	Err  error
}

func (e *GitError) Error() string {
	return fmt.Sprintf("git step %q failed: %v", e.Step, e.Err)
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// gitSteps returns the commands that commit, tag and push a release.
func gitSteps(manifest, version string) [][]string {
	return [][]string{
		{"add", manifest},
		{"commit", "-m", "chore: bump version to " + version},
		{"tag", "v" + version},
		{"push"},
		{"push", "--tags"},
	}
}

// Git drives the release steps through a Runner.
type Git struct {
	bin    string
	runner Runner
}

// NewGit returns a Git using bin (default "git").
func NewGit(bin string, runner Runner) *Git {
	if bin == "" {
		bin = "git"
	}
	return &Git{bin: bin, runner: runner}
}

// Release runs every step in order and stops at the first failure.
func (g *Git) Release(ctx context.Context, manifest, version string, onStep func(step string)) error {
	for _, args := range gitSteps(manifest, version) {
		step := g.bin + " " + strings.Join(args, " ")
		if onStep != nil {
			onStep(step)
		}

		if err := g.runner.Run(ctx, g.bin, args...); err != nil {
			return &GitError{Step: step, Err: err}
		}
	}
	return nil
}
